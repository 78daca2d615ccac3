// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount() Account {
	return Account{
		ID:       "acc-1",
		Name:     "Ana",
		Email:    "Ana@Example.com",
		Settings: DefaultGoals(),
		Records: Records{
			Food:  []FoodRecord{{ID: "f1", Name: "Arroz", Kcal: 200}},
			Water: []WaterRecord{{ID: "w1", ML: 300}},
		},
	}
}

func TestAccount_WithFood_DoesNotMutateReceiver(t *testing.T) {
	acc := newTestAccount()

	next := acc.WithFood(FoodRecord{ID: "f2", Name: "Feijão", Kcal: 150})

	require.Len(t, acc.Records.Food, 1)
	require.Len(t, next.Records.Food, 2)
	assert.Equal(t, "f2", next.Records.Food[1].ID)
}

func TestAccount_WithFood_NoSharedBackingArray(t *testing.T) {
	acc := newTestAccount()
	acc.Records.Food = make([]FoodRecord, 1, 10)
	acc.Records.Food[0] = FoodRecord{ID: "f1"}

	a := acc.WithFood(FoodRecord{ID: "a"})
	b := acc.WithFood(FoodRecord{ID: "b"})

	assert.Equal(t, "a", a.Records.Food[1].ID)
	assert.Equal(t, "b", b.Records.Food[1].ID)
}

func TestAccount_WithoutFood(t *testing.T) {
	acc := newTestAccount()

	next := acc.WithoutFood("f1")
	assert.Empty(t, next.Records.Food)
	assert.Len(t, acc.Records.Food, 1)

	same := acc.WithoutFood("unknown")
	assert.Equal(t, acc.Records.Food, same.Records.Food)
}

func TestAccount_WithWater(t *testing.T) {
	acc := newTestAccount()

	next := acc.WithWater(WaterRecord{ID: "w2", ML: 500})

	assert.Len(t, acc.Records.Water, 1)
	assert.Len(t, next.Records.Water, 2)
}

func TestAccount_WithProfile_NormalizesGoals(t *testing.T) {
	acc := newTestAccount()

	next := acc.WithProfile("Ana Maria", GoalSettings{CalorieGoal: 0, WaterGoal: 2500})

	assert.Equal(t, "Ana Maria", next.Name)
	assert.Equal(t, DefaultCalorieGoal, next.Settings.CalorieGoal)
	assert.Equal(t, 2500, next.Settings.WaterGoal)
	assert.Equal(t, "Ana", acc.Name)
}

func TestAccount_Clone_NilCollections(t *testing.T) {
	acc := Account{ID: "x"}

	c := acc.Clone()

	assert.NotNil(t, c.Records.Food)
	assert.NotNil(t, c.Records.Water)
}

func TestAccount_EmailMatches(t *testing.T) {
	acc := newTestAccount()

	assert.True(t, acc.EmailMatches("ana@example.com"))
	assert.True(t, acc.EmailMatches("  ANA@EXAMPLE.COM "))
	assert.False(t, acc.EmailMatches("ana@example.org"))
}

func TestAccount_FoodNewestFirst(t *testing.T) {
	acc := newTestAccount().WithFood(FoodRecord{ID: "f2"}).WithFood(FoodRecord{ID: "f3"})

	got := acc.FoodNewestFirst()

	require.Len(t, got, 3)
	assert.Equal(t, []string{"f3", "f2", "f1"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, "f1", acc.Records.Food[0].ID)
}

func TestGoalSettings_Normalized(t *testing.T) {
	assert.Equal(t, DefaultGoals(), GoalSettings{}.Normalized())
	assert.Equal(t, GoalSettings{CalorieGoal: 1800, WaterGoal: DefaultWaterGoal},
		GoalSettings{CalorieGoal: 1800, WaterGoal: -5}.Normalized())
}

func TestDayKey(t *testing.T) {
	ts := time.Date(2026, 3, 1, 1, 30, 0, 0, time.UTC)
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	assert.Equal(t, "2026-03-01", DayKey(ts, nil))
	assert.Equal(t, "2026-02-28", DayKey(ts, saoPaulo))
	assert.Equal(t, "2026-02-28", FoodRecord{Date: ts}.DayKey(saoPaulo))
	assert.Equal(t, "2026-03-01", WaterRecord{Date: ts}.DayKey(time.UTC))
}

func TestEstimateRequest_Empty(t *testing.T) {
	assert.True(t, EstimateRequest{}.Empty())
	assert.True(t, EstimateRequest{Image: &EstimateImage{}}.Empty())
	assert.False(t, EstimateRequest{Description: "banana"}.Empty())
	assert.False(t, EstimateRequest{Image: &EstimateImage{Data: []byte{1}}}.Empty())
}

func TestNewAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-01", "")

	assert.Equal(t, []string{"Build version: N/A", "Build date: 2026-10-01", "Build commit: N/A"}, info.Lines())
}
