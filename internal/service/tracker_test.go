// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-calcufit/internal/logger"
	"github.com/MKhiriev/go-calcufit/internal/mock"
	"github.com/MKhiriev/go-calcufit/models"
)

var fixedNow = time.Date(2026, time.October, 16, 12, 30, 0, 0, time.UTC)

func newTestTracker(t *testing.T) (*trackerService, *Session) {
	t.Helper()
	s, _ := newTestSession(t)
	signupAna(t, s)

	tr := NewTrackerService(s, &sequentialIDs{n: 100}, logger.Nop()).(*trackerService)
	tr.now = func() time.Time { return fixedNow }
	return tr, s
}

func TestTracker_AddFood(t *testing.T) {
	ctx := context.Background()
	tr, s := newTestTracker(t)

	rec, err := tr.AddFood(ctx, FoodForm{Name: " Arroz ", Kcal: "130", Carbs: "28,5", Protein: "abc", Fat: "-1"})
	require.NoError(t, err)
	assert.Equal(t, models.FoodRecord{ID: "id-101", Name: "Arroz", Kcal: 130, Carbs: 28.5, Protein: 0, Fat: 0, Date: fixedNow}, rec)

	acc, _ := s.Account()
	require.Len(t, acc.Records.Food, 1)
	assert.Equal(t, rec, acc.Records.Food[0])
}

func TestTracker_AddFood_Validation(t *testing.T) {
	tests := []struct {
		name string
		form FoodForm
		want error
	}{
		{name: "no name", form: FoodForm{Kcal: "100"}, want: ErrEmptyField},
		{name: "no kcal", form: FoodForm{Name: "Pão"}, want: ErrEmptyField},
		{name: "kcal not a number", form: FoodForm{Name: "Pão", Kcal: "muito"}, want: ErrInvalidFood},
		{name: "negative kcal", form: FoodForm{Name: "Pão", Kcal: "-5"}, want: ErrInvalidFood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, s := newTestTracker(t)
			_, err := tr.AddFood(context.Background(), tt.form)
			assert.ErrorIs(t, err, tt.want)

			acc, _ := s.Account()
			assert.Empty(t, acc.Records.Food)
		})
	}
}

func TestTracker_RemoveFoodAndLog(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker(t)

	first, err := tr.AddFood(ctx, FoodForm{Name: "A", Kcal: "1"})
	require.NoError(t, err)
	second, err := tr.AddFood(ctx, FoodForm{Name: "B", Kcal: "2"})
	require.NoError(t, err)

	log, err := tr.FoodLog()
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, second.ID, log[0].ID)
	assert.Equal(t, first.ID, log[1].ID)

	require.NoError(t, tr.RemoveFood(ctx, first.ID))
	require.NoError(t, tr.RemoveFood(ctx, "missing"))

	log, _ = tr.FoodLog()
	require.Len(t, log, 1)
	assert.Equal(t, second.ID, log[0].ID)
}

func TestTracker_AddWater(t *testing.T) {
	ctx := context.Background()
	tr, s := newTestTracker(t)

	_, err := tr.AddWater(ctx, "300")
	require.NoError(t, err)
	_, err = tr.AddWater(ctx, "500")
	require.NoError(t, err)

	for _, bad := range []struct {
		in   string
		want error
	}{
		{"", ErrEmptyField},
		{"0", ErrInvalidWater},
		{"-200", ErrInvalidWater},
		{"um copo", ErrInvalidWater},
	} {
		_, err = tr.AddWater(ctx, bad.in)
		assert.ErrorIs(t, err, bad.want, bad.in)
	}

	acc, _ := s.Account()
	require.Len(t, acc.Records.Water, 2)
	assert.Equal(t, 800.0, acc.Records.Water[0].ML+acc.Records.Water[1].ML)
}

func TestTracker_SaveProfile(t *testing.T) {
	ctx := context.Background()
	tr, s := newTestTracker(t)

	require.NoError(t, tr.SaveProfile(ctx, ProfileForm{Name: "Ana B", CalorieGoal: "1800", WaterGoal: "abc"}))
	acc, _ := s.Account()
	assert.Equal(t, "Ana B", acc.Name)
	assert.Equal(t, models.GoalSettings{CalorieGoal: 1800, WaterGoal: models.DefaultWaterGoal}, acc.Settings)

	require.NoError(t, tr.SaveProfile(ctx, ProfileForm{Name: "Ana B", CalorieGoal: "0", WaterGoal: "-3"}))
	acc, _ = s.Account()
	assert.Equal(t, models.DefaultGoals(), acc.Settings)

	assert.ErrorIs(t, tr.SaveProfile(ctx, ProfileForm{Name: "  "}), ErrEmptyField)
}

func TestTracker_NotLoggedIn(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t)
	tr := NewTrackerService(s, &sequentialIDs{}, logger.Nop())

	_, err := tr.AddFood(ctx, FoodForm{Name: "A", Kcal: "1"})
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = tr.AddWater(ctx, "100")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.ErrorIs(t, tr.RemoveFood(ctx, "x"), ErrNotLoggedIn)
	assert.ErrorIs(t, tr.SaveProfile(ctx, ProfileForm{Name: "x"}), ErrNotLoggedIn)
	_, err = tr.FoodLog()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestTracker_StorageFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	rs := mock.NewMockRecordStore(ctrl)
	acc := models.Account{ID: "1", Email: "a@x"}.Clone()

	rs.EXPECT().ActiveAccount(ctx).Return(acc, true)
	rs.EXPECT().UpsertAndSyncActive(ctx, gomock.Any()).Return(errors.New("disk full"))

	s := NewSession(rs, nil, nil, logger.Nop())
	s.Boot(ctx)
	tr := NewTrackerService(s, &sequentialIDs{}, logger.Nop())

	_, err := tr.AddWater(ctx, "250")
	assert.ErrorIs(t, err, ErrStorage)

	got, _ := s.Account()
	assert.Empty(t, got.Records.Water)
}
