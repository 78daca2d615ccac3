// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-calcufit/internal/config"
)

func TestReports(t *testing.T) {
	ctx := context.Background()
	tr, s := newTestTracker(t)

	tr.now = func() time.Time { return fixedNow.AddDate(0, 0, -1) }
	_, err := tr.AddFood(ctx, FoodForm{Name: "Ontem", Kcal: "400"})
	require.NoError(t, err)

	tr.now = func() time.Time { return fixedNow }
	_, err = tr.AddFood(ctx, FoodForm{Name: "Hoje", Kcal: "100", Carbs: "10"})
	require.NoError(t, err)
	_, err = tr.AddWater(ctx, "500")
	require.NoError(t, err)

	t.Run("today scope", func(t *testing.T) {
		r := NewReportService(s, time.UTC, "pt-BR", config.DailyScopeToday).(*reportService)
		r.now = func() time.Time { return fixedNow }

		day, err := r.Today()
		require.NoError(t, err)
		assert.Equal(t, "2026-10-16", day.Day)
		assert.Equal(t, 100.0, day.Totals.Kcal)
		assert.InDelta(t, 0.25, day.WaterProgress, 1e-9)
	})

	t.Run("all scope", func(t *testing.T) {
		r := NewReportService(s, time.UTC, "pt-BR", config.DailyScopeAll)

		day, err := r.Today()
		require.NoError(t, err)
		assert.Equal(t, 500.0, day.Totals.Kcal)
	})

	t.Run("week", func(t *testing.T) {
		r := NewReportService(s, time.UTC, "pt-BR", config.DailyScopeToday).(*reportService)
		r.now = func() time.Time { return fixedNow }

		week, err := r.Week()
		require.NoError(t, err)
		require.Len(t, week.Days, 7)
		assert.Equal(t, "Qui", week.Days[5].Label)
		assert.Equal(t, 400.0, week.Days[5].Kcal)
		assert.Equal(t, "Sex", week.Days[6].Label)
		assert.Equal(t, 71, week.AvgKcal)
		assert.Equal(t, 71, week.AvgWater)
	})
}

func TestReports_NotLoggedIn(t *testing.T) {
	s, _ := newTestSession(t)
	r := NewReportService(s, time.UTC, "en", config.DailyScopeToday)

	_, err := r.Today()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = r.Week()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
