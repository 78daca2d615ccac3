// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stats

import (
	"time"

	"github.com/MKhiriev/go-calcufit/models"
)

// Daily summarizes the records of account that fall on the calendar day of
// day in loc.
func Daily(account models.Account, day time.Time, loc *time.Location) models.DailySummary {
	key := models.DayKey(day, loc)

	var food []models.FoodRecord
	for _, f := range account.Records.Food {
		if f.DayKey(loc) == key {
			food = append(food, f)
		}
	}
	var water []models.WaterRecord
	for _, w := range account.Records.Water {
		if w.DayKey(loc) == key {
			water = append(water, w)
		}
	}

	s := summarize(account.Goals(), food, water)
	s.Day = key
	return s
}

// Overall summarizes every record of account regardless of date. Day is
// left empty.
func Overall(account models.Account) models.DailySummary {
	return summarize(account.Goals(), account.Records.Food, account.Records.Water)
}

func summarize(goals models.GoalSettings, food []models.FoodRecord, water []models.WaterRecord) models.DailySummary {
	t := Totals(food, water)
	return models.DailySummary{
		Totals:        t,
		Goals:         goals,
		KcalProgress:  Progress(t.Kcal, float64(goals.CalorieGoal)),
		WaterProgress: Progress(t.WaterML, float64(goals.WaterGoal)),
		Macros:        Macros(t),
	}
}
