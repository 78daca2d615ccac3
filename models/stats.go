// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Totals is the sum of a set of food and water records.
type Totals struct {
	Kcal    float64
	Carbs   float64
	Protein float64
	Fat     float64
	WaterML float64
}

// MacroSlice is one category of a proportional macro chart.
type MacroSlice struct {
	Name  string
	Value float64

	// Placeholder marks the single slice emitted when every macro is zero.
	Placeholder bool
}

// DailySummary is what the home screen renders for a single day.
type DailySummary struct {
	// Day is the calendar day key the summary covers.
	Day    string
	Totals Totals
	Goals  GoalSettings

	// KcalProgress and WaterProgress are in [0, 1].
	KcalProgress  float64
	WaterProgress float64

	Macros []MacroSlice
}

// DayStat is one entry of the rolling weekly series.
type DayStat struct {
	// Date is the calendar day key.
	Date string

	// Label is the localized, capitalized short weekday name.
	Label string

	Kcal      float64
	WaterML   float64
	GoalKcal  int
	GoalWater int
}

// WeeklyReport is the 7-day rolling series, oldest day first.
type WeeklyReport struct {
	Days []DayStat

	// AvgKcal and AvgWater are round(sum/7), missing days counting as zero.
	AvgKcal  int
	AvgWater int

	// DaysKcalGoalMet counts days whose calorie total reached the goal.
	DaysKcalGoalMet int
}
