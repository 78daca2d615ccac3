// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DayKeyLayout is the layout of calendar day keys ("YYYY-MM-DD") used to
// bucket records by day.
const DayKeyLayout = "2006-01-02"

// FoodRecord is a single logged meal or snack.
// It is immutable once created; the only way to change it is to remove it.
type FoodRecord struct {
	// ID is the unique identifier of the record.
	ID string `json:"id"`

	// Name is the free-text name of the food.
	Name string `json:"name"`

	// Kcal is the calorie count, never negative.
	Kcal float64 `json:"kcal"`

	// Carbs, Protein and Fat are macro grams, zero when unknown.
	Carbs   float64 `json:"carbs"`
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`

	// Date is the creation instant.
	Date time.Time `json:"date"`
}

// DayKey returns the calendar day of the record in loc.
func (f FoodRecord) DayKey(loc *time.Location) string {
	return DayKey(f.Date, loc)
}

// WaterRecord is a single logged drink.
type WaterRecord struct {
	// ID is the unique identifier of the record.
	ID string `json:"id"`

	// ML is the volume in milliliters, always positive.
	ML float64 `json:"ml"`

	// Date is the creation instant.
	Date time.Time `json:"date"`
}

// DayKey returns the calendar day of the record in loc.
func (w WaterRecord) DayKey(loc *time.Location) string {
	return DayKey(w.Date, loc)
}

// Records groups the two record collections owned by an account.
type Records struct {
	Food  []FoodRecord  `json:"food"`
	Water []WaterRecord `json:"water"`
}

// DayKey formats t as a calendar day key in loc. A nil loc means UTC.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DayKeyLayout)
}
