// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stats

import "github.com/MKhiriev/go-calcufit/models"

// Macro slice names.
const (
	MacroCarbs   = "carbs"
	MacroProtein = "protein"
	MacroFat     = "fat"
	MacroEmpty   = "empty"
)

// Totals sums calories, macros and water over the given records.
func Totals(food []models.FoodRecord, water []models.WaterRecord) models.Totals {
	var t models.Totals
	for _, f := range food {
		t.Kcal += f.Kcal
		t.Carbs += f.Carbs
		t.Protein += f.Protein
		t.Fat += f.Fat
	}
	for _, w := range water {
		t.WaterML += w.ML
	}
	return t
}

// Progress returns total/goal capped to [0, 1]. A non-positive goal yields 0.
func Progress(total, goal float64) float64 {
	if goal <= 0 || total <= 0 {
		return 0
	}
	return min(total/goal, 1)
}

// Macros returns the carbs/protein/fat breakdown. When all three are zero it
// returns a single placeholder slice of value 1 so a chart still has
// something to draw.
func Macros(t models.Totals) []models.MacroSlice {
	if t.Carbs == 0 && t.Protein == 0 && t.Fat == 0 {
		return []models.MacroSlice{{Name: MacroEmpty, Value: 1, Placeholder: true}}
	}
	return []models.MacroSlice{
		{Name: MacroCarbs, Value: t.Carbs},
		{Name: MacroProtein, Value: t.Protein},
		{Name: MacroFat, Value: t.Fat},
	}
}
