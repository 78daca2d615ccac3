// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"math"
	"strconv"
	"strings"
)

// FoodForm is the raw content of the food entry form.
type FoodForm struct {
	Name    string
	Kcal    string
	Carbs   string
	Protein string
	Fat     string
}

// ProfileForm is the raw content of the profile form.
type ProfileForm struct {
	Name        string
	CalorieGoal string
	WaterGoal   string
}

// parseNumber parses a user-typed decimal. A comma decimal separator is
// accepted. ok is false for empty, malformed or non-finite input.
func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// numberOrZero parses raw and falls back to 0 for anything that is not a
// non-negative number.
func numberOrZero(raw string) float64 {
	v, ok := parseNumber(raw)
	if !ok || v < 0 {
		return 0
	}
	return v
}

// goalOrDefault parses a goal. Unparsable or non-positive input yields def.
func goalOrDefault(raw string, def int) int {
	v, ok := parseNumber(raw)
	if !ok || v <= 0 {
		return def
	}
	return int(math.Round(v))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
