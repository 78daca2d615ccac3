// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const (
	// DefaultCalorieGoal is the daily calorie target assigned at sign-up and
	// substituted whenever a stored goal is missing or non-positive.
	DefaultCalorieGoal = 2000

	// DefaultWaterGoal is the daily water target in milliliters assigned at
	// sign-up and substituted whenever a stored goal is missing or non-positive.
	DefaultWaterGoal = 2000
)

// GoalSettings holds the user-configured daily targets.
type GoalSettings struct {
	// CalorieGoal is the daily calorie target in kcal.
	CalorieGoal int `json:"calorieGoal"`

	// WaterGoal is the daily water target in milliliters.
	WaterGoal int `json:"waterGoal"`
}

// DefaultGoals returns the goals every new account starts with.
func DefaultGoals() GoalSettings {
	return GoalSettings{CalorieGoal: DefaultCalorieGoal, WaterGoal: DefaultWaterGoal}
}

// Normalized returns a copy where every non-positive goal is replaced by its
// default. Goals are always read through Normalized.
func (g GoalSettings) Normalized() GoalSettings {
	if g.CalorieGoal <= 0 {
		g.CalorieGoal = DefaultCalorieGoal
	}
	if g.WaterGoal <= 0 {
		g.WaterGoal = DefaultWaterGoal
	}
	return g
}
