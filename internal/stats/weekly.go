// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stats

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-calcufit/models"
)

// WeekLength is the number of days in the rolling report.
const WeekLength = 7

var weekdayNames = map[string][7]string{
	"pt": {"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
	"en": {"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"},
}

// Weekly builds the 7-day series ending on the calendar day of today in loc,
// oldest day first. Days without records count as zero. Every day carries
// the account's current goals.
func Weekly(account models.Account, today time.Time, loc *time.Location, locale string) models.WeeklyReport {
	if loc == nil {
		loc = time.UTC
	}

	kcal := make(map[string]float64)
	for _, f := range account.Records.Food {
		kcal[f.DayKey(loc)] += f.Kcal
	}
	water := make(map[string]float64)
	for _, w := range account.Records.Water {
		water[w.DayKey(loc)] += w.ML
	}

	goals := account.Goals()
	local := today.In(loc)
	// noon keeps AddDate away from DST edges
	anchor := time.Date(local.Year(), local.Month(), local.Day(), 12, 0, 0, 0, loc)

	report := models.WeeklyReport{Days: make([]models.DayStat, 0, WeekLength)}
	var sumKcal, sumWater float64
	for i := WeekLength - 1; i >= 0; i-- {
		d := anchor.AddDate(0, 0, -i)
		key := models.DayKey(d, loc)
		day := models.DayStat{
			Date:      key,
			Label:     WeekdayLabel(d.Weekday(), locale),
			Kcal:      kcal[key],
			WaterML:   water[key],
			GoalKcal:  goals.CalorieGoal,
			GoalWater: goals.WaterGoal,
		}
		sumKcal += day.Kcal
		sumWater += day.WaterML
		if day.Kcal >= float64(goals.CalorieGoal) {
			report.DaysKcalGoalMet++
		}
		report.Days = append(report.Days, day)
	}

	report.AvgKcal = int(math.Round(sumKcal / WeekLength))
	report.AvgWater = int(math.Round(sumWater / WeekLength))
	return report
}

// WeekdayLabel returns the capitalized three-letter weekday name for locale,
// e.g. "Seg" for Monday in pt-BR. Unknown locales fall back to Portuguese.
func WeekdayLabel(wd time.Weekday, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	base, _ := tag.Base()

	names, ok := weekdayNames[base.String()]
	if !ok {
		names = weekdayNames["pt"]
		tag = language.BrazilianPortuguese
	}

	short := []rune(names[wd])
	if len(short) > 3 {
		short = short[:3]
	}
	return cases.Title(tag).String(strings.ToLower(string(short)))
}
