// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package menu parses the monthly menu PDF's text lines into day-by-day
// meal entries with calorie figures.
package menu

import (
	"strings"

	"github.com/chombe87/vrtic/internal/meal"
	"github.com/chombe87/vrtic/internal/textutil"
	"github.com/chombe87/vrtic/pkg/types"
)

// mealLetterPrefixes guard the date rule: a line starting with one of these
// is a meal line even when its body happens to embed a date, so it must not
// open a new day.
var mealLetterPrefixes = []string{"-", "Д-", "У-", "Р-", "D-", "U-", "R-"}

// ParseLines runs the day/meal state machine over the PDF's cleaned text
// lines. Lines before the first day are discarded; meal lines whose letter
// maps to no known code are silently skipped; any other line continues the
// open meal's description.
func ParseLines(lines []string) []types.MenuDay {
	days := []types.MenuDay{}
	var day *types.MenuDay
	mealIdx := -1 // index into day.Meals of the open meal, -1 when none

	for _, line := range lines {
		if meal.IsContactLine(line) {
			continue
		}

		if iso, weekday, ok := textutil.FindDate(line); ok && !startsWithMealLetter(line) {
			if day != nil {
				days = append(days, *day)
			}
			day = &types.MenuDay{Date: iso, Weekday: weekday, Meals: []types.MenuMeal{}}
			mealIdx = -1
			continue
		}

		if day == nil {
			continue
		}

		if letter, body, ok := meal.SplitMenuLine(line); ok {
			code, known := meal.CodeForLetter(letter)
			if !known {
				continue
			}
			text, calories := meal.StripCalories(body)
			if calories == nil {
				calories = []float64{}
			}
			day.Meals = append(day.Meals, types.MenuMeal{
				Code:     code,
				Text:     meal.CleanMenuText(text),
				Calories: calories,
				Raw:      line,
			})
			mealIdx = len(day.Meals) - 1
			continue
		}

		if mealIdx >= 0 {
			open := &day.Meals[mealIdx]
			open.Text = meal.CleanMenuText(open.Text + " " + line)
		}
	}

	if day != nil {
		days = append(days, *day)
	}
	return days
}

func startsWithMealLetter(line string) bool {
	for _, prefix := range mealLetterPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
