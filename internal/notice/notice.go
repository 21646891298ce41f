// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notice parses the change-notice web page into day-by-day meal
// amendments. The page is hand-edited prose, so every line that matches no
// recognized shape degrades into a free-text bucket instead of failing.
package notice

import (
	"fmt"
	"strings"

	"github.com/chombe87/vrtic/internal/htmldoc"
	"github.com/chombe87/vrtic/internal/meal"
	"github.com/chombe87/vrtic/internal/textutil"
	"github.com/chombe87/vrtic/pkg/types"
)

// Parse extracts the ordered day entries from raw change-notice markup.
func Parse(markup string) ([]types.NoticeDay, error) {
	doc, err := htmldoc.Parse(markup)
	if err != nil {
		return nil, fmt.Errorf("parsing change-notice page: %w", err)
	}
	return ParseLines(htmldoc.TextLines(htmldoc.ContentRegion(doc))), nil
}

// ParseLines runs the day/meal state machine over cleaned text lines.
// Lines before the first date line are discarded; a day with no recognized
// meals is still emitted.
func ParseLines(lines []string) []types.NoticeDay {
	days := []types.NoticeDay{}
	var day *types.NoticeDay
	mealIdx := -1 // index into day.Meals of the open meal, -1 when none

	for _, line := range lines {
		if isNoticeHeading(line) {
			continue
		}

		if iso, weekday, ok := textutil.FindDate(line); ok {
			if day != nil {
				days = append(days, *day)
			}
			day = &types.NoticeDay{
				Date:    iso,
				Weekday: weekday,
				Meals:   []types.NoticeMeal{},
				Raw:     []string{},
			}
			mealIdx = -1
			continue
		}

		if day == nil {
			continue
		}

		if m, ok := meal.DetectNoticeMeal(line); ok {
			day.Meals = append(day.Meals, types.NoticeMeal{
				Code:          m.Code,
				Title:         m.Title,
				Text:          m.Description,
				AffectedUnits: []string{},
				Notes:         []string{},
				Raw:           line,
			})
			mealIdx = len(day.Meals) - 1
			continue
		}

		if mealIdx >= 0 {
			open := &day.Meals[mealIdx]
			if strings.Contains(line, ",") {
				open.AffectedUnits = append(open.AffectedUnits, splitUnits(line)...)
			}
			open.Notes = append(open.Notes, line)
			continue
		}

		day.Raw = append(day.Raw, line)
	}

	if day != nil {
		days = append(days, *day)
	}
	return days
}

// isNoticeHeading reports whether the line is a page heading that merely
// announces the menu change. Headings never open or close a day.
func isNoticeHeading(line string) bool {
	up := strings.ToUpper(line)
	return strings.HasPrefix(up, "IZMENA JELOVNIKA") || strings.HasPrefix(up, "ИЗМЕНА")
}

// splitUnits splits a comma-bearing line into trimmed facility-unit tokens,
// trailing periods stripped.
func splitUnits(line string) []string {
	var units []string
	for _, part := range strings.Split(line, ",") {
		token := strings.TrimSpace(strings.Trim(textutil.CollapseWhitespace(part), "."))
		if token != "" {
			units = append(units, token)
		}
	}
	return units
}
