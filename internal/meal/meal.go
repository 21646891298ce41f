// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package meal classifies source lines as meal openers and cleans meal text.
//
// Two grammars exist because the two sources format meal headers differently.
// The change-notice page spells the meal name out ("Doručak – ..."), while
// the monthly menu PDF abbreviates it to a single letter ("Д- ..."). Both
// appear in Latin and Cyrillic script, with and without diacritics.
package meal

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/chombe87/vrtic/internal/textutil"
	"github.com/chombe87/vrtic/pkg/types"
)

// noticeKeywords lists, per meal code, the keyword spellings a change-notice
// heading line may start with: Latin plain, Latin with diacritics, Cyrillic.
// Codes are tried in the listed order and the first hit wins; within a code,
// spellings are tried in the listed order.
var noticeKeywords = []struct {
	code types.MealCode
	keys []string
}{
	{types.MealBreakfast, []string{"dorucak", "doručak", "доручак"}},
	{types.MealSnack, []string{"uzina", "užina", "ужина"}},
	{types.MealLunch, []string{"rucak", "ručak", "ручак"}},
}

// noticeSeparator splits a heading into title and description on the first
// en-dash, hyphen, or colon.
var noticeSeparator = regexp.MustCompile(`[–\-:]`)

// NoticeMeal is the result of classifying a change-notice heading line.
type NoticeMeal struct {
	Code types.MealCode

	// Title is the text before the separator; the whole line when the line
	// carries no separator.
	Title string

	// Description is the text after the separator, trimmed. Empty when the
	// line carries no separator.
	Description string
}

// DetectNoticeMeal reports whether line opens a meal section in the
// change-notice grammar. Matching is on the lower-cased line; the returned
// title and description keep the original characters.
func DetectNoticeMeal(line string) (NoticeMeal, bool) {
	lowered := strings.ToLower(line)
	for _, entry := range noticeKeywords {
		for _, key := range entry.keys {
			if !strings.HasPrefix(lowered, key) {
				continue
			}
			m := NoticeMeal{Code: entry.code, Title: line}
			if loc := noticeSeparator.FindStringIndex(line); loc != nil {
				m.Title = strings.TrimSpace(line[:loc[0]])
				m.Description = strings.TrimSpace(line[loc[1]:])
			}
			return m, true
		}
	}
	return NoticeMeal{}, false
}

// menuLine matches the PDF grammar: a single leading Latin or Cyrillic
// letter, a hyphen or en-dash, then the meal body. Lines of any other shape
// are never meal openers, even if they contain meal keywords elsewhere;
// narrative text would otherwise false-positive.
var menuLine = regexp.MustCompile(`^([A-Za-zА-Яа-я])[-–]\s*(.+)`)

// CodeForLetter maps a meal-letter (first letter of the Serbian meal name,
// either script) to its code.
func CodeForLetter(letter string) (types.MealCode, bool) {
	switch strings.ToLower(letter) {
	case "d", "д":
		return types.MealBreakfast, true
	case "u", "у":
		return types.MealSnack, true
	case "r", "р":
		return types.MealLunch, true
	}
	return "", false
}

// SplitMenuLine reports whether line has the PDF-grammar shape, returning
// the leading letter and the body after the separator. The letter may still
// map to no meal code; callers skip such lines.
func SplitMenuLine(line string) (letter, body string, ok bool) {
	m := menuLine.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSpace(m[2]), true
}

// caloriePattern matches a trailing calorie annotation: one or more numbers
// each followed by "kcal"/"kal", possibly several figures separated by "/"
// (e.g. "250 kcal/180 kcal"), with an optional leading dash.
var caloriePattern = regexp.MustCompile(`(?i)(?:[-–]?\s*)?((?:\d+[.,]?\d*)\s*(?:kcal|kal)(?:\s*/\s*\d+[.,]?\d*\s*(?:kcal|kal))*)`)

var calorieNumber = regexp.MustCompile(`\d+[.,]?\d*`)

// StripCalories excises the first calorie annotation from text and parses
// its numeric values, comma decimal separators normalized to dots. Text with
// no annotation is returned unchanged with a nil slice.
func StripCalories(text string) (string, []float64) {
	loc := caloriePattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, nil
	}

	var calories []float64
	for _, num := range calorieNumber.FindAllString(text[loc[2]:loc[3]], -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(num, ",", "."), 64)
		if err != nil {
			continue
		}
		calories = append(calories, v)
	}

	cleaned := strings.Trim(text[:loc[0]]+text[loc[1]:], " -/;:,")
	return cleaned, calories
}

// contactPattern matches the central-kitchen contact boilerplate that the
// monthly PDF appends after the last meal of a page, in either script.
// Everything from the phrase onward is dropped.
var contactPattern = regexp.MustCompile(`(?i)kontakt telefoni centralne kuhinje.*|контакт телефони централне кухиње.*`)

// tailLabels strip a dangling bare meal-name label left at the end of a
// reassembled description, e.g. a lone "ручак" carried over from a column
// header. Applied in meal order, each at most once.
var tailLabels = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[\s,.\-–]*(doručak|dorucak|доручак)$`),
	regexp.MustCompile(`(?i)[\s,.\-–]*(užina|uzina|ужина)$`),
	regexp.MustCompile(`(?i)[\s,.\-–]*(ručak|rucak|ручак)$`),
}

// CleanMenuText normalizes a monthly-menu meal description: collapses
// whitespace, removes the kitchen-contact boilerplate, and strips trailing
// bare meal-name labels.
func CleanMenuText(text string) string {
	t := textutil.CollapseWhitespace(text)
	t = contactPattern.ReplaceAllString(t, "")
	for _, pat := range tailLabels {
		t = pat.ReplaceAllString(t, "")
	}
	return strings.Trim(t, " ,.-–")
}

// IsContactLine reports whether the line is kitchen-contact boilerplate and
// should be dropped outright wherever it occurs.
func IsContactLine(line string) bool {
	return contactPattern.MatchString(line)
}
