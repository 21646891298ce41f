// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MealCode identifies one of the three daily meal slots. The single-letter
// wire values ("d", "u", "r") are what the front-end consumes and match the
// first letter of the Serbian meal name in Latin script.
type MealCode string

const (
	MealBreakfast MealCode = "d"
	MealSnack     MealCode = "u"
	MealLunch     MealCode = "r"
)

// NoticeMeal is one meal amendment inside a change-notice day.
type NoticeMeal struct {
	// Code is the meal slot this amendment applies to.
	Code MealCode `json:"code" yaml:"code"`

	// Title is the heading text before the dash/colon separator,
	// with original characters preserved.
	Title string `json:"title" yaml:"title"`

	// Text is the cleaned description after the separator. Empty when the
	// heading line carried no separator.
	Text string `json:"text" yaml:"text"`

	// AffectedUnits lists the facility units the amendment applies to,
	// in source order.
	AffectedUnits []string `json:"affected_units" yaml:"affected_units"`

	// Notes holds the follow-up lines attached to this meal, in source order.
	Notes []string `json:"notes" yaml:"notes"`

	// Raw is the original source line the meal was recognized from.
	Raw string `json:"raw" yaml:"raw"`
}

// NoticeDay is one dated entry in the change notice.
type NoticeDay struct {
	// Date is the calendar date in ISO 8601 form (YYYY-MM-DD).
	Date string `json:"date" yaml:"date"`

	// Weekday is the free-text label following the date in the source,
	// e.g. "Četvrtak".
	Weekday string `json:"weekday" yaml:"weekday"`

	// Meals are the recognized meal amendments, in source order.
	Meals []NoticeMeal `json:"meals" yaml:"meals"`

	// Raw collects lines under the day header that belong to no meal.
	Raw []string `json:"raw" yaml:"raw"`
}

// ChangeNotice is the parsed change-notice page, the top-level payload of
// menu_changes.json.
type ChangeNotice struct {
	Entries []NoticeDay `json:"entries" yaml:"entries"`

	// Source is the page URL the notice was retrieved from.
	Source string `json:"source" yaml:"source"`

	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
}

// MenuMeal is one meal line from the monthly menu PDF.
type MenuMeal struct {
	// Code is the meal slot, mapped from the leading letter of the line.
	Code MealCode `json:"code" yaml:"code"`

	// Text is the cleaned dish description with the calorie annotation and
	// any trailing boilerplate removed.
	Text string `json:"text" yaml:"text"`

	// Calories lists the parsed calorie figures, in source order. Empty when
	// the line carried no annotation.
	Calories []float64 `json:"calories" yaml:"calories"`

	// Raw is the original source line the meal was recognized from.
	Raw string `json:"raw" yaml:"raw"`
}

// MenuDay is one dated entry in the monthly menu.
type MenuDay struct {
	// Date is the calendar date in ISO 8601 form (YYYY-MM-DD).
	Date string `json:"date" yaml:"date"`

	// Weekday is the free-text label following the date in the source.
	Weekday string `json:"weekday" yaml:"weekday"`

	// Meals are the recognized meals, in source order.
	Meals []MenuMeal `json:"meals" yaml:"meals"`
}

// MonthlyMenu is the parsed monthly menu PDF, the top-level payload of
// monthly_menu.json.
type MonthlyMenu struct {
	Days []MenuDay `json:"days" yaml:"days"`

	// Source is the PDF URL the menu was retrieved from.
	Source string `json:"source" yaml:"source"`

	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
}
