// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package menu

import (
	"reflect"
	"testing"

	"github.com/chombe87/vrtic/pkg/types"
)

func TestParseLinesCyrillicLunch(t *testing.T) {
	lines := []string{
		"01.01.2026 Четвртак",
		"Р- Пиле у сосу, пире кромпир - 350 kcal",
	}

	days := ParseLines(lines)
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	if len(days[0].Meals) != 1 {
		t.Fatalf("got %d meals, want 1", len(days[0].Meals))
	}

	m := days[0].Meals[0]
	if m.Code != types.MealLunch {
		t.Errorf("code = %q, want %q", m.Code, types.MealLunch)
	}
	if m.Text != "Пиле у сосу, пире кромпир" {
		t.Errorf("text = %q, want %q", m.Text, "Пиле у сосу, пире кромпир")
	}
	if want := []float64{350}; !reflect.DeepEqual(m.Calories, want) {
		t.Errorf("calories = %v, want %v", m.Calories, want)
	}
	if m.Raw != lines[1] {
		t.Errorf("raw = %q, want source line", m.Raw)
	}
}

func TestParseLinesStateMachine(t *testing.T) {
	lines := []string{
		"ЈЕЛОВНИК ЗА ЈАНУАР 2026",
		"Д- Млеко pre prvog dana, odbačeno",
		"05.01.2026 Ponedeljak",
		"D- Mleko sa medom - 250 kcal",
		"U- Voće",
		"X- nepoznato slovo, preskočeno",
		"R- Pasulj sa kobasicom",
		"kiseli kupus - 420 kcal/300 kcal",
		"Kontakt telefoni centralne kuhinje: 011/123-456",
		"06.01.2026 Utorak",
		"Д- Чај и переца - 180 kcal",
	}

	days := ParseLines(lines)
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}

	first := days[0]
	if first.Date != "2026-01-05" || first.Weekday != "Ponedeljak" {
		t.Errorf("day = %q %q, want 2026-01-05 Ponedeljak", first.Date, first.Weekday)
	}
	if len(first.Meals) != 3 {
		t.Fatalf("got %d meals, want 3", len(first.Meals))
	}

	breakfast := first.Meals[0]
	if breakfast.Code != types.MealBreakfast || breakfast.Text != "Mleko sa medom" {
		t.Errorf("breakfast = %q %q", breakfast.Code, breakfast.Text)
	}
	if want := []float64{250}; !reflect.DeepEqual(breakfast.Calories, want) {
		t.Errorf("breakfast calories = %v, want %v", breakfast.Calories, want)
	}

	snack := first.Meals[1]
	if snack.Code != types.MealSnack || snack.Text != "Voće" {
		t.Errorf("snack = %q %q", snack.Code, snack.Text)
	}
	if len(snack.Calories) != 0 || snack.Calories == nil {
		t.Errorf("snack calories = %v, want empty non-nil slice", snack.Calories)
	}

	// The continuation line is folded into the lunch text; its calorie
	// annotation stays in place because only the meal-opening line is
	// calorie-stripped.
	lunch := first.Meals[2]
	if lunch.Code != types.MealLunch {
		t.Errorf("lunch code = %q, want %q", lunch.Code, types.MealLunch)
	}
	if lunch.Text != "Pasulj sa kobasicom kiseli kupus - 420 kcal/300 kcal" {
		t.Errorf("lunch text = %q", lunch.Text)
	}

	second := days[1]
	if second.Date != "2026-01-06" {
		t.Errorf("second date = %q, want 2026-01-06", second.Date)
	}
	if len(second.Meals) != 1 || second.Meals[0].Text != "Чај и переца" {
		t.Errorf("second day meals = %v", second.Meals)
	}
}

func TestParseLinesMealLineWithEmbeddedDate(t *testing.T) {
	lines := []string{
		"05.01.2026 Ponedeljak",
		"Д- Ужина важи од 06.01.2026 за све objekte",
	}

	days := ParseLines(lines)
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1: a meal line with an embedded date must not open a day", len(days))
	}
	if len(days[0].Meals) != 1 {
		t.Fatalf("got %d meals, want 1", len(days[0].Meals))
	}
	if days[0].Meals[0].Code != types.MealBreakfast {
		t.Errorf("code = %q, want %q", days[0].Meals[0].Code, types.MealBreakfast)
	}
}

func TestParseLinesContinuationCleansBoilerplate(t *testing.T) {
	lines := []string{
		"05.01.2026 Ponedeljak",
		"R- Supa, hleb",
		"Kontakt telefoni centralne kuhinje 011/123-456 i još nešto",
	}

	days := ParseLines(lines)
	if len(days) != 1 || len(days[0].Meals) != 1 {
		t.Fatalf("unexpected shape: %+v", days)
	}
	// The whole line is contact boilerplate, dropped before it reaches the
	// open meal.
	if got := days[0].Meals[0].Text; got != "Supa, hleb" {
		t.Errorf("text = %q, want %q", got, "Supa, hleb")
	}
}

func TestParseLinesNoDaysWithoutDates(t *testing.T) {
	days := ParseLines([]string{"Д- Млеко", "nasumičan tekst"})
	if len(days) != 0 {
		t.Errorf("got %v, want no days", days)
	}
}
