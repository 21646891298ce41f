// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingredients parses the ingredients PDF into category-grouped
// dish-to-ingredient mappings.
package ingredients

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chombe87/vrtic/internal/textutil"
	"github.com/chombe87/vrtic/pkg/types"
)

// maxHeadingRunes bounds category headings. Real headings are short dish
// groups ("SUPE I ČORBE"); longer all-caps lines are shouting prose.
const maxHeadingRunes = 40

var ingredientSeparator = regexp.MustCompile(`[,;]`)

// ParseLines folds the PDF's cleaned text lines into ingredient items.
// An ALL-CAPS line without a colon and shorter than 40 runes sets the
// current category. A colon line starts a new item; colonless lines continue
// the open item's wrapped ingredient blob.
func ParseLines(lines []string) []types.IngredientItem {
	items := []types.IngredientItem{}
	var open *types.IngredientItem
	category := ""

	for _, line := range lines {
		if isCategoryHeading(line) {
			category = line
			continue
		}

		if name, blob, found := strings.Cut(line, ":"); found {
			if open != nil {
				items = append(items, *open)
			}
			open = &types.IngredientItem{
				Name:           textutil.CollapseWhitespace(name),
				Category:       category,
				IngredientsRaw: strings.TrimSpace(blob),
			}
			continue
		}

		if open != nil {
			open.IngredientsRaw = strings.TrimSpace(open.IngredientsRaw + " " + line)
		}
	}
	if open != nil {
		items = append(items, *open)
	}

	for i := range items {
		items[i].Ingredients = splitBlob(items[i].IngredientsRaw)
	}
	return items
}

// isCategoryHeading reports whether line is an ALL-CAPS category heading:
// no colon, shorter than the heading bound, at least one letter, and no
// lower-case letters.
func isCategoryHeading(line string) bool {
	if strings.Contains(line, ":") || utf8.RuneCountInString(line) >= maxHeadingRunes {
		return false
	}
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// splitBlob splits an ingredient blob on commas and semicolons into trimmed,
// non-empty tokens.
func splitBlob(blob string) []string {
	tokens := []string{}
	for _, part := range ingredientSeparator.Split(blob, -1) {
		if token := textutil.CollapseWhitespace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
