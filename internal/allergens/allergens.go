// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package allergens collects the allergen sheet's text lines verbatim.
// The sheet's layout changes month to month, so no structure is imposed yet;
// the front-end renders the lines as-is.
package allergens

// ParseLines passes the PDF's cleaned, non-empty lines through unchanged.
// It exists so the allergen document rides the same extract-then-parse
// pipeline as the structured PDFs.
func ParseLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	out = append(out, lines...)
	return out
}
