// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil provides the text normalization primitives shared by
// every parser: whitespace collapsing and Serbian diacritic folding.
package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CollapseWhitespace replaces every run of whitespace with a single space
// and trims both ends. Applied to every source line before classification so
// pattern matching is whitespace-insensitive.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// foldReplacer maps each Serbian diacritic and Cyrillic digraph letter to a
// plain-Latin equivalent. Applied after lower-casing, so only the lower-case
// forms are listed.
var foldReplacer = strings.NewReplacer(
	"č", "c",
	"ć", "c",
	"š", "s",
	"đ", "dj",
	"ž", "z",
	"љ", "lj",
	"њ", "nj",
)

// FoldForMatch lower-cases text and folds Serbian diacritics to plain-Latin
// digraphs so keyword matching is script- and diacritic-agnostic. Text is
// NFC-normalized first: PDF text streams often carry decomposed accents,
// which must fold identically to the precomposed forms.
//
// The result is for matching only. Display text keeps original characters.
func FoldForMatch(text string) string {
	return foldReplacer.Replace(strings.ToLower(norm.NFC.String(text)))
}
