// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package links

import (
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/chombe87/vrtic/pkg/types"
)

// Marker keyword sets, each spelling listed in folded Latin and in Cyrillic.
// Folding does not transliterate between scripts, so a Cyrillic page matches
// only through the Cyrillic spellings. The change-notice marker announces the
// attachment block; the per-document sets back up individual slots when the
// attachment block is incomplete.
var (
	changeMarkerKeywords = []string{"izmena jelovnika", "jelovnik", "измена јеловника", "јеловник"}
	ingredientsKeywords  = []string{"sastav namirnica", "namirnic", "састав намирница", "намирниц"}
	allergensKeywords    = []string{"alergen", "алерген"}
)

// maxBatchLinks caps the primary marker-based search at the three expected
// attachments: monthly menu, ingredients, allergens, in that order.
const maxBatchLinks = 3

// DocumentSet holds the resolved absolute PDF URL per document type.
type DocumentSet struct {
	MenuPDF        string
	IngredientsPDF string
	AllergensPDF   string
}

// ResolveDocuments fills every non-overridden document slot from the
// change-notice page. The primary marker-based batch supplies slots by
// position; per-document keyword fallbacks run only for slots the batch left
// empty. A slot that stays empty is a ResolutionError, except the allergens
// slot when skipAllergens is set.
func ResolveDocuments(doc *goquery.Document, pageURL string, overrides types.SourceOverrides, skipAllergens bool) (DocumentSet, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return DocumentSet{}, fmt.Errorf("parsing page URL %q: %w", pageURL, err)
	}

	set := DocumentSet{
		MenuPDF:        overrides.MenuPDF,
		IngredientsPDF: overrides.IngredientsPDF,
		AllergensPDF:   overrides.AllergensPDF,
	}
	if set.MenuPDF != "" && set.IngredientsPDF != "" && (set.AllergensPDF != "" || skipAllergens) {
		return set, nil
	}

	batch := Resolve(doc, base, changeMarkerKeywords, maxBatchLinks)
	slot := func(i int) string {
		if i < len(batch) {
			return batch[i]
		}
		return ""
	}

	if set.MenuPDF == "" {
		set.MenuPDF = slot(0)
	}
	if set.MenuPDF == "" {
		return DocumentSet{}, &ResolutionError{Document: "monthly menu"}
	}

	if set.IngredientsPDF == "" {
		set.IngredientsPDF = slot(1)
	}
	if set.IngredientsPDF == "" {
		if found := Resolve(doc, base, ingredientsKeywords, 1); len(found) > 0 {
			set.IngredientsPDF = found[0]
		}
	}
	if set.IngredientsPDF == "" {
		return DocumentSet{}, &ResolutionError{Document: "ingredients"}
	}

	if set.AllergensPDF == "" {
		set.AllergensPDF = slot(2)
	}
	if set.AllergensPDF == "" {
		if found := Resolve(doc, base, allergensKeywords, 1); len(found) > 0 {
			set.AllergensPDF = found[0]
		}
	}
	if set.AllergensPDF == "" && !skipAllergens {
		return DocumentSet{}, &ResolutionError{Document: "allergens"}
	}

	return set, nil
}
