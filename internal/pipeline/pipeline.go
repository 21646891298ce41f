// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences one retrieval run: page fetch, link resolution,
// PDF retrieval, parsing, and JSON artifact emission. Every step is
// synchronous; the first fatal error aborts the run, leaving artifacts from
// completed steps on disk.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/chombe87/vrtic/internal/allergens"
	"github.com/chombe87/vrtic/internal/artifact"
	"github.com/chombe87/vrtic/internal/fetch"
	"github.com/chombe87/vrtic/internal/htmldoc"
	"github.com/chombe87/vrtic/internal/ingredients"
	"github.com/chombe87/vrtic/internal/links"
	"github.com/chombe87/vrtic/internal/menu"
	"github.com/chombe87/vrtic/internal/notice"
	"github.com/chombe87/vrtic/internal/pdftext"
	"github.com/chombe87/vrtic/pkg/types"
)

// Run executes the full pipeline for one menu period, writing progress to w.
func Run(cfg types.FetchConfig, extractor pdftext.Extractor, w io.Writer) error {
	// Month validation happens before any network activity.
	pageURL, err := fetch.MonthPageURL(cfg.Year, cfg.Month)
	if err != nil {
		return err
	}

	client := fetch.NewClient(cfg.HTTPConfig)
	out := artifact.NewWriter(cfg.OutputDir)

	fmt.Fprintf(w, "[1/5] fetching change notice from %s\n", pageURL)
	markup, err := client.GetHTML(pageURL)
	if err != nil {
		return err
	}
	doc, err := htmldoc.Parse(markup)
	if err != nil {
		return fmt.Errorf("parsing change-notice page: %w", err)
	}

	changes := types.ChangeNotice{
		Entries: notice.ParseLines(htmldoc.TextLines(htmldoc.ContentRegion(doc))),
		Source:  pageURL,
		Year:    cfg.Year,
		Month:   cfg.Month,
	}
	if err := out.WriteJSON(artifact.FileMenuChanges, changes); err != nil {
		return err
	}

	docs, err := links.ResolveDocuments(doc, pageURL, cfg.Overrides, cfg.SkipAllergens)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "[2/5] fetching monthly menu PDF from %s\n", docs.MenuPDF)
	menuLines, err := fetchLines(client, extractor, docs.MenuPDF)
	if err != nil {
		return err
	}
	monthly := types.MonthlyMenu{
		Days:   menu.ParseLines(menuLines),
		Source: docs.MenuPDF,
		Year:   cfg.Year,
		Month:  cfg.Month,
	}
	if err := out.WriteJSON(artifact.FileMonthlyMenu, monthly); err != nil {
		return err
	}

	fmt.Fprintf(w, "[3/5] fetching ingredients PDF from %s\n", docs.IngredientsPDF)
	ingredientLines, err := fetchLines(client, extractor, docs.IngredientsPDF)
	if err != nil {
		return err
	}
	list := types.IngredientList{
		Items:  ingredients.ParseLines(ingredientLines),
		Source: docs.IngredientsPDF,
	}
	if err := out.WriteJSON(artifact.FileIngredients, list); err != nil {
		return err
	}

	if docs.AllergensPDF != "" {
		fmt.Fprintf(w, "[4/5] fetching allergen PDF from %s\n", docs.AllergensPDF)
		allergenLines, err := fetchLines(client, extractor, docs.AllergensPDF)
		if err != nil {
			return err
		}
		sheet := types.AllergenSheet{
			Lines:  allergens.ParseLines(allergenLines),
			Source: docs.AllergensPDF,
		}
		if err := out.WriteJSON(artifact.FileAllergens, sheet); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(w, "[4/5] allergen sheet skipped")
	}

	meta := types.Metadata{
		GeneratedAt: time.Now().UTC(),
		Month:       cfg.Month,
		Year:        cfg.Year,
		Sources: types.SourceSet{
			Page:           pageURL,
			MenuPDF:        docs.MenuPDF,
			IngredientsPDF: docs.IngredientsPDF,
			AllergensPDF:   docs.AllergensPDF,
		},
	}
	if err := out.WriteJSON(artifact.FileMetadata, meta); err != nil {
		return err
	}

	fmt.Fprintf(w, "[5/5] done, JSON files in %s\n", cfg.OutputDir)
	return nil
}

// fetchLines retrieves a PDF and extracts its cleaned text lines.
func fetchLines(client *fetch.Client, extractor pdftext.Extractor, url string) ([]string, error) {
	data, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	lines, err := extractor.Lines(data)
	if err != nil {
		return nil, fmt.Errorf("extracting text from %s: %w", url, err)
	}
	return lines, nil
}
