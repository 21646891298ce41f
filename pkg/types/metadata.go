// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SourceSet records the concrete URL used for every retrieved document in a run.
type SourceSet struct {
	// Page is the change-notice page URL.
	Page string `json:"page" yaml:"page"`

	// MenuPDF is the monthly menu PDF URL.
	MenuPDF string `json:"menu_pdf" yaml:"menu_pdf"`

	// IngredientsPDF is the ingredients PDF URL.
	IngredientsPDF string `json:"ingredients_pdf" yaml:"ingredients_pdf"`

	// AllergensPDF is the allergen sheet PDF URL. Empty when the sheet was
	// skipped for the run.
	AllergensPDF string `json:"allergens_pdf,omitempty" yaml:"allergens_pdf,omitempty"`
}

// Metadata describes one generation run, the payload of metadata.json.
type Metadata struct {
	// GeneratedAt is the UTC timestamp of the run.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// Month and Year are the requested menu period.
	Month int `json:"month" yaml:"month"`
	Year  int `json:"year" yaml:"year"`

	// Sources lists the URLs every document was retrieved from.
	Sources SourceSet `json:"sources" yaml:"sources"`
}
