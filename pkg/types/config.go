// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared record and configuration structures
// exchanged between pipeline stages.
package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests. The source
	// site serves cut-down pages to unknown agents, so a browser-like value
	// is the default.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for a full retrieval run.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Year and Month select the menu period; Month must be in 1..12.
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`

	// OutputDir is the directory JSON artifacts are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Overrides pins source PDF URLs, bypassing link resolution per document.
	Overrides SourceOverrides `json:"overrides" yaml:"overrides"`

	// SkipAllergens drops the allergen sheet from the run instead of
	// failing when no allergen PDF link can be resolved.
	SkipAllergens bool `json:"skip_allergens" yaml:"skip_allergens"`
}

// SourceOverrides pins the PDF URL for individual documents. An empty field
// means the URL is resolved from the change-notice page.
type SourceOverrides struct {
	MenuPDF        string `json:"menu_pdf,omitempty" yaml:"menu_pdf,omitempty"`
	IngredientsPDF string `json:"ingredients_pdf,omitempty" yaml:"ingredients_pdf,omitempty"`
	AllergensPDF   string `json:"allergens_pdf,omitempty" yaml:"allergens_pdf,omitempty"`
}

// PublishConfig holds settings for the optional git publishing step.
type PublishConfig struct {
	// Dir is the working tree the output directory belongs to.
	Dir string `json:"dir" yaml:"dir"`

	// MetadataFile is the artifact whose lone change does not warrant a
	// commit (a refresh that produced no content change still rewrites the
	// generation timestamp).
	MetadataFile string `json:"metadata_file" yaml:"metadata_file"`
}
