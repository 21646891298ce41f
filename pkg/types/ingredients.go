// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// IngredientItem maps one dish to its ingredient list.
type IngredientItem struct {
	// Name is the dish name, the text before the first colon.
	Name string `json:"name" yaml:"name"`

	// Category is the ALL-CAPS heading in effect when the item was read.
	// Empty when no heading preceded it.
	Category string `json:"category" yaml:"category"`

	// Ingredients are the comma/semicolon-split tokens of the blob.
	Ingredients []string `json:"ingredients" yaml:"ingredients"`

	// IngredientsRaw is the unsplit blob, wrapped source lines rejoined.
	IngredientsRaw string `json:"ingredients_raw" yaml:"ingredients_raw"`
}

// IngredientList is the parsed ingredients PDF, the top-level payload of
// ingredients.json.
type IngredientList struct {
	Items []IngredientItem `json:"items" yaml:"items"`

	// Source is the PDF URL the list was retrieved from.
	Source string `json:"source" yaml:"source"`
}

// AllergenSheet is the allergen PDF as a flat line sequence, the top-level
// payload of allergens.json. The source format is not stable enough yet to
// parse structurally.
type AllergenSheet struct {
	Lines []string `json:"lines" yaml:"lines"`

	// Source is the PDF URL the sheet was retrieved from.
	Source string `json:"source" yaml:"source"`
}
