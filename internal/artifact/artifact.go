// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package artifact writes the JSON files the front-end consumes.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact filenames, one per document type plus the run metadata.
const (
	FileMenuChanges = "menu_changes.json"
	FileMonthlyMenu = "monthly_menu.json"
	FileIngredients = "ingredients.json"
	FileAllergens   = "allergens.json"
	FileMetadata    = "metadata.json"
)

// Writer emits JSON artifacts into a single output directory.
type Writer struct {
	dir string
}

// NewWriter returns a Writer rooted at dir. The directory is created on the
// first write.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// WriteJSON marshals v into dir/name: UTF-8, two-space indentation, HTML
// escaping off so non-ASCII and URL characters stay verbatim. The file is
// written to a temp file and renamed, so a failed run never leaves a
// partial artifact behind.
func (w *Writer) WriteJSON(name string, v any) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", w.dir, err)
	}

	tmp, err := os.CreateTemp(w.dir, ".artifact-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	encErr := enc.Encode(v)
	closeErr := tmp.Close()
	if encErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("encoding %s: %w", name, encErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	dest := filepath.Join(w.dir, name)
	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file to %s: %w", dest, err)
	}
	return nil
}
