// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/chombe87/vrtic/pkg/types"
)

// LoadOverrides reads a YAML sources file pinning PDF URLs per document:
//
//	menu_pdf: https://.../JELOVNIK-JANUAR-2026.pdf
//	ingredients_pdf: https://.../SASTAV-NAMIRNICA.pdf
//	allergens_pdf: https://.../ALERGENI.pdf
//
// Every key is optional; unset documents go through link resolution.
func LoadOverrides(path string) (types.SourceOverrides, error) {
	var overrides types.SourceOverrides

	data, err := os.ReadFile(path)
	if err != nil {
		return overrides, fmt.Errorf("reading sources file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return overrides, fmt.Errorf("parsing sources file %s: %w", path, err)
	}
	return overrides, nil
}
