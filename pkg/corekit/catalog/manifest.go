package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for manifest validation.
var (
	// ErrMissingProductID indicates a manifest entry with an empty id.
	ErrMissingProductID = errors.New("manifest entry missing product id")

	// ErrDuplicateProduct indicates the same identifier appears in more
	// than one manifest entry.
	ErrDuplicateProduct = errors.New("duplicate product in manifest")

	// ErrSelfAlias indicates a product lists its own identifier as an alias.
	ErrSelfAlias = errors.New("product aliases its own identifier")
)

// Product is one manifest entry, referring to a product registered in
// the target factory.
type Product struct {
	// ID is the registered identifier the entry refers to.
	ID string `yaml:"id" json:"id"`

	// Enabled keeps the product registered. Defaults to true; a
	// disabled product is unregistered when the manifest is applied.
	Enabled *bool `yaml:"enabled,omitempty" json:"enabled,omitempty"`

	// Aliases are additional identifiers registered with the product's
	// production function.
	Aliases []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// IsEnabled reports whether the entry keeps its product registered.
// An absent enabled field counts as true.
func (p Product) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}

// Manifest declares which products a factory should expose.
type Manifest struct {
	Products []Product `yaml:"products" json:"products"`
}

// Validate checks the manifest's internal consistency. It does not
// consult any factory; unknown identifiers are a Report concern, not a
// validation error.
func (m Manifest) Validate() error {
	seen := make(map[string]struct{}, len(m.Products))
	for _, p := range m.Products {
		if p.ID == "" {
			return ErrMissingProductID
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateProduct, p.ID)
		}
		seen[p.ID] = struct{}{}
		for _, alias := range p.Aliases {
			if alias == p.ID {
				return fmt.Errorf("%w: %q", ErrSelfAlias, p.ID)
			}
		}
	}
	return nil
}

// FromFile loads a manifest from a file, auto-detecting format by
// extension. Supported extensions: .yaml, .yml, .json
func FromFile(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Manifest{}, fmt.Errorf("unsupported manifest file extension: %s", ext)
	}
}

// FromYAML parses YAML data into a validated Manifest.
func FromYAML(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// FromJSON parses JSON data into a validated Manifest.
func FromJSON(data []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse json: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}
