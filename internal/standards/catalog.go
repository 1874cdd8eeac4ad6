// Package standards maps free-text biomarker names and units onto a canonical
// standards table and computes reference-range flags.
package standards

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/biomarkerlab/labreports/internal/entity"
	"github.com/biomarkerlab/labreports/internal/merge"
)

//go:embed data/standards.json
var defaultStandardsJSON []byte

// DefaultStandards returns the embedded seed catalog of common analytes.
func DefaultStandards() ([]entity.BiomarkerStandard, error) {
	var out []entity.BiomarkerStandard
	if err := json.Unmarshal(defaultStandardsJSON, &out); err != nil {
		return nil, fmt.Errorf("decode embedded standards: %w", err)
	}
	return out, nil
}

// Catalog is the in-memory lookup the matcher resolves against.
type Catalog struct {
	byCode  map[string]*entity.BiomarkerStandard
	byAlias map[string]*entity.BiomarkerStandard
}

// NewCatalog indexes standards by code and by normalized name/alias. Later
// entries never displace an earlier claim on the same alias.
func NewCatalog(standards []entity.BiomarkerStandard) *Catalog {
	c := &Catalog{
		byCode:  make(map[string]*entity.BiomarkerStandard, len(standards)),
		byAlias: make(map[string]*entity.BiomarkerStandard),
	}
	for i := range standards {
		std := &standards[i]
		code := strings.ToLower(strings.TrimSpace(std.Code))
		if code == "" {
			continue
		}
		if _, exists := c.byCode[code]; !exists {
			c.byCode[code] = std
		}
		names := append([]string{std.Name}, std.Aliases...)
		for _, n := range names {
			key := merge.NormalizeName(n)
			if key == "" {
				continue
			}
			if _, exists := c.byAlias[key]; !exists {
				c.byAlias[key] = std
			}
		}
	}
	return c
}

// ByCode resolves an explicit standard-code hint.
func (c *Catalog) ByCode(code string) (*entity.BiomarkerStandard, bool) {
	std, ok := c.byCode[strings.ToLower(strings.TrimSpace(code))]
	return std, ok
}

// ByName resolves a free-text biomarker name through normalized alias lookup.
func (c *Catalog) ByName(name string) (*entity.BiomarkerStandard, bool) {
	std, ok := c.byAlias[merge.NormalizeName(name)]
	return std, ok
}

// Len reports how many standards are indexed by code.
func (c *Catalog) Len() int {
	return len(c.byCode)
}
