// Package memory holds the immutable in-memory catalog and
// compatibility indexes. The file and sqlite loaders both build these;
// tests construct them directly from maps.
package memory

import (
	"github.com/reparo-labs/partassist/internal/core/domain"
	"github.com/reparo-labs/partassist/internal/core/ports/driven"
)

// Ensure the indexes implement the ports.
var (
	_ driven.CatalogIndex       = (*CatalogIndex)(nil)
	_ driven.CompatibilityIndex = (*CompatibilityIndex)(nil)
)

// CatalogIndex is a read-only part identifier → record table. It is
// populated once at construction and never mutated, so concurrent
// lookups need no locking.
type CatalogIndex struct {
	parts map[string]domain.PartRecord
}

// NewCatalogIndex builds the index from records. Keys are normalised
// at build time; a later record with the same normalised identifier
// replaces an earlier one.
func NewCatalogIndex(records []domain.PartRecord) *CatalogIndex {
	parts := make(map[string]domain.PartRecord, len(records))
	for _, rec := range records {
		key := domain.NormalizeID(rec.PartID)
		if key == "" {
			continue
		}
		parts[key] = rec
	}
	return &CatalogIndex{parts: parts}
}

// Lookup returns the record for a part identifier, normalising first.
func (i *CatalogIndex) Lookup(partID string) (domain.PartRecord, bool) {
	rec, ok := i.parts[domain.NormalizeID(partID)]
	return rec, ok
}

// Len returns the number of catalog entries.
func (i *CatalogIndex) Len() int {
	return len(i.parts)
}

// CompatibilityIndex is a read-only model → compatible part set table.
type CompatibilityIndex struct {
	models map[string]map[string]struct{}
}

// NewCompatibilityIndex builds the index from a model → part-ids
// mapping, normalising every identifier.
func NewCompatibilityIndex(modelParts map[string][]string) *CompatibilityIndex {
	models := make(map[string]map[string]struct{}, len(modelParts))
	for model, parts := range modelParts {
		key := domain.NormalizeID(model)
		if key == "" {
			continue
		}
		set := make(map[string]struct{}, len(parts))
		for _, p := range parts {
			if pid := domain.NormalizeID(p); pid != "" {
				set[pid] = struct{}{}
			}
		}
		models[key] = set
	}
	return &CompatibilityIndex{models: models}
}

// Compatible reports set membership after normalising both
// identifiers. An unknown model is simply false.
func (i *CompatibilityIndex) Compatible(modelID, partID string) bool {
	set, ok := i.models[domain.NormalizeID(modelID)]
	if !ok {
		return false
	}
	_, ok = set[domain.NormalizeID(partID)]
	return ok
}

// Models returns the number of models in the table.
func (i *CompatibilityIndex) Models() int {
	return len(i.models)
}
