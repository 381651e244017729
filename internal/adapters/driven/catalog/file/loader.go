// Package file loads the catalog tables from the JSON files the
// ingestion pipeline emits: a part identifier → record map and a model
// identifier → part identifiers map. Loading happens once at process
// start; the resulting indexes are immutable.
package file

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/reparo-labs/partassist/internal/adapters/driven/catalog/memory"
	"github.com/reparo-labs/partassist/internal/core/domain"
)

// LoadCatalog reads a part_id → PartRecord JSON map and builds the
// in-memory catalog index.
func LoadCatalog(path string) (*memory.CatalogIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog table: %w", err)
	}

	var table map[string]domain.PartRecord
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse catalog table %s: %w", path, err)
	}

	records := make([]domain.PartRecord, 0, len(table))
	for key, rec := range table {
		// The table key is authoritative when the record itself lacks
		// an identifier.
		if rec.PartID == "" {
			rec.PartID = key
		}
		records = append(records, rec)
	}
	return memory.NewCatalogIndex(records), nil
}

// LoadCompatibility reads a model → part identifiers JSON map and
// builds the in-memory compatibility index.
func LoadCompatibility(path string) (*memory.CompatibilityIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read compatibility table: %w", err)
	}

	var table map[string][]string
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse compatibility table %s: %w", path, err)
	}
	return memory.NewCompatibilityIndex(table), nil
}
