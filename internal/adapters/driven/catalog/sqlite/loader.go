// Package sqlite loads the catalog tables from the SQLite snapshot the
// ingestion pipeline emits. The whole snapshot is read once at process
// start into the in-memory indexes; the database handle is closed
// before the service accepts traffic.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/reparo-labs/partassist/internal/adapters/driven/catalog/memory"
	"github.com/reparo-labs/partassist/internal/core/domain"
)

// Load reads the parts and model_parts tables from the snapshot at
// path and builds both in-memory indexes.
func Load(path string) (*memory.CatalogIndex, *memory.CompatibilityIndex, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, nil, fmt.Errorf("opening catalog snapshot: %w", err)
	}
	defer db.Close()

	catalog, err := loadParts(db)
	if err != nil {
		return nil, nil, err
	}
	compat, err := loadModelParts(db)
	if err != nil {
		return nil, nil, err
	}
	return catalog, compat, nil
}

// loadParts reads every catalog record. List-valued columns are stored
// as JSON arrays, matching the ingestion pipeline's schema.
func loadParts(db *sql.DB) (*memory.CatalogIndex, error) {
	rows, err := db.Query(`
		SELECT part_id, title, brand, description,
		       symptoms, product_types,
		       installation_difficulty, installation_time,
		       video_url, url, price, availability
		FROM parts`)
	if err != nil {
		return nil, fmt.Errorf("querying parts: %w", err)
	}
	defer rows.Close()

	var records []domain.PartRecord
	for rows.Next() {
		var rec domain.PartRecord
		var symptoms, productTypes sql.NullString
		if err := rows.Scan(
			&rec.PartID, &rec.Title, &rec.Brand, &rec.Description,
			&symptoms, &productTypes,
			&rec.InstallationDifficulty, &rec.InstallationTime,
			&rec.VideoURL, &rec.URL, &rec.Price, &rec.Availability,
		); err != nil {
			return nil, fmt.Errorf("scanning part row: %w", err)
		}
		rec.Symptoms = decodeJSONList(symptoms)
		rec.ProductTypes = decodeJSONList(productTypes)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading parts: %w", err)
	}
	return memory.NewCatalogIndex(records), nil
}

// loadModelParts reads the model → part rows.
func loadModelParts(db *sql.DB) (*memory.CompatibilityIndex, error) {
	rows, err := db.Query(`SELECT model_id, part_id FROM model_parts`)
	if err != nil {
		return nil, fmt.Errorf("querying model_parts: %w", err)
	}
	defer rows.Close()

	modelParts := make(map[string][]string)
	for rows.Next() {
		var modelID, partID string
		if err := rows.Scan(&modelID, &partID); err != nil {
			return nil, fmt.Errorf("scanning model_parts row: %w", err)
		}
		modelParts[modelID] = append(modelParts[modelID], partID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading model_parts: %w", err)
	}
	return memory.NewCompatibilityIndex(modelParts), nil
}

// decodeJSONList parses a JSON array column, tolerating NULL and
// malformed content the same way the rest of the system tolerates
// ingestion noise: an empty slice, not an error.
func decodeJSONList(col sql.NullString) []string {
	if !col.Valid || col.String == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(col.String), &list); err != nil {
		return nil
	}
	return list
}
