package driven

import "github.com/reparo-labs/partassist/internal/core/domain"

// CatalogIndex is the read-only part catalog: identifier → record.
// Implementations load the ingestion pipeline's output wholesale at
// process start and are immutable afterwards, so concurrent readers
// need no coordination.
type CatalogIndex interface {
	// Lookup returns the record for a part identifier. The identifier
	// is normalised (trimmed, lower-cased) before the lookup, so case
	// and surrounding whitespace never affect the result.
	Lookup(partID string) (domain.PartRecord, bool)

	// Len returns the number of catalog entries.
	Len() int
}

// CompatibilityIndex is the read-only model → compatible-parts table.
// Same provenance and lifecycle as CatalogIndex.
type CompatibilityIndex interface {
	// Compatible reports whether the part fits the model. Both
	// identifiers are normalised before the membership test. An
	// unknown model yields false, never an error.
	Compatible(modelID, partID string) bool

	// Models returns the number of models in the table.
	Models() int
}
