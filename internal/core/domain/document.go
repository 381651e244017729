package domain

// SemanticDocument is the structured form of one nearest-neighbour
// result. The raw stored document is a text blob with "Label: value"
// field markers emitted by the ingestion pipeline; parsing is
// lossy-tolerant, so any field the blob lacks is simply empty.
type SemanticDocument struct {
	// Title is the part name line.
	Title string `json:"title"`

	// Description is the only multi-line field, running until the next
	// recognised label or end of document.
	Description string `json:"description"`

	// Symptoms are pipe-separated in the source document.
	Symptoms []string `json:"symptoms"`

	// ProductTypes are comma-separated, with trailing periods stripped.
	ProductTypes []string `json:"product_types"`

	// PartID is the canonical part identifier, if present.
	PartID string `json:"part_id"`

	// Brand is the manufacturer name, if present.
	Brand string `json:"brand"`

	// Installation is the combined difficulty/time line, e.g.
	// "Easy in 15 - 30 mins".
	Installation string `json:"installation"`

	// RelatedParts are comma-separated companion part identifiers.
	RelatedParts []string `json:"related_parts"`

	// ReplacementParts are comma-separated superseded identifiers.
	ReplacementParts []string `json:"replacement_parts"`

	// URL is the part or video link carried in the document.
	URL string `json:"url"`
}
