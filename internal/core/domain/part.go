package domain

import "strings"

// PartRecord is one catalog entry, produced by the offline ingestion
// pipeline and loaded wholesale at process start. Records are never
// mutated at runtime.
type PartRecord struct {
	// PartID is the canonical part identifier (e.g. PS11752778).
	// Lookups are case-insensitive; see NormalizeID.
	PartID string `json:"part_id"`

	// Title is the human-readable part name.
	Title string `json:"title"`

	// Brand is the manufacturer name.
	Brand string `json:"brand"`

	// Description is the full marketing/repair description.
	Description string `json:"description"`

	// Symptoms lists the appliance symptoms this part fixes, in
	// catalog order.
	Symptoms []string `json:"symptoms"`

	// ProductTypes lists the appliance types the part applies to.
	ProductTypes []string `json:"product_types"`

	// InstallationDifficulty is the catalog's difficulty rating.
	InstallationDifficulty string `json:"installation_difficulty"`

	// InstallationTime is the catalog's estimated installation time.
	InstallationTime string `json:"installation_time"`

	// VideoURL points to an installation video, if any.
	VideoURL string `json:"video_url"`

	// URL is the part's catalog page.
	URL string `json:"url"`

	// Price is the listed price as scraped (free-form string).
	Price string `json:"price"`

	// Availability is the stock status as scraped.
	Availability string `json:"availability"`
}

// NormalizeID canonicalises a part or model identifier for index keys
// and lookups: trimmed and lower-cased. Both sides of every lookup go
// through this, so " PS123 " and "ps123" hit the same entry.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
