package domain

// Intent is the retrieval strategy selected for a query. It is the
// sole dispatch key for routing; every other classification field is
// advisory.
type Intent string

const (
	// IntentExact is a lookup of a specific part number.
	IntentExact Intent = "exact"

	// IntentCompatibility asks whether a part fits an appliance model.
	IntentCompatibility Intent = "compatibility"

	// IntentSemantic is a symptom, brand, or product inquiry answered
	// by nearest-neighbour search.
	IntentSemantic Intent = "semantic"

	// IntentOutOfScope is anything outside refrigerator and dishwasher
	// parts.
	IntentOutOfScope Intent = "out_of_scope"

	// IntentUnknown marks a missing or unrecognised type value from the
	// classifier. It is a valid classification, not an error: routing
	// maps it to the unroutable bundle.
	IntentUnknown Intent = ""
)

// ParseIntent maps a raw classifier type value onto the closed intent
// set. Unrecognised values collapse to IntentUnknown so the router
// stays total over arbitrary classifier output.
func ParseIntent(s string) Intent {
	switch Intent(s) {
	case IntentExact, IntentCompatibility, IntentSemantic, IntentOutOfScope:
		return Intent(s)
	default:
		return IntentUnknown
	}
}

// Classification is the structured intent derived from a free-text
// query by the language model. All fields other than Type may be
// absent even when logically required by the type; the router treats
// that as a routing outcome, not a parse error.
type Classification struct {
	// Type selects the retrieval strategy.
	Type Intent `json:"type"`

	// PartID is the part number mentioned in the query, if any.
	PartID string `json:"part_id,omitempty"`

	// ModelID is the appliance model mentioned in the query, if any.
	ModelID string `json:"model_id,omitempty"`

	// Brand is the brand mentioned in the query, if any.
	Brand string `json:"brand,omitempty"`

	// Symptoms are the symptom phrases extracted from the query.
	Symptoms []string `json:"symptoms,omitempty"`

	// ProductTypes are the appliance types extracted from the query.
	ProductTypes []string `json:"product_types,omitempty"`
}

// HasPartID reports whether a non-blank part identifier is present.
func (c Classification) HasPartID() bool {
	return NormalizeID(c.PartID) != ""
}

// HasModelID reports whether a non-blank model identifier is present.
func (c Classification) HasModelID() bool {
	return NormalizeID(c.ModelID) != ""
}
