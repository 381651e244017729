package domain

// Fixed user-meaningful messages carried in context bundles. The
// synthesizer owns all final phrasing; these are the evidence it
// phrases around.
const (
	// RefusalMessage is returned for out-of-scope queries.
	RefusalMessage = "Sorry, I can only assist with refrigerator and dishwasher part queries."

	// UnroutableMessage is returned when the classification cannot be
	// routed (missing required identifiers, unrecognised type, or a
	// malformed classifier response).
	UnroutableMessage = "Hmm, I couldn't confidently understand that query. Can you rephrase it?"

	// PartNotFoundMessage marks an exact lookup that missed the catalog.
	PartNotFoundMessage = "Part not found."

	// SynthesisApology is the best-effort reply when answer generation
	// itself fails.
	SynthesisApology = "Sorry — I couldn't generate a response for that request. Please try again."
)

// BundleKind discriminates the retrieval outcome carried by a
// ContextBundle.
type BundleKind string

const (
	// BundleExact carries a single catalog lookup result.
	BundleExact BundleKind = "exact"

	// BundleCompatibility carries a part/model compatibility verdict.
	BundleCompatibility BundleKind = "compatibility"

	// BundleSemantic carries ranked nearest-neighbour documents.
	BundleSemantic BundleKind = "semantic"

	// BundleRefusal is the fixed out-of-scope refusal.
	BundleRefusal BundleKind = "refusal"

	// BundleUnroutable is the fixed could-not-understand outcome.
	BundleUnroutable BundleKind = "unroutable"
)

// ExactContext is the outcome of a catalog lookup. A miss is a valid
// result, not an absence: Found is false and Message explains it.
type ExactContext struct {
	// Found reports whether the part exists in the catalog.
	Found bool `json:"found"`

	// Part is the catalog record when Found is true.
	Part *PartRecord `json:"part,omitempty"`

	// Message is the not-found marker when Found is false.
	Message string `json:"message,omitempty"`
}

// CompatibilityContext is the outcome of a compatibility membership
// test. An unknown model yields Compatible=false, never an error.
type CompatibilityContext struct {
	// PartID is the part identifier as classified.
	PartID string `json:"part_id"`

	// ModelID is the appliance model identifier as classified.
	ModelID string `json:"model_id"`

	// Compatible is the membership verdict.
	Compatible bool `json:"compatible"`
}

// SemanticContext is the outcome of a nearest-neighbour search.
// Documents preserve the search service's ranked order; position
// carries relevance signal for the synthesizer.
type SemanticContext struct {
	// SearchText is the string actually sent to the vector index.
	SearchText string `json:"search_text"`

	// Documents are the parsed results, best match first. Empty is a
	// valid outcome.
	Documents []SemanticDocument `json:"documents"`

	// Note records a degraded search (e.g. the vector index was
	// unreachable) so the synthesizer can say evidence is missing.
	Note string `json:"note,omitempty"`
}

// ContextBundle is the uniform evidence payload handed to answer
// synthesis, polymorphic over the retrieval outcome. Exactly one of
// the pointer fields is set, matching Kind. Bundles live for a single
// request.
type ContextBundle struct {
	Kind          BundleKind            `json:"kind"`
	Exact         *ExactContext         `json:"exact,omitempty"`
	Compatibility *CompatibilityContext `json:"compatibility,omitempty"`
	Semantic      *SemanticContext      `json:"semantic,omitempty"`

	// Message is the fixed text for refusal and unroutable bundles.
	Message string `json:"message,omitempty"`
}

// RefusalBundle builds the fixed out-of-scope bundle.
func RefusalBundle() ContextBundle {
	return ContextBundle{Kind: BundleRefusal, Message: RefusalMessage}
}

// UnroutableBundle builds the fixed could-not-understand bundle.
func UnroutableBundle() ContextBundle {
	return ContextBundle{Kind: BundleUnroutable, Message: UnroutableMessage}
}
