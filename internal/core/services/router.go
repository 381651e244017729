package services

import (
	"context"
	"strings"

	"github.com/reparo-labs/partassist/internal/core/domain"
	"github.com/reparo-labs/partassist/internal/core/ports/driven"
	"github.com/reparo-labs/partassist/internal/logger"
)

// DefaultTopK is the semantic search fan-out when none is configured.
const DefaultTopK = 5

// Router dispatches a classification to exactly one retrieval strategy
// and assembles the resulting context bundle.
//
// Route is a total function over every classification shape, including
// unrecognised types and missing identifiers: routing fails open to a
// degraded bundle, never to an error. The synthesizer owns phrasing
// the refusal; the router only selects evidence.
type Router struct {
	catalog driven.CatalogIndex
	compat  driven.CompatibilityIndex
	vector  driven.VectorSearch // optional; nil degrades semantic retrieval
	parser  *DocumentParser
	topK    int
}

// NewRouter creates a router. vector may be nil; topK <= 0 selects
// DefaultTopK.
func NewRouter(
	catalog driven.CatalogIndex,
	compat driven.CompatibilityIndex,
	vector driven.VectorSearch,
	parser *DocumentParser,
	topK int,
) *Router {
	if parser == nil {
		parser = NewDocumentParser()
	}
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Router{
		catalog: catalog,
		compat:  compat,
		vector:  vector,
		parser:  parser,
		topK:    topK,
	}
}

// Route selects and runs one retrieval strategy for the classification.
// originalQuery is the user's raw text, used as the fallback search
// string when the classification carries no advisory fields.
func (r *Router) Route(ctx context.Context, c domain.Classification, originalQuery string) domain.ContextBundle {
	logger.Section("Retrieval Routing")
	logger.Debug("Routing type=%q", c.Type)

	switch c.Type {
	case domain.IntentOutOfScope:
		return domain.RefusalBundle()

	case domain.IntentExact:
		if !c.HasPartID() {
			logger.Debug("Exact intent without part_id, unroutable")
			return domain.UnroutableBundle()
		}
		return r.exactLookup(c.PartID)

	case domain.IntentCompatibility:
		if !c.HasPartID() || !c.HasModelID() {
			logger.Debug("Compatibility intent missing identifiers, unroutable")
			return domain.UnroutableBundle()
		}
		return r.compatibilityCheck(c.ModelID, c.PartID)

	case domain.IntentSemantic:
		return r.semanticSearch(ctx, c, originalQuery)

	default:
		return domain.UnroutableBundle()
	}
}

// exactLookup resolves a part identifier against the catalog. A miss
// produces a structured not-found marker rather than falling back to
// semantic search; saying "not found" explicitly is the correct answer.
func (r *Router) exactLookup(partID string) domain.ContextBundle {
	record, ok := r.catalog.Lookup(partID)
	if !ok {
		logger.Info("Catalog miss for part %q", partID)
		return domain.ContextBundle{
			Kind:  domain.BundleExact,
			Exact: &domain.ExactContext{Found: false, Message: domain.PartNotFoundMessage},
		}
	}
	logger.Debug("Catalog hit: %s (%s)", record.PartID, record.Title)
	return domain.ContextBundle{
		Kind:  domain.BundleExact,
		Exact: &domain.ExactContext{Found: true, Part: &record},
	}
}

// compatibilityCheck runs the membership test. Identifiers are echoed
// back in the bundle so the synthesizer can phrase the verdict.
func (r *Router) compatibilityCheck(modelID, partID string) domain.ContextBundle {
	compatible := r.compat.Compatible(modelID, partID)
	logger.Debug("Compatibility %q/%q = %t", modelID, partID, compatible)
	return domain.ContextBundle{
		Kind: domain.BundleCompatibility,
		Compatibility: &domain.CompatibilityContext{
			PartID:     strings.TrimSpace(partID),
			ModelID:    strings.TrimSpace(modelID),
			Compatible: compatible,
		},
	}
}

// semanticSearch builds a search string from the advisory fields and
// runs the nearest-neighbour query. Failures degrade to an empty
// bundle with a note; the router stays total.
func (r *Router) semanticSearch(ctx context.Context, c domain.Classification, originalQuery string) domain.ContextBundle {
	searchText := buildSearchText(c)
	if searchText == "" {
		// Never send an empty string to the vector index; the raw
		// query still carries signal.
		searchText = strings.TrimSpace(originalQuery)
	}
	logger.Debug("Semantic search text: %q", searchText)

	semantic := &domain.SemanticContext{SearchText: searchText}
	bundle := domain.ContextBundle{Kind: domain.BundleSemantic, Semantic: semantic}

	if r.vector == nil {
		logger.Warn("Semantic search unavailable: no vector index configured")
		semantic.Note = "semantic search unavailable"
		return bundle
	}

	docs, err := r.vector.Query(ctx, searchText, r.topK)
	if err != nil {
		logger.Warn("Semantic search failed: %v", err)
		semantic.Note = "semantic search failed; no evidence retrieved"
		return bundle
	}

	// Parsed documents keep the service's ranked order; position is
	// relevance signal for the synthesizer.
	semantic.Documents = make([]domain.SemanticDocument, len(docs))
	for i, raw := range docs {
		semantic.Documents[i] = r.parser.Parse(raw)
	}

	stats := r.parser.Stats()
	logger.Debug("Semantic search: %d documents (parser: %d parsed, %d unlabeled, %d empty fields)",
		len(docs), stats.Documents, stats.Unlabeled, stats.EmptyFields)
	return bundle
}

// buildSearchText concatenates brand, product types, and symptoms with
// spaces, omitting empty fields.
func buildSearchText(c domain.Classification) string {
	parts := make([]string, 0, 2+len(c.ProductTypes)+len(c.Symptoms))
	if b := strings.TrimSpace(c.Brand); b != "" {
		parts = append(parts, b)
	}
	for _, pt := range c.ProductTypes {
		if pt = strings.TrimSpace(pt); pt != "" {
			parts = append(parts, pt)
		}
	}
	for _, s := range c.Symptoms {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
