package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/reparo-labs/partassist/internal/core/domain"
	"github.com/reparo-labs/partassist/internal/core/ports/driving"
	"github.com/reparo-labs/partassist/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.AskService = (*Pipeline)(nil)

// Pipeline sequences classification, routing, and synthesis for one
// request. It owns the top-level result contract:
//
//   - classification transport failure  → hard error (operators see why)
//   - classification parse failure      → unroutable bundle, continue
//   - routing                           → never fails
//   - synthesis failure                 → fixed apology, nil error
//
// No state survives a request; concurrent requests share only the
// read-only indexes behind the router.
type Pipeline struct {
	classifier  *Classifier
	router      *Router
	synthesizer *Synthesizer
}

// NewPipeline creates the per-request orchestrator.
func NewPipeline(classifier *Classifier, router *Router, synthesizer *Synthesizer) *Pipeline {
	return &Pipeline{
		classifier:  classifier,
		router:      router,
		synthesizer: synthesizer,
	}
}

// Ask answers one natural-language parts question.
func (p *Pipeline) Ask(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}

	reqID := uuid.NewString()[:8]
	logger.Section("Ask " + reqID)
	logger.Debug("[%s] Query: %q", reqID, query)

	classification, err := p.classifier.Classify(ctx, query)
	var bundle domain.ContextBundle
	switch {
	case err == nil:
		bundle = p.router.Route(ctx, classification, query)
	case errors.Is(err, domain.ErrClassificationParse):
		// Malformed classifier output degrades to the fixed
		// could-not-understand bundle; the synthesizer phrases the
		// request to rephrase.
		logger.Warn("[%s] Degrading to unroutable bundle: %v", reqID, err)
		classification = domain.Classification{Type: domain.IntentUnknown}
		bundle = domain.UnroutableBundle()
	default:
		// Classification could not even be attempted. This is the one
		// hard failure path; the transport error carries the
		// diagnostic detail operators need.
		logger.Error("[%s] Classification unreachable: %v", reqID, err)
		return "", fmt.Errorf("classify query: %w", err)
	}

	answer, err := p.synthesizer.Synthesize(ctx, query, classification, bundle)
	if err != nil {
		// Best-effort UX: the request still succeeds at the transport
		// level, the content signals the failure.
		logger.Error("[%s] Synthesis failed: %v", reqID, err)
		return domain.SynthesisApology, nil
	}

	logger.Info("[%s] Answered via %s bundle", reqID, bundle.Kind)
	return answer, nil
}
