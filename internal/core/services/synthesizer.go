package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/reparo-labs/partassist/internal/core/domain"
	"github.com/reparo-labs/partassist/internal/core/ports/driven"
	"github.com/reparo-labs/partassist/internal/logger"
)

// defaultSynthesizeSystemPrompt is the fallback system instruction for
// answer generation when no PromptStore is configured.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
const defaultSynthesizeSystemPrompt = `You are a helpful, expert customer service agent for appliance parts — specifically refrigerators and dishwashers. Your role is to assist users with part installation, compatibility, or troubleshooting using only the context provided. Avoid guessing. If context is missing, politely say so — but if installation time or difficulty are missing, you may suggest a typical time range like 'usually under 30 minutes' and assume it's easy if not specified.

Answer must:
- Be clear, specific, and confident
- Stick to appliance part knowledge
- Include relevant installation difficulty and estimated time if possible
- Return the part's URL if available or else say 'not available'
- Return youtube video from context if available or else say 'not available'`

// Synthesizer turns a context bundle into the final user-facing answer
// by a second language model call. It owns no retrieval decisions; it
// receives the bundle verbatim and phrases whatever it says, including
// refusals.
type Synthesizer struct {
	llm         driven.LLMService
	promptStore driven.PromptStore
}

// NewSynthesizer creates a synthesizer. promptStore may be nil.
func NewSynthesizer(llm driven.LLMService, promptStore driven.PromptStore) *Synthesizer {
	return &Synthesizer{llm: llm, promptStore: promptStore}
}

// Synthesize produces the final answer text. Failure of the generation
// call wraps domain.ErrSynthesis; the caller substitutes the apology
// string rather than propagating a pipeline failure.
func (s *Synthesizer) Synthesize(
	ctx context.Context,
	query string,
	c domain.Classification,
	bundle domain.ContextBundle,
) (string, error) {
	systemPrompt := s.loadPrompt(driven.PromptSynthesizeSystem, defaultSynthesizeSystemPrompt)

	userMessage, err := buildSynthesisMessage(query, c, bundle)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSynthesis, err)
	}

	answer, err := s.llm.Chat(ctx, []driven.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userMessage},
	}, driven.ChatOptions{})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSynthesis, err)
	}

	logger.Debug("Synthesized %d chars for bundle kind %q", len(answer), bundle.Kind)
	return answer, nil
}

// buildSynthesisMessage serialises the classification and the bundle
// into the user turn. Indented JSON keeps the evidence legible to the
// model.
func buildSynthesisMessage(query string, c domain.Classification, bundle domain.ContextBundle) (string, error) {
	classJSON, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal classification: %w", err)
	}
	contextJSON, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal context bundle: %w", err)
	}

	return fmt.Sprintf(`Query: %s

Classification: %s

Context Retrieved:
%s

Generate a user-facing response based on this context and classification.`, query, classJSON, contextJSON), nil
}

func (s *Synthesizer) loadPrompt(name, fallback string) string {
	if s.promptStore == nil {
		return fallback
	}
	prompt, err := s.promptStore.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}
