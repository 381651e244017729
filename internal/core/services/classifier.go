package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/reparo-labs/partassist/internal/core/domain"
	"github.com/reparo-labs/partassist/internal/core/ports/driven"
	"github.com/reparo-labs/partassist/internal/logger"
)

// defaultClassifySystemPrompt keeps the model focused before the
// instruction proper.
const defaultClassifySystemPrompt = "You are a helpful, focused assistant. Only answer about appliance parts."

// defaultClassifyPrompt is the fallback classification instruction when
// no PromptStore is configured.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
const defaultClassifyPrompt = `You are a helpful and knowledgeable appliance repair assistant who specializes in refrigerator and dishwasher parts.

Your job is to analyze user queries and classify them into one of three categories:
1. "exact" — when the user asks specifically about how to install a part or get info about a part number.
2. "compatibility" — when the user asks if a specific part is compatible with their appliance model.
3. "semantic" — if it's a general symptom-based or brand/product inquiry.

Strictly return a JSON with:
"type": one of ["exact", "compatibility", "semantic", "out_of_scope"],
"part_id": if mentioned (e.g., PS11752778),
"model_id": if mentioned (e.g., WDT780SAEM1),
"brand": if any (e.g., Whirlpool),
"symptoms": if any (e.g., ice not working, leaking water),
"product_types": if any (e.g., refrigerator, dishwasher)

Only answer about refrigerator and dishwasher part questions. If the query is about something else, mark it as "out_of_scope".
Now process this query: %s`

// Classifier turns a free-text query into a structured Classification
// by calling the language model with a fixed instruction and parsing
// the JSON it returns.
type Classifier struct {
	llm         driven.LLMService
	promptStore driven.PromptStore

	// retryTransient enables one transparent retry when the transport
	// call itself fails. Off by default to keep tests deterministic.
	retryTransient bool
}

// NewClassifier creates a classifier. llm is required; promptStore may
// be nil, in which case embedded default prompts are used.
func NewClassifier(llm driven.LLMService, promptStore driven.PromptStore, retryTransient bool) *Classifier {
	return &Classifier{
		llm:            llm,
		promptStore:    promptStore,
		retryTransient: retryTransient,
	}
}

// classificationWire is the expected JSON shape of the model response.
// The provider is not schema-constrained, so list fields tolerate both
// a JSON array and a bare string.
type classificationWire struct {
	Type         string     `json:"type"`
	PartID       string     `json:"part_id"`
	ModelID      string     `json:"model_id"`
	Brand        string     `json:"brand"`
	Symptoms     stringList `json:"symptoms"`
	ProductTypes stringList `json:"product_types"`
}

// stringList accepts either ["a","b"] or "a" on the wire.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		one = strings.TrimSpace(one)
		if one == "" {
			*l = nil
		} else {
			*l = []string{one}
		}
		return nil
	}
	// Anything else (number, object) is advisory data we can drop
	// without failing the whole classification.
	*l = nil
	return nil
}

// Classify sends the query to the language model and parses the
// response into a Classification.
//
// A response that cannot be parsed wraps domain.ErrClassificationParse
// so the pipeline can degrade instead of failing the request. A
// transport failure is returned as-is (after an optional single retry)
// and fails the request hard.
func (c *Classifier) Classify(ctx context.Context, query string) (domain.Classification, error) {
	prompt := c.loadPrompt(driven.PromptClassify, defaultClassifyPrompt)
	messages := []driven.ChatMessage{
		{Role: "system", Content: defaultClassifySystemPrompt},
		{Role: "user", Content: fmt.Sprintf(prompt, query)},
	}
	opts := driven.ChatOptions{MaxTokens: 300}

	raw, err := c.llm.Chat(ctx, messages, opts)
	if err != nil && c.retryTransient && ctx.Err() == nil {
		logger.Warn("Classification call failed, retrying once: %v", err)
		raw, err = c.llm.Chat(ctx, messages, opts)
	}
	if err != nil {
		return domain.Classification{}, fmt.Errorf("classification call: %w", err)
	}

	wire, err := parseClassification(raw)
	if err != nil {
		logger.Warn("Classification parse failed: %v", err)
		return domain.Classification{}, err
	}

	result := domain.Classification{
		Type:         domain.ParseIntent(strings.TrimSpace(wire.Type)),
		PartID:       strings.TrimSpace(wire.PartID),
		ModelID:      strings.TrimSpace(wire.ModelID),
		Brand:        strings.TrimSpace(wire.Brand),
		Symptoms:     wire.Symptoms,
		ProductTypes: wire.ProductTypes,
	}
	logger.Debug("Classification: type=%q part=%q model=%q", result.Type, result.PartID, result.ModelID)
	return result, nil
}

// parseClassification strips surrounding code fences and unmarshals
// the remaining JSON object.
func parseClassification(raw string) (classificationWire, error) {
	cleaned := stripCodeFences(raw)

	var wire classificationWire
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		return classificationWire{}, fmt.Errorf("%w: %v", domain.ErrClassificationParse, err)
	}
	return wire, nil
}

// stripCodeFences removes a leading ```json (or bare ```) fence line
// and a trailing ``` fence. Models frequently wrap JSON this way even
// when told not to.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		} else {
			s = strings.TrimPrefix(s, "```json")
			s = strings.TrimPrefix(s, "```")
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func (c *Classifier) loadPrompt(name, fallback string) string {
	if c.promptStore == nil {
		return fallback
	}
	prompt, err := c.promptStore.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}
