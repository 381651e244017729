package services

import (
	"context"

	"github.com/reparo-labs/partassist/internal/core/domain"
	"github.com/reparo-labs/partassist/internal/core/ports/driven"
)

// mockLLM is a scripted test double for driven.LLMService. Each call
// consumes the next response (or error) in order; the last entry
// repeats once the script runs out.
type mockLLM struct {
	responses []string
	errs      []error
	calls     int
	messages  [][]driven.ChatMessage
}

func (m *mockLLM) Chat(_ context.Context, messages []driven.ChatMessage, _ driven.ChatOptions) (string, error) {
	i := m.calls
	m.calls++
	m.messages = append(m.messages, messages)

	if i < len(m.errs) && m.errs[i] != nil {
		return "", m.errs[i]
	}
	if len(m.responses) == 0 {
		return "", nil
	}
	if i >= len(m.responses) {
		i = len(m.responses) - 1
	}
	return m.responses[i], nil
}

func (m *mockLLM) ModelName() string            { return "mock-model" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }

// mockVector returns a fixed ranked document list.
type mockVector struct {
	docs    []string
	err     error
	lastK   int
	lastQ   string
	queries int
}

func (m *mockVector) Query(_ context.Context, text string, k int) ([]string, error) {
	m.queries++
	m.lastQ = text
	m.lastK = k
	if m.err != nil {
		return nil, m.err
	}
	return m.docs, nil
}

func (m *mockVector) Ping(_ context.Context) error { return nil }
func (m *mockVector) Close() error                 { return nil }

// mockCatalog is a map-backed catalog with normalized keys.
type mockCatalog map[string]domain.PartRecord

func (m mockCatalog) Lookup(partID string) (domain.PartRecord, bool) {
	rec, ok := m[domain.NormalizeID(partID)]
	return rec, ok
}

func (m mockCatalog) Len() int { return len(m) }

// mockCompat is a model -> part set compatibility table.
type mockCompat map[string]map[string]bool

func (m mockCompat) Compatible(modelID, partID string) bool {
	return m[domain.NormalizeID(modelID)][domain.NormalizeID(partID)]
}

func (m mockCompat) Models() int { return len(m) }

// mockPromptStore serves prompts from a map.
type mockPromptStore struct {
	prompts map[string]string
	err     error
}

func (m *mockPromptStore) Load(name string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.prompts[name], nil
}

func (m *mockPromptStore) Reload() {}
