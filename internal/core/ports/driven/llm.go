// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import "context"

// LLMService provides chat-completion access to an external language
// model. The core calls it twice per request: once to classify the
// query and once to synthesise the final answer.
//
// Implementations may include:
//   - DeepSeek (the default provider)
//   - OpenAI or any /chat/completions-compatible API
type LLMService interface {
	// Chat sends a conversation and returns the assistant's reply
	// verbatim. The returned text is not post-processed; callers own
	// fence stripping and parsing.
	Chat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight
	// request. Used at startup before accepting traffic.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system", "user", or "assistant".
	Role string

	// Content is the message text.
	Content string
}

// ChatOptions configures chat behaviour.
type ChatOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}
