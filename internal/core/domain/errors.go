package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrClassificationParse indicates the language model's
	// classification response could not be parsed into the expected
	// shape (non-JSON, truncated, or a fence that didn't strip
	// cleanly). Recoverable: the pipeline maps it to the unroutable
	// bundle rather than failing the request.
	ErrClassificationParse = errors.New("classification response not parseable")

	// ErrSynthesis indicates the answer-generation call failed
	// entirely. Recoverable: the pipeline substitutes the fixed
	// apology string.
	ErrSynthesis = errors.New("answer synthesis failed")

	// ErrLLMUnavailable indicates the language model service is not
	// configured or unreachable. When classification cannot even be
	// attempted, the request fails hard with this cause.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrVectorUnavailable indicates the nearest-neighbour index is
	// not configured. Semantic retrieval degrades to an empty bundle.
	ErrVectorUnavailable = errors.New("vector search unavailable")
)
