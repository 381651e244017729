package driven

import "context"

// VectorSearch provides nearest-neighbour retrieval over the offline
// parts corpus. The index is built by the ingestion pipeline; the core
// only queries it.
type VectorSearch interface {
	// Query returns the raw stored documents most similar to the text,
	// best match first. The ranked order is part of the contract:
	// callers preserve it through to answer synthesis. Fewer than k
	// results (including zero) is a valid outcome.
	Query(ctx context.Context, text string, k int) ([]string, error)

	// Ping validates the index is reachable.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
