// Package driving defines the interfaces through which external actors
// drive the core (primary/inbound ports).
package driving

import "context"

// AskService answers natural-language questions about appliance
// replacement parts. It is the single inbound operation of the system;
// both the HTTP front door and the CLI drive it.
type AskService interface {
	// Ask classifies the query, retrieves supporting evidence, and
	// synthesises a final answer. Recoverable conditions (unparseable
	// classification, missing evidence, failed synthesis) still return
	// a user-facing string with a nil error; a non-nil error means the
	// request could not be served at all and carries diagnostic detail
	// for operators.
	Ask(ctx context.Context, query string) (string, error)
}
