package ports

import (
	"context"

	"github.com/aretw0/pipework/pkg/domain"
)

// Dispatcher defines how actions are run through the rule chain.
// This is the surface adapters (HTTP, CLI) program against.
type Dispatcher interface {
	// RegisterPipe appends a pipe to the end of the registry.
	// Registration order determines evaluation order.
	RegisterPipe(pipe domain.Pipe)

	// Process runs the action through the registered pipes and records
	// the result. It always yields a well-formed Outcome; the returned
	// error is non-nil only when the ledger append itself failed.
	Process(ctx context.Context, action domain.Action) (domain.Outcome, error)

	// Ledger returns a snapshot of the recorded history.
	Ledger(ctx context.Context) ([]domain.LedgerEntry, error)
}
