package ports

import (
	"context"

	"github.com/aretw0/pipework/pkg/domain"
)

// Ledger defines the interface for recording processed actions.
//
// Implementations must be append-only: entries are never modified or
// removed. Append must be serialized with respect to other appends, and
// Snapshot must return a copy-on-read view that later appends do not
// retroactively alter.
type Ledger interface {
	// Append records an entry. A failure here is the only fault allowed
	// to escape the dispatcher, since recording is part of its contract.
	Append(ctx context.Context, entry domain.LedgerEntry) error

	// Snapshot returns all entries recorded up to the call, in append
	// order. The returned slice is owned by the caller.
	Snapshot(ctx context.Context) ([]domain.LedgerEntry, error)
}
