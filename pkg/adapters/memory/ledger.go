package memory

import (
	"context"
	"sync"

	"github.com/aretw0/pipework/pkg/domain"
)

// Ledger implements ports.Ledger in memory.
// Safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	entries []domain.LedgerEntry
}

// NewLedger creates a new empty in-memory ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append records the entry at the end of the ledger.
// It never fails; the error return exists to satisfy ports.Ledger.
func (l *Ledger) Append(ctx context.Context, entry domain.LedgerEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return nil
}

// Snapshot returns a copy of the entries recorded so far, in append order.
// Later appends never alter a previously returned snapshot. Entries are
// immutable, so sharing them across snapshots is safe.
func (l *Ledger) Snapshot(ctx context.Context) ([]domain.LedgerEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	snapshot := make([]domain.LedgerEntry, len(l.entries))
	copy(snapshot, l.entries)
	return snapshot, nil
}

// Len returns the number of recorded entries.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
