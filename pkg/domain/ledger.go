package domain

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEntry is the authoritative record of one processed action.
//
// Entries are created exactly once per Process call, appended to the
// ledger, and never modified or removed.
type LedgerEntry struct {
	// ID is a unique identifier for this entry.
	ID string `json:"id" yaml:"id" mapstructure:"id"`

	// Action is the intent as submitted. Shared, not deep-copied.
	Action Action `json:"action" yaml:"action" mapstructure:"action"`

	// Outcome is what happened to the action.
	Outcome Outcome `json:"outcome" yaml:"outcome" mapstructure:"outcome"`

	// RecordedAt is the UTC capture time when the entry was appended.
	// It may differ from Outcome.Timestamp by the cost of intervening work.
	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at" mapstructure:"recorded_at"`
}

// NewLedgerEntry binds an action to its outcome, stamping identity and
// recording time.
func NewLedgerEntry(action Action, outcome Outcome) LedgerEntry {
	return LedgerEntry{
		ID:         uuid.NewString(),
		Action:     action,
		Outcome:    outcome,
		RecordedAt: time.Now().UTC(),
	}
}
