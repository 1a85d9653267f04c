package domain

import "errors"

// ErrLedgerAppend wraps failures to record an entry. Recording is part of
// the Process contract, so append failures are the only faults allowed to
// escape the dispatcher.
var ErrLedgerAppend = errors.New("ledger append failed")
