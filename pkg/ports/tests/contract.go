package tests

import (
	"context"
	"testing"

	"github.com/aretw0/pipework/pkg/domain"
	"github.com/aretw0/pipework/pkg/ports"
)

// LedgerContractTest is a reusable test suite that verifies if an adapter
// complies with ports.Ledger. The ledger must be empty when passed in.
func LedgerContractTest(t *testing.T, ledger ports.Ledger) {
	t.Helper()
	ctx := context.Background()

	t.Run("Snapshot_Empty", func(t *testing.T) {
		entries, err := ledger.Snapshot(ctx)
		if err != nil {
			t.Fatalf("unexpected error on empty snapshot: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("expected empty ledger, got %d entries", len(entries))
		}
	})

	t.Run("Append_PreservesOrder", func(t *testing.T) {
		names := []string{"first", "second", "third"}
		for _, name := range names {
			entry := domain.NewLedgerEntry(domain.NewAction(name), domain.NewOutcome("success"))
			if err := ledger.Append(ctx, entry); err != nil {
				t.Fatalf("unexpected error appending %s: %v", name, err)
			}
		}

		entries, err := ledger.Snapshot(ctx)
		if err != nil {
			t.Fatalf("unexpected error on snapshot: %v", err)
		}
		if len(entries) != len(names) {
			t.Fatalf("expected %d entries, got %d", len(names), len(entries))
		}
		for i, name := range names {
			if entries[i].Action.Name != name {
				t.Errorf("entry %d: got action %q, want %q", i, entries[i].Action.Name, name)
			}
		}
	})

	t.Run("Snapshot_Independence", func(t *testing.T) {
		before, err := ledger.Snapshot(ctx)
		if err != nil {
			t.Fatalf("unexpected error on snapshot: %v", err)
		}

		entry := domain.NewLedgerEntry(domain.NewAction("later"), domain.NewOutcome("success"))
		if err := ledger.Append(ctx, entry); err != nil {
			t.Fatalf("unexpected error on append: %v", err)
		}

		after, err := ledger.Snapshot(ctx)
		if err != nil {
			t.Fatalf("unexpected error on snapshot: %v", err)
		}
		if len(after) != len(before)+1 {
			t.Errorf("expected snapshot to grow by 1, got %d -> %d", len(before), len(after))
		}
		for i := range before {
			if before[i].Action.Name == "later" {
				t.Error("earlier snapshot was retroactively altered")
			}
		}
	})
}
