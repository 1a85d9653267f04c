package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/pipework/pkg/adapters/memory"
	"github.com/aretw0/pipework/pkg/domain"
	contract "github.com/aretw0/pipework/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryLedger_Contract(t *testing.T) {
	contract.LedgerContractTest(t, memory.NewLedger())
}

func TestLedger_ConcurrentAppends(t *testing.T) {
	ledger := memory.NewLedger()
	ctx := context.Background()

	const writers = 16
	const perWriter = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				entry := domain.NewLedgerEntry(domain.NewAction("concurrent"), domain.NewOutcome("success"))
				assert.NoError(t, ledger.Append(ctx, entry))
			}
		}()
	}
	wg.Wait()

	// No lost updates, no duplicates.
	entries, err := ledger.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, writers*perWriter)

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		assert.False(t, seen[e.ID], "duplicate entry %s", e.ID)
		seen[e.ID] = true
	}
}

func TestLedger_Len(t *testing.T) {
	ledger := memory.NewLedger()
	ctx := context.Background()

	assert.Equal(t, 0, ledger.Len())
	require.NoError(t, ledger.Append(ctx, domain.NewLedgerEntry(domain.NewAction("a"), domain.NewOutcome("ok"))))
	assert.Equal(t, 1, ledger.Len())
}
