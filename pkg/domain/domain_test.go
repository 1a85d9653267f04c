package domain_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/pipework/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAction_Defaults(t *testing.T) {
	action := domain.NewAction("ping")

	assert.Equal(t, "ping", action.Name)
	assert.NotNil(t, action.Payload)
	assert.Empty(t, action.Payload)
	assert.Empty(t, action.Actor)
}

func TestBuildAction_Options(t *testing.T) {
	action := domain.BuildAction("mine",
		domain.WithActor("goblin_42"),
		domain.WithPayload(map[string]any{"x": 10, "tool": "pickaxe"}),
	)

	assert.Equal(t, "mine", action.Name)
	assert.Equal(t, "goblin_42", action.Actor)
	assert.Equal(t, 10, action.Payload["x"])
	assert.Equal(t, "pickaxe", action.Payload["tool"])
}

func TestBuildAction_EmptyNameIsValid(t *testing.T) {
	action := domain.NewAction("")
	assert.Equal(t, "", action.Name)
	assert.NotNil(t, action.Payload)
}

func TestNewOutcome_Defaults(t *testing.T) {
	before := time.Now().UTC()
	outcome := domain.NewOutcome("success")
	after := time.Now().UTC()

	assert.Equal(t, "success", outcome.Status)
	assert.NotNil(t, outcome.Details)
	assert.Empty(t, outcome.Notes)
	assert.False(t, outcome.Timestamp.Before(before))
	assert.False(t, outcome.Timestamp.After(after))
	assert.Equal(t, time.UTC, outcome.Timestamp.Location())
}

func TestBuildOutcome_Options(t *testing.T) {
	outcome := domain.BuildOutcome("partial",
		domain.WithDetails(map[string]any{"ore_mined": 5}),
		domain.WithNotes("Mining interrupted by cave-in"),
	)

	assert.Equal(t, "partial", outcome.Status)
	assert.Equal(t, 5, outcome.Details["ore_mined"])
	assert.Equal(t, "Mining interrupted by cave-in", outcome.Notes)
}

func TestNewLedgerEntry(t *testing.T) {
	action := domain.BuildAction("test", domain.WithActor("actor_1"))
	outcome := domain.BuildOutcome("success", domain.WithDetails(map[string]any{"result": 42}))

	before := time.Now().UTC()
	entry := domain.NewLedgerEntry(action, outcome)
	after := time.Now().UTC()

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, action, entry.Action)
	assert.Equal(t, outcome, entry.Outcome)
	assert.False(t, entry.RecordedAt.Before(before))
	assert.False(t, entry.RecordedAt.After(after))
}

func TestNewLedgerEntry_UniqueIDs(t *testing.T) {
	a := domain.NewLedgerEntry(domain.NewAction("a"), domain.NewOutcome("x"))
	b := domain.NewLedgerEntry(domain.NewAction("b"), domain.NewOutcome("y"))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestDecodePayload(t *testing.T) {
	type transfer struct {
		Amount int    `mapstructure:"amount"`
		To     string `mapstructure:"to"`
	}

	action := domain.BuildAction("transfer", domain.WithPayload(map[string]any{
		"amount": 100,
		"to":     "vault",
	}))

	var got transfer
	require.NoError(t, domain.DecodePayload(action, &got))
	assert.Equal(t, 100, got.Amount)
	assert.Equal(t, "vault", got.To)
}

func TestDecodePayload_WeakTyping(t *testing.T) {
	type args struct {
		Quantity int `mapstructure:"quantity"`
	}

	// YAML and JSON sources often carry numbers as other kinds.
	action := domain.BuildAction("craft", domain.WithPayload(map[string]any{
		"quantity": "7",
	}))

	var got args
	require.NoError(t, domain.DecodePayload(action, &got))
	assert.Equal(t, 7, got.Quantity)
}

func TestDecodePayload_TypeMismatch(t *testing.T) {
	type args struct {
		Quantity int `mapstructure:"quantity"`
	}

	action := domain.BuildAction("craft", domain.WithPayload(map[string]any{
		"quantity": map[string]any{"nested": true},
	}))

	var got args
	err := domain.DecodePayload(action, &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "craft")
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string

	a := domain.LifecycleHooks{
		OnActionReceived: func(_ context.Context, _ domain.Action) { calls = append(calls, "a") },
	}
	b := domain.LifecycleHooks{
		OnActionReceived: func(_ context.Context, _ domain.Action) { calls = append(calls, "b") },
	}

	merged := a.Merge(b)
	merged.OnActionReceived(context.Background(), domain.NewAction("x"))

	assert.Equal(t, []string{"a", "b"}, calls)
	assert.Nil(t, merged.OnOutcomeRecorded)
	assert.Nil(t, merged.OnPipeFault)
}
