package pipes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/pipework"
	"github.com/aretw0/pipework/pkg/domain"
	"github.com/aretw0/pipework/pkg/pipes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamed_ClaimsOnlyMatchingActions(t *testing.T) {
	pipe := pipes.Named("mine", func(ctx context.Context, action domain.Action) (domain.Outcome, error) {
		return domain.BuildOutcome("success", domain.WithDetails(map[string]any{"ore": 3})), nil
	})

	ctx := context.Background()

	outcome, err := pipe(ctx, domain.NewAction("mine"))
	require.NoError(t, err)
	require.NotNil(t, outcome)
	assert.Equal(t, "success", outcome.Status)

	outcome, err = pipe(ctx, domain.NewAction("rest"))
	require.NoError(t, err)
	assert.Nil(t, outcome)
}

func TestNamed_HandlerErrorIsAFault(t *testing.T) {
	pipe := pipes.Named("mine", func(ctx context.Context, action domain.Action) (domain.Outcome, error) {
		return domain.Outcome{}, errors.New("pickaxe broke")
	})

	engine := pipework.New()
	engine.RegisterPipe(pipe)

	outcome, err := engine.Process(context.Background(), domain.NewAction("mine"))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusError, outcome.Status)
	assert.Equal(t, "pickaxe broke", outcome.Notes)
}

func TestGuard_RejectsAndPasses(t *testing.T) {
	banned := map[string]bool{"banned_user": true}
	pipe := pipes.Guard(func(action domain.Action) *domain.Outcome {
		if banned[action.Actor] {
			outcome := domain.BuildOutcome("rejected", domain.WithNotes("actor is banned"))
			return &outcome
		}
		return nil
	})

	ctx := context.Background()

	outcome, err := pipe(ctx, domain.BuildAction("test", domain.WithActor("banned_user")))
	require.NoError(t, err)
	require.NotNil(t, outcome)
	assert.Equal(t, "rejected", outcome.Status)

	outcome, err = pipe(ctx, domain.BuildAction("test", domain.WithActor("normal_user")))
	require.NoError(t, err)
	assert.Nil(t, outcome)
}

func TestChain_FirstClaimWins(t *testing.T) {
	var calls []string

	sub := func(name, status string, claims bool) domain.Pipe {
		return func(ctx context.Context, action domain.Action) (*domain.Outcome, error) {
			calls = append(calls, name)
			if !claims {
				return nil, nil
			}
			outcome := domain.NewOutcome(status)
			return &outcome, nil
		}
	}

	chain := pipes.Chain(
		sub("a", "", false),
		sub("b", "handled_by_b", true),
		sub("c", "handled_by_c", true),
	)

	outcome, err := chain(context.Background(), domain.NewAction("x"))
	require.NoError(t, err)
	require.NotNil(t, outcome)
	assert.Equal(t, "handled_by_b", outcome.Status)
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestChain_AllDefer(t *testing.T) {
	chain := pipes.Chain(
		func(ctx context.Context, action domain.Action) (*domain.Outcome, error) { return nil, nil },
		func(ctx context.Context, action domain.Action) (*domain.Outcome, error) { return nil, nil },
	)

	outcome, err := chain(context.Background(), domain.NewAction("x"))
	require.NoError(t, err)
	assert.Nil(t, outcome)
}

func TestCatchAll(t *testing.T) {
	engine := pipework.New()
	engine.RegisterPipe(pipes.Named("known", func(ctx context.Context, action domain.Action) (domain.Outcome, error) {
		return domain.NewOutcome("success"), nil
	}))
	engine.RegisterPipe(pipes.CatchAll("noop", "Nothing handles this action."))

	outcome, err := engine.Process(context.Background(), domain.NewAction("unknown"))
	require.NoError(t, err)
	assert.Equal(t, "noop", outcome.Status)
	assert.Equal(t, "unknown", outcome.Details["action"])
}
