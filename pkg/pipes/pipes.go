// Package pipes provides reusable constructors for common pipe shapes.
package pipes

import (
	"context"

	"github.com/aretw0/pipework/pkg/domain"
)

// Handler produces the outcome for an action a pipe has already matched.
type Handler func(ctx context.Context, action domain.Action) (domain.Outcome, error)

// Named claims actions with the given name and delegates to the handler.
// Actions with any other name pass through to the next pipe.
func Named(name string, handler Handler) domain.Pipe {
	return func(ctx context.Context, action domain.Action) (*domain.Outcome, error) {
		if action.Name != name {
			return nil, nil
		}
		outcome, err := handler(ctx, action)
		if err != nil {
			return nil, err
		}
		return &outcome, nil
	}
}

// Guard runs a predicate before every handler pipe. When the predicate
// rejects the action, the returned outcome claims it; otherwise the
// action passes through untouched.
func Guard(predicate func(action domain.Action) *domain.Outcome) domain.Pipe {
	return func(ctx context.Context, action domain.Action) (*domain.Outcome, error) {
		return predicate(action), nil
	}
}

// Chain composes sub-pipes into a single pipe with the same first-claim
// semantics as the engine's own registry.
func Chain(subPipes ...domain.Pipe) domain.Pipe {
	return func(ctx context.Context, action domain.Action) (*domain.Outcome, error) {
		for _, pipe := range subPipes {
			outcome, err := pipe(ctx, action)
			if err != nil {
				return nil, err
			}
			if outcome != nil {
				return outcome, nil
			}
		}
		return nil, nil
	}
}

// CatchAll claims every action with the given status. Register it last to
// replace the engine's unhandled outcome with a domain-specific one.
func CatchAll(status string, notes string) domain.Pipe {
	return func(ctx context.Context, action domain.Action) (*domain.Outcome, error) {
		outcome := domain.BuildOutcome(status,
			domain.WithDetails(map[string]any{"action": action.Name}),
			domain.WithNotes(notes),
		)
		return &outcome, nil
	}
}
