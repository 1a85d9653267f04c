/*
Package pipework is a generic "attempt, rule chain, recorded result"
dispatcher: callers submit an Action describing intent, an ordered set of
pipes inspects it and optionally produces an Outcome, and every
Action/Outcome pair is appended to an immutable ledger regardless of
success, failure, or internal error.

The engine is domain-agnostic. It has no notion of story, game, or
business rule; those live entirely inside pipes, which are external
collaborators supplied by the host. This Hexagonal Architecture allows
Pipework to be embedded in any interface: CLI, HTTP server, or agent
infrastructure.

# Key Guarantees

  - Total outcome: Process always returns a well-formed Outcome.
  - Total recording: exactly one ledger entry per Process call, appended
    before returning.
  - Failure is data: any pipe fault (error or panic) is converted to an
    Outcome with status "error" instead of escaping.
  - Short-circuit: the first pipe to claim an action ends the chain.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/pipework"
		"github.com/aretw0/pipework/pkg/domain"
	)

	func main() {
		engine := pipework.New()

		// Pipes are evaluated in registration order.
		engine.RegisterPipe(func(ctx context.Context, action domain.Action) (*domain.Outcome, error) {
			if action.Name != "ping" {
				return nil, nil // not mine, pass to the next pipe
			}
			outcome := domain.BuildOutcome("success", domain.WithNotes("pong"))
			return &outcome, nil
		})

		outcome, err := engine.Process(context.Background(), domain.NewAction("ping"))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(outcome.Status, outcome.Notes)

		// The ledger holds the full history, including unhandled actions.
		entries, _ := engine.Ledger(context.Background())
		for _, e := range entries {
			fmt.Println(e.RecordedAt, e.Action.Name, "->", e.Outcome.Status)
		}
	}
*/
package pipework
