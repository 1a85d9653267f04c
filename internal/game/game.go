// Package game implements the goblin mining demo that ships with the CLI.
//
// It is host code, not engine code: the engine knows nothing about ore or
// fatigue. State is passed into each pipe explicitly instead of living in
// package globals, so two engines never share a goblin by accident.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/aretw0/pipework/pkg/domain"
	"github.com/aretw0/pipework/pkg/pipes"
)

// State is the world the pipes act on.
// Safe for concurrent use.
type State struct {
	mu    sync.Mutex
	ore   int
	tired bool
	rng   *rand.Rand
}

// NewState creates a rested goblin with empty pockets.
// A nil source falls back to an unseeded generator.
func NewState(rng *rand.Rand) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &State{rng: rng}
}

// Ore returns the mined total.
func (s *State) Ore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ore
}

// Tired reports whether the goblin needs a rest.
func (s *State) Tired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tired
}

// FatiguePipe blocks mining while the goblin is tired.
// Register it before MiningPipe; order is the rule.
func FatiguePipe(state *State) domain.Pipe {
	return pipes.Guard(func(action domain.Action) *domain.Outcome {
		if action.Name == "mine" && state.Tired() {
			outcome := domain.BuildOutcome("failure",
				domain.WithNotes("The goblin is too tired to mine."),
			)
			return &outcome
		}
		return nil
	})
}

// MiningPipe handles "mine": yields 1-3 ore and leaves the goblin tired.
func MiningPipe(state *State) domain.Pipe {
	return pipes.Named("mine", func(ctx context.Context, action domain.Action) (domain.Outcome, error) {
		state.mu.Lock()
		gained := state.rng.Intn(3) + 1
		state.ore += gained
		state.tired = true
		state.mu.Unlock()

		return domain.BuildOutcome("success",
			domain.WithDetails(map[string]any{"ore_gained": gained}),
			domain.WithNotes(fmt.Sprintf("The goblin mined %d ore.", gained)),
		), nil
	})
}

// RestPipe handles "rest": clears fatigue.
func RestPipe(state *State) domain.Pipe {
	return pipes.Named("rest", func(ctx context.Context, action domain.Action) (domain.Outcome, error) {
		state.mu.Lock()
		state.tired = false
		state.mu.Unlock()

		return domain.BuildOutcome("success",
			domain.WithNotes("The goblin feels refreshed."),
		), nil
	})
}

// Register wires the full rule set onto a dispatcher in playing order.
func Register(dispatcher interface{ RegisterPipe(domain.Pipe) }, state *State) {
	dispatcher.RegisterPipe(FatiguePipe(state))
	dispatcher.RegisterPipe(MiningPipe(state))
	dispatcher.RegisterPipe(RestPipe(state))
}
