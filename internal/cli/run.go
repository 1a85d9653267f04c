package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/pipework"
	"github.com/aretw0/pipework/internal/game"
	"github.com/aretw0/pipework/internal/logging"
	"github.com/aretw0/pipework/internal/presentation/tui"
	"github.com/aretw0/pipework/pkg/domain"
	"golang.org/x/term"
)

// RunOptions contains the configuration for the run command.
type RunOptions struct {
	ScenarioPath string
	Debug        bool
	JSON         bool
	NoBanner     bool
}

// Execute runs a scenario through a goblin game engine and prints the
// ledger report at the end.
func Execute(opts RunOptions) error {
	logger := createLogger(opts)

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if interactive && !opts.NoBanner && !opts.JSON {
		tui.PrintBanner(pipework.Version)
	}

	scenario := DefaultScenario()
	if opts.ScenarioPath != "" {
		loaded, err := LoadScenario(opts.ScenarioPath)
		if err != nil {
			return err
		}
		scenario = loaded
	}

	engineOpts := []pipework.Option{}
	if opts.Debug {
		engineOpts = append(engineOpts,
			pipework.WithLogger(logger),
			pipework.WithLifecycleHooks(createDebugHooks(logger)),
		)
	}

	engine := pipework.New(engineOpts...)
	game.Register(engine, game.NewState(nil))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	for _, step := range scenario.Actions {
		if ctx.Err() != nil {
			logger.Info("scenario interrupted")
			break
		}

		action := step.Domain()
		outcome, err := engine.Process(ctx, action)
		if err != nil {
			return fmt.Errorf("recording failed for action %q: %w", action.Name, err)
		}

		printStep(action, outcome)
	}

	entries, err := engine.Ledger(ctx)
	if err != nil {
		return fmt.Errorf("failed to read ledger: %w", err)
	}
	PrintReport(entries)
	return nil
}

func printStep(action domain.Action, outcome domain.Outcome) {
	actor := action.Actor
	if actor == "" {
		actor = "someone"
	}
	fmt.Printf("> %s tries to %s\n", actor, action.Name)
	fmt.Printf("  Result: %s\n", outcome.Status)
	if outcome.Notes != "" {
		fmt.Printf("  Notes: %s\n", outcome.Notes)
	}
	fmt.Println()
}

func createLogger(opts RunOptions) *slog.Logger {
	if !opts.Debug {
		return logging.NewNop()
	}
	return logging.New(slog.LevelDebug, opts.JSON)
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnActionReceived: func(_ context.Context, a domain.Action) {
			logger.Debug("action received", "action", a.Name, "actor", a.Actor)
		},
		OnPipeFault: func(_ context.Context, a domain.Action, fault error) {
			logger.Warn("pipe fault", "action", a.Name, "error", fault)
		},
		OnOutcomeRecorded: func(_ context.Context, e domain.LedgerEntry) {
			logger.Debug("outcome recorded",
				"entry", e.ID,
				"action", e.Action.Name,
				"status", e.Outcome.Status,
			)
		},
	}
}
