package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/pipework/pkg/domain"
	"github.com/aretw0/pipework/pkg/ports"
)

// Engine is the core dispatcher. It owns an ordered pipe registry and runs
// actions through it, recording every result in the ledger.
type Engine struct {
	mu     sync.RWMutex
	pipes  []domain.Pipe
	ledger ports.Ledger
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// NewEngine creates an engine writing to the given ledger.
func NewEngine(ledger ports.Ledger, hooks domain.LifecycleHooks, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		ledger: ledger,
		hooks:  hooks,
		logger: logger,
	}
}

// RegisterPipe appends a pipe to the end of the registry.
// No deduplication, no priority: registration order is evaluation order.
func (e *Engine) RegisterPipe(pipe domain.Pipe) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pipes = append(e.pipes, pipe)
}

// Process runs the action through the pipework.
//
// Guarantees:
//   - an Outcome is always produced
//   - the Outcome is always recorded before returning
//
// Pipe faults (returned errors or panics) are converted to an Outcome with
// Status == StatusError; they never propagate. The returned error is
// non-nil only when the ledger append itself failed, in which case the
// synthesized outcome is still returned alongside it.
func (e *Engine) Process(ctx context.Context, action domain.Action) (domain.Outcome, error) {
	if e.hooks.OnActionReceived != nil {
		e.hooks.OnActionReceived(ctx, action)
	}

	outcome := e.runPipes(ctx, action)

	entry := domain.NewLedgerEntry(action, outcome)
	if err := e.ledger.Append(ctx, entry); err != nil {
		e.logger.Error("ledger append failed", "action", action.Name, "error", err)
		return outcome, fmt.Errorf("%w: %v", domain.ErrLedgerAppend, err)
	}

	if e.hooks.OnOutcomeRecorded != nil {
		e.hooks.OnOutcomeRecorded(ctx, entry)
	}

	e.logger.Debug("action processed",
		"action", action.Name,
		"actor", action.Actor,
		"status", outcome.Status,
	)

	return outcome, nil
}

// Ledger returns a snapshot of the recorded history.
func (e *Engine) Ledger(ctx context.Context) ([]domain.LedgerEntry, error) {
	return e.ledger.Snapshot(ctx)
}

// runPipes walks the registry in order until a pipe claims the action.
// Faults are converted to error outcomes here so that Process never sees
// them as anything but data.
func (e *Engine) runPipes(ctx context.Context, action domain.Action) domain.Outcome {
	e.mu.RLock()
	pipes := e.pipes
	e.mu.RUnlock()

	for _, pipe := range pipes {
		result, err := invoke(ctx, pipe, action)
		if err != nil {
			if e.hooks.OnPipeFault != nil {
				e.hooks.OnPipeFault(ctx, action, err)
			}
			e.logger.Warn("pipe fault", "action", action.Name, "error", err)
			return domain.BuildOutcome(domain.StatusError,
				domain.WithDetails(map[string]any{"exception": faultKind(err)}),
				domain.WithNotes(err.Error()),
			)
		}
		if result != nil {
			return *result
		}
	}

	// No pipe claimed the action.
	return domain.BuildOutcome(domain.StatusUnhandled,
		domain.WithDetails(map[string]any{"action": action.Name}),
		domain.WithNotes("No pipe accepted the action."),
	)
}

// invoke is the single boundary through which pipes are called. It maps
// any propagating fault, panics included, to an error so new pipe
// implementations cannot bypass the conversion guarantee.
func invoke(ctx context.Context, pipe domain.Pipe, action domain.Action) (result *domain.Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &panicError{value: r}
		}
	}()
	return pipe(ctx, action)
}

// panicError wraps a recovered panic value as an error.
type panicError struct {
	value any
}

func (p *panicError) Error() string {
	if e, ok := p.value.(error); ok {
		return e.Error()
	}
	return fmt.Sprintf("%v", p.value)
}

// faultKind names the fault type for Outcome.Details["exception"].
func faultKind(err error) string {
	if p, ok := err.(*panicError); ok {
		if e, ok := p.value.(error); ok {
			return fmt.Sprintf("panic(%T)", e)
		}
		return fmt.Sprintf("panic(%T)", p.value)
	}
	return fmt.Sprintf("%T", err)
}
