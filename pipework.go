package pipework

import (
	"context"
	"log/slog"

	"github.com/aretw0/pipework/internal/runtime"
	"github.com/aretw0/pipework/pkg/adapters/memory"
	"github.com/aretw0/pipework/pkg/domain"
	"github.com/aretw0/pipework/pkg/ports"
)

// Version is the semantic version of the library.
var Version = "0.3.0"

// Engine is the high-level entry point for the Pipework library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	ledger  ports.Ledger
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLedger injects a custom ledger, bypassing the default in-memory one.
func WithLedger(l ports.Ledger) Option {
	return func(e *Engine) {
		e.ledger = l
	}
}

// WithLifecycleHooks registers observability hooks. Repeated use merges
// hook sets in registration order.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Pipework Engine.
// By default, it records to an in-memory ledger.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.ledger == nil {
		eng.ledger = memory.NewLedger()
	}

	eng.runtime = runtime.NewEngine(eng.ledger, eng.hooks, eng.logger)
	return eng
}

// RegisterPipe appends a pipe to the end of the registry.
// Pipes are evaluated in order; the first pipe to return an Outcome ends
// the flow.
func (e *Engine) RegisterPipe(pipe domain.Pipe) {
	e.runtime.RegisterPipe(pipe)
}

// Process runs an action through the pipework.
//
// An Outcome is always produced and always recorded before returning.
// The error is non-nil only when the ledger append itself failed.
func (e *Engine) Process(ctx context.Context, action domain.Action) (domain.Outcome, error) {
	return e.runtime.Process(ctx, action)
}

// Ledger returns a snapshot of the full recorded history.
func (e *Engine) Ledger(ctx context.Context) ([]domain.LedgerEntry, error) {
	return e.runtime.Ledger(ctx)
}

var _ ports.Dispatcher = (*Engine)(nil)
