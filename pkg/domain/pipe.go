package domain

import "context"

// Pipe is an external rule, transformer, or handler.
//
// A pipe inspects the action and either claims it by returning a non-nil
// Outcome, or defers by returning (nil, nil) so the next pipe is tried.
// Returning an error (or panicking) is a fault; the dispatcher converts
// faults to an Outcome with Status == StatusError instead of propagating.
type Pipe func(ctx context.Context, action Action) (*Outcome, error)

// LifecycleHooks defines callbacks for engine observability.
//
// All fields are optional. Hooks run synchronously inside Process, so
// they should be cheap and must not panic.
type LifecycleHooks struct {
	// OnActionReceived fires before the pipe chain runs.
	OnActionReceived func(context.Context, Action)

	// OnPipeFault fires when a pipe errors or panics, before the fault
	// is converted to an error outcome.
	OnPipeFault func(ctx context.Context, action Action, fault error)

	// OnOutcomeRecorded fires after the ledger entry is appended.
	OnOutcomeRecorded func(context.Context, LedgerEntry)
}

// Merge combines two hook sets, invoking the receiver's callbacks first.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	merged := LifecycleHooks{}
	merged.OnActionReceived = mergeHook(h.OnActionReceived, other.OnActionReceived)
	merged.OnOutcomeRecorded = mergeHook(h.OnOutcomeRecorded, other.OnOutcomeRecorded)

	a, b := h.OnPipeFault, other.OnPipeFault
	switch {
	case a == nil:
		merged.OnPipeFault = b
	case b == nil:
		merged.OnPipeFault = a
	default:
		merged.OnPipeFault = func(ctx context.Context, action Action, fault error) {
			a(ctx, action, fault)
			b(ctx, action, fault)
		}
	}
	return merged
}

func mergeHook[T any](a, b func(context.Context, T)) func(context.Context, T) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return func(ctx context.Context, v T) {
			a(ctx, v)
			b(ctx, v)
		}
	}
}
