package domain

import "time"

// Engine-synthesized outcome statuses. Pipes are free to use any other
// string (e.g., "success", "failure", "rejected").
const (
	// StatusUnhandled indicates no registered pipe claimed the action.
	StatusUnhandled = "unhandled"

	// StatusError indicates a pipe invocation faulted and the fault was
	// converted to data at the dispatcher boundary.
	StatusError = "error"
)

// Outcome represents what actually happened to an Action.
//
// Outcomes are constructed by the pipe that claimed the action, or
// synthesized by the dispatcher when no pipe claimed it or a pipe faulted.
// They are never mutated after creation.
type Outcome struct {
	// Status is a free-form classification (no fixed enumeration).
	Status string `json:"status" yaml:"status" mapstructure:"status"`

	// Details carries arbitrary JSON-like diagnostic data.
	// Never nil when built via NewOutcome.
	Details map[string]any `json:"details,omitempty" yaml:"details,omitempty" mapstructure:"details"`

	// Notes is an optional human-readable explanation.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty" mapstructure:"notes"`

	// Timestamp is the UTC capture time at construction.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp" mapstructure:"timestamp"`
}

// NewOutcome creates an Outcome stamped with the current UTC time and a
// guaranteed non-nil details map.
func NewOutcome(status string) Outcome {
	return Outcome{
		Status:    status,
		Details:   make(map[string]any),
		Timestamp: time.Now().UTC(),
	}
}

// OutcomeOption configures an Outcome at construction time.
type OutcomeOption func(*Outcome)

// WithDetails merges the given keys into the outcome details.
func WithDetails(details map[string]any) OutcomeOption {
	return func(o *Outcome) {
		for k, v := range details {
			o.Details[k] = v
		}
	}
}

// WithNotes sets the human-readable explanation.
func WithNotes(notes string) OutcomeOption {
	return func(o *Outcome) {
		o.Notes = notes
	}
}

// BuildOutcome creates an Outcome applying the given options.
func BuildOutcome(status string, opts ...OutcomeOption) Outcome {
	o := NewOutcome(status)
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
