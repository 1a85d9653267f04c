package domain

// Action represents something that is attempted.
//
// Actions are constructed by the caller immediately before submission and
// are never mutated afterwards. The engine only reads them.
type Action struct {
	// Name identifies the intent (e.g., "mine", "transfer").
	// The empty string is a valid, distinct name.
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// Payload carries arbitrary JSON-like data for the pipes.
	// Never nil when built via NewAction.
	Payload map[string]any `json:"payload,omitempty" yaml:"payload,omitempty" mapstructure:"payload"`

	// Actor identifies the originator. Empty means anonymous/system.
	Actor string `json:"actor,omitempty" yaml:"actor,omitempty" mapstructure:"actor"`
}

// NewAction creates an Action with a guaranteed non-nil payload.
func NewAction(name string) Action {
	return Action{
		Name:    name,
		Payload: make(map[string]any),
	}
}

// ActionOption configures an Action at construction time.
type ActionOption func(*Action)

// WithActor sets the originator of the action.
func WithActor(actor string) ActionOption {
	return func(a *Action) {
		a.Actor = actor
	}
}

// WithPayload merges the given keys into the action payload.
func WithPayload(payload map[string]any) ActionOption {
	return func(a *Action) {
		for k, v := range payload {
			a.Payload[k] = v
		}
	}
}

// BuildAction creates an Action applying the given options.
func BuildAction(name string, opts ...ActionOption) Action {
	a := NewAction(name)
	for _, opt := range opts {
		opt(&a)
	}
	return a
}
