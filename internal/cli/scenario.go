package cli

import (
	"fmt"
	"os"

	"github.com/aretw0/pipework/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted sequence of actions, loaded from YAML.
//
//	actions:
//	  - name: mine
//	    actor: goblin_1
//	  - name: rest
//	    actor: goblin_1
type Scenario struct {
	Actions []ScenarioAction `yaml:"actions"`
}

// ScenarioAction is one scripted step.
type ScenarioAction struct {
	Name    string         `yaml:"name"`
	Actor   string         `yaml:"actor,omitempty"`
	Payload map[string]any `yaml:"payload,omitempty"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	if len(scenario.Actions) == 0 {
		return nil, fmt.Errorf("scenario %s contains no actions", path)
	}
	return &scenario, nil
}

// DefaultScenario is the goblin walkthrough used when no file is given:
// mine succeeds, mining tired fails, rest recovers, mine succeeds again,
// and dance goes unhandled.
func DefaultScenario() *Scenario {
	actor := "goblin_1"
	return &Scenario{
		Actions: []ScenarioAction{
			{Name: "mine", Actor: actor},
			{Name: "mine", Actor: actor},
			{Name: "rest", Actor: actor},
			{Name: "mine", Actor: actor},
			{Name: "dance", Actor: actor},
		},
	}
}

// Domain converts a scripted step into an engine Action.
func (s ScenarioAction) Domain() domain.Action {
	return domain.BuildAction(s.Name,
		domain.WithActor(s.Actor),
		domain.WithPayload(s.Payload),
	)
}
