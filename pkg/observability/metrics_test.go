package observability_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/pipework"
	"github.com/aretw0/pipework/pkg/domain"
	"github.com/aretw0/pipework/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_CountsByStatus(t *testing.T) {
	collector := observability.NewCollector()
	engine := pipework.New(pipework.WithLifecycleHooks(collector.Hooks()))

	engine.RegisterPipe(func(ctx context.Context, action domain.Action) (*domain.Outcome, error) {
		switch action.Name {
		case "ok":
			outcome := domain.NewOutcome("success")
			return &outcome, nil
		case "bad":
			return nil, errors.New("boom")
		}
		return nil, nil
	})

	ctx := context.Background()
	for _, name := range []string{"ok", "ok", "bad", "mystery"} {
		_, err := engine.Process(ctx, domain.NewAction(name))
		require.NoError(t, err)
	}

	expected := `# HELP pipework_actions_total Total number of processed actions by outcome status.
# TYPE pipework_actions_total counter
pipework_actions_total{status="error"} 1
pipework_actions_total{status="success"} 2
pipework_actions_total{status="unhandled"} 1
`
	assert.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected), "pipework_actions_total"))
}

func TestCollector_CountsFaults(t *testing.T) {
	collector := observability.NewCollector()
	engine := pipework.New(pipework.WithLifecycleHooks(collector.Hooks()))

	engine.RegisterPipe(func(ctx context.Context, action domain.Action) (*domain.Outcome, error) {
		return nil, errors.New("always faults")
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := engine.Process(ctx, domain.NewAction("x"))
		require.NoError(t, err)
	}

	expected := `# HELP pipework_pipe_faults_total Total number of pipe faults converted to error outcomes.
# TYPE pipework_pipe_faults_total counter
pipework_pipe_faults_total 3
`
	assert.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected), "pipework_pipe_faults_total"))
}

func TestCollector_Registers(t *testing.T) {
	registry := prometheus.NewRegistry()
	require.NoError(t, registry.Register(observability.NewCollector()))
}
