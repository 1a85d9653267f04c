package observability

import (
	"context"
	"time"

	"github.com/aretw0/pipework/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes engine activity as Prometheus metrics.
// Attach it to an engine via Hooks().
type Collector struct {
	actionsTotal    *prometheus.CounterVec
	pipeFaultsTotal prometheus.Counter
	recordLatency   prometheus.Histogram
}

// NewCollector creates the metric set under the "pipework" namespace.
func NewCollector() *Collector {
	return &Collector{
		actionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pipework",
				Name:      "actions_total",
				Help:      "Total number of processed actions by outcome status.",
			},
			[]string{"status"},
		),
		pipeFaultsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "pipework",
				Name:      "pipe_faults_total",
				Help:      "Total number of pipe faults converted to error outcomes.",
			},
		),
		recordLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "pipework",
				Name:      "outcome_record_delay_seconds",
				Help:      "Delay between outcome creation and ledger recording.",
				Buckets:   prometheus.ExponentialBuckets(0.000001, 10, 8),
			},
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.actionsTotal.Describe(ch)
	c.pipeFaultsTotal.Describe(ch)
	c.recordLatency.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.actionsTotal.Collect(ch)
	c.pipeFaultsTotal.Collect(ch)
	c.recordLatency.Collect(ch)
}

// Hooks returns lifecycle hooks feeding this collector.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPipeFault: func(_ context.Context, _ domain.Action, _ error) {
			c.pipeFaultsTotal.Inc()
		},
		OnOutcomeRecorded: func(_ context.Context, entry domain.LedgerEntry) {
			c.actionsTotal.WithLabelValues(entry.Outcome.Status).Inc()
			delay := entry.RecordedAt.Sub(entry.Outcome.Timestamp)
			if delay < 0 {
				delay = 0
			}
			c.recordLatency.Observe(float64(delay) / float64(time.Second))
		},
	}
}

var _ prometheus.Collector = (*Collector)(nil)
