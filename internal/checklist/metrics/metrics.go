// Package metrics provides observability for the checklist module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the checklist module's Prometheus instruments. All methods
// are nil-safe so tests can pass a nil *Metrics.
type Metrics struct {
	// Judgment outcomes by overall summary status.
	SummaryOutcome *prometheus.CounterVec

	// Per-item statuses across all evaluations.
	ItemOutcome *prometheus.CounterVec

	// Full evaluation latency, definitions load included.
	EvaluateLatency prometheus.Histogram

	// Applicable item count per evaluation.
	ApplicableItems prometheus.Histogram
}

// New creates and registers all checklist metrics.
func New() *Metrics {
	return &Metrics{
		SummaryOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "codecheck_summary_outcomes_total",
			Help: "Overall judgment outcomes by summary status",
		}, []string{"status"}),

		ItemOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "codecheck_item_outcomes_total",
			Help: "Per-item judgment outcomes by status",
		}, []string{"status"}),

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "codecheck_evaluate_duration_seconds",
			Help:    "Duration of one full checklist evaluation",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		ApplicableItems: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "codecheck_applicable_items",
			Help:    "Number of checklist items surviving the applicability filter",
			Buckets: []float64{0, 5, 10, 20, 40, 80, 160},
		}),
	}
}

// ObserveEvaluation records one evaluation pass.
func (m *Metrics) ObserveEvaluation(summaryStatus string, applicable int, d time.Duration) {
	if m == nil {
		return
	}
	m.SummaryOutcome.WithLabelValues(summaryStatus).Inc()
	m.ApplicableItems.Observe(float64(applicable))
	m.EvaluateLatency.Observe(d.Seconds())
}

// IncrementItemOutcome records a single item's status.
func (m *Metrics) IncrementItemOutcome(status string) {
	if m != nil {
		m.ItemOutcome.WithLabelValues(status).Inc()
	}
}
