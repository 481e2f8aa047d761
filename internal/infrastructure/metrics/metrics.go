package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Decision metrics
	Instructions   *prometheus.CounterVec
	Rejections     *prometheus.CounterVec
	FactsAppended  prometheus.Counter
	AccountsLocked prometheus.Counter

	// Ingest metrics
	RowsSkipped    prometheus.Counter
	IngestDuration prometheus.Histogram
}

// New creates all metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Instructions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paymentsengine_instructions_total",
				Help: "Total instructions processed by type and outcome",
			},
			[]string{"type", "outcome"},
		),
		Rejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paymentsengine_rejections_total",
				Help: "Total rejected instructions by reason",
			},
			[]string{"reason"},
		),
		FactsAppended: factory.NewCounter(prometheus.CounterOpts{
			Name: "paymentsengine_facts_appended_total",
			Help: "Total facts appended to client fact logs",
		}),
		AccountsLocked: factory.NewCounter(prometheus.CounterOpts{
			Name: "paymentsengine_accounts_locked_total",
			Help: "Total accounts locked by a chargeback",
		}),

		RowsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "paymentsengine_rows_skipped_total",
			Help: "Total malformed input rows skipped",
		}),
		IngestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "paymentsengine_ingest_duration_seconds",
			Help:    "Duration of a full ingest run",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// WriteTextfile writes every metric gathered by g to path in the Prometheus
// text format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
