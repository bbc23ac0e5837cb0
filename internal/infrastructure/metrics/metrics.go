package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the report workflow.
type Metrics struct {
	// Terminal transitions by decision
	ReportsProcessed *prometheus.CounterVec

	// Document-store write-backs that failed after the relational commit
	WriteBackFailures *prometheus.CounterVec

	// Reported-at values by the harmonizer strategy that parsed them
	DateStrategy *prometheus.CounterVec

	// Authorization outcomes
	AuthorizationDecisions *prometheus.CounterVec
}

// New registers all report workflow metrics with the default registry.
func New() *Metrics {
	return &Metrics{
		ReportsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "traffic_reports_processed_total",
			Help: "Reports moved out of PENDING by decision",
		}, []string{"decision"}), // decision: "approved", "rejected"

		WriteBackFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "traffic_report_writeback_failures_total",
			Help: "Snapshot writes to the document store that failed",
		}, []string{"operation"}),

		DateStrategy: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "traffic_report_date_strategy_total",
			Help: "Reported-at values by parse strategy",
		}, []string{"strategy"}),

		AuthorizationDecisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "traffic_report_authorization_total",
			Help: "Jurisdiction checks by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) IncrementProcessed(decision string) {
	if m != nil {
		m.ReportsProcessed.WithLabelValues(decision).Inc()
	}
}

func (m *Metrics) IncrementWriteBackFailure(operation string) {
	if m != nil {
		m.WriteBackFailures.WithLabelValues(operation).Inc()
	}
}

func (m *Metrics) IncrementDateStrategy(strategy string) {
	if m != nil {
		m.DateStrategy.WithLabelValues(strategy).Inc()
	}
}

func (m *Metrics) IncrementAuthorization(outcome string) {
	if m != nil {
		m.AuthorizationDecisions.WithLabelValues(outcome).Inc()
	}
}
