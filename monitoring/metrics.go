package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pipeline stage labels for the failures counter
const (
	StageRequest = "audit_request"
	StageExtract = "metric_extraction"
	StageInsert  = "row_insert"
)

// statusMetrics bundles the Prometheus collectors of the audit pipeline on a
// dedicated registry
type statusMetrics struct {
	registry        *prometheus.Registry
	auditsSubmitted prometheus.Counter
	auditFailures   *prometheus.CounterVec
	rowsInserted    prometheus.Counter
	auditDuration   prometheus.Histogram
}

// NewStatusMetrics constructs and registers all pipeline collectors
func NewStatusMetrics() *statusMetrics {
	registry := prometheus.NewRegistry()

	auditsSubmitted := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "collector_audits_submitted_total",
			Help: "Total audits submitted through the web form.",
		},
	)
	auditFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collector_audit_failures_total",
			Help: "Total failed audits by pipeline stage.",
		},
		[]string{"stage"},
	)
	rowsInserted := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "collector_rows_inserted_total",
			Help: "Total metric rows appended to the warehouse table.",
		},
	)
	auditDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "collector_audit_duration_seconds",
			Help:    "End-to-end duration of one audit pipeline run.",
			Buckets: []float64{1, 2.5, 5, 10, 20, 30, 60, 120},
		},
	)

	registry.MustRegister(auditsSubmitted, auditFailures, rowsInserted, auditDuration)

	return &statusMetrics{
		registry:        registry,
		auditsSubmitted: auditsSubmitted,
		auditFailures:   auditFailures,
		rowsInserted:    rowsInserted,
		auditDuration:   auditDuration,
	}
}

// IncAuditsSubmitted increments the submitted audits counter
func (m *statusMetrics) IncAuditsSubmitted() {
	if m == nil {
		return
	}

	m.auditsSubmitted.Inc()
}

// IncAuditFailure increments the failures counter for a pipeline stage
func (m *statusMetrics) IncAuditFailure(stage string) {
	if m == nil {
		return
	}

	m.auditFailures.WithLabelValues(stage).Inc()
}

// IncRowsInserted increments the inserted rows counter
func (m *statusMetrics) IncRowsInserted() {
	if m == nil {
		return
	}

	m.rowsInserted.Inc()
}

// ObserveAuditDuration records the duration of one pipeline run
func (m *statusMetrics) ObserveAuditDuration(d time.Duration) {
	if m == nil {
		return
	}

	m.auditDuration.Observe(d.Seconds())
}

// Handler exposes the dedicated registry in the Prometheus text format
func (m *statusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// IsInterfaceNil returns true if the value under the interface is nil
func (m *statusMetrics) IsInterfaceNil() bool {
	return m == nil
}
