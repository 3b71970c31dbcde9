// Package metrics exposes Prometheus collectors for the alert pipeline
// and the HTTP API on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

const namespace = "shelfwatch"

// Ingest message results.
const (
	ResultOK      = "ok"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// Metrics holds all application collectors.
type Metrics struct {
	registry *prometheus.Registry

	alertsCreated    *prometheus.CounterVec
	alertTransitions *prometheus.CounterVec
	ingestMessages   *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New creates a Metrics instance with its own registry, including Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		alertsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_created_total",
			Help:      "Alerts created, by type and severity.",
		}, []string{"type", "severity"}),
		alertTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_transitions_total",
			Help:      "Committed alert status changes, by source and target status.",
		}, []string{"from", "to"}),
		ingestMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_messages_total",
			Help:      "Messages received from the ingestion bus, by subject and result.",
		}, []string{"subject", "result"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by method, route and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.alertsCreated,
		m.alertTransitions,
		m.ingestMessages,
		m.httpDuration,
	)

	return m
}

// AlertCreated counts a committed alert creation.
func (m *Metrics) AlertCreated(alertType domain.AlertType, severity domain.Severity) {
	m.alertsCreated.WithLabelValues(string(alertType), string(severity)).Inc()
}

// AlertTransitioned counts a committed status change, reopen included.
func (m *Metrics) AlertTransitioned(from, to domain.AlertStatus) {
	m.alertTransitions.WithLabelValues(string(from), string(to)).Inc()
}

// IngestMessage counts one message handled by the ingestion subscriber.
func (m *Metrics) IngestMessage(subject, result string) {
	m.ingestMessages.WithLabelValues(subject, result).Inc()
}

// ObserveHTTP records the latency of one HTTP request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpDuration.WithLabelValues(method, route, statusLabel(status)).Observe(elapsed.Seconds())
}

// Handler returns the Prometheus HTTP handler for the private registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func statusLabel(status int) string {
	if status == 0 {
		status = http.StatusOK
	}
	return strconv.Itoa(status)
}
