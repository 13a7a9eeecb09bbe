package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics records operational metrics to the default registry
type PrometheusMetrics struct {
	ledgerOperations     *prometheus.CounterVec
	ledgerDuration       prometheus.Histogram
	transferAmount       prometheus.Histogram
	accountsCreatedTotal prometheus.Counter
	authEventsTotal      *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		ledgerOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total number of ledger operations by type and outcome",
			},
			[]string{"operation", "status"},
		),
		ledgerDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_operation_duration_milliseconds",
				Help:    "Ledger operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transferAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_amount",
				Help:    "Transfer amount in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		accountsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "accounts_created_total",
				Help: "Total number of accounts opened",
			},
		),
		authEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "ledger_operation":
		m.ledgerOperations.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case "account_created":
		m.accountsCreatedTotal.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == "ledger_operation" {
		m.ledgerDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "transfer_amount" {
		m.transferAmount.Observe(value)
	}
}

// NoopMetrics discards every recording. Used in tests and when metrics are
// disabled by configuration.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface {
	return &NoopMetrics{}
}

func (NoopMetrics) IncrementCounter(name string, tags map[string]string) {}

func (NoopMetrics) RecordProcessingTime(name string, duration time.Duration) {}

func (NoopMetrics) RecordGauge(name string, value float64, tags map[string]string) {}
