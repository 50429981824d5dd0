// Package metrics provides Prometheus metrics for the judging dashboard.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus metric for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Judging metrics
	scoresSubmitted    *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	authFailures       *prometheus.CounterVec
	rankingRequests    prometheus.Counter
	rosterFallbacks    prometheus.Counter
	teamsScored        prometheus.Gauge
	judgesSeen         prometheus.Gauge

	// Store metrics, labeled by backend (file / postgres)
	storeWriteLatency *prometheus.HistogramVec
	storeReadLatency  *prometheus.HistogramVec
	storageErrors     *prometheus.CounterVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry so /healthz serves only our metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "hackvento",
		subsystem:        "judging",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.scoresSubmitted = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scores_submitted_total",
		Help:      "Total score upserts accepted, by backend",
	}, []string{"backend"})

	m.validationFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "validation_failures_total",
		Help:      "Requests rejected before any store access, by endpoint",
	}, []string{"endpoint"})

	m.authFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "auth_failures_total",
		Help:      "Rejected sessions and admin keys, by reason",
	}, []string{"reason"})

	m.rankingRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_requests_total",
		Help:      "Admin ranking reads served",
	})

	m.rosterFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_fallback_total",
		Help:      "Times the sample roster was served instead of the source",
	})

	m.teamsScored = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "teams_scored",
		Help:      "Teams with at least one persisted score entry",
	})

	m.judgesSeen = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "judges_seen",
		Help:      "Distinct judges with at least one persisted score entry",
	})

	m.storeWriteLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_write_latency_milliseconds",
		Help:      "Histogram of upsert latency per backend",
		Buckets:   m.histogramBuckets,
	}, []string{"backend"})

	m.storeReadLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_read_latency_milliseconds",
		Help:      "Histogram of read-all latency per backend",
		Buckets:   m.histogramBuckets,
	}, []string{"backend"})

	m.storageErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "storage_errors_total",
		Help:      "I/O and database failures surfaced to callers, by backend",
	}, []string{"backend"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request latency by endpoint, method and status",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.errorsByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "Error responses by endpoint, method and class",
	}, []string{"endpoint", "method", "error_type"})
}

// Package-level recorders against the global manager.

func RecordScoreSubmitted(backend string) {
	if globalManager.enabled {
		globalManager.scoresSubmitted.WithLabelValues(backend).Inc()
	}
}

func RecordValidationFailure(endpoint string) {
	if globalManager.enabled {
		globalManager.validationFailures.WithLabelValues(endpoint).Inc()
	}
}

func RecordAuthFailure(reason string) {
	if globalManager.enabled {
		globalManager.authFailures.WithLabelValues(reason).Inc()
	}
}

func RecordRankingRequest() {
	if globalManager.enabled {
		globalManager.rankingRequests.Inc()
	}
}

func RecordRosterFallback() {
	if globalManager.enabled {
		globalManager.rosterFallbacks.Inc()
	}
}

func UpdateTeamsScored(count int) {
	if globalManager.enabled {
		globalManager.teamsScored.Set(float64(count))
	}
}

func UpdateJudgesSeen(count int) {
	if globalManager.enabled {
		globalManager.judgesSeen.Set(float64(count))
	}
}

func RecordStoreWriteLatency(backend string, latencyMs float64) {
	if globalManager.enabled {
		globalManager.storeWriteLatency.WithLabelValues(backend).Observe(latencyMs)
	}
}

func RecordStoreReadLatency(backend string, latencyMs float64) {
	if globalManager.enabled {
		globalManager.storeReadLatency.WithLabelValues(backend).Observe(latencyMs)
	}
}

func RecordStorageError(backend string) {
	if globalManager.enabled {
		globalManager.storageErrors.WithLabelValues(backend).Inc()
	}
}

func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
	}
}

func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if globalManager.enabled {
		globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// GetRegistry exposes the custom registry for the /healthz handler.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
