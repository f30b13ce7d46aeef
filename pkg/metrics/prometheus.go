// Package metrics provides Prometheus metrics for the transfer-scout service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector the service registers.
type Manager struct {
	namespace string
	subsystem string
	buckets   []float64
	enabled   bool
	registry  prometheus.Registerer

	// Upstream data provider
	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec

	// Search backend
	searchRequests prometheus.Counter
	searchErrors   prometheus.Counter

	// Snippet safety filter
	snippetsAccepted prometheus.Counter
	snippetsRejected prometheus.Counter

	// Analysis pipeline
	pipelineDuration  prometheus.Histogram
	picksGenerated    prometheus.Counter
	playersNormalized prometheus.Gauge

	// Payload cache
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter

	// Inbound HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// Process health
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry keeps the default Go collectors out of /healthz output.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "fplscout",
		subsystem: "picks",
		buckets:   prometheus.DefBuckets,
		enabled:   true,
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.upstreamRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "upstream_requests_total",
		Help:      "Requests issued to the sports-data provider by endpoint and status",
	}, []string{"endpoint", "status"})

	m.upstreamLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "upstream_latency_milliseconds",
		Help:      "Latency of sports-data provider calls in milliseconds",
		Buckets:   m.buckets,
	}, []string{"endpoint"})

	m.searchRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_requests_total",
		Help:      "Keyword-search backend calls issued for pick enrichment",
	})

	m.searchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_errors_total",
		Help:      "Search calls that failed and degraded to an empty snippet list",
	})

	m.snippetsAccepted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snippets_accepted_total",
		Help:      "External snippets that passed the safety/relevance filter",
	})

	m.snippetsRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snippets_rejected_total",
		Help:      "External snippets rejected by the safety/relevance filter",
	})

	m.pipelineDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pipeline_duration_milliseconds",
		Help:      "End-to-end duration of a full analysis regeneration",
		Buckets:   m.buckets,
	})

	m.picksGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "picks_generated_total",
		Help:      "Top-pick analysis payloads generated (cache misses)",
	})

	m.playersNormalized = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_normalized",
		Help:      "Players produced by the normalizer on the last fetch",
	})

	m.cacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_hits_total",
		Help:      "Analysis requests served from the cached payload",
	})

	m.cacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_misses_total",
		Help:      "Analysis requests that triggered a regeneration",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Inbound HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Inbound HTTP request duration in milliseconds",
		Buckets:   m.buckets,
	}, []string{"endpoint", "method", "status_code"})

	m.errorsByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "Error responses by endpoint and error type",
	}, []string{"endpoint", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current heap allocation in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})
}

// Package-level helpers against the global manager.

func RecordUpstreamRequest(endpoint, status string) {
	globalManager.upstreamRequests.WithLabelValues(endpoint, status).Inc()
}

func RecordUpstreamLatency(endpoint string, latencyMs float64) {
	globalManager.upstreamLatency.WithLabelValues(endpoint).Observe(latencyMs)
}

func RecordSearchRequest() {
	globalManager.searchRequests.Inc()
}

func RecordSearchError() {
	globalManager.searchErrors.Inc()
}

func RecordSnippetAccepted() {
	globalManager.snippetsAccepted.Inc()
}

func RecordSnippetRejected() {
	globalManager.snippetsRejected.Inc()
}

func RecordPipelineDuration(latencyMs float64) {
	globalManager.pipelineDuration.Observe(latencyMs)
}

func RecordPicksGenerated() {
	globalManager.picksGenerated.Inc()
}

func UpdatePlayersNormalized(count int) {
	globalManager.playersNormalized.Set(float64(count))
}

func RecordCacheHit() {
	globalManager.cacheHits.Inc()
}

func RecordCacheMiss() {
	globalManager.cacheMisses.Inc()
}

func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

func RecordErrorByEndpoint(endpoint, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, errorType).Inc()
}

func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry exposes the custom registry for the /healthz handler.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
