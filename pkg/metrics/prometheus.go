// Package metrics provides Prometheus metrics for the atlas service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the atlas service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Load Metrics - one-time source ingestion and join
	sourceRows           *prometheus.CounterVec
	sourceLoadDuration   *prometheus.HistogramVec
	reconcileMisses      *prometheus.CounterVec
	retainedCountries    prometheus.Gauge
	retainedObservations prometheus.Gauge

	// Interactive Metrics - trigger/frame pipeline
	triggers        *prometheus.CounterVec
	framesPublished prometheus.Counter
	frameLatency    prometheus.Histogram
	lookupFallbacks *prometheus.CounterVec
	observerCount   prometheus.Gauge
	panelRecomputes prometheus.Counter

	// Trigger Queue Metrics
	queueSize          prometheus.Gauge
	queueCapacity      prometheus.Gauge
	queueEnqueueErrors prometheus.Counter

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Enhanced Error Metrics - Detailed error tracking
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec
	errorLatency         *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "atlas",
		subsystem:        "happiness",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Load metrics - the one-time ingest/join pipeline
	m.sourceRows = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "source_rows_total",
		Help:      "Rows or features read from a source, by outcome (retained/dropped)",
	}, []string{"source", "outcome"})

	m.sourceLoadDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "source_load_duration_milliseconds",
		Help:      "Histogram of per-source load durations in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"source"})

	m.reconcileMisses = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reconcile_misses_total",
		Help:      "Country names that failed reconciliation, by source",
	}, []string{"source"})

	m.retainedCountries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "retained_countries",
		Help:      "Countries present in both sources after the join filter",
	})

	m.retainedObservations = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "retained_observations",
		Help:      "Yearly observations retained after the join filter",
	})

	// Interactive metrics - trigger/frame pipeline
	m.triggers = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "triggers_total",
		Help:      "State-change triggers received, by kind and outcome",
	}, []string{"kind", "outcome"})

	m.framesPublished = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "frames_published_total",
		Help:      "Complete view-model frames published to observers",
	})

	m.frameLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "frame_recompute_milliseconds",
		Help:      "Histogram of full frame recompute latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.lookupFallbacks = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "lookup_fallbacks_total",
		Help:      "Temporal lookups that resolved through a fallback step",
	}, []string{"step"})

	m.observerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "frame_observers",
		Help:      "Observers currently subscribed to frame publications",
	})

	m.panelRecomputes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "panel_recomputes_total",
		Help:      "Detail-panel view-models recomputed from scratch",
	})

	// Trigger queue metrics
	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trigger_queue_size",
		Help:      "Current number of queued triggers",
	})

	m.queueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trigger_queue_capacity",
		Help:      "Maximum capacity of the trigger queue",
	})

	m.queueEnqueueErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trigger_queue_enqueue_errors_total",
		Help:      "Triggers rejected by the queue (closed or full)",
	})

	// HTTP metrics
	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method, and status code",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request durations in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	// Error metrics
	m.errorRateByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_component_total",
		Help:      "Errors by component and error type",
	}, []string{"component", "error_type"})

	m.errorRateByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_type_total",
		Help:      "Errors by type and severity",
	}, []string{"error_type", "severity"})

	m.errorRateByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "HTTP errors by endpoint, method, and error type",
	}, []string{"endpoint", "method", "error_type"})

	m.errorLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "error_latency_milliseconds",
		Help:      "Latency of requests that ended in an error",
		Buckets:   m.histogramBuckets,
	}, []string{"component", "error_type"})

	// System metrics
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

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_milliseconds",
		Help:      "Histogram of average GC pause times in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// RecordSourceRow records one row/feature read from a source with its outcome.
func RecordSourceRow(source, outcome string) {
	globalManager.sourceRows.WithLabelValues(source, outcome).Inc()
}

// RecordSourceLoadDuration records how long a source took to load.
func RecordSourceLoadDuration(source string, durationMs float64) {
	globalManager.sourceLoadDuration.WithLabelValues(source).Observe(durationMs)
}

// RecordReconcileMiss records a country name that failed reconciliation.
func RecordReconcileMiss(source string) {
	globalManager.reconcileMisses.WithLabelValues(source).Inc()
}

// UpdateRetainedCountries sets the number of countries surviving the join filter.
func UpdateRetainedCountries(count int) {
	globalManager.retainedCountries.Set(float64(count))
}

// UpdateRetainedObservations sets the number of observations surviving the join filter.
func UpdateRetainedObservations(count int) {
	globalManager.retainedObservations.Set(float64(count))
}

// RecordTrigger records a state-change trigger and its outcome.
func RecordTrigger(kind, outcome string) {
	globalManager.triggers.WithLabelValues(kind, outcome).Inc()
}

// RecordFramePublished records a full frame publication.
func RecordFramePublished() {
	globalManager.framesPublished.Inc()
}

// RecordFrameLatency records the latency of a full frame recompute.
func RecordFrameLatency(latencyMs float64) {
	globalManager.frameLatency.Observe(latencyMs)
}

// RecordLookupFallback records which fallback step resolved a temporal lookup.
func RecordLookupFallback(step string) {
	globalManager.lookupFallbacks.WithLabelValues(step).Inc()
}

// UpdateObserverCount sets the number of subscribed frame observers.
func UpdateObserverCount(count int) {
	globalManager.observerCount.Set(float64(count))
}

// RecordPanelRecompute records a detail-panel recompute.
func RecordPanelRecompute() {
	globalManager.panelRecomputes.Inc()
}

// UpdateQueueSize sets the current trigger queue depth.
func UpdateQueueSize(size int) {
	globalManager.queueSize.Set(float64(size))
}

// UpdateQueueCapacity sets the trigger queue capacity.
func UpdateQueueCapacity(capacity int) {
	globalManager.queueCapacity.Set(float64(capacity))
}

// RecordQueueEnqueueError records a rejected trigger enqueue.
func RecordQueueEnqueueError() {
	globalManager.queueEnqueueErrors.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByComponent records an error by component and type.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByType records an error by type and severity.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an HTTP error by endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of a failed request.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// UpdateSystemMemoryUsage sets the current heap allocation.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the current goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records an average GC pause time.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by the service.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
