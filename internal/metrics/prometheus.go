// Package metrics exposes Prometheus metrics for the surgery dashboard.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns every collector the service records to.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	surgeriesLogged  prometheus.Counter
	surgeryUnits     prometheus.Counter
	importRowsFailed prometheus.Counter

	trendComputations  prometheus.Counter
	trendInsufficient  prometheus.Counter
	trendLowConfidence prometheus.Counter
	trendLatency       prometheus.Histogram

	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	cacheErrors prometheus.Counter
}

var globalManager = NewManager(prometheus.NewRegistry())

// NewManager registers the service collectors on registry.
func NewManager(registry *prometheus.Registry) *Manager {
	m := &Manager{namespace: "surgery", registry: registry}
	auto := promauto.With(registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by route, method and status code",
	}, []string{"route", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	m.surgeriesLogged = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "records_logged_total",
		Help:      "Surgery records accepted by the record store",
	})

	m.surgeryUnits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "procedures_logged_total",
		Help:      "Sum of the counts of accepted surgery records",
	})

	m.importRowsFailed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "import_rows_failed_total",
		Help:      "CSV import rows rejected by validation",
	})

	m.trendComputations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "trends",
		Name:      "computations_total",
		Help:      "Trend reports computed (cache misses included, hits excluded)",
	})

	m.trendInsufficient = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "trends",
		Name:      "insufficient_data_total",
		Help:      "Trend requests answered with not enough data",
	})

	m.trendLowConfidence = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "trends",
		Name:      "low_confidence_forecasts_total",
		Help:      "Forecasts fitted on a single month",
	})

	m.trendLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "trends",
		Name:      "computation_seconds",
		Help:      "Time spent aggregating and forecasting",
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})

	m.cacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Trend cache hits",
	})

	m.cacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Trend cache misses",
	})

	m.cacheErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "cache",
		Name:      "errors_total",
		Help:      "Trend cache backend errors",
	})

	registry.MustRegister(collectors.NewGoCollector())

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the global registry.
func Handler() http.Handler {
	return globalManager.Handler()
}

// GetRegistry returns the registry behind the package-level recorders.
func GetRegistry() *prometheus.Registry {
	return globalManager.registry
}

// RecordHTTPRequest records one finished request.
func RecordHTTPRequest(route, method, statusCode string, seconds float64) {
	globalManager.httpRequests.WithLabelValues(route, method, statusCode).Inc()
	globalManager.httpRequestDuration.WithLabelValues(route, method).Observe(seconds)
}

// RecordSurgeryLogged counts an accepted record and its procedure count.
func RecordSurgeryLogged(count int) {
	globalManager.surgeriesLogged.Inc()
	globalManager.surgeryUnits.Add(float64(count))
}

func RecordImportRowFailed() {
	globalManager.importRowsFailed.Inc()
}

// RecordTrendComputation observes one trend build.
func RecordTrendComputation(seconds float64, lowConfidence bool) {
	globalManager.trendComputations.Inc()
	globalManager.trendLatency.Observe(seconds)
	if lowConfidence {
		globalManager.trendLowConfidence.Inc()
	}
}

func RecordTrendInsufficientData() {
	globalManager.trendInsufficient.Inc()
}

func RecordCacheHit() {
	globalManager.cacheHits.Inc()
}

func RecordCacheMiss() {
	globalManager.cacheMisses.Inc()
}

func RecordCacheError() {
	globalManager.cacheErrors.Inc()
}

// CacheObserver forwards cache lookups to the hit and miss counters.
type CacheObserver struct{}

func (CacheObserver) CacheHit()  { RecordCacheHit() }
func (CacheObserver) CacheMiss() { RecordCacheMiss() }
