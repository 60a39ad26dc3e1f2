// Package metrics exposes Prometheus collectors for HTTP traffic and catalog cascades.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shopcore"

// Cascade result labels
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics owns a private registry so tests and multiple servers do not collide
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	cascades            *prometheus.CounterVec
	cascadeDuration     *prometheus.HistogramVec
	archivedMasters     prometheus.Counter
	purgedSubProducts   prometheus.Counter
	priceCacheLookups   *prometheus.CounterVec
}

// New registers all collectors, plus Go runtime and process collectors when withRuntime is set
func New(withRuntime bool) *Metrics {
	reg := prometheus.NewRegistry()
	if withRuntime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		cascades: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "cascades_total",
			Help:      "Cascade deletions by kind and result",
		}, []string{"kind", "result"}),
		cascadeDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "cascade_duration_seconds",
			Help:      "Duration of cascade deletions",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		archivedMasters: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "master_products_archived_total",
			Help:      "Master products archived by cascades",
		}),
		purgedSubProducts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "sub_products_purged_total",
			Help:      "Sub-products removed by cascades",
		}),
		priceCacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "price_range_cache_lookups_total",
			Help:      "Price range cache lookups by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveHTTPRequest records one request
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(method, path, code).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

// ObserveCascade records one finished cascade of kind ("master_product" or "category")
func (m *Metrics) ObserveCascade(kind string, err error, duration time.Duration) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.cascades.WithLabelValues(kind, result).Inc()
	m.cascadeDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// AddArchivedMasters counts master products archived by a cascade
func (m *Metrics) AddArchivedMasters(n int) {
	if n > 0 {
		m.archivedMasters.Add(float64(n))
	}
}

// AddPurgedSubProducts counts sub-products removed by a cascade
func (m *Metrics) AddPurgedSubProducts(n int64) {
	if n > 0 {
		m.purgedSubProducts.Add(float64(n))
	}
}

// ObservePriceCache records a cache hit or miss
func (m *Metrics) ObservePriceCache(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.priceCacheLookups.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
