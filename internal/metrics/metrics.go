package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	registry *prometheus.Registry

	CacheRequests *prometheus.CounterVec
	CacheWrites   *prometheus.CounterVec
	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
}

// New creates a registry and registers all metrics on it
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		CacheRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "region_cache_requests_total",
			Help: "Region cache lookups by result (hit or miss)",
		}, []string{"result"}),
		CacheWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "region_cache_writes_total",
			Help: "Region cache mutations by operation (put or evict)",
		}, []string{"op"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "region_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "region_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the registry for tests
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
