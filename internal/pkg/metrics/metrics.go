package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records outbound HTTP request metrics for the upstream clients
// (catalog, watsonx). It satisfies httpclient.MetricsCollector.
type Collector struct {
	requestDuration *prometheus.HistogramVec
	requestCount    *prometheus.CounterVec
	requestErrors   *prometheus.CounterVec
	registry        *prometheus.Registry
}

// NewCollector creates a Collector with its own registry so tests can run
// multiple instances without duplicate registration panics.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "outbound_request_duration_seconds",
			Help:    "Duration of outbound HTTP requests to upstream services.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "outbound_requests_total",
			Help: "Total outbound HTTP requests to upstream services.",
		}, []string{"method", "path", "status"}),
		requestErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "outbound_request_errors_total",
			Help: "Total failed outbound HTTP requests to upstream services.",
		}, []string{"method", "path"}),
		registry: registry,
	}

	registry.MustRegister(c.requestDuration, c.requestCount, c.requestErrors)

	return c
}

// RecordRequestDuration records the latency of one outbound request.
func (c *Collector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
	c.requestDuration.WithLabelValues(method, path, strconv.Itoa(statusCode)).Observe(duration.Seconds())
}

// RecordRequestCount increments the request counter.
func (c *Collector) RecordRequestCount(method, path string, statusCode int) {
	c.requestCount.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
}

// RecordRequestError increments the error counter.
func (c *Collector) RecordRequestError(method, path string) {
	c.requestErrors.WithLabelValues(method, path).Inc()
}

// Handler exposes the collector's registry in Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
