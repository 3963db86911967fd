// Package metrics exposes prometheus collectors for the rate engine and HTTP layer.
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

const namespace = "avesta"

// Metrics owns a private registry so tests can build it repeatedly.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	RateCacheLookups    *prometheus.CounterVec
	RateRefreshes       *prometheus.CounterVec
	RateRefreshDuration *prometheus.HistogramVec
	RateStaleFallbacks  prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"path", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		RateCacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_cache_lookups_total",
				Help:      "Rate cache lookups by outcome (fresh, stale, miss)",
			},
			[]string{"outcome"},
		),
		RateRefreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_refreshes_total",
				Help:      "Upstream rate refreshes by source and result",
			},
			[]string{"source", "result"},
		),
		RateRefreshDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rate_refresh_duration_seconds",
				Help:      "Duration of upstream rate refreshes",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"source"},
		),
		RateStaleFallbacks: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_stale_fallbacks_total",
				Help:      "Requests served from a stale snapshot after a failed refresh",
			},
		),
	}
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(path, method string, status int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(path, method).Observe(elapsed.Seconds())
}

// CacheLookup, RefreshCompleted and StaleFallback implement exchangerate.RateMetrics.
func (m *Metrics) CacheLookup(outcome string) {
	m.RateCacheLookups.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RefreshCompleted(source string, err error, elapsed time.Duration) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.RateRefreshes.WithLabelValues(source, result).Inc()
	m.RateRefreshDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

func (m *Metrics) StaleFallback() {
	m.RateStaleFallbacks.Inc()
}
