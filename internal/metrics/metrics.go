// Package metrics exposes the prometheus collectors of the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector groups every metric the API records. A nil *Collector is valid
// and records nothing.
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
	logins       *prometheus.CounterVec
	upstream     *prometheus.CounterVec
	cache        *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plsapi_http_requests_total",
			Help: "HTTP requests by method, route template and status",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "plsapi_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plsapi_logins_total",
			Help: "Login attempts by outcome",
		}, []string{"outcome"}),
		upstream: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plsapi_upstream_calls_total",
			Help: "Outbound provider calls by provider, call and result",
		}, []string{"provider", "call", "result"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plsapi_duration_cache_total",
			Help: "Video duration cache lookups by result",
		}, []string{"result"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.logins,
		c.upstream,
		c.cache,
	)

	return c
}

// RecordHTTPRequest records one served request. route is the gin route
// template, never the raw path.
func (c *Collector) RecordHTTPRequest(method, route string, status int, latency time.Duration) {
	if c == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(latency.Seconds())
}

func (c *Collector) RecordLogin(outcome string) {
	if c == nil {
		return
	}
	c.logins.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordUpstream(provider, call string, err error) {
	if c == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.upstream.WithLabelValues(provider, call, result).Inc()
}

func (c *Collector) RecordCache(hit bool) {
	if c == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	c.cache.WithLabelValues(result).Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
