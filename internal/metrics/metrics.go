// Package metrics exposes Prometheus collectors for the HTTP surface.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts handled HTTP requests by route pattern and status
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "littleyears_http_requests_total",
			Help: "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration observes request latency by route pattern
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "littleyears_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Handler returns the /metrics endpoint handler
func Handler() http.Handler {
	return promhttp.Handler()
}
