// Package observability provides Prometheus metrics and HTTP middleware
// for monitoring the shops platform.
package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	// RequestsTotal counts all HTTP requests by method and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shops_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "status"},
	)

	// RequestDuration records HTTP request duration in seconds by method.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shops_request_duration_seconds",
			Help:    "Request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// SignupsTotal counts signup attempts by outcome (ok, conflict).
	SignupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shops_signups_total",
			Help: "Signup attempts",
		},
		[]string{"status"},
	)

	// SigninsTotal counts signin attempts by outcome (ok, not_found, rejected).
	SigninsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shops_signins_total",
			Help: "Signin attempts",
		},
		[]string{"status"},
	)

	// CrossOriginRejected counts requests denied by the origin guard.
	CrossOriginRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shops_cross_origin_rejected_total",
			Help: "Requests denied by origin validation",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		SignupsTotal,
		SigninsTotal,
		CrossOriginRejected,
	)
}
