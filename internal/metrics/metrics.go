// Package metrics defines Prometheus metrics for the steptrace service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "steptrace_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "steptrace_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "steptrace_errors_total",
			Help: "Total error responses by code",
		},
		[]string{"code"},
	)

	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "steptrace_searches_total",
			Help: "Total search runs by algorithm and outcome",
		},
		[]string{"algorithm", "outcome"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "steptrace_search_duration_seconds",
			Help:    "Search run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"algorithm"},
	)

	SearchSteps = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "steptrace_search_steps",
			Help:    "Recorded trace length per search run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"algorithm"},
	)

	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "steptrace_active_sessions",
			Help: "Grid sessions currently held in memory",
		},
	)

	ReplayConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "steptrace_replay_connections",
			Help: "Active replay WebSocket connections",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		SearchesTotal, SearchDuration, SearchSteps,
		ActiveSessions, ReplayConnections,
	)
}
