// Package metrics holds the Prometheus collectors for outbound portal API calls
// and the inbound BFF surface.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the application collectors. It is separate from the global
// registry so tests can build fresh servers without duplicate registration.
var Registry = prometheus.NewRegistry()

var (
	upstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dsaportal",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Portal API requests by method, route and status class.",
		},
		[]string{"method", "route", "status"},
	)

	upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dsaportal",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Portal API request latency.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dsaportal",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "BFF requests handled by method, route pattern and status class.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dsaportal",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "BFF request latency, including upstream fan-out.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		},
		[]string{"method", "route"},
	)

	sessionTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dsaportal",
			Subsystem: "session",
			Name:      "transitions_total",
			Help:      "Session store transitions by target state.",
		},
		[]string{"state"},
	)
)

func init() {
	Registry.MustRegister(upstreamRequests, upstreamDuration, httpRequests, httpDuration, sessionTransitions)
}

// ObserveUpstream records one portal API call. status 0 means no response.
func ObserveUpstream(method, route string, status int, elapsed time.Duration) {
	upstreamRequests.WithLabelValues(method, route, statusClass(status)).Inc()
	upstreamDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveHTTP records one BFF response. route is the router pattern, never the raw path.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, statusClass(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveSession records a session store transition.
func ObserveSession(state string) {
	sessionTransitions.WithLabelValues(state).Inc()
}

// Handler exposes Registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func statusClass(status int) string {
	if status <= 0 {
		return "error"
	}
	return strconv.Itoa(status/100) + "xx"
}
