// Package metrics defines and registers all custom Prometheus metrics for
// the portal client. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// RequestsTotal counts gateway calls that received an HTTP response.
// Labels:
//   - method: HTTP verb
//   - status: numeric HTTP status (e.g. "200", "401")
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of backend requests, by method and response status.",
	},
	[]string{"method", "status"},
)

// RequestErrorsTotal counts gateway calls that failed before any HTTP
// response was received.
// Label:
//   - reason: short failure class (e.g. "transport", "encode")
var RequestErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_errors_total",
		Help:      "Total number of backend requests that produced no HTTP response.",
	},
	[]string{"reason"},
)

// RequestDuration measures wall time from request construction to response
// decode, per HTTP verb.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of backend requests from dispatch to body decode.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// SessionTeardownsTotal counts local session invalidations triggered by a
// 401/403 response, as opposed to explicit logout.
var SessionTeardownsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_teardowns_total",
		Help:      "Total number of sessions torn down after an auth-rejection response.",
	},
)

// IdentityFallbackTotal counts rehydration attempts that could not reach the
// identity endpoint, labelled by how the fallback resolved.
// Label:
//   - result: "mirror" (stale mirror accepted) or "cleared" (credential dropped)
var IdentityFallbackTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_fallback_total",
		Help:      "Total number of startup identity fallbacks, by outcome.",
	},
	[]string{"result"},
)
