// Package metrics defines and registers all custom Prometheus metrics for
// the QuillBoard web front end. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default registry at package load via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quillboard"

// ── Upstream API metrics ──────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls to the remote QuillBoard API.
// Labels:
//   - operation: gateway operation name (e.g. "login_user", "approve_article")
//   - status: "ok", "api_error" (non-2xx), or "transport_error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued to the remote QuillBoard API.",
	},
	[]string{"operation", "status"},
)

// UpstreamRequestDuration measures remote API call latency end-to-end.
// Label:
//   - operation: gateway operation name
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of remote QuillBoard API calls.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"operation"},
)

// ── Session / guard metrics ───────────────────────────────────────────────────

// LoginsTotal counts successful logins established in the session store.
// Label:
//   - kind: "user" or "admin"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of sessions established, by account kind.",
	},
	[]string{"kind"},
)

// GuardDecisionsTotal counts route guard outcomes on guarded routes.
// Label:
//   - decision: "allowed", "loading", "login_redirect", or "home_redirect"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard evaluations, by outcome.",
	},
	[]string{"decision"},
)
