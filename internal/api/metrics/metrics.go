// Package metrics defines the custom Prometheus metrics for the auth
// gateway. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default
// registry via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "authgw"

// ── Authentication metrics ────────────────────────────────────────────────────

// SignupsTotal counts signup attempts.
// Labels:
//   - kind: "customer" or "employee"
//   - outcome: "created", "validation_failed", "conflict", or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by principal kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - kind: "customer" or "employee"
//   - outcome: "ok", "rejected", or "error" ("rejected" covers bad input
//     and bad credentials alike; the split would leak what the response
//     deliberately hides)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by principal kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

// SessionsIssued counts sessions created on successful signup or login.
// Label:
//   - kind: "customer" or "employee"
var SessionsIssued = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of sessions issued, by principal kind.",
	},
	[]string{"kind"},
)

// SessionResolutions counts authentication-gate decisions.
// Label:
//   - result: "ok", "missing" (no cookie), or "rejected" (bad signature,
//     unknown token, or expired session)
var SessionResolutions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_resolutions_total",
		Help:      "Total number of session cookie resolutions at the auth gate, by result.",
	},
	[]string{"result"},
)

// ── Abuse-resistance metrics ──────────────────────────────────────────────────

// RateLimitedTotal counts requests rejected by the fixed-window limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected with 429 by the rate limiter.",
	},
)

// RateLimitErrors counts limiter counter failures. The limiter fails
// open on these, so a rising value means unthrottled traffic.
var RateLimitErrors = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_errors_total",
		Help:      "Total number of rate limit counter failures (limiter failed open).",
	},
)
