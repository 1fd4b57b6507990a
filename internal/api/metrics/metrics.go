// Package metrics defines and registers all custom Prometheus metrics for
// the client portal. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Auth metrics ─────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "role_rejected", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts signup flow steps.
// Labels:
//   - step: "request", "verify", "legacy"
//   - result: "success" or "failure"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration flow steps, by step and result.",
	},
	[]string{"step", "result"},
)

// SessionTeardownsTotal counts forced session teardowns (backend 401 or
// corrupt persisted state).
// Label:
//   - reason: "expired", "malformed", "role_rejected"
var SessionTeardownsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_teardowns_total",
		Help:      "Total number of sessions destroyed outside explicit logout.",
	},
	[]string{"reason"},
)

// ── Route guard metrics ──────────────────────────────────────────────────────

// GuardRedirectsTotal counts redirects issued by the route guard.
// Label:
//   - reason: "unauthenticated", "wrong_role", "entry_page", "corrupt_cookie"
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of navigations redirected by the route guard.",
	},
	[]string{"reason"},
)

// ── Storefront metrics ───────────────────────────────────────────────────────

// PurchasesTotal counts purchase attempts routed to the backend.
// Label:
//   - result: "success" or "failure"
var PurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of service purchase attempts, by result.",
	},
	[]string{"result"},
)

// CatalogCacheTotal counts catalog cache lookups.
// Label:
//   - result: "hit" or "miss"
var CatalogCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_total",
		Help:      "Total number of catalog cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// BackendRequestDuration measures outbound storefront API call latency.
// Labels:
//   - endpoint: logical endpoint name (e.g. "orders.list")
//   - status: HTTP status class ("2xx", "4xx", "5xx") or "error"
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of outbound requests to the storefront backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint", "status"},
)
