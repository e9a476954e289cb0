// Package metrics defines and registers all custom Prometheus metrics for the
// admin portal. It is the single source of truth for metric names, labels,
// and help strings. Metrics self-register with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "admin_portal"

// ── Screen metrics ────────────────────────────────────────────────────────────

// ListQueriesTotal counts paged list queries issued by list controllers.
// Labels:
//   - resource: screen resource ("companies", "users", "announcements", "announcement-feed")
//   - result: "ok" or "error"
var ListQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_queries_total",
		Help:      "Total number of paged list queries, by resource and result.",
	},
	[]string{"resource", "result"},
)

// StaleResponsesTotal counts list responses discarded because a newer query
// was issued while they were in flight (last-issued-wins sequencing).
var StaleResponsesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_responses_discarded_total",
		Help:      "Total number of superseded list responses discarded per resource.",
	},
	[]string{"resource"},
)

// WritesTotal counts upstream write calls issued on behalf of screens.
// Labels:
//   - resource: screen resource
//   - op: "create", "update" or "delete"
//   - result: "ok" or "error"
var WritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "writes_total",
		Help:      "Total number of create/update/delete calls, by resource, op and result.",
	},
	[]string{"resource", "op", "result"},
)

// DeletesBlockedTotal counts delete requests refused before any upstream call
// because the explicit confirmation flag was missing.
var DeletesBlockedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deletes_blocked_total",
		Help:      "Total number of unconfirmed delete requests rejected locally.",
	},
	[]string{"resource"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome ("ok", "rejected", "error").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsActive tracks the number of live portal sessions known to this
// process (screen registries currently held in memory).
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Number of sessions with live screen state in this process.",
	},
)
