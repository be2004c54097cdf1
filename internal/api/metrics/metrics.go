// Package metrics defines and registers the custom Prometheus metrics of the
// wallet dashboard gateway. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default registry on package load via
// promauto; the HTTP request metrics come from echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// ── Gate metrics ──────────────────────────────────────────────────────────────

// GateDecisionsTotal counts access-gate outcomes.
// Labels:
//   - gate: "session" or "admin"
//   - decision: "granted", "denied" or "abandoned" (caller left before the decision)
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of access gate evaluations, by gate and decision.",
	},
	[]string{"gate", "decision"},
)

// GateDuration measures how long a request waited on its gate.
var GateDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "gate_duration_seconds",
		Help:      "Time spent evaluating an access gate.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"gate"},
)

// ── Session validation metrics ────────────────────────────────────────────────

// SessionValidationsTotal counts session validator outcomes.
// Label:
//   - outcome: "valid", "no_token", "rejected", "transport", "malformed",
//     "store_error", "superseded" (a newer login replaced the token) or
//     "abandoned"
var SessionValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_validations_total",
		Help:      "Total number of session validations, by outcome.",
	},
	[]string{"outcome"},
)

// SessionValidationDuration measures the round-trip to the backend's /me.
var SessionValidationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "session_validation_duration_seconds",
		Help:      "Duration of the backend round-trip made to validate a session.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the records waiting in each audit worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of gate records pending in each audit worker channel.",
	},
	[]string{"worker_id"},
)

// AuditDroppedTotal counts records discarded because their shard was full.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of gate records dropped because the audit queue was full.",
	},
)

// AuditErrorsTotal counts records that failed to persist.
var AuditErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of gate records that could not be written.",
	},
)

// ── Market metrics ────────────────────────────────────────────────────────────

// PriceFeedErrorsTotal counts failed spot price lookups.
// Label:
//   - symbol: the asset symbol (e.g. "BTC")
var PriceFeedErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_feed_errors_total",
		Help:      "Total number of failed market price lookups, by symbol.",
	},
	[]string{"symbol"},
)
