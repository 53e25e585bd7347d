// Package metrics defines and registers the custom Prometheus metrics for the
// storefront API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry on package init through
// promauto, so importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts register and login attempts.
// Labels:
//   - action: "register" or "login"
//   - result: "success", "rejected" (bad input or credentials) or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by action and result.",
	},
	[]string{"action", "result"},
)

// AccessDeniedTotal counts requests stopped by the access gates.
// Label:
//   - reason: "unauthenticated" (401) or "forbidden" (403)
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts newly placed orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created.",
	},
)

// ── Payment metrics ───────────────────────────────────────────────────────────

// PaymentsTotal counts checkout outcomes.
// Label:
//   - result: "captured", "declined", "duplicate", "unavailable" or "error"
var PaymentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_total",
		Help:      "Total number of checkout attempts, by result.",
	},
	[]string{"result"},
)

// PaymentDuration measures the round trip to the payment gateway.
var PaymentDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "payment_duration_seconds",
		Help:      "Duration of checkout requests including the gateway call.",
		Buckets:   prometheus.DefBuckets,
	},
)
