// Package metrics defines and registers the custom Prometheus metrics of the
// sandbox API. It is the single source of truth for metric names, labels and
// help strings. Metrics register with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sandbox"

// ── Tenant metrics ────────────────────────────────────────────────────────────

// SignupsTotal counts signup attempts.
// Label:
//   - result: "created", "existing", "invalid" or "failed"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of sandbox signups, by result.",
	},
	[]string{"result"},
)

// SignupDuration measures signup end-to-end, seeding included.
var SignupDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "signup_duration_seconds",
		Help:      "Duration of tenant signup including mock data seeding.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// TokensIssuedTotal counts bearer tokens minted.
// Label:
//   - type: "v1" or "v2"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued, by protocol generation.",
	},
	[]string{"type"},
)

// AuthFailuresTotal counts rejected credentials and tokens.
// Label:
//   - flow: "v1_login", "v2_token", "bearer" or "admin"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of authentication failures, by flow.",
	},
	[]string{"flow"},
)

// ── Rate limit metrics ────────────────────────────────────────────────────────

// RateLimitedTotal counts requests rejected by a rate-limit policy.
// Label:
//   - policy: "api" or "signup"
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by rate limiting, by policy.",
	},
	[]string{"policy"},
)

// ── Webhook metrics ───────────────────────────────────────────────────────────

// WebhookDeliveriesTotal counts outbound test deliveries.
// Label:
//   - result: "delivered", "failed" or "dropped"
var WebhookDeliveriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_deliveries_total",
		Help:      "Total number of webhook deliveries, by result.",
	},
	[]string{"result"},
)

// WebhookQueueDepth tracks deliveries waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var WebhookQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "webhook_queue_depth",
		Help:      "Current number of deliveries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Data metrics ──────────────────────────────────────────────────────────────

// ReportsServedTotal counts saved report downloads.
// Labels:
//   - report_id: "1001", "1002" or "1003"
//   - format: "json" or "csv"
var ReportsServedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_served_total",
		Help:      "Total number of saved reports served, by report and format.",
	},
	[]string{"report_id", "format"},
)
