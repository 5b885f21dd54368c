// Package metrics defines and registers all custom Prometheus metrics for the
// members API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "members"

// AuthAttemptsTotal counts bearer authentication outcomes.
// Label:
//   - result: "ok", "malformed_header", "invalid", "expired", "user_not_found",
//     "permission_denied", "unavailable"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of bearer token authentication attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts password login outcomes.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of password logins, by result.",
	},
	[]string{"result"},
)

// MaterialRequestsTotal counts material resolution outcomes per discipline.
// Labels:
//   - discipline: requested catalog name
//   - result: "ok", "forbidden", "not_found", "error"
var MaterialRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "material_requests_total",
		Help:      "Total number of material catalog resolutions, by discipline and result.",
	},
	[]string{"discipline", "result"},
)

// MaterialItemsReturned observes how many items each successful resolution
// released, per discipline.
var MaterialItemsReturned = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "material_items_returned",
		Help:      "Number of material items released per successful resolution.",
		Buckets:   prometheus.LinearBuckets(0, 5, 8), // 0..35
	},
	[]string{"discipline"},
)
