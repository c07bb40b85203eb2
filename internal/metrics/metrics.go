// Package metrics defines and registers all custom Prometheus metrics for
// the coffee-shop back office. It is the single source of truth for metric
// names, labels, and help strings. Metrics register themselves with the
// default registry via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "coffeeshop"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", or "disabled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsActive tracks sessions created minus sessions logged out. It does
// not observe TTL expiry, so it drifts high on abandoned sessions.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Approximate number of live sessions (logins minus logouts).",
	},
)

// SessionCapHitsTotal counts logins that found the user already at the
// concurrent-session cap. The cap is advisory: these logins still succeed.
var SessionCapHitsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_cap_hits_total",
		Help:      "Total number of logins performed while the user was at the session cap.",
	},
)

// CoffeeMutationsTotal counts successful menu writes.
// Label:
//   - op: "create", "update", or "delete"
var CoffeeMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "coffee_mutations_total",
		Help:      "Total number of successful coffee menu mutations, by operation.",
	},
	[]string{"op"},
)

// AuthzDeniedTotal counts requests rejected by the authorization table.
// Label:
//   - reason: "unauthenticated" or "forbidden"
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of requests denied by the authorization policy.",
	},
	[]string{"reason"},
)
