// Package metrics defines and registers all custom Prometheus metrics for
// the Urbanova storefront API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// AuthAttemptsTotal counts signup/login/logout attempts.
// Labels:
//   - op: "signup", "login", or "logout"
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication operations, by op and result.",
	},
	[]string{"op", "result"},
)

// CartOperationsTotal counts cart mutations that completed successfully.
// Label:
//   - op: "add", "update", "remove"
var CartOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_operations_total",
		Help:      "Total number of successful cart mutations, by operation.",
	},
	[]string{"op"},
)

// CartsActive tracks how many carts are currently held in memory.
var CartsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "carts_active",
		Help:      "Number of carts currently open in memory.",
	},
)

// CartsEvictedTotal counts carts removed by the idle sweeper.
var CartsEvictedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "carts_evicted_total",
		Help:      "Total number of idle carts evicted by the sweeper.",
	},
)
