// Package metrics defines and registers all custom Prometheus metrics for the
// users API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time;
// the /metrics route is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "users"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure" (failures are not broken down further;
//     the cause is deliberately indistinguishable)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account creations by outcome.
// Label:
//   - result: "created" or "duplicate"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// OperationsTotal counts authenticated lifecycle operations.
// Label:
//   - op: "get_me", "update_email", "delete", "list_all"
var OperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "Total number of authenticated user operations, by operation.",
	},
	[]string{"op"},
)
