// Package metrics defines and registers all custom Prometheus metrics for the
// benefits portal. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts credential login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of credential login attempts, by result.",
	},
	[]string{"result"},
)

// GuardDecisionsTotal counts route-guard outcomes per navigation.
// Label:
//   - decision: "render", "login_redirect" or "forbidden_redirect"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route-guard decisions, by outcome.",
	},
	[]string{"decision"},
)

// RoleUpdatesTotal counts role assignments made on the user-management view.
// Label:
//   - role: the newly assigned role tag
var RoleUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_updates_total",
		Help:      "Total number of role updates, by assigned role.",
	},
	[]string{"role"},
)

// RegistrationsTotal counts accounts created through self-registration.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of self-registered accounts.",
	},
)

// SessionActive reports whether the portal instance currently holds a bound
// session (1) or is anonymous (0).
var SessionActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "session_active",
		Help:      "Whether a session is currently bound (1) or anonymous (0).",
	},
)
