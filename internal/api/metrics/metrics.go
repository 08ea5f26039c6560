// Package metrics defines and registers all custom Prometheus metrics for the
// event console API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SessionRestoresTotal counts session restore attempts made by the auth
// middleware.
// Label:
//   - result: "hit" (session found), "miss" (absent or discarded), or
//     "error" (store unavailable)
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restore attempts, labelled by result.",
	},
	[]string{"result"},
)

// AccessDeniedTotal counts requests rejected by role checks.
// Label:
//   - role: the role the rejected session carried
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests denied by role-based access control.",
	},
	[]string{"role"},
)

// DraftSubmissionsTotal counts wizard submissions.
// Labels:
//   - kind: "event" or "vendor"
//   - result: "created", "rejected" (validation), or "failed" (persistence)
var DraftSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "draft_submissions_total",
		Help:      "Total number of wizard draft submissions, labelled by kind and result.",
	},
	[]string{"kind", "result"},
)
