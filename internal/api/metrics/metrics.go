// Package metrics defines the console's Prometheus metrics. All of them are
// registered with the default registry at package init through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// SessionTransitionsTotal counts session store state changes.
// Labels:
//   - state: "authenticated" or "unauthenticated" after the change
//   - reason: boot, login, logout, expired, malformed, incomplete, degraded, profile, tenant, reset
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of session store transitions.",
	},
	[]string{"state", "reason"},
)

// CredentialRejectionsTotal counts credentials refused by the session store.
// Label:
//   - reason: expired, malformed or incomplete
var CredentialRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "credential_rejections_total",
		Help:      "Total number of credentials rejected on boot or login.",
	},
	[]string{"reason"},
)

// UnknownResourceTotal counts resource capability lookups for keywords that
// map to no known permission family. A steady rate points at a misspelt call
// site. The keyword comes from the request, so it is logged, never a label.
var UnknownResourceTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unknown_resource_total",
		Help:      "Total number of capability lookups for unknown resource keywords.",
	},
)

// GuardDenialsTotal counts requests refused by a permission requirement.
var GuardDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_denials_total",
		Help:      "Total number of requests denied by a permission requirement.",
	},
	[]string{"route"},
)

// LoginAttemptsTotal counts login round trips by outcome.
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionAuthenticated is 1 while the store holds a credential.
var SessionAuthenticated = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "session_authenticated",
		Help:      "Whether the console session is currently authenticated.",
	},
)

var rejectionReasons = map[string]bool{"expired": true, "malformed": true, "incomplete": true}

// ObserveTransition records one session store transition. Its signature
// matches session.TransitionFunc.
func ObserveTransition(authenticated bool, reason string) {
	state := "unauthenticated"
	if authenticated {
		state = "authenticated"
	}
	SessionTransitionsTotal.WithLabelValues(state, reason).Inc()
	SessionAuthenticated.Set(boolGauge(authenticated))
	if rejectionReasons[reason] {
		CredentialRejectionsTotal.WithLabelValues(reason).Inc()
	}
}

// ObserveUnknownResource records a lookup for an unknown keyword.
func ObserveUnknownResource() {
	UnknownResourceTotal.Inc()
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
