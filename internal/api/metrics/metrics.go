// Package metrics defines and registers the custom Prometheus metrics for
// the e-chart API. It is the single source of truth for metric names,
// labels, and help strings; metrics self-register with the default registry
// via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "echart"

// LoginsTotal counts login attempts by outcome.
// Labels:
//   - result: "success", "wrong_password", "not_found", "invalid", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// LogoutsTotal counts logout attempts by outcome.
// Labels:
//   - result: "success", "not_found", "error"
var LogoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logout attempts, by result.",
	},
	[]string{"result"},
)

// RateLimitedTotal counts requests rejected by the fixed-window limiter.
// Labels:
//   - policy: "read", "write" or "login"
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter, by policy.",
	},
	[]string{"policy"},
)

// TokensIssuedTotal counts access tokens successfully issued.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
)
