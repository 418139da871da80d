// Package metrics defines and registers all custom Prometheus metrics for the
// glossary API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at package
// initialisation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "glossary"

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

// RegisterSessionsActive installs a gauge reporting the current number of
// live sessions, read from the session store on scrape. Call once at startup.
func RegisterSessionsActive(count func() float64) {
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Current number of live sessions.",
		},
		count,
	)
}

// ItemMutationsTotal counts item writes that passed the admin gate.
// Label:
//   - operation: "create" or "update"
var ItemMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "item_mutations_total",
		Help:      "Total number of item create and update operations.",
	},
	[]string{"operation"},
)
