// Package metrics exposes derivation lifecycle hooks backed by Prometheus
// collectors, for hosts that scrape the planner's behavior.
package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/sprout/pkg/domain"
)

// Hooks aggregates derivation counters and distributions.
type Hooks struct {
	derivations *prometheus.CounterVec
	expansions  prometheus.Counter
	length      prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Hooks, error) {
	h := &Hooks{
		derivations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sprout_derivations_total",
				Help: "Total number of completed derivations",
			},
			[]string{"outcome"},
		),
		expansions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sprout_expansions_total",
				Help: "Total number of variable expansion steps",
			},
		),
		length: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sprout_solution_length",
				Help:    "Terminal count of successfully derived solutions",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
	}

	for _, c := range []prometheus.Collector{h.derivations, h.expansions, h.length} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return h, nil
}

// Derivations returns the per-outcome derivation counter.
func (h *Hooks) Derivations() *prometheus.CounterVec {
	return h.derivations
}

// Lifecycle returns hooks wired to the collectors, ready to pass to the
// planner.
func (h *Hooks) Lifecycle() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnExpand: func(_ context.Context, _ *domain.DerivationEvent) {
			h.expansions.Inc()
		},
		OnDerivationEnd: func(_ context.Context, e *domain.DerivationEvent) {
			if e.TimedOut {
				h.derivations.WithLabelValues("timeout").Inc()
				return
			}
			h.derivations.WithLabelValues("ok").Inc()
			h.length.Observe(float64(e.Length))
		},
	}
}
