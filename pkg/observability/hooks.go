package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/sprout/pkg/domain"
)

// NewLoggingHooks returns lifecycle hooks that emit one structured log
// record per derivation event. Expansion events log at Debug since they
// fire once per step; start and end events log at Info.
func NewLoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDerivationStart: func(ctx context.Context, e *domain.DerivationEvent) {
			logger.InfoContext(ctx, "derivation_start")
		},
		OnExpand: func(ctx context.Context, e *domain.DerivationEvent) {
			logger.DebugContext(ctx, "expand",
				"variable", string(e.Variable),
				"step", e.Step,
			)
		},
		OnDerivationEnd: func(ctx context.Context, e *domain.DerivationEvent) {
			logger.InfoContext(ctx, "derivation_end",
				"steps", e.Step,
				"length", e.Length,
				"timed_out", e.TimedOut,
			)
		},
	}
}

// Merge chains multiple hook sets; every non-nil callback runs in argument
// order.
func Merge(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDerivationStart: merged(hooks, func(h domain.LifecycleHooks) func(context.Context, *domain.DerivationEvent) {
			return h.OnDerivationStart
		}),
		OnExpand: merged(hooks, func(h domain.LifecycleHooks) func(context.Context, *domain.DerivationEvent) {
			return h.OnExpand
		}),
		OnDerivationEnd: merged(hooks, func(h domain.LifecycleHooks) func(context.Context, *domain.DerivationEvent) {
			return h.OnDerivationEnd
		}),
	}
}

func merged(hooks []domain.LifecycleHooks, pick func(domain.LifecycleHooks) func(context.Context, *domain.DerivationEvent)) func(context.Context, *domain.DerivationEvent) {
	var callbacks []func(context.Context, *domain.DerivationEvent)
	for _, h := range hooks {
		if cb := pick(h); cb != nil {
			callbacks = append(callbacks, cb)
		}
	}
	if len(callbacks) == 0 {
		return nil
	}
	return func(ctx context.Context, e *domain.DerivationEvent) {
		for _, cb := range callbacks {
			cb(ctx, e)
		}
	}
}
