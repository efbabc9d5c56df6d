// Package derive implements the bounded derivation engine.
//
// A derivation rewrites the grammar's start variable into a terminal-only
// string by repeatedly replacing the leftmost unexpanded symbol. The naive
// recursive formulation has no termination guarantee on cyclic grammars, so
// the engine runs an explicit work stack with a step budget instead: a
// derivation either completes within the budget or fails with
// domain.ErrGenerationTimeout, never diverging and never returning a
// partial string.
package derive

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/aretw0/sprout/pkg/domain"
)

// Deriver drives derivations over an immutable grammar. It owns its
// randomness source, so a fixed seed yields a reproducible derivation
// sequence. A Deriver is not safe for concurrent use; concurrent callers
// should each own one (see Split).
type Deriver struct {
	rng      *rand.Rand
	maxSteps int
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
}

// Option defines a functional option for configuring the Deriver.
type Option func(*Deriver)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Deriver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(d *Deriver) {
		d.hooks = hooks
	}
}

// New creates a Deriver with an explicitly injected randomness source and a
// step budget. A nil rng gets a fresh, unpredictably seeded generator;
// maxSteps below 1 falls back to DefaultMaxSteps.
func New(rng *rand.Rand, maxSteps int, opts ...Option) *Deriver {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if maxSteps < 1 {
		maxSteps = DefaultMaxSteps
	}
	d := &Deriver{
		rng:      rng,
		maxSteps: maxSteps,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DefaultMaxSteps bounds a derivation when the caller does not choose a
// budget. Grammars produced by the converter emit one terminal per
// expansion, so this also bounds solution length.
const DefaultMaxSteps = 512

// Split returns a new Deriver with the same configuration and an
// independent randomness source seeded from this one. Deriving from the
// parent afterwards is unaffected; the child can run on another goroutine.
func (d *Deriver) Split() *Deriver {
	child := *d
	child.rng = rand.New(rand.NewPCG(d.rng.Uint64(), d.rng.Uint64()))
	return &child
}

// Derive expands the grammar's start variable into a terminal string.
//
// Expansion runs an explicit LIFO work stack seeded with the start
// variable. Popping a terminal appends it to the result; popping a variable
// counts one step, picks one of its alternatives uniformly at random and
// pushes the right-hand side so that its symbols are consumed left to
// right. Exceeding the step budget fails with domain.ErrGenerationTimeout;
// a symbol that is neither variable nor terminal fails with
// domain.ErrUnknownSymbol.
func (d *Deriver) Derive(ctx context.Context, g *domain.Grammar) (domain.String, error) {
	d.emit(ctx, d.hooks.OnDerivationStart, &domain.DerivationEvent{
		Type: domain.EventDerivationStart,
	})

	var out domain.String
	steps := 0
	stack := []domain.Symbol{g.Start()}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sym := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if g.IsTerminal(sym) {
			out = append(out, sym)
			continue
		}
		if !g.IsVariable(sym) {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSymbol, sym)
		}

		steps++
		if steps > d.maxSteps {
			d.logger.Debug("derivation exhausted step budget",
				"max_steps", d.maxSteps,
				"pending", len(stack)+1,
			)
			d.emit(ctx, d.hooks.OnDerivationEnd, &domain.DerivationEvent{
				Type:     domain.EventDerivationEnd,
				Step:     d.maxSteps,
				TimedOut: true,
			})
			return nil, fmt.Errorf("%w: start variable not fully reduced after %d expansions", domain.ErrGenerationTimeout, d.maxSteps)
		}

		d.emit(ctx, d.hooks.OnExpand, &domain.DerivationEvent{
			Type:     domain.EventExpand,
			Variable: sym,
			Step:     steps,
		})

		alt, err := g.Pick(sym, d.rng)
		if err != nil {
			return nil, err
		}
		// Push in reverse so the alternative unwinds left to right. An
		// empty alternative is epsilon and contributes nothing.
		for i := len(alt) - 1; i >= 0; i-- {
			stack = append(stack, alt[i])
		}
	}

	d.logger.Debug("derivation complete", "steps", steps, "length", len(out))
	d.emit(ctx, d.hooks.OnDerivationEnd, &domain.DerivationEvent{
		Type:   domain.EventDerivationEnd,
		Step:   steps,
		Length: len(out),
	})
	return out, nil
}

func (d *Deriver) emit(ctx context.Context, hook func(context.Context, *domain.DerivationEvent), ev *domain.DerivationEvent) {
	if hook == nil {
		return
	}
	ev.Timestamp = time.Now()
	hook(ctx, ev)
}
