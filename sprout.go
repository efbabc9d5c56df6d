package sprout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/aretw0/sprout/internal/convert"
	"github.com/aretw0/sprout/internal/derive"
	"github.com/aretw0/sprout/internal/logging"
	"github.com/aretw0/sprout/pkg/domain"
)

// Planner is the high-level entry point for the Sprout library.
// It converts a planning automaton into an equivalent grammar once, then
// derives candidate solutions from it on demand.
type Planner struct {
	automaton *domain.Automaton
	grammar   *domain.Grammar
	deriver   *derive.Deriver

	rng      *rand.Rand
	maxSteps int
	retries  int
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Planner.
type Option func(*Planner)

// WithLogger sets a custom structured logger for the planner.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) {
		p.logger = logger
	}
}

// WithRand injects the randomness source used for alternative selection.
// Derivations are reproducible given the same source state.
func WithRand(rng *rand.Rand) Option {
	return func(p *Planner) {
		p.rng = rng
	}
}

// WithSeed is shorthand for WithRand with a PCG generator at a fixed seed.
func WithSeed(seed1, seed2 uint64) Option {
	return func(p *Planner) {
		p.rng = rand.New(rand.NewPCG(seed1, seed2))
	}
}

// WithMaxSteps bounds the number of variable expansions per derivation
// (default derive.DefaultMaxSteps). A derivation that exhausts the budget
// fails with domain.ErrGenerationTimeout.
func WithMaxSteps(n int) Option {
	return func(p *Planner) {
		p.maxSteps = n
	}
}

// WithRetries makes Plan re-derive up to n extra times after a timeout.
// Each retry draws fresh random selections, so it is independent of the
// failed attempt and may terminate sooner. Default is 0 (propagate).
func WithRetries(n int) Option {
	return func(p *Planner) {
		p.retries = n
	}
}

// WithLifecycleHooks registers observability hooks fired on every
// derivation.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Planner) {
		p.hooks = hooks
	}
}

// New converts the automaton into a grammar and initializes a Planner.
// The automaton is read once during conversion and never mutated; the
// resulting grammar is immutable, so a Planner may be shared as long as
// derivation calls themselves are not concurrent (see PlanManyConcurrent
// for parallel generation).
func New(a *domain.Automaton, opts ...Option) (*Planner, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil automaton", domain.ErrInvalidAutomaton)
	}

	p := &Planner{
		automaton: a,
		maxSteps:  derive.DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logging.NewNop()
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if p.retries < 0 {
		return nil, fmt.Errorf("retries must be non-negative, got %d", p.retries)
	}

	g, err := convert.FromAutomaton(a)
	if err != nil {
		return nil, fmt.Errorf("failed to convert automaton: %w", err)
	}
	p.grammar = g
	p.deriver = derive.New(p.rng, p.maxSteps,
		derive.WithLogger(p.logger),
		derive.WithLifecycleHooks(p.hooks),
	)

	p.logger.Debug("planner initialized",
		"states", len(a.States()),
		"alphabet", len(a.Alphabet()),
		"max_steps", p.maxSteps,
	)
	return p, nil
}

// FromGrammar initializes a Planner over a hand-authored grammar, skipping
// automaton conversion. Fill the grammar's production table completely
// before calling; the planner treats it as immutable. Verify is unavailable
// on a grammar-only planner since there is no automaton to check against.
func FromGrammar(g *domain.Grammar, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grammar", domain.ErrInvalidGrammar)
	}

	p := &Planner{
		grammar:  g,
		maxSteps: derive.DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logging.NewNop()
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if p.retries < 0 {
		return nil, fmt.Errorf("retries must be non-negative, got %d", p.retries)
	}

	p.deriver = derive.New(p.rng, p.maxSteps,
		derive.WithLogger(p.logger),
		derive.WithLifecycleHooks(p.hooks),
	)
	return p, nil
}

// Plan derives one candidate solution. Every returned string is a member of
// the automaton's language, i.e. a feasible action sequence from the start
// state to a goal state. Timeouts are retried per WithRetries; other errors
// surface immediately.
func (p *Planner) Plan(ctx context.Context) (domain.String, error) {
	return p.plan(ctx, p.deriver)
}

func (p *Planner) plan(ctx context.Context, d *derive.Deriver) (domain.String, error) {
	var err error
	for attempt := 0; attempt <= p.retries; attempt++ {
		var s domain.String
		s, err = d.Derive(ctx, p.grammar)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, domain.ErrGenerationTimeout) {
			return nil, err
		}
		p.logger.Debug("derivation timed out", "attempt", attempt+1)
	}
	return nil, err
}

// PlanMany derives count independent candidate solutions sequentially.
func (p *Planner) PlanMany(ctx context.Context, count int) ([]domain.String, error) {
	out := make([]domain.String, 0, count)
	for i := 0; i < count; i++ {
		s, err := p.Plan(ctx)
		if err != nil {
			return nil, fmt.Errorf("derivation %d of %d: %w", i+1, count, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// PlanManyConcurrent derives count candidate solutions across the given
// number of worker goroutines. Each derivation owns an independent
// randomness source split deterministically from the planner's, so results
// are reproducible for a fixed seed regardless of scheduling.
func (p *Planner) PlanManyConcurrent(ctx context.Context, count, workers int) ([]domain.String, error) {
	if workers < 1 {
		workers = 1
	}
	if workers > count {
		workers = count
	}

	// Split one deriver per derivation up front; splitting consumes the
	// parent RNG in a deterministic order.
	derivers := make([]*derive.Deriver, count)
	for i := range derivers {
		derivers[i] = p.deriver.Split()
	}

	out := make([]domain.String, count)
	errs := make([]error, count)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i], errs[i] = p.plan(ctx, derivers[i])
			}
		}()
	}
	for i := 0; i < count; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("derivation %d of %d: %w", i+1, count, err)
		}
	}
	return out, nil
}

// ShortestOf derives count candidates and returns the shortest one. This is
// plain selection by length among feasible solutions, not an optimality
// search.
func (p *Planner) ShortestOf(ctx context.Context, count int) (domain.String, error) {
	if count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	candidates, err := p.PlanMany(ctx, count)
	if err != nil {
		return nil, err
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c) < len(best) {
			best = c
		}
	}
	return best, nil
}

// Verify reports whether s is accepted by the underlying automaton. It
// works for any string, generated or externally supplied.
func (p *Planner) Verify(s domain.String) (bool, error) {
	if p.automaton == nil {
		return false, fmt.Errorf("%w: planner built from a grammar has no automaton", domain.ErrInvalidAutomaton)
	}
	return p.automaton.Has(s)
}

// Grammar returns the converted grammar for inspection. Callers must not
// mutate it.
func (p *Planner) Grammar() *domain.Grammar {
	return p.grammar
}

// Automaton returns the underlying automaton.
func (p *Planner) Automaton() *domain.Automaton {
	return p.automaton
}
