package sprout_test

import (
	"context"
	"testing"

	"github.com/aretw0/sprout"
	"github.com/aretw0/sprout/internal/testutils"
	"github.com/aretw0/sprout/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	t.Run("nil automaton", func(t *testing.T) {
		_, err := sprout.New(nil)
		assert.ErrorIs(t, err, domain.ErrInvalidAutomaton)
	})

	t.Run("negative retries", func(t *testing.T) {
		a := testutils.GridAutomaton(t, 2, 2)
		_, err := sprout.New(a, sprout.WithRetries(-1))
		assert.Error(t, err)
	})
}

// TestPlan_GridScenario pins the worked example: a 3x3 grid, actions 0..3
// (up, right, down, left), start (0,0), goal (2,2), out-of-bounds moves
// self-looping. Every generated plan must be accepted by the automaton.
func TestPlan_GridScenario(t *testing.T) {
	a := testutils.GridAutomaton(t, 3, 3)
	p, err := sprout.New(a,
		sprout.WithSeed(2024, 7),
		sprout.WithMaxSteps(50),
		sprout.WithRetries(100),
	)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 1000; i++ {
		s, err := p.Plan(ctx)
		require.NoError(t, err)

		ok, err := p.Verify(s)
		require.NoError(t, err)
		assert.True(t, ok, "trial %d: plan %q not accepted", i, s)
		assert.LessOrEqual(t, len(s), 50)
	}

	t.Run("known strings", func(t *testing.T) {
		ok, err := p.Verify(domain.Split("1212"))
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = p.Verify(domain.Split("11"))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestPlan_Reproducible(t *testing.T) {
	a := testutils.GridAutomaton(t, 3, 3)
	ctx := context.Background()

	first, err := sprout.New(a, sprout.WithSeed(1, 2))
	require.NoError(t, err)
	second, err := sprout.New(a, sprout.WithSeed(1, 2))
	require.NoError(t, err)

	plansA, err := first.PlanMany(ctx, 20)
	require.NoError(t, err)
	plansB, err := second.PlanMany(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, plansA, plansB)
}

func TestPlanManyConcurrent(t *testing.T) {
	a := testutils.GridAutomaton(t, 3, 3)
	ctx := context.Background()

	p, err := sprout.New(a, sprout.WithSeed(5, 5), sprout.WithRetries(20))
	require.NoError(t, err)

	plans, err := p.PlanManyConcurrent(ctx, 64, 8)
	require.NoError(t, err)
	require.Len(t, plans, 64)
	for i, s := range plans {
		ok, err := p.Verify(s)
		require.NoError(t, err)
		assert.True(t, ok, "plan %d: %q not accepted", i, s)
	}

	t.Run("reproducible regardless of scheduling", func(t *testing.T) {
		q, err := sprout.New(a, sprout.WithSeed(5, 5), sprout.WithRetries(20))
		require.NoError(t, err)

		again, err := q.PlanManyConcurrent(ctx, 64, 3)
		require.NoError(t, err)
		assert.Equal(t, plans, again)
	})
}

func TestShortestOf(t *testing.T) {
	a := testutils.GridAutomaton(t, 3, 3)
	ctx := context.Background()

	p, err := sprout.New(a, sprout.WithSeed(9, 1), sprout.WithRetries(20))
	require.NoError(t, err)

	best, err := p.ShortestOf(ctx, 200)
	require.NoError(t, err)

	ok, err := p.Verify(best)
	require.NoError(t, err)
	assert.True(t, ok)

	// The shortest path from (0,0) to (2,2) takes four moves; 200 samples
	// practically always find one.
	assert.GreaterOrEqual(t, len(best), 4)

	t.Run("invalid count", func(t *testing.T) {
		_, err := p.ShortestOf(ctx, 0)
		assert.Error(t, err)
	})
}

func TestPlan_TimeoutPropagates(t *testing.T) {
	// Crossing a 5x5 grid takes at least 8 moves, so a 2-step budget with
	// no retries must surface the timeout sentinel.
	a := testutils.GridAutomaton(t, 5, 5)
	p, err := sprout.New(a, sprout.WithSeed(3, 3), sprout.WithMaxSteps(2))
	require.NoError(t, err)

	_, err = p.Plan(context.Background())
	assert.ErrorIs(t, err, domain.ErrGenerationTimeout)
}
