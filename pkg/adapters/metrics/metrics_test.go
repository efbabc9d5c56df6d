package metrics_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sprout"
	"github.com/aretw0/sprout/internal/testutils"
	"github.com/aretw0/sprout/pkg/adapters/metrics"
	"github.com/aretw0/sprout/pkg/domain"
)

func TestHooks_CountDerivations(t *testing.T) {
	reg := prometheus.NewRegistry()
	hooks, err := metrics.New(reg)
	require.NoError(t, err)

	a := testutils.GridAutomaton(t, 3, 3)
	p, err := sprout.New(a,
		sprout.WithSeed(6, 6),
		sprout.WithRetries(50),
		sprout.WithLifecycleHooks(hooks.Lifecycle()),
	)
	require.NoError(t, err)

	plans, err := p.PlanMany(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, plans, 10)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["sprout_derivations_total"])
	assert.True(t, names["sprout_expansions_total"])
	assert.True(t, names["sprout_solution_length"])

	ok := testutil.ToFloat64(hooks.Derivations().WithLabelValues("ok"))
	assert.GreaterOrEqual(t, ok, 10.0)
}

func TestHooks_CountTimeouts(t *testing.T) {
	reg := prometheus.NewRegistry()
	hooks, err := metrics.New(reg)
	require.NoError(t, err)

	// Crossing a 5x5 grid takes at least 8 moves; a 2-step budget always
	// times out.
	a := testutils.GridAutomaton(t, 5, 5)
	p, err := sprout.New(a,
		sprout.WithSeed(6, 6),
		sprout.WithMaxSteps(2),
		sprout.WithLifecycleHooks(hooks.Lifecycle()),
	)
	require.NoError(t, err)

	_, err = p.Plan(context.Background())
	require.ErrorIs(t, err, domain.ErrGenerationTimeout)

	timeouts := testutil.ToFloat64(hooks.Derivations().WithLabelValues("timeout"))
	assert.Equal(t, 1.0, timeouts)
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)

	_, err = metrics.New(reg)
	assert.Error(t, err)
}
