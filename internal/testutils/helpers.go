package testutils

import (
	"testing"

	"github.com/aretw0/sprout/internal/convert"
	"github.com/aretw0/sprout/pkg/adapters/gridworld"
	"github.com/aretw0/sprout/pkg/domain"
	"github.com/stretchr/testify/require"
)

// GridAutomaton builds a width x height grid automaton starting at the
// top-left cell with the bottom-right cell as the single goal. Actions are
// numbered 0..3 (up, right, down, left). It fails the test immediately on
// error.
func GridAutomaton(t *testing.T, width, height int) *domain.Automaton {
	t.Helper()

	a, err := gridworld.New(width, height,
		gridworld.Cell{X: 0, Y: 0},
		[]gridworld.Cell{{X: width - 1, Y: height - 1}},
	)
	require.NoError(t, err, "failed to build grid automaton")
	return a
}

// GridGrammar converts GridAutomaton's result for tests that exercise the
// derivation side directly.
func GridGrammar(t *testing.T, width, height int) (*domain.Automaton, *domain.Grammar) {
	t.Helper()

	a := GridAutomaton(t, width, height)
	g, err := convert.FromAutomaton(a)
	require.NoError(t, err, "failed to convert grid automaton")
	return a, g
}
