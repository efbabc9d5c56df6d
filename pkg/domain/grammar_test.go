package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrammar_Validation(t *testing.T) {
	t.Run("empty variable set", func(t *testing.T) {
		_, err := NewGrammar(nil, []Symbol{"x"}, "S")
		assert.ErrorIs(t, err, ErrInvalidGrammar)
	})

	t.Run("empty terminal set", func(t *testing.T) {
		_, err := NewGrammar([]Symbol{"S"}, nil, "S")
		assert.ErrorIs(t, err, ErrInvalidGrammar)
	})

	t.Run("start outside variables", func(t *testing.T) {
		_, err := NewGrammar([]Symbol{"S"}, []Symbol{"x"}, "T")
		assert.ErrorIs(t, err, ErrInvalidGrammar)
	})

	t.Run("variable terminal overlap", func(t *testing.T) {
		_, err := NewGrammar([]Symbol{"S"}, []Symbol{"S"}, "S")
		assert.ErrorIs(t, err, ErrInvalidGrammar)
	})

	t.Run("every variable gets a table entry", func(t *testing.T) {
		g, err := NewGrammar([]Symbol{"S", "T"}, []Symbol{"x"}, "S")
		require.NoError(t, err)

		alts, ok := g.Alternatives("T")
		assert.True(t, ok)
		assert.Empty(t, alts)
	})
}

func TestGrammar_AddAlternatives(t *testing.T) {
	g, err := NewGrammar([]Symbol{"S", "T"}, []Symbol{"x", "y"}, "S")
	require.NoError(t, err)

	require.NoError(t, g.AddAlternatives("S",
		Alternative{"x", "T"},
		Alternative{"y"},
	))

	alts, ok := g.Alternatives("S")
	require.True(t, ok)
	assert.Len(t, alts, 2)

	t.Run("unknown variable", func(t *testing.T) {
		err := g.AddAlternatives("U", Alternative{"x"})
		assert.ErrorIs(t, err, ErrUnknownSymbol)
	})

	t.Run("unknown symbol in alternative", func(t *testing.T) {
		err := g.AddAlternatives("T", Alternative{"z"})
		assert.ErrorIs(t, err, ErrUnknownSymbol)
	})
}

func TestGrammar_Pick(t *testing.T) {
	g, err := NewGrammar([]Symbol{"S", "dead"}, []Symbol{"x", "y"}, "S")
	require.NoError(t, err)
	require.NoError(t, g.AddAlternatives("S", Alternative{"x"}, Alternative{"y", "S"}))

	t.Run("uniform selection hits every alternative", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(1, 2))
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			alt, err := g.Pick("S", rng)
			require.NoError(t, err)
			seen[String(alt).String()] = true
		}
		assert.True(t, seen["x"])
		assert.True(t, seen["yS"])
	})

	t.Run("reproducible under a fixed seed", func(t *testing.T) {
		a := rand.New(rand.NewPCG(7, 7))
		b := rand.New(rand.NewPCG(7, 7))
		for i := 0; i < 50; i++ {
			altA, errA := g.Pick("S", a)
			altB, errB := g.Pick("S", b)
			require.NoError(t, errA)
			require.NoError(t, errB)
			assert.Equal(t, altA, altB)
		}
	})

	t.Run("unknown variable", func(t *testing.T) {
		_, err := g.Pick("U", rand.New(rand.NewPCG(0, 0)))
		assert.ErrorIs(t, err, ErrUnknownSymbol)
	})

	t.Run("variable without alternatives", func(t *testing.T) {
		_, err := g.Pick("dead", rand.New(rand.NewPCG(0, 0)))
		assert.ErrorIs(t, err, ErrNoAlternatives)
	})
}

func TestSplitAndString(t *testing.T) {
	s := Split("1212")
	assert.Equal(t, String{"1", "2", "1", "2"}, s)
	assert.Equal(t, "1212", s.String())
	assert.Equal(t, "12xy", s[:2].Concat(String{"x", "y"}).String())
}
