// Package gridworld models grid-navigation planning problems as automata.
//
// A grid of width x height cells becomes a state set with one state per
// cell; the four movement actions become the alphabet. Moves that would
// leave the grid are self-loops, keeping the transition function total.
package gridworld

import (
	"fmt"

	"github.com/aretw0/sprout/pkg/domain"
)

// Cell addresses a grid position. (0,0) is the top-left corner; X grows to
// the right and Y grows downward.
type Cell struct {
	X int
	Y int
}

// State returns the cell's identity in the automaton's state set.
func (c Cell) State() domain.State {
	return domain.State(fmt.Sprintf("%d,%d", c.X, c.Y))
}

// Moves holds the four action symbols in up, right, down, left order.
type Moves [4]domain.Symbol

// DefaultMoves numbers the actions 0..3 (up, right, down, left).
var DefaultMoves = Moves{"0", "1", "2", "3"}

// Option configures the grid model.
type Option func(*builder)

type builder struct {
	moves Moves
}

// WithMoves replaces the default action symbols, e.g. compass labels
// N/E/S/W.
func WithMoves(moves Moves) Option {
	return func(b *builder) {
		b.moves = moves
	}
}

// New builds the automaton for navigating a width x height grid from start
// to any of the goal cells.
func New(width, height int, start Cell, goals []Cell, opts ...Option) (*domain.Automaton, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: grid %dx%d has no cells", domain.ErrInvalidAutomaton, width, height)
	}
	if !inBounds(start, width, height) {
		return nil, fmt.Errorf("%w: start cell %v outside %dx%d grid", domain.ErrInvalidAutomaton, start, width, height)
	}
	for _, g := range goals {
		if !inBounds(g, width, height) {
			return nil, fmt.Errorf("%w: goal cell %v outside %dx%d grid", domain.ErrInvalidAutomaton, g, width, height)
		}
	}

	b := &builder{moves: DefaultMoves}
	for _, opt := range opts {
		opt(b)
	}

	states := make([]domain.State, 0, width*height)
	table := make(map[domain.State]map[domain.Symbol]domain.State, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := Cell{X: x, Y: y}
			states = append(states, cell.State())

			row := make(map[domain.Symbol]domain.State, len(b.moves))
			for dir, sym := range b.moves {
				next := step(cell, dir)
				if !inBounds(next, width, height) {
					next = cell
				}
				row[sym] = next.State()
			}
			table[cell.State()] = row
		}
	}

	final := make([]domain.State, 0, len(goals))
	for _, g := range goals {
		final = append(final, g.State())
	}

	transition := func(s domain.State, sym domain.Symbol) domain.State {
		return table[s][sym]
	}
	return domain.NewAutomaton(states, b.moves[:], transition, start.State(), final)
}

func inBounds(c Cell, width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// step moves one cell in the direction indexed by dir (up, right, down,
// left), without bounds checking.
func step(c Cell, dir int) Cell {
	switch dir {
	case 0:
		return Cell{X: c.X, Y: c.Y - 1}
	case 1:
		return Cell{X: c.X + 1, Y: c.Y}
	case 2:
		return Cell{X: c.X, Y: c.Y + 1}
	default:
		return Cell{X: c.X - 1, Y: c.Y}
	}
}
