// Package yamlmodel loads planning-problem definitions from YAML documents
// and materializes them as automata.
//
// Two kinds are supported: "table" spells out an explicit transition table,
// "grid" delegates to the gridworld modeler. The decoded definition is only
// construction input; nothing is ever written back.
package yamlmodel

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/sprout/pkg/adapters/gridworld"
	"github.com/aretw0/sprout/pkg/domain"
)

// ErrInvalidDefinition is returned when a document is syntactically valid
// YAML but does not describe a well-formed planning problem.
var ErrInvalidDefinition = errors.New("invalid problem definition")

// Definition is the top-level document shape.
type Definition struct {
	Kind  string    `mapstructure:"kind"`
	Table *TableDef `mapstructure:"table"`
	Grid  *GridDef  `mapstructure:"grid"`
}

// TableDef declares an automaton by its explicit transition table. The
// table must be total: exactly one row per (state, symbol) pair.
type TableDef struct {
	States      []string        `mapstructure:"states"`
	Alphabet    []string        `mapstructure:"alphabet"`
	Start       string          `mapstructure:"start"`
	Final       []string        `mapstructure:"final"`
	Transitions []TransitionDef `mapstructure:"transitions"`
}

// TransitionDef is one row of the transition table.
type TransitionDef struct {
	From string `mapstructure:"from"`
	On   string `mapstructure:"on"`
	To   string `mapstructure:"to"`
}

// GridDef declares a grid-navigation problem for the gridworld modeler.
type GridDef struct {
	Width  int       `mapstructure:"width"`
	Height int       `mapstructure:"height"`
	Start  CellDef   `mapstructure:"start"`
	Goals  []CellDef `mapstructure:"goals"`
	Moves  []string  `mapstructure:"moves"`
}

// CellDef addresses a grid cell.
type CellDef struct {
	X int `mapstructure:"x"`
	Y int `mapstructure:"y"`
}

// Parse decodes a YAML document and builds the automaton it describes.
func Parse(data []byte) (*domain.Automaton, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse problem YAML: %w", err)
	}

	var def Definition
	if err := mapstructure.Decode(raw, &def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}

	switch def.Kind {
	case "table":
		if def.Table == nil {
			return nil, fmt.Errorf("%w: kind \"table\" without a table block", ErrInvalidDefinition)
		}
		return buildTable(def.Table)
	case "grid":
		if def.Grid == nil {
			return nil, fmt.Errorf("%w: kind \"grid\" without a grid block", ErrInvalidDefinition)
		}
		return buildGrid(def.Grid)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidDefinition, def.Kind)
	}
}

// Load reads a YAML file and builds the automaton it describes.
func Load(path string) (*domain.Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem definition: %w", err)
	}
	return Parse(data)
}

func buildTable(def *TableDef) (*domain.Automaton, error) {
	states := make([]domain.State, 0, len(def.States))
	inStates := make(map[domain.State]struct{}, len(def.States))
	for _, s := range def.States {
		states = append(states, domain.State(s))
		inStates[domain.State(s)] = struct{}{}
	}
	alphabet := make([]domain.Symbol, 0, len(def.Alphabet))
	inAlphabet := make(map[domain.Symbol]struct{}, len(def.Alphabet))
	for _, sym := range def.Alphabet {
		alphabet = append(alphabet, domain.Symbol(sym))
		inAlphabet[domain.Symbol(sym)] = struct{}{}
	}

	table := make(map[domain.State]map[domain.Symbol]domain.State, len(states))
	for _, row := range def.Transitions {
		from, on, to := domain.State(row.From), domain.Symbol(row.On), domain.State(row.To)
		if _, ok := inStates[from]; !ok {
			return nil, fmt.Errorf("%w: transition from undeclared state %q", ErrInvalidDefinition, row.From)
		}
		if _, ok := inAlphabet[on]; !ok {
			return nil, fmt.Errorf("%w: transition on undeclared symbol %q", ErrInvalidDefinition, row.On)
		}
		if _, ok := inStates[to]; !ok {
			return nil, fmt.Errorf("%w: transition to undeclared state %q", ErrInvalidDefinition, row.To)
		}
		if table[from] == nil {
			table[from] = make(map[domain.Symbol]domain.State, len(alphabet))
		}
		if _, dup := table[from][on]; dup {
			return nil, fmt.Errorf("%w: duplicate transition (%q, %q)", ErrInvalidDefinition, row.From, row.On)
		}
		table[from][on] = to
	}

	// Totality check up front, so gaps surface at load time instead of as
	// undefined transitions during verification.
	for _, s := range states {
		for _, sym := range alphabet {
			if _, ok := table[s][sym]; !ok {
				return nil, fmt.Errorf("%w: missing transition (%q, %q)", ErrInvalidDefinition, s, sym)
			}
		}
	}

	final := make([]domain.State, 0, len(def.Final))
	for _, f := range def.Final {
		final = append(final, domain.State(f))
	}

	transition := func(s domain.State, sym domain.Symbol) domain.State {
		return table[s][sym]
	}
	return domain.NewAutomaton(states, alphabet, transition, domain.State(def.Start), final)
}

func buildGrid(def *GridDef) (*domain.Automaton, error) {
	goals := make([]gridworld.Cell, 0, len(def.Goals))
	for _, g := range def.Goals {
		goals = append(goals, gridworld.Cell{X: g.X, Y: g.Y})
	}

	var opts []gridworld.Option
	if len(def.Moves) > 0 {
		if len(def.Moves) != 4 {
			return nil, fmt.Errorf("%w: moves needs exactly 4 symbols, got %d", ErrInvalidDefinition, len(def.Moves))
		}
		var moves gridworld.Moves
		for i, m := range def.Moves {
			moves[i] = domain.Symbol(m)
		}
		opts = append(opts, gridworld.WithMoves(moves))
	}

	return gridworld.New(def.Width, def.Height,
		gridworld.Cell{X: def.Start.X, Y: def.Start.Y},
		goals, opts...)
}
