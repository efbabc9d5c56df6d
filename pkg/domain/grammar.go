package domain

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Alternative is one right-hand side of a production rule: the sequence of
// symbols a variable may be replaced with. An empty Alternative is epsilon,
// the empty string, meaning the derivation may stop here.
//
// Grammars produced by the converter are right-linear: every alternative is
// either a single terminal (the transition target was accepting) or a
// terminal followed by one variable. Hand-authored grammars may use
// right-hand sides of any shape.
type Alternative []Symbol

// Grammar is a context-free production system. The production table maps
// each variable to its list of alternatives; selection among alternatives is
// the only non-determinism and happens per call via Pick.
//
// The table is built eagerly: every variable holds a key even if it
// (degenerately) has zero alternatives. Once fully built, a Grammar must not
// be mutated; derivations only read it, so concurrent derivation is safe.
type Grammar struct {
	variables   map[Symbol]struct{}
	terminals   map[Symbol]struct{}
	productions map[Symbol][]Alternative
	start       Symbol
}

// NewGrammar validates the definition and builds a Grammar with an empty
// alternative list for every variable. Populate it with AddAlternatives
// before deriving.
func NewGrammar(variables, terminals []Symbol, start Symbol) (*Grammar, error) {
	if len(variables) == 0 {
		return nil, fmt.Errorf("%w: empty variable set", ErrInvalidGrammar)
	}
	if len(terminals) == 0 {
		return nil, fmt.Errorf("%w: empty terminal set", ErrInvalidGrammar)
	}

	g := &Grammar{
		variables:   make(map[Symbol]struct{}, len(variables)),
		terminals:   make(map[Symbol]struct{}, len(terminals)),
		productions: make(map[Symbol][]Alternative, len(variables)),
		start:       start,
	}
	for _, v := range variables {
		if v == "" {
			return nil, fmt.Errorf("%w: empty variable symbol", ErrInvalidGrammar)
		}
		g.variables[v] = struct{}{}
		g.productions[v] = []Alternative{}
	}
	for _, t := range terminals {
		if t == "" {
			return nil, fmt.Errorf("%w: empty terminal symbol", ErrInvalidGrammar)
		}
		if _, ok := g.variables[t]; ok {
			return nil, fmt.Errorf("%w: symbol %q is both variable and terminal", ErrInvalidGrammar, t)
		}
		g.terminals[t] = struct{}{}
	}
	if _, ok := g.variables[start]; !ok {
		return nil, fmt.Errorf("%w: start symbol %q not in variable set", ErrInvalidGrammar, start)
	}
	return g, nil
}

// AddAlternatives appends right-hand sides to a variable's alternative list.
// Every symbol of every alternative must already be a variable or terminal
// of the grammar.
func (g *Grammar) AddAlternatives(v Symbol, alts ...Alternative) error {
	if _, ok := g.variables[v]; !ok {
		return fmt.Errorf("%w: %q is not a variable", ErrUnknownSymbol, v)
	}
	for _, alt := range alts {
		for _, sym := range alt {
			if !g.IsVariable(sym) && !g.IsTerminal(sym) {
				return fmt.Errorf("%w: %q in alternative for %q", ErrUnknownSymbol, sym, v)
			}
		}
	}
	g.productions[v] = append(g.productions[v], alts...)
	return nil
}

// Start returns the start variable.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Variables returns the variable set in sorted order.
func (g *Grammar) Variables() []Symbol {
	out := make([]Symbol, 0, len(g.variables))
	for v := range g.variables {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Terminals returns the terminal set in sorted order.
func (g *Grammar) Terminals() []Symbol {
	out := make([]Symbol, 0, len(g.terminals))
	for t := range g.terminals {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// IsVariable reports whether sym is a variable of the grammar.
func (g *Grammar) IsVariable(sym Symbol) bool {
	_, ok := g.variables[sym]
	return ok
}

// IsTerminal reports whether sym is a terminal of the grammar.
func (g *Grammar) IsTerminal(sym Symbol) bool {
	_, ok := g.terminals[sym]
	return ok
}

// Alternatives returns the alternative list for a variable and whether the
// variable exists. The returned slice is the live table entry; callers must
// not modify it.
func (g *Grammar) Alternatives(v Symbol) ([]Alternative, bool) {
	alts, ok := g.productions[v]
	return alts, ok
}

// Pick selects one alternative for v uniformly at random using rng. This is
// deliberately not a pure function: repeated calls with the same variable
// may return different alternatives, which is the mechanism by which
// distinct solutions are generated across derivations.
func (g *Grammar) Pick(v Symbol, rng *rand.Rand) (Alternative, error) {
	alts, ok := g.productions[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a variable", ErrUnknownSymbol, v)
	}
	if len(alts) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoAlternatives, v)
	}
	return alts[rng.IntN(len(alts))], nil
}
