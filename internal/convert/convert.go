// Package convert builds a context-free grammar that describes exactly the
// language accepted by a finite automaton.
//
// The construction is the textbook one for right-linear grammars: every
// state becomes a variable, every input symbol a terminal, and every
// transition T(q, a) = p contributes the rule q -> a p, collapsed to q -> a
// when p is accepting. A complete derivation from the start variable then
// spells out, symbol for symbol, one accepted path through the automaton.
package convert

import (
	"fmt"

	"github.com/aretw0/sprout/pkg/domain"
)

// FromAutomaton converts an automaton into an equivalent grammar.
//
// Every variable receives exactly one alternative per alphabet symbol, so
// the alternative list size always equals the alphabet size. Conversion
// walks the full states x alphabet product once; time and space are linear
// in the size of the transition table.
func FromAutomaton(a *domain.Automaton) (*domain.Grammar, error) {
	states := a.States()
	alphabet := a.Alphabet()

	variables := make([]domain.Symbol, 0, len(states))
	for _, s := range states {
		variables = append(variables, domain.Symbol(s))
	}

	g, err := domain.NewGrammar(variables, alphabet, domain.Symbol(a.Start()))
	if err != nil {
		return nil, fmt.Errorf("grammar for automaton: %w", err)
	}

	for _, state := range states {
		alts := make([]domain.Alternative, 0, len(alphabet))
		for _, sym := range alphabet {
			target, err := a.Step(state, sym)
			if err != nil {
				// Step only fails when the transition function breaks
				// the totality contract.
				return nil, fmt.Errorf("transition table: %w", err)
			}
			if a.IsFinal(target) {
				alts = append(alts, domain.Alternative{sym})
			} else {
				alts = append(alts, domain.Alternative{sym, domain.Symbol(target)})
			}
		}
		if err := g.AddAlternatives(domain.Symbol(state), alts...); err != nil {
			return nil, fmt.Errorf("productions for %q: %w", state, err)
		}
	}
	return g, nil
}
