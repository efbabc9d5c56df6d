package domain

import (
	"fmt"
	"slices"
)

// Automaton is a total state-transition model over a finite state set and a
// finite input alphabet. It answers membership queries: does a given symbol
// sequence lead from the start state to a final state?
//
// An Automaton is immutable after construction. It is supplied by an
// external problem-modeling step (e.g. pkg/adapters/gridworld), not produced
// by the engine itself.
type Automaton struct {
	states     map[State]struct{}
	alphabet   map[Symbol]struct{}
	transition TransitionFunc
	start      State
	final      map[State]struct{}
}

// NewAutomaton validates the definition and builds an immutable Automaton.
// The transition function must be total over states x alphabet and must map
// into the state set; out-of-bounds moves are the modeler's concern (commonly
// encoded as self-loops).
func NewAutomaton(states []State, alphabet []Symbol, transition TransitionFunc, start State, final []State) (*Automaton, error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("%w: empty state set", ErrInvalidAutomaton)
	}
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("%w: empty alphabet", ErrInvalidAutomaton)
	}
	if transition == nil {
		return nil, fmt.Errorf("%w: nil transition function", ErrInvalidAutomaton)
	}

	a := &Automaton{
		states:     make(map[State]struct{}, len(states)),
		alphabet:   make(map[Symbol]struct{}, len(alphabet)),
		transition: transition,
		start:      start,
		final:      make(map[State]struct{}, len(final)),
	}
	for _, s := range states {
		if s == "" {
			return nil, fmt.Errorf("%w: empty state identifier", ErrInvalidAutomaton)
		}
		a.states[s] = struct{}{}
	}
	for _, sym := range alphabet {
		if sym == "" {
			return nil, fmt.Errorf("%w: empty symbol", ErrInvalidAutomaton)
		}
		a.alphabet[sym] = struct{}{}
	}
	if _, ok := a.states[start]; !ok {
		return nil, fmt.Errorf("%w: start state %q not in state set", ErrInvalidAutomaton, start)
	}
	for _, f := range final {
		if _, ok := a.states[f]; !ok {
			return nil, fmt.Errorf("%w: final state %q not in state set", ErrInvalidAutomaton, f)
		}
		a.final[f] = struct{}{}
	}
	return a, nil
}

// Start returns the initial state.
func (a *Automaton) Start() State {
	return a.start
}

// States returns the state set in sorted order.
func (a *Automaton) States() []State {
	out := make([]State, 0, len(a.states))
	for s := range a.states {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// Alphabet returns the input symbols in sorted order.
func (a *Automaton) Alphabet() []Symbol {
	out := make([]Symbol, 0, len(a.alphabet))
	for sym := range a.alphabet {
		out = append(out, sym)
	}
	slices.Sort(out)
	return out
}

// IsFinal reports whether s is an accepting state.
func (a *Automaton) IsFinal(s State) bool {
	_, ok := a.final[s]
	return ok
}

// Step applies the transition function once. Invoking it from a state
// outside the state set, with a symbol outside the alphabet, or through a
// transition function that escapes the state set is a contract violation
// and returns ErrUndefinedTransition.
func (a *Automaton) Step(from State, sym Symbol) (State, error) {
	if _, ok := a.states[from]; !ok {
		return "", fmt.Errorf("%w: state %q not in state set", ErrUndefinedTransition, from)
	}
	if _, ok := a.alphabet[sym]; !ok {
		return "", fmt.Errorf("%w: symbol %q not in alphabet", ErrUndefinedTransition, sym)
	}
	next := a.transition(from, sym)
	if _, ok := a.states[next]; !ok {
		return "", fmt.Errorf("%w: transition(%q, %q) = %q escapes state set", ErrUndefinedTransition, from, sym, next)
	}
	return next, nil
}

// ReduceFrom folds the transition function over s left to right, starting at
// from. An empty input returns from unchanged.
func (a *Automaton) ReduceFrom(from State, s String) (State, error) {
	state := from
	for _, sym := range s {
		next, err := a.Step(state, sym)
		if err != nil {
			return "", err
		}
		state = next
	}
	return state, nil
}

// Reduce folds the transition function over s starting at the start state
// and returns the state reached after consuming the entire input.
func (a *Automaton) Reduce(s String) (State, error) {
	return a.ReduceFrom(a.start, s)
}

// Has reports whether s is a member of the automaton's language, i.e.
// whether consuming it from the start state ends in a final state.
func (a *Automaton) Has(s String) (bool, error) {
	state, err := a.Reduce(s)
	if err != nil {
		return false, err
	}
	return a.IsFinal(state), nil
}
