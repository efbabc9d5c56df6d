package domain

import "strings"

// Symbol is an atomic token drawn from a finite alphabet. In a planning
// problem it is an action label; in a grammar it may also name a variable.
// Symbols are compared by equality. The empty symbol is reserved.
type Symbol string

// State identifies a configuration of the modeled system, such as a grid
// coordinate. States are compared by equality and usable as map keys.
type State string

// String is an ordered, finite sequence of Symbols. Order is semantically
// meaningful: it is the action sequence from the start state onward.
type String []Symbol

// String renders the sequence by plain concatenation, matching the way
// solution paths are usually written (e.g. "1212").
func (s String) String() string {
	var b strings.Builder
	for _, sym := range s {
		b.WriteString(string(sym))
	}
	return b.String()
}

// Concat returns a new String holding s followed by other.
func (s String) Concat(other String) String {
	out := make(String, 0, len(s)+len(other))
	out = append(out, s...)
	out = append(out, other...)
	return out
}

// Split breaks a compact string into a String of single-rune Symbols.
// It is a convenience for hand-written paths like Split("1212").
func Split(raw string) String {
	out := make(String, 0, len(raw))
	for _, r := range raw {
		out = append(out, Symbol(r))
	}
	return out
}

// TransitionFunc maps a (state, symbol) pair to the next state. It is
// supplied by the problem modeler and must be total over the automaton's
// states and alphabet.
type TransitionFunc func(State, Symbol) State
