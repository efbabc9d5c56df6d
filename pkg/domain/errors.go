package domain

import "errors"

// ErrInvalidAutomaton is returned when an automaton definition violates its
// structural invariants (empty sets, start outside states, final outside states).
var ErrInvalidAutomaton = errors.New("invalid automaton")

// ErrInvalidGrammar is returned when a grammar definition violates its
// structural invariants (empty sets, start outside variables, overlapping sets).
var ErrInvalidGrammar = errors.New("invalid grammar")

// ErrUndefinedTransition is returned when the transition function is invoked
// outside its declared domain. This is a modeling error, not retryable.
var ErrUndefinedTransition = errors.New("undefined transition")

// ErrUnknownSymbol is returned when expansion encounters a symbol that is
// neither a terminal nor a variable. This indicates a malformed grammar.
var ErrUnknownSymbol = errors.New("unknown symbol")

// ErrNoAlternatives is returned when a variable has an empty alternative
// list, so no derivation through it can ever complete.
var ErrNoAlternatives = errors.New("variable has no alternatives")

// ErrGenerationTimeout is returned when a derivation does not reach a
// terminal-only string within the step budget. Re-deriving with fresh
// randomness is independent and may terminate sooner, so callers may retry.
var ErrGenerationTimeout = errors.New("generation timeout")
