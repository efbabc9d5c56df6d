/*
Package domain contains the core domain models for the Sprout engine.

It defines the fundamental entities of grammar-based planning: the Automaton
(a total state-transition model of the planning problem), the Grammar (a
context-free production system derived from it), and the value types they
share (Symbol, String, State). This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - Symbol: An atomic token; an action label or a grammar variable.
  - String: An ordered sequence of Symbols; a candidate solution path.
  - Automaton: States, alphabet, transition function, start and final states.
  - Grammar: Variables, terminals and an immutable production table.
  - LifecycleHooks: Optional callbacks for observing derivations.
*/
package domain
