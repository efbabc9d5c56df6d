/*
Package sprout generates feasible solutions to deterministic planning problems by sampling strings from a context-free grammar.

It models the problem as a finite-state automaton (states, actions, a total transition function, a start state and goal states), mechanically converts that automaton into an equivalent right-linear grammar, and randomly derives terminal strings from the grammar. Every complete derivation spells out one accepted path through the automaton, so every generated string is a valid action sequence from the start state to a goal.

# Concept

Discrete deterministic planning is an instance of a DFA: finding a plan is finding a member of the automaton's language. Sprout turns language membership around into language generation. The conversion maps each state to a grammar variable and each transition T(q, a) = p to a rule q -> a p, collapsed to q -> a when p is a goal state; deriving from the start variable then walks the automaton until a derivation chooses to stop at a goal.

# Key Features

  - Bounded Derivation: Expansion runs an explicit work stack with a step budget, so cyclic grammars can never diverge.
  - Explicit Randomness: The random source is injected, making derivations reproducible under a fixed seed and safe to parallelize.
  - Verifiable Output: Every candidate can be independently checked against the original automaton via its membership query.
  - Hexagonal Architecture: Core logic is decoupled from problem modelers (grid worlds, YAML definitions) and observability adapters.

# Usage

Model the problem as an automaton (here with the gridworld adapter), build a Planner, and derive:

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/sprout"
		"github.com/aretw0/sprout/pkg/adapters/gridworld"
	)

	func main() {
		automaton, err := gridworld.New(3, 3,
			gridworld.Cell{X: 0, Y: 0},
			[]gridworld.Cell{{X: 2, Y: 2}},
		)
		if err != nil {
			log.Fatal(err)
		}

		planner, err := sprout.New(automaton, sprout.WithMaxSteps(50), sprout.WithRetries(8))
		if err != nil {
			log.Fatal(err)
		}

		plan, err := planner.Plan(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("feasible plan:", plan)
	}

Generated plans are feasible, not optimal; use ShortestOf to keep the shortest of a batch when brevity matters.
*/
package sprout
