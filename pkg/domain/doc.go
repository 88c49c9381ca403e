/*
Package domain contains the core vocabulary of the nfa module.

It defines the identifiers the automaton works with (State, Symbol), the
labeled edge between states (Transition), and the sentinel errors shared by
the adapters. This package is kept pure and free of external dependencies
like I/O or persistence.

# Key Entities

  - State: An opaque, non-negative state identifier.
  - Symbol: One discrete element of the input alphabet (a single byte).
  - Transition: A labeled edge (Symbol, target State) owned by a source state.
  - Verdict: The outcome of evaluating one input line.
*/
package domain
