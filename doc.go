/*
Package nfa checks input lines against a nondeterministic finite automaton.

An automaton is a set of integer states, labeled transitions (several may
share the same state and symbol), an initial state and a set of accepting
states. A line is accepted when, reading it byte by byte and following every
matching transition at once, at least one accepting state is active at the end.

# Usage

Build a Checker from a definition file, from code, or use the built-in
reference automaton:

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/nfa"
		"github.com/aretw0/nfa/pkg/report"
	)

	func main() {
		checker, err := nfa.New(nfa.WithDefinitionFile("automaton.yaml"))
		if err != nil {
			log.Fatal(err)
		}

		_, err = checker.Check(context.Background(), report.NewTextReporter(os.Stdout), "test1.txt", "test2.txt")
		if err != nil {
			log.Fatal(err)
		}
	}

# Architecture

  - pkg/automaton: the engine and its subset-simulation acceptance.
  - pkg/dsl and pkg/definition: building automata in code or from YAML/JSON.
  - pkg/runner, pkg/report, pkg/adapters/file: the batch checker.
  - pkg/adapters/http and pkg/adapters/mcp: network front ends.
  - pkg/adapters/memory and pkg/adapters/redis: verdict caches.
*/
package nfa
