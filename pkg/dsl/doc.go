/*
Package dsl provides a fluent builder for constructing automata in Go code.

It mirrors the way an automaton is usually written down by hand: pick the
initial and accepting states, then list the outgoing edges state by state.

Example usage:

	package main

	import (
		"fmt"

		"github.com/aretw0/nfa/pkg/dsl"
	)

	func main() {
		b := dsl.New(0).Accept(1)

		b.From(0).On('a', 1).On('b', 0)
		b.From(1).On('a', 1)

		eng := b.Build()
		fmt.Println(eng.AcceptString("ba")) // true
	}
*/
package dsl
