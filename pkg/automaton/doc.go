/*
Package automaton implements the nondeterministic finite automaton at the heart of nfa.

An Engine is constructed with an initial state and a set of accepting states,
populated with AddTransition, and then queried with Accept. Acceptance uses
subset simulation: the engine tracks every state reachable after each input
symbol, dropping branches that have no matching transition, and accepts when
the final set intersects the accepting states.

	eng := automaton.New(0, 1)
	eng.AddTransition(0, 'a', 1)
	eng.AddTransition(1, 'a', 1)

	eng.AcceptString("aaa") // true
	eng.AcceptString("b")   // false

Accept never mutates the engine, so a populated Engine may be shared by
concurrent readers. Registration interleaved with evaluation needs external
locking; Freeze returns an immutable snapshot for callers that want the
build phase and the evaluation phase to be separate values.
*/
package automaton
