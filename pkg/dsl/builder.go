package dsl

import (
	"github.com/aretw0/nfa/pkg/automaton"
	"github.com/aretw0/nfa/pkg/domain"
)

// Builder manages the automaton construction.
type Builder struct {
	initial   domain.State
	accepting []domain.State
	order     []domain.State
	states    map[domain.State]*StateBuilder
}

// New creates a new automaton builder with the given initial state.
func New(initial domain.State) *Builder {
	return &Builder{
		initial: initial,
		states:  make(map[domain.State]*StateBuilder),
	}
}

// Accept marks states as accepting.
func (b *Builder) Accept(states ...domain.State) *Builder {
	b.accepting = append(b.accepting, states...)
	return b
}

// From returns the builder for a source state.
// If the state was already started, it returns the existing builder.
func (b *Builder) From(q domain.State) *StateBuilder {
	if sb, ok := b.states[q]; ok {
		return sb
	}
	sb := &StateBuilder{state: q, builder: b}
	b.states[q] = sb
	b.order = append(b.order, q)
	return sb
}

// Build compiles the collected edges into an Engine.
// States are registered in the order they were first passed to From.
func (b *Builder) Build() *automaton.Engine {
	eng := automaton.New(b.initial, b.accepting...)
	for _, q := range b.order {
		for _, t := range b.states[q].transitions {
			eng.AddTransition(q, t.Symbol, t.To)
		}
	}
	return eng
}

// Example builds the reference automaton over {a, b, c}: initial state 0,
// every state accepting, and each symbol leading to a fixed state.
func Example() *automaton.Engine {
	b := New(0).Accept(0, 1, 2, 3)

	b.From(0).On('a', 1).On('b', 2).On('c', 3)
	b.From(1).On('a', 0).On('b', 2).On('c', 3)
	b.From(2).On('a', 1).On('b', 0).On('c', 3)
	b.From(3).On('a', 1).On('b', 2).On('c', 3)

	return b.Build()
}
