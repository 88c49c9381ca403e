package dsl

import (
	"github.com/aretw0/nfa/pkg/automaton"
	"github.com/aretw0/nfa/pkg/domain"
)

// StateBuilder provides a fluent API for the outgoing edges of one state.
type StateBuilder struct {
	state       domain.State
	transitions []domain.Transition
	builder     *Builder
}

// On adds a transition to target when symbol is read.
func (s *StateBuilder) On(symbol domain.Symbol, target domain.State) *StateBuilder {
	s.transitions = append(s.transitions, domain.Transition{Symbol: symbol, To: target})
	return s
}

// OnAny adds one transition to target for each symbol in symbols.
func (s *StateBuilder) OnAny(symbols string, target domain.State) *StateBuilder {
	for i := 0; i < len(symbols); i++ {
		s.On(domain.Symbol(symbols[i]), target)
	}
	return s
}

// Loop adds a self-loop on symbol.
func (s *StateBuilder) Loop(symbol domain.Symbol) *StateBuilder {
	return s.On(symbol, s.state)
}

// Accepting marks this state as accepting.
func (s *StateBuilder) Accepting() *StateBuilder {
	s.builder.Accept(s.state)
	return s
}

// From switches to another source state, allowing chains across states.
func (s *StateBuilder) From(q domain.State) *StateBuilder {
	return s.builder.From(q)
}

// Build builds the whole automaton. It is shorthand for the parent Builder's Build.
func (s *StateBuilder) Build() *automaton.Engine {
	return s.builder.Build()
}
