package automaton

import (
	"github.com/aretw0/nfa/pkg/domain"
)

// Engine owns the transition table and the accepting-state set of an NFA.
//
// The initial and accepting states are fixed at construction. Transitions are
// append-only: AddTransition never removes or replaces an existing edge.
type Engine struct {
	machine
}

// New creates an engine with the given initial state and accepting states.
// The accepting set may be empty, in which case every input is rejected.
func New(initial domain.State, accepting ...domain.State) *Engine {
	acc := make(map[domain.State]struct{}, len(accepting))
	for _, q := range accepting {
		acc[q] = struct{}{}
	}
	return &Engine{
		machine: machine{
			initial:   initial,
			accepting: acc,
			table:     make(map[domain.State][]domain.Transition),
		},
	}
}

// AddTransition appends the edge from --symbol--> to.
// Registering the same edge twice is harmless: it duplicates reachability
// without changing any acceptance result.
func (e *Engine) AddTransition(from domain.State, symbol domain.Symbol, to domain.State) {
	e.table[from] = append(e.table[from], domain.Transition{Symbol: symbol, To: to})
}

// Freeze returns an immutable snapshot of the engine.
// Later calls to AddTransition on e do not affect the snapshot.
func (e *Engine) Freeze() *Automaton {
	return &Automaton{machine: e.clone()}
}

// Automaton is a read-only NFA produced by Engine.Freeze.
// It exposes the same evaluation and introspection methods as Engine.
type Automaton struct {
	machine
}

// Accepter is implemented by both Engine and Automaton.
type Accepter interface {
	Accept(input []domain.Symbol) bool
	AcceptString(line string) bool
}

// Definition is the read-only view shared by Engine and Automaton.
type Definition interface {
	Accepter
	Initial() domain.State
	Accepting() []domain.State
	IsAccepting(q domain.State) bool
	States() []domain.State
	Transitions(q domain.State) []domain.Transition
	Edges() []domain.Edge
	Alphabet() []domain.Symbol
	Trace(input []domain.Symbol) Trace
}

var (
	_ Definition = (*Engine)(nil)
	_ Definition = (*Automaton)(nil)
)
