package automaton

import (
	"slices"

	"github.com/aretw0/nfa/pkg/domain"
)

// machine holds the definition shared by Engine and Automaton.
// All methods on machine are read-only.
type machine struct {
	initial   domain.State
	accepting map[domain.State]struct{}
	table     map[domain.State][]domain.Transition
}

// Accept reports whether the automaton accepts the given symbol sequence.
// An empty input is accepted iff the initial state is accepting.
func (m *machine) Accept(input []domain.Symbol) bool {
	current := m.evolve(input, nil)
	for _, q := range current.states {
		if m.IsAccepting(q) {
			return true
		}
	}
	return false
}

// AcceptString evaluates a line byte by byte.
func (m *machine) AcceptString(line string) bool {
	return m.Accept(domain.Symbols(line))
}

// evolve runs the subset simulation and returns the final set.
// If visit is non-nil it is called with the set reached after each symbol.
func (m *machine) evolve(input []domain.Symbol, visit func(i int, sym domain.Symbol, set *stateSet)) *stateSet {
	current := newStateSet(1)
	current.add(m.initial)

	for i, sym := range input {
		next := newStateSet(current.len())
		for _, q := range current.states {
			// A state without an entry has no outgoing transitions.
			for _, t := range m.table[q] {
				if t.Symbol == sym {
					next.add(t.To)
				}
			}
		}
		current = next

		if visit != nil {
			visit(i, sym, current)
		}

		// The empty set has no successors; the remaining symbols cannot revive it.
		if current.len() == 0 && visit == nil {
			break
		}
	}
	return current
}

// Initial returns the initial state.
func (m *machine) Initial() domain.State {
	return m.initial
}

// IsAccepting reports whether q is an accepting state.
func (m *machine) IsAccepting(q domain.State) bool {
	_, ok := m.accepting[q]
	return ok
}

// Accepting returns the accepting states in ascending order.
func (m *machine) Accepting() []domain.State {
	out := make([]domain.State, 0, len(m.accepting))
	for q := range m.accepting {
		out = append(out, q)
	}
	slices.Sort(out)
	return out
}

// Transitions returns a copy of the transitions registered under q, in insertion order.
func (m *machine) Transitions(q domain.State) []domain.Transition {
	return slices.Clone(m.table[q])
}

// States returns every state the automaton mentions, in ascending order:
// the initial state, the accepting states, and every transition source and target.
func (m *machine) States() []domain.State {
	seen := newStateSet(len(m.table) + len(m.accepting) + 1)
	seen.add(m.initial)
	for q := range m.accepting {
		seen.add(q)
	}
	for from, ts := range m.table {
		seen.add(from)
		for _, t := range ts {
			seen.add(t.To)
		}
	}
	return seen.sorted()
}

// Edges lists every transition ordered by source state, then insertion order.
func (m *machine) Edges() []domain.Edge {
	sources := make([]domain.State, 0, len(m.table))
	for q := range m.table {
		sources = append(sources, q)
	}
	slices.Sort(sources)

	var edges []domain.Edge
	for _, from := range sources {
		for _, t := range m.table[from] {
			edges = append(edges, domain.Edge{From: from, Symbol: t.Symbol, To: t.To})
		}
	}
	return edges
}

// Alphabet returns the distinct symbols used by any transition, in ascending order.
func (m *machine) Alphabet() []domain.Symbol {
	var seen [256]bool
	for _, ts := range m.table {
		for _, t := range ts {
			seen[t.Symbol] = true
		}
	}
	var out []domain.Symbol
	for i, ok := range seen {
		if ok {
			out = append(out, domain.Symbol(i))
		}
	}
	return out
}

func (m *machine) clone() machine {
	c := machine{
		initial:   m.initial,
		accepting: make(map[domain.State]struct{}, len(m.accepting)),
		table:     make(map[domain.State][]domain.Transition, len(m.table)),
	}
	for q := range m.accepting {
		c.accepting[q] = struct{}{}
	}
	for q, ts := range m.table {
		c.table[q] = slices.Clone(ts)
	}
	return c
}
