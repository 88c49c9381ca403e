package automaton

import (
	"slices"

	"github.com/aretw0/nfa/pkg/domain"
)

// stateSet is an insertion-ordered set of states.
// Keeping insertion order makes iteration over the active set reproducible.
type stateSet struct {
	states []domain.State
	index  map[domain.State]struct{}
}

func newStateSet(capacity int) *stateSet {
	return &stateSet{
		states: make([]domain.State, 0, capacity),
		index:  make(map[domain.State]struct{}, capacity),
	}
}

func (s *stateSet) add(q domain.State) {
	if _, ok := s.index[q]; ok {
		return
	}
	s.index[q] = struct{}{}
	s.states = append(s.states, q)
}

func (s *stateSet) len() int {
	return len(s.states)
}

func (s *stateSet) sorted() []domain.State {
	out := slices.Clone(s.states)
	slices.Sort(out)
	return out
}
