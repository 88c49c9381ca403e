package automaton_test

import (
	"testing"

	"github.com/aretw0/nfa/pkg/automaton"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace_RecordsActiveSets(t *testing.T) {
	eng := automaton.New(0, 2)
	eng.AddTransition(0, 'a', 1)
	eng.AddTransition(0, 'a', 2)
	eng.AddTransition(1, 'b', 2)
	eng.AddTransition(2, 'b', 0)

	tr := eng.Trace(domain.Symbols("ab"))
	require.Len(t, tr.Steps, 2)

	assert.Equal(t, []domain.State{0}, tr.Start)
	assert.Equal(t, domain.Symbol('a'), tr.Steps[0].Symbol)
	assert.Equal(t, []domain.State{1, 2}, tr.Steps[0].States)
	assert.Equal(t, []domain.State{0, 2}, tr.Steps[1].States)
	assert.True(t, tr.Accepted)
	assert.Equal(t, eng.AcceptString("ab"), tr.Accepted)
	assert.Equal(t, []domain.State{0, 2}, tr.Final())
}

func TestTrace_EmptyInput(t *testing.T) {
	tr := automaton.New(3, 3).Trace(nil)
	assert.Empty(t, tr.Steps)
	assert.True(t, tr.Accepted)
	assert.Equal(t, []domain.State{3}, tr.Final())
}

func TestIntrospection(t *testing.T) {
	eng := newReference(3, 1)
	eng.AddTransition(9, 'z', 10)

	assert.Equal(t, domain.State(0), eng.Initial())
	assert.Equal(t, []domain.State{1, 3}, eng.Accepting())
	assert.True(t, eng.IsAccepting(3))
	assert.False(t, eng.IsAccepting(0))
	assert.Equal(t, []domain.State{0, 1, 2, 3, 9, 10}, eng.States())
	assert.Equal(t, []domain.Symbol{'a', 'b', 'c', 'z'}, eng.Alphabet())

	ts := eng.Transitions(0)
	require.Len(t, ts, 3)
	assert.Equal(t, domain.Transition{Symbol: 'a', To: 1}, ts[0])
	assert.Equal(t, domain.Transition{Symbol: 'c', To: 3}, ts[2])
	assert.Empty(t, eng.Transitions(10))

	// The returned slice is a copy.
	ts[0].To = 99
	assert.Equal(t, domain.State(1), eng.Transitions(0)[0].To)

	edges := eng.Edges()
	require.Len(t, edges, 13)
	assert.Equal(t, domain.Edge{From: 0, Symbol: 'a', To: 1}, edges[0])
	assert.Equal(t, domain.Edge{From: 9, Symbol: 'z', To: 10}, edges[12])
}

func TestFingerprint(t *testing.T) {
	a := newReference(0, 1, 2, 3)
	b := newReference(3, 2, 1, 0)
	assert.Equal(t, automaton.Fingerprint(a), automaton.Fingerprint(b))
	assert.Equal(t, automaton.Fingerprint(a), automaton.Fingerprint(a.Freeze()))

	c := newReference(0, 1, 2)
	assert.NotEqual(t, automaton.Fingerprint(a), automaton.Fingerprint(c))

	b.AddTransition(0, 'd', 0)
	assert.NotEqual(t, automaton.Fingerprint(a), automaton.Fingerprint(b))
}
