package automaton_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/aretw0/nfa/pkg/automaton"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newReference builds the three-symbol automaton used by the classic checker.
func newReference(accepting ...domain.State) *automaton.Engine {
	eng := automaton.New(0, accepting...)
	eng.AddTransition(0, 'a', 1)
	eng.AddTransition(0, 'b', 2)
	eng.AddTransition(0, 'c', 3)

	eng.AddTransition(1, 'a', 0)
	eng.AddTransition(1, 'b', 2)
	eng.AddTransition(1, 'c', 3)

	eng.AddTransition(2, 'a', 1)
	eng.AddTransition(2, 'b', 0)
	eng.AddTransition(2, 'c', 3)

	eng.AddTransition(3, 'a', 1)
	eng.AddTransition(3, 'b', 2)
	eng.AddTransition(3, 'c', 3)
	return eng
}

func TestEngine_ReferenceScenarios(t *testing.T) {
	eng := newReference(0, 1, 2, 3)

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "Empty Input", input: "", want: true},
		{name: "Single Symbol", input: "a", want: true},
		{name: "Alternating Back To Start", input: "aaa", want: true},
		{name: "Unknown Symbol", input: "d", want: false},
		{name: "Self Loop", input: "cc", want: true},
		{name: "Mixed", input: "abcabc", want: true},
		{name: "Dead Branch Mid Input", input: "abdab", want: false},
		{name: "Trailing Carriage Return", input: "ab\r", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eng.AcceptString(tt.input))
		})
	}
}

func TestEngine_EmptyAcceptingSetRejectsEverything(t *testing.T) {
	eng := newReference()

	for _, in := range []string{"", "a", "aaa", "cc", "d"} {
		assert.False(t, eng.AcceptString(in), "input %q", in)
	}
}

func TestEngine_EmptyInputMatchesInitialAcceptance(t *testing.T) {
	assert.True(t, automaton.New(7, 7).Accept(nil))
	assert.False(t, automaton.New(7, 8).Accept(nil))
	assert.True(t, automaton.New(7, 7).Accept([]domain.Symbol{}))
}

func TestEngine_Nondeterminism(t *testing.T) {
	// Strings over {a,b} whose second-to-last symbol is 'a'.
	eng := automaton.New(0, 2)
	eng.AddTransition(0, 'a', 0)
	eng.AddTransition(0, 'b', 0)
	eng.AddTransition(0, 'a', 1)
	eng.AddTransition(1, 'a', 2)
	eng.AddTransition(1, 'b', 2)

	accepts := []string{"aa", "ab", "bab", "bbbaa", "abab"}
	rejects := []string{"", "a", "b", "ba", "bb", "aabb"}

	for _, in := range accepts {
		assert.True(t, eng.AcceptString(in), "should accept %q", in)
	}
	for _, in := range rejects {
		assert.False(t, eng.AcceptString(in), "should reject %q", in)
	}
}

func TestEngine_DeadBranchStaysDead(t *testing.T) {
	eng := newReference(0, 1, 2, 3)

	// Once 'd' empties the active set, no suffix can bring it back.
	for _, suffix := range []string{"", "a", "abc", "cccc", strings.Repeat("ab", 50)} {
		assert.False(t, eng.AcceptString("d"+suffix), "suffix %q", suffix)
	}

	tr := eng.Trace(domain.Symbols("dab"))
	require.Len(t, tr.Steps, 3)
	for _, step := range tr.Steps {
		assert.Empty(t, step.States)
	}
	assert.False(t, tr.Accepted)
}

func TestEngine_SelfLoop(t *testing.T) {
	eng := automaton.New(0, 1)
	eng.AddTransition(0, 'x', 1)
	eng.AddTransition(1, 'y', 1)

	assert.True(t, eng.AcceptString("x"))
	assert.True(t, eng.AcceptString("x"+strings.Repeat("y", 1000)))
	assert.False(t, eng.AcceptString("xyx"))
}

func TestEngine_UnregisteredStates(t *testing.T) {
	// Target 5 never gets its own entry; it behaves as a dead end.
	eng := automaton.New(0, 5)
	eng.AddTransition(0, 'a', 5)

	assert.True(t, eng.AcceptString("a"))
	assert.False(t, eng.AcceptString("aa"))

	// An initial state with no transitions at all.
	lonely := automaton.New(42, 42)
	assert.True(t, lonely.AcceptString(""))
	assert.False(t, lonely.AcceptString("a"))
}

func TestEngine_MonotonicRegistration(t *testing.T) {
	eng := newReference(3)
	inputs := []string{"", "a", "c", "ac", "abc", "cb", "d", "ccc"}

	before := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		before[in] = eng.AcceptString(in)
	}

	// Duplicates never change a result.
	eng.AddTransition(0, 'c', 3)
	eng.AddTransition(3, 'c', 3)
	for _, in := range inputs {
		assert.Equal(t, before[in], eng.AcceptString(in), "duplicate changed %q", in)
	}

	// A new edge on an unused symbol leaves inputs that never use it untouched.
	eng.AddTransition(0, 'z', 3)
	for _, in := range inputs {
		assert.Equal(t, before[in], eng.AcceptString(in), "unrelated edge changed %q", in)
	}
	assert.True(t, eng.AcceptString("z"))
}

func TestEngine_Deterministic(t *testing.T) {
	eng := newReference(1, 3)
	for _, in := range []string{"", "a", "abcba", "bbb", "d"} {
		first := eng.AcceptString(in)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, eng.AcceptString(in))
		}
	}
}

func TestEngine_ConcurrentReaders(t *testing.T) {
	eng := newReference(0, 1, 2, 3)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				assert.True(t, eng.AcceptString("abcabc"))
				assert.False(t, eng.AcceptString("abd"))
			}
		}()
	}
	wg.Wait()
}

func TestEngine_Freeze(t *testing.T) {
	eng := automaton.New(0, 1)
	eng.AddTransition(0, 'a', 1)

	frozen := eng.Freeze()
	eng.AddTransition(0, 'b', 1)

	assert.True(t, eng.AcceptString("b"))
	assert.False(t, frozen.AcceptString("b"), "snapshot must not observe later registrations")
	assert.True(t, frozen.AcceptString("a"))
}
