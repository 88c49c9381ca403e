package nfa_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/pkg/adapters/memory"
	"github.com/aretw0/nfa/pkg/automaton"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/aretw0/nfa/pkg/dsl"
	"github.com/aretw0/nfa/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_Default(t *testing.T) {
	checker, err := nfa.New()
	require.NoError(t, err)

	assert.Equal(t, "reference", checker.Name())
	assert.Equal(t, automaton.Fingerprint(dsl.Example()), checker.Fingerprint())
	assert.NotEmpty(t, nfa.Version)
}

func TestChecker_DefinitionFile(t *testing.T) {
	dir := t.TempDir()
	defPath := filepath.Join(dir, "even-a.yaml")
	require.NoError(t, os.WriteFile(defPath, []byte(`
initial: 0
accepting: [0]
transitions:
  - {from: 0, symbol: a, to: 1}
  - {from: 1, symbol: a, to: 0}
`), 0644))

	checker, err := nfa.New(nfa.WithDefinitionFile(defPath))
	require.NoError(t, err)
	assert.Equal(t, "even-a", checker.Name())

	ctx := context.Background()
	assert.True(t, checker.Accept(ctx, "aa"))
	assert.False(t, checker.Accept(ctx, "aaa"))

	_, err = nfa.New(nfa.WithDefinitionFile(filepath.Join(dir, "missing.yaml")))
	assert.Error(t, err)
}

func TestChecker_Check(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "test1.txt")
	require.NoError(t, os.WriteFile(input, []byte("abc\nd\n"), 0644))

	checker, err := nfa.New()
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	summaries, err := checker.Check(context.Background(), report.NewTextReporter(buf), input, filepath.Join(dir, "test2.txt"))

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	require.Len(t, summaries, 1)
	assert.Equal(t, "abc: Accepted\nd: Rejected\nPassed tests for file: 1 out of 2\n", buf.String())
}

func TestChecker_EngineIsFrozen(t *testing.T) {
	eng := automaton.New(0, 1)
	eng.AddTransition(0, 'a', 1)

	checker, err := nfa.New(nfa.WithEngine("frozen", eng))
	require.NoError(t, err)

	eng.AddTransition(0, 'b', 1)
	assert.False(t, checker.Accept(context.Background(), "b"))
	assert.True(t, checker.Accept(context.Background(), "a"))
}

func TestChecker_CacheAndTrace(t *testing.T) {
	cache := memory.NewCache()
	checker, err := nfa.New(nfa.WithCache(cache))
	require.NoError(t, err)

	ctx := context.Background()
	assert.True(t, checker.Accept(ctx, "abc"))
	assert.True(t, checker.Accept(ctx, "abc"))
	assert.Equal(t, 1, cache.Len())

	accepted, found, err := cache.Get(ctx, checker.Fingerprint()+":abc")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, accepted)

	tr := checker.Trace("ab")
	require.Len(t, tr.Steps, 2)
	assert.Equal(t, []domain.State{1}, tr.Steps[0].States)
	assert.Equal(t, []domain.State{2}, tr.Steps[1].States)
	assert.True(t, tr.Accepted)
}
