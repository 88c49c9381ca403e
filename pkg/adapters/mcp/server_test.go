package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/pkg/definition"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/aretw0/nfa/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *Server {
	t.Helper()
	checker, err := nfa.New()
	require.NoError(t, err)
	return NewServer(checker)
}

func TestHandleAccept(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()

	resp, err := s.handleAccept(ctx, mcp.CallToolRequest{}, map[string]interface{}{"input": "aaa"})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.Equal(t, domain.VerdictAccepted, resp.Verdict)

	resp, err = s.handleAccept(ctx, mcp.CallToolRequest{}, map[string]interface{}{"input": "d"})
	require.NoError(t, err)
	assert.False(t, resp.Accepted)
}

func TestHandleAccept_BadArguments(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()

	_, err := s.handleAccept(ctx, mcp.CallToolRequest{}, map[string]interface{}{})
	assert.Error(t, err)

	_, err = s.handleAccept(ctx, mcp.CallToolRequest{}, map[string]interface{}{"input": 42})
	assert.Error(t, err)

	t.Setenv(runner.EnvMaxInputSize, "2")
	_, err = s.handleAccept(ctx, mcp.CallToolRequest{}, map[string]interface{}{"input": strings.Repeat("a", 3)})
	assert.ErrorIs(t, err, domain.ErrInputTooLarge)
}

func TestHandleTrace(t *testing.T) {
	s := newServer(t)

	resp, err := s.handleTrace(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"input": "cc"})
	require.NoError(t, err)
	require.Len(t, resp.Steps, 2)
	assert.Equal(t, "c", resp.Steps[1].Symbol)
	assert.Equal(t, []domain.State{3}, resp.Steps[1].States)
	assert.True(t, resp.Accepted)
}

func TestReadAutomaton(t *testing.T) {
	s := newServer(t)

	contents, err := s.readAutomaton(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, AutomatonURI, text.URI)

	var def definition.Definition
	require.NoError(t, json.Unmarshal([]byte(text.Text), &def))
	assert.Equal(t, []domain.State{0, 1, 2, 3}, def.Accepting)
}
