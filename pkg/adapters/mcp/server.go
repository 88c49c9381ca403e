// Package mcp exposes an nfa checker as a Model Context Protocol server.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/nfa"
	httpAdapter "github.com/aretw0/nfa/pkg/adapters/http"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/aretw0/nfa/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// AutomatonURI is the resource that serves the automaton definition.
const AutomatonURI = "nfa://automaton"

// AcceptResponse aligns with the HTTP API and provides a unified structure across adapters.
type AcceptResponse struct {
	Input    string `json:"input" jsonschema_description:"The evaluated input"`
	Accepted bool   `json:"accepted" jsonschema_description:"Whether the automaton accepts the input"`
	Verdict  string `json:"verdict" jsonschema_description:"Accepted or Rejected"`
}

// Server wraps the checker and exposes it as an MCP Server.
type Server struct {
	checker   httpAdapter.Checker
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(checker httpAdapter.Checker) *Server {
	s := &Server{
		checker:   checker,
		mcpServer: server.NewMCPServer("nfa-mcp", strings.TrimSpace(nfa.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: accept
	acceptTool := mcp.NewTool("accept",
		mcp.WithDescription("Check whether the automaton accepts an input string. Each byte is one symbol."),
		mcp.WithString("input", mcp.Required(), mcp.Description("The input string to evaluate")),
		mcp.WithOutputSchema[AcceptResponse](),
	)
	s.mcpServer.AddTool(acceptTool, mcp.NewStructuredToolHandler(s.handleAccept))

	// TOOL: trace
	traceTool := mcp.NewTool("trace",
		mcp.WithDescription("Show the set of active states after each symbol of an input string."),
		mcp.WithString("input", mcp.Required(), mcp.Description("The input string to trace")),
		mcp.WithOutputSchema[httpAdapter.TraceResponse](),
	)
	s.mcpServer.AddTool(traceTool, mcp.NewStructuredToolHandler(s.handleTrace))

	// TOOL: get_automaton
	s.mcpServer.AddTool(mcp.NewTool("get_automaton",
		mcp.WithDescription("Get the automaton definition (initial state, accepting states, transitions)."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(s.checker.Definition())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleAccept(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (AcceptResponse, error) {
	input, err := inputArg(args)
	if err != nil {
		return AcceptResponse{}, err
	}

	accepted := s.checker.Accept(ctx, input)
	return AcceptResponse{
		Input:    input,
		Accepted: accepted,
		Verdict:  domain.Label(accepted),
	}, nil
}

func (s *Server) handleTrace(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (httpAdapter.TraceResponse, error) {
	input, err := inputArg(args)
	if err != nil {
		return httpAdapter.TraceResponse{}, err
	}
	return httpAdapter.NewTraceResponse(input, s.checker.Trace(input)), nil
}

func inputArg(args map[string]interface{}) (string, error) {
	raw, ok := args["input"]
	if !ok {
		return "", fmt.Errorf("missing required argument: input")
	}
	input, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("argument input must be a string")
	}
	if err := runner.CheckInput(input); err != nil {
		slog.Warn("MCP: Input rejected", "error", err, "size", len(input))
		return "", fmt.Errorf("input rejected: %w", err)
	}
	return input, nil
}

func (s *Server) registerResources() {
	// EXPOSE: nfa://automaton
	s.mcpServer.AddResource(mcp.NewResource(AutomatonURI, "Automaton Definition",
		mcp.WithMIMEType("application/json"),
	), s.readAutomaton)
}

func (s *Server) readAutomaton(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.checker.Definition())
	if err != nil {
		return nil, fmt.Errorf("failed to encode automaton: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      AutomatonURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
