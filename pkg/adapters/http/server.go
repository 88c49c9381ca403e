// Package http exposes an nfa checker as a JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/nfa/internal/presentation/graph"
	"github.com/aretw0/nfa/pkg/automaton"
	"github.com/aretw0/nfa/pkg/definition"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/aretw0/nfa/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Checker defines what the server needs from the nfa core.
type Checker interface {
	Name() string
	Accept(ctx context.Context, line string) bool
	Trace(line string) automaton.Trace
	Automaton() *automaton.Automaton
	Definition() *definition.Definition
}

// AcceptRequest is the body of POST /accept and POST /trace.
type AcceptRequest struct {
	Input string `json:"input"`
}

// AcceptResponse is the verdict for a single input.
type AcceptResponse struct {
	Input    string `json:"input"`
	Accepted bool   `json:"accepted"`
	Verdict  string `json:"verdict"`
}

// BatchRequest is the body of POST /accept/batch.
type BatchRequest struct {
	Lines []string `json:"lines"`
}

// BatchResponse carries one verdict per line plus the summary counters.
type BatchResponse struct {
	Results []AcceptResponse `json:"results"`
	Passed  int              `json:"passed"`
	Total   int              `json:"total"`
}

// TraceStep is one step of a trace with a readable symbol.
type TraceStep struct {
	Symbol string         `json:"symbol"`
	States []domain.State `json:"states"`
}

// TraceResponse is the body returned by POST /trace.
type TraceResponse struct {
	Input    string         `json:"input"`
	Start    []domain.State `json:"start"`
	Steps    []TraceStep    `json:"steps"`
	Accepted bool           `json:"accepted"`
}

// Server serves the JSON API.
type Server struct {
	Checker  Checker
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithGatherer exposes the given registry on GET /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewHandler creates a new HTTP handler for the checker.
func NewHandler(checker Checker, opts ...Option) http.Handler {
	server := &Server{
		Checker: checker,
		Logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Post("/accept", server.Accept)
	r.Post("/accept/batch", server.AcceptBatch)
	r.Post("/trace", server.Trace)
	r.Get("/automaton", server.Automaton)
	r.Get("/graph", server.Graph)

	if server.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(server.Gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Accept handles POST /accept.
func (s *Server) Accept(w http.ResponseWriter, r *http.Request) {
	var body AcceptRequest
	if !s.decode(w, r, &body) {
		return
	}
	if !s.checkInput(w, body.Input) {
		return
	}

	accepted := s.Checker.Accept(r.Context(), body.Input)
	s.writeJSON(w, http.StatusOK, AcceptResponse{
		Input:    body.Input,
		Accepted: accepted,
		Verdict:  domain.Label(accepted),
	})
}

// AcceptBatch handles POST /accept/batch.
func (s *Server) AcceptBatch(w http.ResponseWriter, r *http.Request) {
	var body BatchRequest
	if !s.decode(w, r, &body) {
		return
	}
	for _, line := range body.Lines {
		if !s.checkInput(w, line) {
			return
		}
	}

	resp := BatchResponse{Results: make([]AcceptResponse, 0, len(body.Lines))}
	for _, line := range body.Lines {
		accepted := s.Checker.Accept(r.Context(), line)
		resp.Results = append(resp.Results, AcceptResponse{
			Input:    line,
			Accepted: accepted,
			Verdict:  domain.Label(accepted),
		})
		resp.Total++
		if accepted {
			resp.Passed++
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// Trace handles POST /trace.
func (s *Server) Trace(w http.ResponseWriter, r *http.Request) {
	var body AcceptRequest
	if !s.decode(w, r, &body) {
		return
	}
	if !s.checkInput(w, body.Input) {
		return
	}

	s.writeJSON(w, http.StatusOK, NewTraceResponse(body.Input, s.Checker.Trace(body.Input)))
}

// NewTraceResponse converts a trace into its JSON representation.
func NewTraceResponse(input string, tr automaton.Trace) TraceResponse {
	resp := TraceResponse{
		Input:    input,
		Start:    tr.Start,
		Steps:    make([]TraceStep, 0, len(tr.Steps)),
		Accepted: tr.Accepted,
	}
	for _, step := range tr.Steps {
		states := step.States
		if states == nil {
			states = []domain.State{}
		}
		resp.Steps = append(resp.Steps, TraceStep{Symbol: step.Symbol.String(), States: states})
	}
	return resp
}

// Automaton handles GET /automaton.
func (s *Server) Automaton(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Checker.Definition())
}

// Graph handles GET /graph?format=mermaid|dot.
func (s *Server) Graph(w http.ResponseWriter, r *http.Request) {
	a := s.Checker.Automaton()

	var out string
	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "", "mermaid":
		var overlay *graph.GraphOverlay
		if input, ok := r.URL.Query()["input"]; ok {
			overlay = &graph.GraphOverlay{Active: s.Checker.Trace(input[0]).Final()}
		}
		out = graph.GenerateMermaid(a, overlay)
	case "dot":
		out = graph.GenerateDOT(a)
	default:
		http.Error(w, "Unsupported graph format", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Invalid request body", "path", r.URL.Path, "error", err)
		return false
	}
	return true
}

func (s *Server) checkInput(w http.ResponseWriter, input string) bool {
	if err := runner.CheckInput(input); err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		s.Logger.Warn("Input rejected", "error", err, "size", len(input))
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "error", err)
	}
}
