package nfa

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/nfa/pkg/adapters/file"
	"github.com/aretw0/nfa/pkg/automaton"
	"github.com/aretw0/nfa/pkg/definition"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/aretw0/nfa/pkg/observability"
	"github.com/aretw0/nfa/pkg/ports"
	"github.com/aretw0/nfa/pkg/runner"
)

// Version is the module version, read from the VERSION file.
//
//go:embed VERSION
var Version string

// Checker is the high-level entry point for the nfa library.
// It owns a frozen automaton and wires the runner, cache and metrics around it.
type Checker struct {
	def         *definition.Definition
	automaton   *automaton.Automaton
	fingerprint string

	definitionPath string
	cache          ports.VerdictCache
	metrics        *observability.Metrics
	logger         *slog.Logger
}

// Option defines a functional option for configuring the Checker.
type Option func(*Checker)

// WithDefinitionFile loads the automaton from a YAML or JSON file.
func WithDefinitionFile(path string) Option {
	return func(c *Checker) {
		c.definitionPath = path
	}
}

// WithDefinition uses an already parsed definition.
func WithDefinition(def *definition.Definition) Option {
	return func(c *Checker) {
		c.def = def
	}
}

// WithEngine uses an engine built in code (e.g. with the dsl package).
// The engine is frozen; later registrations on it are not observed.
func WithEngine(name string, eng *automaton.Engine) Option {
	return func(c *Checker) {
		c.def = definition.FromAutomaton(name, eng)
	}
}

// WithCache configures a verdict cache shared by every evaluation.
func WithCache(cache ports.VerdictCache) Option {
	return func(c *Checker) {
		c.cache = cache
	}
}

// WithMetrics configures Prometheus collectors.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Checker) {
		c.metrics = m
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// New initializes a Checker.
// Without a definition option it uses the built-in reference automaton.
func New(opts ...Option) (*Checker, error) {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if c.definitionPath != "" {
		def, err := definition.Load(c.definitionPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load definition: %w", err)
		}
		c.def = def
	}
	if c.def == nil {
		c.def = definition.Default()
	}

	eng, err := c.def.Compile()
	if err != nil {
		return nil, fmt.Errorf("failed to compile definition: %w", err)
	}
	c.automaton = eng.Freeze()
	c.fingerprint = automaton.Fingerprint(c.automaton)

	c.logger.Debug("automaton ready",
		"name", c.def.Name,
		"states", len(c.automaton.States()),
		"transitions", len(c.def.Transitions),
		"fingerprint", c.fingerprint[:12],
	)
	return c, nil
}

// Name returns the definition name.
func (c *Checker) Name() string {
	return c.def.Name
}

// Definition returns the definition the checker was built from.
func (c *Checker) Definition() *definition.Definition {
	return c.def
}

// Automaton returns the frozen automaton.
func (c *Checker) Automaton() *automaton.Automaton {
	return c.automaton
}

// Fingerprint identifies the automaton for cache keys.
func (c *Checker) Fingerprint() string {
	return c.fingerprint
}

// Accept evaluates a single line, consulting the cache if configured.
func (c *Checker) Accept(ctx context.Context, line string) bool {
	return c.Runner(nil).Evaluate(ctx, line)
}

// Trace evaluates a line and records the active states after every symbol.
func (c *Checker) Trace(line string) automaton.Trace {
	return c.automaton.Trace(domain.Symbols(line))
}

// Runner creates a batch runner bound to this checker.
func (c *Checker) Runner(reporter ports.Reporter) *runner.Runner {
	opts := []runner.Option{
		runner.WithLogger(c.logger),
		runner.WithMetrics(c.metrics),
	}
	if c.cache != nil {
		opts = append(opts, runner.WithCache(c.cache, c.fingerprint))
	}
	return runner.New(c.automaton, reporter, opts...)
}

// Check runs every file (or "-" for stdin) through the automaton and reports the results.
// It stops at the first file that cannot be opened.
func (c *Checker) Check(ctx context.Context, reporter ports.Reporter, paths ...string) ([]domain.Summary, error) {
	return c.Runner(reporter).Run(ctx, file.NewSources(paths...)...)
}
