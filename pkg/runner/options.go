package runner

import (
	"log/slog"

	"github.com/aretw0/nfa/pkg/observability"
	"github.com/aretw0/nfa/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithCache configures a verdict cache.
// The namespace (usually automaton.Fingerprint) keeps verdicts of different automata apart.
func WithCache(cache ports.VerdictCache, namespace string) Option {
	return func(r *Runner) {
		r.Cache = cache
		r.Namespace = namespace
	}
}

// WithMetrics configures Prometheus collectors.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Runner) {
		r.Metrics = m
	}
}
