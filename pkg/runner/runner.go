package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/nfa/pkg/automaton"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/aretw0/nfa/pkg/observability"
	"github.com/aretw0/nfa/pkg/ports"
)

// Runner evaluates line sources against an automaton and reports the verdicts.
type Runner struct {
	// Accepter decides each line. It is never mutated by the runner.
	Accepter automaton.Accepter

	// Reporter receives verdicts and summaries.
	Reporter ports.Reporter

	// Cache is consulted before evaluating a line. Optional.
	Cache     ports.VerdictCache
	Namespace string

	// Metrics is updated for every line and source. Optional.
	Metrics *observability.Metrics

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger
}

// New creates a Runner.
func New(acc automaton.Accepter, rep ports.Reporter, opts ...Option) *Runner {
	r := &Runner{
		Accepter: acc,
		Reporter: rep,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run processes the sources in order and returns the summary of every completed source.
// It stops at the first source that fails to open or read; the returned error
// wraps domain.ErrSourceUnavailable when a source could not be opened.
func (r *Runner) Run(ctx context.Context, sources ...ports.LineSource) ([]domain.Summary, error) {
	summaries := make([]domain.Summary, 0, len(sources))
	for _, src := range sources {
		summary, err := r.RunSource(ctx, src)
		if err != nil {
			return summaries, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// RunSource evaluates a single source and emits its summary.
func (r *Runner) RunSource(ctx context.Context, src ports.LineSource) (domain.Summary, error) {
	summary := domain.Summary{Source: src.Name()}

	reader, err := src.Open(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSourceUnavailable) {
			r.Metrics.ObserveSource(observability.SourceUnavailable)
			r.Logger.Error("unable to open source", "source", src.Name(), "err", err)
		} else {
			r.Metrics.ObserveSource(observability.SourceFailed)
		}
		return summary, err
	}
	defer reader.Close()

	for reader.Scan() {
		if err := ctx.Err(); err != nil {
			r.Metrics.ObserveSource(observability.SourceFailed)
			return summary, err
		}

		line := reader.Text()
		accepted := r.Evaluate(ctx, line)

		summary.Total++
		if accepted {
			summary.Passed++
		}
		r.Logger.Debug("line evaluated", "source", src.Name(), "line", summary.Total, "accepted", accepted)

		if err := r.Reporter.Line(domain.Verdict{Source: src.Name(), Input: line, Accepted: accepted}); err != nil {
			r.Metrics.ObserveSource(observability.SourceFailed)
			return summary, fmt.Errorf("failed to report line: %w", err)
		}
	}
	if err := reader.Err(); err != nil {
		r.Metrics.ObserveSource(observability.SourceFailed)
		return summary, fmt.Errorf("failed to read %s: %w", src.Name(), err)
	}

	if err := r.Reporter.Summary(summary); err != nil {
		r.Metrics.ObserveSource(observability.SourceFailed)
		return summary, fmt.Errorf("failed to report summary: %w", err)
	}

	r.Metrics.ObserveSource(observability.SourceCompleted)
	r.Logger.Info("source processed", "source", summary.Source, "passed", summary.Passed, "total", summary.Total)
	return summary, nil
}

// Evaluate decides a single line, going through the cache when one is configured.
// Cache failures are logged and never change the verdict.
func (r *Runner) Evaluate(ctx context.Context, line string) bool {
	if r.Cache != nil {
		accepted, found, err := r.Cache.Get(ctx, r.cacheKey(line))
		if err != nil {
			r.Logger.Warn("verdict cache lookup failed", "err", err)
		} else if found {
			r.Metrics.ObserveCacheHit(accepted)
			return accepted
		}
	}

	start := time.Now()
	accepted := r.Accepter.AcceptString(line)
	r.Metrics.ObserveLine(accepted, time.Since(start))

	if r.Cache != nil {
		if err := r.Cache.Set(ctx, r.cacheKey(line), accepted); err != nil {
			r.Logger.Warn("verdict cache store failed", "err", err)
		}
	}
	return accepted
}

func (r *Runner) cacheKey(line string) string {
	return r.Namespace + ":" + line
}
