package observability

import (
	"time"

	"github.com/aretw0/nfa/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Source outcome labels for nfa_sources_total.
const (
	SourceCompleted   = "completed"
	SourceUnavailable = "unavailable"
	SourceFailed      = "failed"
)

// Metrics groups the collectors updated by the runner and the HTTP adapter.
type Metrics struct {
	Lines     *prometheus.CounterVec
	Sources   *prometheus.CounterVec
	Duration  prometheus.Histogram
	CacheHits prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
// A nil registerer leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Lines: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nfa_lines_total",
				Help: "Total number of evaluated lines by verdict",
			},
			[]string{"verdict"},
		),
		Sources: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nfa_sources_total",
				Help: "Total number of processed line sources by outcome",
			},
			[]string{"status"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nfa_accept_duration_seconds",
				Help:    "Duration of single acceptance evaluations",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
		),
		CacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "nfa_cache_hits_total",
				Help: "Total number of verdicts served from the cache",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(m.Lines, m.Sources, m.Duration, m.CacheHits)
	}
	return m
}

// ObserveLine records one verdict and how long it took to compute.
func (m *Metrics) ObserveLine(accepted bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Lines.WithLabelValues(domain.Label(accepted)).Inc()
	m.Duration.Observe(elapsed.Seconds())
}

// ObserveCacheHit records a verdict served from the cache.
func (m *Metrics) ObserveCacheHit(accepted bool) {
	if m == nil {
		return
	}
	m.Lines.WithLabelValues(domain.Label(accepted)).Inc()
	m.CacheHits.Inc()
}

// ObserveSource records the outcome of a line source.
func (m *Metrics) ObserveSource(status string) {
	if m == nil {
		return
	}
	m.Sources.WithLabelValues(status).Inc()
}
