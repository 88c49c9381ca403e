package ports

import "github.com/aretw0/nfa/pkg/domain"

// Reporter receives evaluation results as they are produced.
type Reporter interface {
	// Line is called once per evaluated line, in input order.
	Line(v domain.Verdict) error

	// Summary is called after a source is exhausted.
	Summary(s domain.Summary) error
}
