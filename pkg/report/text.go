package report

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/nfa/pkg/domain"
	"github.com/muesli/termenv"
)

// TextOption configures a TextReporter.
type TextOption func(*TextReporter)

// WithProfile enables colored verdicts using the given terminal color profile.
// termenv.Ascii disables colors.
func WithProfile(p termenv.Profile) TextOption {
	return func(r *TextReporter) {
		r.profile = p
	}
}

// TextReporter writes verdicts as plain text lines.
type TextReporter struct {
	w       io.Writer
	profile termenv.Profile
}

// NewTextReporter creates a reporter writing to w (stdout if nil). Colors are off by default.
func NewTextReporter(w io.Writer, opts ...TextOption) *TextReporter {
	if w == nil {
		w = os.Stdout
	}
	r := &TextReporter{
		w:       w,
		profile: termenv.Ascii,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Line writes "<input>: Accepted" or "<input>: Rejected".
func (r *TextReporter) Line(v domain.Verdict) error {
	_, err := fmt.Fprintf(r.w, "%s: %s\n", v.Input, r.verdict(v.Accepted))
	return err
}

// Summary writes the per-source pass counter.
func (r *TextReporter) Summary(s domain.Summary) error {
	_, err := fmt.Fprintf(r.w, "Passed tests for file: %d out of %d\n", s.Passed, s.Total)
	return err
}

func (r *TextReporter) verdict(accepted bool) string {
	label := domain.Label(accepted)
	if r.profile == termenv.Ascii {
		return label
	}
	color := "#22c55e"
	if !accepted {
		color = "#ef4444"
	}
	return termenv.String(label).Foreground(r.profile.Color(color)).Bold().String()
}
