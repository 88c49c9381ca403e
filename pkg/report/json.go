package report

import (
	"encoding/json"
	"io"
	"os"

	"github.com/aretw0/nfa/pkg/domain"
)

// Event types emitted by JSONReporter.
const (
	EventLine    = "line"
	EventSummary = "summary"
)

// Event is one NDJSON record.
type Event struct {
	Type     string `json:"type"`
	Source   string `json:"source"`
	Input    string `json:"input,omitempty"`
	Accepted *bool  `json:"accepted,omitempty"`
	Verdict  string `json:"verdict,omitempty"`
	Passed   *int   `json:"passed,omitempty"`
	Total    *int   `json:"total,omitempty"`
}

// JSONReporter writes one JSON object per event.
type JSONReporter struct {
	Encoder *json.Encoder
}

// NewJSONReporter creates a reporter writing to w (stdout if nil).
func NewJSONReporter(w io.Writer) *JSONReporter {
	if w == nil {
		w = os.Stdout
	}
	return &JSONReporter{Encoder: json.NewEncoder(w)}
}

// Line emits a "line" event.
func (r *JSONReporter) Line(v domain.Verdict) error {
	accepted := v.Accepted
	return r.Encoder.Encode(Event{
		Type:     EventLine,
		Source:   v.Source,
		Input:    v.Input,
		Accepted: &accepted,
		Verdict:  v.Label(),
	})
}

// Summary emits a "summary" event.
func (r *JSONReporter) Summary(s domain.Summary) error {
	passed, total := s.Passed, s.Total
	return r.Encoder.Encode(Event{
		Type:   EventSummary,
		Source: s.Source,
		Passed: &passed,
		Total:  &total,
	})
}
