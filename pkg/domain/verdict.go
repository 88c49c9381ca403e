package domain

// Verdict labels used by reporters.
const (
	VerdictAccepted = "Accepted"
	VerdictRejected = "Rejected"
)

// Verdict is the outcome of evaluating a single input line.
type Verdict struct {
	Source   string `json:"source,omitempty"`
	Input    string `json:"input"`
	Accepted bool   `json:"accepted"`
}

// Label returns the literal verdict ("Accepted" or "Rejected").
func (v Verdict) Label() string {
	return Label(v.Accepted)
}

// Label maps an acceptance result to its literal verdict.
func Label(accepted bool) string {
	if accepted {
		return VerdictAccepted
	}
	return VerdictRejected
}

// Summary holds the per-source counters emitted once a source is exhausted.
type Summary struct {
	Source string `json:"source"`
	Passed int    `json:"passed"`
	Total  int    `json:"total"`
}
