package domain

// Transition is a labeled edge leaving a state.
// The source state is implied by the table entry that owns the transition.
// Several transitions may share the same (source, symbol) pair.
type Transition struct {
	Symbol Symbol `json:"symbol"`
	To     State  `json:"to"`
}

// Edge is a fully qualified transition, used when listing or exporting an automaton.
type Edge struct {
	From   State  `json:"from"`
	Symbol Symbol `json:"symbol"`
	To     State  `json:"to"`
}
