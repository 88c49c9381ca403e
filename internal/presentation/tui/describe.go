package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/nfa/internal/presentation/graph"
	"github.com/aretw0/nfa/pkg/automaton"
	"github.com/aretw0/nfa/pkg/domain"
)

// Describe builds a markdown summary of an automaton: its states,
// alphabet and transition table (one row per state, one column per symbol).
func Describe(name string, a automaton.Definition) string {
	var sb strings.Builder

	if name == "" {
		name = "automaton"
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", name))

	states := a.States()
	alphabet := a.Alphabet()

	sb.WriteString(fmt.Sprintf("- **Initial state:** %s\n", a.Initial()))
	sb.WriteString(fmt.Sprintf("- **Accepting states:** %s\n", joinStates(a.Accepting())))
	sb.WriteString(fmt.Sprintf("- **States:** %d\n", len(states)))
	sb.WriteString(fmt.Sprintf("- **Transitions:** %d\n", len(a.Edges())))
	sb.WriteString(fmt.Sprintf("- **Fingerprint:** `%s`\n\n", automaton.Fingerprint(a)[:12]))

	if len(alphabet) == 0 {
		sb.WriteString("_No transitions._\n")
		return sb.String()
	}

	sb.WriteString("| state |")
	for _, s := range alphabet {
		sb.WriteString(fmt.Sprintf(" `%s` |", graph.SymbolLabel(s)))
	}
	sb.WriteString("\n|---|")
	for range alphabet {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")

	for _, q := range states {
		label := q.String()
		if q == a.Initial() {
			label = "→ " + label
		}
		if a.IsAccepting(q) {
			label += " *"
		}
		sb.WriteString(fmt.Sprintf("| %s |", label))

		for _, s := range alphabet {
			var targets []domain.State
			for _, t := range a.Transitions(q) {
				if t.Symbol == s {
					targets = append(targets, t.To)
				}
			}
			cell := "∅"
			if len(targets) > 0 {
				cell = joinStates(targets)
			}
			sb.WriteString(fmt.Sprintf(" %s |", cell))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func joinStates(states []domain.State) string {
	if len(states) == 0 {
		return "∅"
	}
	parts := make([]string, len(states))
	for i, q := range states {
		parts[i] = q.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
