package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/nfa/pkg/automaton"
	"github.com/aretw0/nfa/pkg/domain"
)

// Report lists structural findings about an automaton.
// None of them make the automaton unusable; they point at states that can never matter.
type Report struct {
	// Unreachable states cannot be entered from the initial state.
	Unreachable []domain.State
	// Dead states are reachable but can never lead to an accepting state.
	Dead []domain.State
	// EmptyLanguage is set when no accepting state is reachable at all.
	EmptyLanguage bool
}

// OK reports whether there are no findings.
func (r Report) OK() bool {
	return len(r.Unreachable) == 0 && len(r.Dead) == 0 && !r.EmptyLanguage
}

// Err returns the findings as a single error, or nil.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}

	var errors []string
	if r.EmptyLanguage {
		errors = append(errors, "No accepting state is reachable: every input is rejected")
	}
	for _, q := range r.Unreachable {
		errors = append(errors, fmt.Sprintf("Unreachable state: '%s'", q))
	}
	for _, q := range r.Dead {
		errors = append(errors, fmt.Sprintf("Dead state (cannot reach an accepting state): '%s'", q))
	}
	return fmt.Errorf("found %d issues:\n- %s", len(errors), strings.Join(errors, "\n- "))
}

// ValidateAutomaton crawls the automaton from its initial state and reports
// unreachable and dead states.
func ValidateAutomaton(a automaton.Definition) Report {
	// 1. Forward crawl from the initial state
	reachable := crawl(a.Initial(), func(q domain.State) []domain.State {
		ts := a.Transitions(q)
		next := make([]domain.State, 0, len(ts))
		for _, t := range ts {
			next = append(next, t.To)
		}
		return next
	})

	// 2. Backward crawl from every accepting state
	reverse := make(map[domain.State][]domain.State)
	for _, e := range a.Edges() {
		reverse[e.To] = append(reverse[e.To], e.From)
	}
	productive := make(map[domain.State]bool)
	for _, q := range a.Accepting() {
		for p := range crawl(q, func(q domain.State) []domain.State { return reverse[q] }) {
			productive[p] = true
		}
	}

	// 3. Classify
	var r Report
	for _, q := range a.States() {
		switch {
		case !reachable[q]:
			r.Unreachable = append(r.Unreachable, q)
		case !productive[q]:
			r.Dead = append(r.Dead, q)
		}
	}
	r.EmptyLanguage = !productive[a.Initial()]
	return r
}

func crawl(start domain.State, next func(domain.State) []domain.State) map[domain.State]bool {
	visited := map[domain.State]bool{start: true}
	queue := []domain.State{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, target := range next(current) {
			if !visited[target] {
				visited[target] = true
				queue = append(queue, target)
			}
		}
	}
	return visited
}
