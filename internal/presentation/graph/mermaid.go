package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/nfa/pkg/automaton"
	"github.com/aretw0/nfa/pkg/domain"
)

// GraphOverlay contains dynamic evaluation data to visualize on the graph.
type GraphOverlay struct {
	// Active lists the states active after the last consumed symbol.
	Active []domain.State
}

// GenerateMermaid produces a Mermaid flowchart (graph LR) for an automaton.
// It applies semantic styling:
// - Initial: an invisible entry point pointing at the initial state
// - Accepting: (((Double Circle)))
// - Default: ((Circle))
// Parallel edges between the same pair of states are merged into one label.
// Active states from the overlay are highlighted if provided.
func GenerateMermaid(a automaton.Definition, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	sb.WriteString("    entry[ ]:::entry\n")
	sb.WriteString(fmt.Sprintf("    entry --> %s\n", stateID(a.Initial())))

	for _, q := range a.States() {
		opener, closer := "((", "))"
		if a.IsAccepting(q) {
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", stateID(q), opener, q, closer))
	}

	for _, e := range mergeEdges(a.Edges()) {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", stateID(e.from), strings.Join(e.labels, ","), stateID(e.to)))
	}

	sb.WriteString("\n    classDef entry fill:none,stroke:none;\n")

	if overlay != nil && len(overlay.Active) > 0 {
		sb.WriteString("    classDef active fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		seen := make(map[domain.State]bool)
		for _, q := range overlay.Active {
			if seen[q] {
				continue
			}
			seen[q] = true
			sb.WriteString(fmt.Sprintf("    class %s active;\n", stateID(q)))
		}
	}

	return sb.String()
}

type mergedEdge struct {
	from, to domain.State
	labels   []string
}

// mergeEdges groups edges by (from, to), keeping first-seen order
// and dropping duplicate symbols within a group.
func mergeEdges(edges []domain.Edge) []mergedEdge {
	type pair struct{ from, to domain.State }

	index := make(map[pair]int)
	seen := make(map[domain.Edge]bool)
	var out []mergedEdge

	for _, e := range edges {
		if seen[e] {
			continue
		}
		seen[e] = true

		p := pair{e.From, e.To}
		i, ok := index[p]
		if !ok {
			i = len(out)
			index[p] = i
			out = append(out, mergedEdge{from: e.From, to: e.To})
		}
		out[i].labels = append(out[i].labels, SymbolLabel(e.Symbol))
	}
	return out
}

func stateID(q domain.State) string {
	return "s" + q.String()
}

// SymbolLabel renders a symbol for diagrams: printable ASCII as is,
// everything else (and the quote characters) as a hex escape.
func SymbolLabel(s domain.Symbol) string {
	if s > ' ' && s < 0x7f && s != '"' && s != '\'' && s != ',' {
		return s.String()
	}
	return fmt.Sprintf("0x%02x", byte(s))
}
