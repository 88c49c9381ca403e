package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/nfa/pkg/automaton"
)

// GenerateDOT produces a Graphviz digraph for an automaton.
// Accepting states are drawn as double circles and the initial state
// is marked by an edge from an invisible "init" node.
func GenerateDOT(a automaton.Definition) string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	sb.WriteString("rankdir=\"LR\"\n")
	sb.WriteString("node [shape=circle]\n")
	sb.WriteString("init [label=\"\", shape=point];\n")

	for _, q := range a.States() {
		if a.IsAccepting(q) {
			sb.WriteString(fmt.Sprintf("\"%s\" [shape=doublecircle];\n", q))
		} else {
			sb.WriteString(fmt.Sprintf("\"%s\";\n", q))
		}
	}

	sb.WriteString(fmt.Sprintf("init -> \"%s\";\n", a.Initial()))
	for _, e := range mergeEdges(a.Edges()) {
		sb.WriteString(fmt.Sprintf("\"%s\" -> \"%s\" [label=\"%s\"];\n", e.from, e.to, strings.Join(e.labels, ",")))
	}

	sb.WriteString("}\n")
	return sb.String()
}
