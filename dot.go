package tinyfsm

import (
	"fmt"
	"strings"
)

// DotGraph renders the registered states and transitions as a Graphviz
// digraph. It is a read-only view for external tooling: state ids and
// names become nodes (final states double-bordered), permitted
// transitions become edges with the default edge drawn bold, and a
// point node marks the initial state.
func (m *StateMachine) DotGraph() string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	sb.WriteString("rankdir=\"LR\"\n")
	sb.WriteString("node [shape=Mrecord]\n")

	for _, id := range m.order {
		s := m.states[id]
		extra := ""
		if s.final {
			extra = ", peripheries=2"
		}
		sb.WriteString(fmt.Sprintf("\"%d\" [label=\"%s\"%s];\n", id, escapeLabel(s.name), extra))
	}

	for _, id := range m.order {
		s := m.states[id]
		def, hasDef := s.transitions.defaultTarget()
		for _, target := range s.transitions.list() {
			style := "solid"
			if hasDef && target == def {
				style = "bold"
			}
			sb.WriteString(fmt.Sprintf("\"%d\" -> \"%d\" [style=\"%s\"];\n", id, target, style))
		}
	}

	if len(m.order) > 0 {
		sb.WriteString("init [label=\"\", shape=point];\n")
		sb.WriteString(fmt.Sprintf("init -> \"%d\"\n", m.order[0]))
	}

	sb.WriteString("}\n")
	return sb.String()
}

// escapeLabel escapes special characters in a node label.
func escapeLabel(label string) string {
	label = strings.ReplaceAll(label, "\\", "\\\\")
	label = strings.ReplaceAll(label, "\"", "\\\"")
	return label
}
