package tablefsm

import (
	"fmt"
	"sort"
	"strings"
)

var labelReplacer = strings.NewReplacer(
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
	`"`, "#quot;",
)

// Mermaid renders the machine's table as a Mermaid stateDiagram-v2.
//
// Every state, including transition targets missing from the table, is
// declared once as `state "<label>" as sN`, numbered in order of its printed
// form. Edges use those IDs and are labeled with their event, so states whose
// printed forms contain spaces or coincide still render as distinct nodes.
func (m *Machine[S, E]) Mermaid() string {
	var b strings.Builder
	b.WriteString("stateDiagram-v2\n")
	if m == nil {
		return b.String()
	}
	if m.name != "" {
		fmt.Fprintf(&b, "\t%%%% %s\n", sanitizeLabel(m.name))
	}

	sources := sortedByName(m.table.States())

	seen := make(map[S]bool, len(sources))
	nodes := make([]S, 0, len(sources))
	for _, s := range sources {
		seen[s] = true
		nodes = append(nodes, s)
	}
	for _, s := range sources {
		for _, tr := range m.table.states[s].on {
			if !seen[tr.Target()] {
				seen[tr.Target()] = true
				nodes = append(nodes, tr.Target())
			}
		}
	}
	nodes = sortedByName(nodes)

	ids := make(map[S]string, len(nodes))
	for i, s := range nodes {
		ids[s] = fmt.Sprintf("s%d", i)
		fmt.Fprintf(&b, "\tstate \"%s\" as %s\n", sanitizeLabel(fmt.Sprint(s)), ids[s])
	}

	for _, s := range sources {
		handler := m.table.states[s]
		for _, e := range sortedByName(handler.Events()) {
			fmt.Fprintf(&b, "\t%s --> %s : %s\n", ids[s], ids[handler.on[e].Target()], sanitizeLabel(fmt.Sprint(e)))
		}
	}

	return b.String()
}

// sanitizeLabel keeps a label on one line and out of the quote delimiters
func sanitizeLabel(s string) string {
	return labelReplacer.Replace(s)
}

func sortedByName[K comparable](keys []K) []K {
	sort.SliceStable(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	return keys
}
