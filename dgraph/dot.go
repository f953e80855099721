package dgraph

import (
	"fmt"
	"strings"
)

// DOT renders g in Graphviz DOT syntax. Node labels come from the
// fmt rendering of their payloads (falling back to the id for nil
// payloads); edge payloads, when set, become edge labels. Output is
// emitted in ascending id order and is therefore stable.
// Complexity: O(V + E)
func (g *Graph) DOT(name string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph %s {\n", name)
	sb.WriteString("  rankdir=BT;\n")
	for _, id := range g.Nodes() {
		label := fmt.Sprintf("%d", id)
		if p := g.Payload(id); p != nil {
			label = escape(fmt.Sprint(p))
		}
		fmt.Fprintf(&sb, "  n%d [label=\"%s\"];\n", id, label)
	}
	for _, e := range g.Edges() {
		if p, ok := g.EdgePayload(e[0], e[1]); ok && p != nil {
			fmt.Fprintf(&sb, "  n%d -> n%d [label=\"%s\"];\n", e[0], e[1], escape(fmt.Sprint(p)))
		} else {
			fmt.Fprintf(&sb, "  n%d -> n%d;\n", e[0], e[1])
		}
	}
	sb.WriteString("}\n")

	return sb.String()
}

// escape protects quotes and newlines in DOT labels.
func escape(s string) string {
	s = strings.ReplaceAll(s, `"`, `\"`)

	return strings.ReplaceAll(s, "\n", `\n`)
}
