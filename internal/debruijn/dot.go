package debruijn

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// heavyEdgeWeight splits edges into heavy (bold) and light (dashed)
// strokes in the DOT render.
const heavyEdgeWeight = 3

// Dot renders the graph in graphviz DOT format. Edges with weight
// above heavyEdgeWeight are drawn bold, the rest dashed. Nodes and
// edges are emitted in lexicographic order.
func Dot(g *Graph) string {
	var b strings.Builder
	b.WriteString("digraph debruijn {\n")
	for _, node := range g.Nodes() {
		fmt.Fprintf(&b, "\t%q;\n", node)
	}
	for _, u := range g.Nodes() {
		for _, v := range g.Successors(u) {
			w, _ := g.Weight(u, v)
			style := "dashed"
			if w > heavyEdgeWeight {
				style = "bold"
			}
			fmt.Fprintf(&b, "\t%q -> %q [label=\"%d\", style=%s];\n", u, v, w, style)
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// WriteDot writes the DOT render of the graph to path.
func WriteDot(g *Graph, path string) error {
	if err := os.WriteFile(path, []byte(Dot(g)), 0644); err != nil {
		return errors.Wrap(err, "failed to write graph")
	}
	return nil
}
