package lattice_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hasse/implication"
	"github.com/katalvlaran/hasse/lattice"
)

// ExampleDiagram generates the Hasse diagram of a two-rule system and
// walks its closed sets bottom-up.
func ExampleDiagram() {
	sys, _ := implication.Parse(strings.NewReader("a b c\na -> b\nb -> c\n"))
	cl := lattice.Diagram(sys)

	order, _ := cl.TopologicalSort()
	for _, id := range order {
		fmt.Printf("{%s}\n", cl.Concept(id).Intent())
	}
	// Output:
	// {}
	// {c}
	// {b c}
	// {a b c}
}
