package lattice

import (
	"github.com/katalvlaran/hasse/closure"
)

// Complete generates the transitively closed closed-set lattice of
// sys: every closed set enumerated by Next Closure becomes a node, and
// an edge joins each pair of closed sets in strict inclusion. The
// result equals the transitive closure of Diagram(sys).
// Complexity: O(c²·|S|) after enumeration
func Complete(sys closure.System) *ConceptLattice {
	cl := NewConceptLattice()
	closures := closure.AllClosures(sys)
	ids := make([]int, len(closures))
	for i, a := range closures {
		ids[i] = cl.AddConcept(NewConcept(a, nil))
	}
	for i, small := range closures {
		for j, big := range closures {
			if i != j && big.ContainsAll(small) && !small.ContainsAll(big) {
				cl.AddEdge(ids[i], ids[j])
			}
		}
	}

	return cl
}
