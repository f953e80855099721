package lattice

import (
	"strconv"

	"github.com/katalvlaran/hasse/dgraph"
	"github.com/katalvlaran/hasse/set"
)

// Ideal generates the lattice of ideals (downward-closed node sets) of
// the given DAG, ordered by inclusion; intents hold node labels (the
// node's string payload when it has one, its id otherwise). Returns
// nil on cyclic input.
//
// The construction walks a topological sort and doubles the ideal set
// at each node x: every existing ideal containing all strict ancestors
// of x spawns a new ideal extended with x.
// Complexity: O(c²·V) with c the number of ideals
func Ideal(dag *dgraph.Graph) *ConceptLattice {
	if !dag.IsAcyclic() {
		return nil
	}

	// strict ancestors come from the transitive closure of a copy
	closed := dag.Clone()
	closed.TransitiveClosure()
	order, err := closed.TopologicalSort()
	if err != nil {
		return nil
	}

	// 1. grow the ideals, starting from the empty one
	ideals := []*set.Set{set.New()}
	for _, x := range order {
		ancestors := set.New()
		for _, p := range closed.Predecessors(x) {
			ancestors.Add(nodeLabel(closed, p))
		}
		label := nodeLabel(closed, x)
		grown := set.NewFamily()
		for _, ideal := range ideals {
			if ideal.ContainsAll(ancestors) {
				next := ideal.Clone()
				next.Add(label)
				grown.Add(next)
			}
		}
		for _, next := range grown.Sets() {
			ideals = append(ideals, next)
		}
	}

	// 2. nodes, inclusion edges, Hasse reduction
	cl := NewConceptLattice()
	ids := make([]int, len(ideals))
	for i, ideal := range ideals {
		ids[i] = cl.AddConcept(NewConcept(ideal, nil))
	}
	for i, small := range ideals {
		for j, big := range ideals {
			if i != j && big.ContainsAll(small) && !small.ContainsAll(big) {
				cl.AddEdge(ids[i], ids[j])
			}
		}
	}
	cl.g.TransitiveReduction()

	return cl
}

// nodeLabel names a DAG node by its string payload, falling back to
// the id.
func nodeLabel(g *dgraph.Graph, id int) string {
	if s, ok := g.Payload(id).(string); ok {
		return s
	}

	return strconv.Itoa(id)
}
