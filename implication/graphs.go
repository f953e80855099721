package implication

import (
	"github.com/katalvlaran/hasse/dgraph"
	"github.com/katalvlaran/hasse/set"
)

// RepresentativeGraph builds the representative graph of s: one node
// per ground-set element, and for every unary rule (P ∪ {b}) → {a} an
// edge a → b valuated by P. Several rules over the same pair stack
// their valuations on one edge; a rule {b} → {a} contributes the empty
// set. The edge payloads are *set.Family values.
//
// The unary form is computed on a clone; s is not mutated.
// Complexity: O(|Σ|·|S|)
func (s *System) RepresentativeGraph() *dgraph.Graph {
	tmp := s.Clone()
	tmp.MakeUnary()

	g := dgraph.New()
	ids := make(map[string]int, tmp.ground.Size())
	for _, e := range tmp.ground.Elements() {
		ids[e] = g.AddNode(e)
	}
	for _, r := range tmp.sigma {
		a, ok := r.conclusion.First()
		if !ok {
			continue
		}
		for _, b := range r.premise.Elements() {
			context := r.premise.Clone()
			context.Remove(b)
			from, to := ids[a], ids[b]
			g.AddEdge(from, to)
			fam, _ := g.EdgePayload(from, to)
			if fam == nil {
				fam = set.NewFamily()
				g.SetEdgePayload(from, to, fam)
			}
			fam.(*set.Family).Add(context)
		}
	}

	return g
}

// DependencyGraph builds the dependency graph of s: the representative
// graph of its canonical direct basis. It encodes at once the minimal
// generators and the canonical direct basis of the closed-set lattice.
//
// The basis is computed on a clone; s is not mutated.
// Complexity: exponential in the worst case (canonical direct basis)
func (s *System) DependencyGraph() *dgraph.Graph {
	cdb := s.Clone()
	cdb.MakeCanonicalDirectBasis()
	cdb.MakeUnary()

	return cdb.RepresentativeGraph()
}
