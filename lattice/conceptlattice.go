package lattice

import (
	"github.com/katalvlaran/hasse/dgraph"
	"github.com/katalvlaran/hasse/set"
)

// ConceptLattice is a Lattice whose node payloads are Concepts. It
// optionally carries the dependency graph computed during diagram
// generation: a directed graph over the ground set whose edge payloads
// are inclusion-minimal antichains of generators (*set.Family).
type ConceptLattice struct {
	Lattice
	dep    *dgraph.Graph
	depIDs map[string]int
}

// NewConceptLattice returns an empty concept lattice with no
// dependency graph attached.
func NewConceptLattice() *ConceptLattice {
	return &ConceptLattice{Lattice: Lattice{g: dgraph.New()}}
}

// AddNode registers payload and returns its id; payloads other than
// *Concept are refused with a false second result.
func (cl *ConceptLattice) AddNode(payload any) (int, bool) {
	c, ok := payload.(*Concept)
	if !ok {
		return 0, false
	}

	return cl.Lattice.AddNode(c), true
}

// AddConcept registers the concept and returns its node id.
func (cl *ConceptLattice) AddConcept(c *Concept) int {
	return cl.Lattice.AddNode(c)
}

// Concept returns the concept carried by id, or nil for an unknown
// node.
func (cl *ConceptLattice) Concept(id int) *Concept {
	c, _ := cl.g.Payload(id).(*Concept)

	return c
}

// FindIntent returns the node whose concept has the given intent and
// whether one exists.
// Complexity: O(V·|S|)
func (cl *ConceptLattice) FindIntent(a *set.Set) (int, bool) {
	for _, id := range cl.g.Nodes() {
		c := cl.Concept(id)
		if c != nil && c.a != nil && c.a.Equal(a) {
			return id, true
		}
	}

	return 0, false
}

// DependencyGraph returns the dependency graph built during diagram
// generation, or nil when the lattice was not diagram-generated. The
// graph is live; its edge payloads are *set.Family antichains.
func (cl *ConceptLattice) DependencyGraph() *dgraph.Graph {
	return cl.dep
}

// ContainsAllIntents reports whether every node carries an intent.
func (cl *ConceptLattice) ContainsAllIntents() bool {
	for _, id := range cl.g.Nodes() {
		c := cl.Concept(id)
		if c == nil || c.a == nil {
			return false
		}
	}

	return true
}

// ContainsAllExtents reports whether every node carries an extent.
func (cl *ConceptLattice) ContainsAllExtents() bool {
	for _, id := range cl.g.Nodes() {
		c := cl.Concept(id)
		if c == nil || c.b == nil {
			return false
		}
	}

	return true
}

// Intents returns the intents of all nodes as a Family (useful for
// set-level comparison with the closures of a system).
func (cl *ConceptLattice) Intents() *set.Family {
	out := set.NewFamily()
	for _, id := range cl.g.Nodes() {
		if c := cl.Concept(id); c != nil && c.a != nil {
			out.Add(c.a)
		}
	}

	return out
}

// Clone returns a deep copy: concepts and dependency-graph valuations
// are copied, node ids preserved.
func (cl *ConceptLattice) Clone() *ConceptLattice {
	out := &ConceptLattice{Lattice: Lattice{g: cl.g.Clone()}}
	for _, id := range out.g.Nodes() {
		if c := cl.Concept(id); c != nil {
			out.g.SetPayload(id, c.Clone())
		}
	}
	if cl.dep != nil {
		out.dep = cl.dep.Clone()
		for _, e := range out.dep.Edges() {
			if p, ok := out.dep.EdgePayload(e[0], e[1]); ok {
				if fam, isFam := p.(*set.Family); isFam {
					out.dep.SetEdgePayload(e[0], e[1], fam.Clone())
				}
			}
		}
		out.depIDs = make(map[string]int, len(cl.depIDs))
		for k, v := range cl.depIDs {
			out.depIDs[k] = v
		}
	}

	return out
}
