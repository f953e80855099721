package lattice

import (
	"github.com/katalvlaran/hasse/dgraph"
)

// Lattice is a DAG of payload-carrying nodes ordered from bottom to
// top: an edge u → v states that v covers u. Payloads are arbitrary;
// ConceptLattice narrows them to Concepts.
type Lattice struct {
	g *dgraph.Graph
}

// NewLattice returns an empty lattice.
func NewLattice() *Lattice {
	return &Lattice{g: dgraph.New()}
}

// AddNode registers a node with the given payload and returns its id.
func (l *Lattice) AddNode(payload any) int {
	return l.g.AddNode(payload)
}

// AddEdge inserts the cover edge u → v; both nodes must exist.
func (l *Lattice) AddEdge(u, v int) bool {
	return l.g.AddEdge(u, v)
}

// HasEdge reports whether the cover edge u → v exists.
func (l *Lattice) HasEdge(u, v int) bool {
	return l.g.HasEdge(u, v)
}

// Nodes returns every node id, ascending.
func (l *Lattice) Nodes() []int {
	return l.g.Nodes()
}

// Payload returns the payload of id.
func (l *Lattice) Payload(id int) any {
	return l.g.Payload(id)
}

// Order returns the number of nodes.
func (l *Lattice) Order() int {
	return l.g.Order()
}

// Size returns the number of edges.
func (l *Lattice) Size() int {
	return l.g.Size()
}

// Successors returns the upper covers of id, ascending.
func (l *Lattice) Successors(id int) []int {
	return l.g.Successors(id)
}

// Predecessors returns the lower covers of id, ascending.
func (l *Lattice) Predecessors(id int) []int {
	return l.g.Predecessors(id)
}

// Graph returns the live underlying graph, for serialisation and
// graph-level inspection. Mutating it mutates the lattice.
func (l *Lattice) Graph() *dgraph.Graph {
	return l.g
}

// IsAcyclic reports whether the lattice order is well-formed.
func (l *Lattice) IsAcyclic() bool {
	return l.g.IsAcyclic()
}

// TopologicalSort returns the nodes bottom-up, deterministically;
// dgraph.ErrCycle on a malformed lattice.
func (l *Lattice) TopologicalSort() ([]int, error) {
	return l.g.TopologicalSort()
}

// Bottom returns the unique minimum (the only source) and whether it
// exists.
func (l *Lattice) Bottom() (int, bool) {
	return unique(l.g.Sources())
}

// Top returns the unique maximum (the only sink) and whether it
// exists.
func (l *Lattice) Top() (int, bool) {
	return unique(l.g.Sinks())
}

// JoinIrreducibles returns the nodes with exactly one lower cover,
// ascending.
func (l *Lattice) JoinIrreducibles() []int {
	out := make([]int, 0)
	for _, id := range l.g.Nodes() {
		if l.g.InDegree(id) == 1 {
			out = append(out, id)
		}
	}

	return out
}

// MeetIrreducibles returns the nodes with exactly one upper cover,
// ascending.
func (l *Lattice) MeetIrreducibles() []int {
	out := make([]int, 0)
	for _, id := range l.g.Nodes() {
		if l.g.OutDegree(id) == 1 {
			out = append(out, id)
		}
	}

	return out
}

// IsLattice reports whether the diagram is acyclic and every pair of
// nodes admits a least upper bound and a greatest lower bound.
// Complexity: O(V³)
func (l *Lattice) IsLattice() bool {
	if !l.g.IsAcyclic() {
		return false
	}
	nodes := l.g.Nodes()
	up := make(map[int]map[int]struct{}, len(nodes))
	down := make(map[int]map[int]struct{}, len(nodes))
	for _, id := range nodes {
		up[id] = reflexiveReach(l.g.Majorants(id), id)
		down[id] = reflexiveReach(l.g.Minorants(id), id)
	}
	for i, u := range nodes {
		for _, v := range nodes[i+1:] {
			// least upper bound: a common majorant below all the others
			if !hasExtremum(common(up[u], up[v]), up) {
				return false
			}
			// greatest lower bound: a common minorant above all the others
			if !hasExtremum(common(down[u], down[v]), down) {
				return false
			}
		}
	}

	return true
}

// unique unwraps a slice expected to hold exactly one id.
func unique(ids []int) (int, bool) {
	if len(ids) != 1 {
		return 0, false
	}

	return ids[0], true
}

// reflexiveReach turns a strict reach set into a reflexive one.
func reflexiveReach(ids []int, self int) map[int]struct{} {
	out := make(map[int]struct{}, len(ids)+1)
	out[self] = struct{}{}
	for _, id := range ids {
		out[id] = struct{}{}
	}

	return out
}

// common intersects two reach sets.
func common(a, b map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{})
	for id := range a {
		if _, ok := b[id]; ok {
			out[id] = struct{}{}
		}
	}

	return out
}

// hasExtremum reports whether cands holds one element comparable to
// all the others: an m whose cone (cone[m]) covers every candidate.
func hasExtremum(cands map[int]struct{}, cone map[int]map[int]struct{}) bool {
	for m := range cands {
		all := true
		for c := range cands {
			if _, ok := cone[m][c]; !ok {
				all = false

				break
			}
		}
		if all {
			return true
		}
	}

	return false
}
