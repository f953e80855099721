package dgraph

import (
	"errors"
	"sort"
)

// Sentinel errors for graph algorithms.
var (
	// ErrCycle indicates that a cycle was encountered where an acyclic
	// graph is required (TopologicalSort).
	ErrCycle = errors.New("dgraph: cycle detected")
)

// edgeKey identifies a directed edge source→target.
type edgeKey struct {
	from, to int
}

// Graph is a finite directed graph over integer node ids.
//
// Ids are allocated by AddNode and never reused within one Graph.
// Payloads are opaque to this package; algorithms copy them by
// reference when deriving graphs (Clone, subgraphs); Condense gives
// its component nodes fresh payloads (their member ids).
type Graph struct {
	nextID   int
	payloads map[int]any
	succs    map[int]map[int]struct{}
	preds    map[int]map[int]struct{}
	eloads   map[edgeKey]any
}

// New creates an empty Graph.
// Complexity: O(1)
func New() *Graph {
	return &Graph{
		payloads: make(map[int]any),
		succs:    make(map[int]map[int]struct{}),
		preds:    make(map[int]map[int]struct{}),
		eloads:   make(map[edgeKey]any),
	}
}

// AddNode registers a fresh node carrying payload and returns its id.
// Complexity: O(1)
func (g *Graph) AddNode(payload any) int {
	id := g.nextID
	g.nextID++
	g.attach(id, payload)

	return id
}

// attach registers id with payload, preserving nextID monotonicity.
// Used by id-preserving derivations (Clone, subgraphs).
func (g *Graph) attach(id int, payload any) {
	g.payloads[id] = payload
	g.succs[id] = make(map[int]struct{})
	g.preds[id] = make(map[int]struct{})
	if id >= g.nextID {
		g.nextID = id + 1
	}
}

// RemoveNode deletes id with every incident edge and reports whether
// the node existed.
// Complexity: O(deg)
func (g *Graph) RemoveNode(id int) bool {
	if !g.HasNode(id) {
		return false
	}
	for to := range g.succs[id] {
		delete(g.preds[to], id)
		delete(g.eloads, edgeKey{id, to})
	}
	for from := range g.preds[id] {
		delete(g.succs[from], id)
		delete(g.eloads, edgeKey{from, id})
	}
	delete(g.payloads, id)
	delete(g.succs, id)
	delete(g.preds, id)

	return true
}

// HasNode reports whether id is a node of g.
// Complexity: O(1)
func (g *Graph) HasNode(id int) bool {
	_, ok := g.payloads[id]

	return ok
}

// Payload returns the payload of id (nil when the node is absent).
// Complexity: O(1)
func (g *Graph) Payload(id int) any {
	return g.payloads[id]
}

// SetPayload replaces the payload of id and reports whether the node
// exists.
// Complexity: O(1)
func (g *Graph) SetPayload(id int, payload any) bool {
	if !g.HasNode(id) {
		return false
	}
	g.payloads[id] = payload

	return true
}

// AddEdge inserts the edge from→to and reports whether it was absent.
// Both endpoints must exist; otherwise false is returned.
// Complexity: O(1)
func (g *Graph) AddEdge(from, to int) bool {
	if !g.HasNode(from) || !g.HasNode(to) {
		return false
	}
	if _, ok := g.succs[from][to]; ok {
		return false
	}
	g.succs[from][to] = struct{}{}
	g.preds[to][from] = struct{}{}

	return true
}

// RemoveEdge deletes the edge from→to and reports whether it existed.
// Complexity: O(1)
func (g *Graph) RemoveEdge(from, to int) bool {
	if !g.HasEdge(from, to) {
		return false
	}
	delete(g.succs[from], to)
	delete(g.preds[to], from)
	delete(g.eloads, edgeKey{from, to})

	return true
}

// HasEdge reports whether the edge from→to exists.
// Complexity: O(1)
func (g *Graph) HasEdge(from, to int) bool {
	if !g.HasNode(from) {
		return false
	}
	_, ok := g.succs[from][to]

	return ok
}

// EdgePayload returns the payload attached to the edge from→to and
// whether one is set.
// Complexity: O(1)
func (g *Graph) EdgePayload(from, to int) (any, bool) {
	p, ok := g.eloads[edgeKey{from, to}]

	return p, ok
}

// SetEdgePayload attaches payload to the edge from→to and reports
// whether the edge exists.
// Complexity: O(1)
func (g *Graph) SetEdgePayload(from, to int, payload any) bool {
	if !g.HasEdge(from, to) {
		return false
	}
	g.eloads[edgeKey{from, to}] = payload

	return true
}

// Order returns the number of nodes.
// Complexity: O(1)
func (g *Graph) Order() int {
	return len(g.payloads)
}

// Size returns the number of edges.
// Complexity: O(V)
func (g *Graph) Size() int {
	n := 0
	for _, out := range g.succs {
		n += len(out)
	}

	return n
}

// Nodes returns every node id, ascending.
// Complexity: O(V log V)
func (g *Graph) Nodes() []int {
	out := make([]int, 0, len(g.payloads))
	for id := range g.payloads {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// Edges returns every edge as a [from, to] pair, sorted
// lexicographically.
// Complexity: O(E log E)
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0)
	for from, tos := range g.succs {
		for to := range tos {
			out = append(out, [2]int{from, to})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}

		return out[i][1] < out[j][1]
	})

	return out
}

// Successors returns the targets of edges leaving id, ascending.
// Complexity: O(deg log deg)
func (g *Graph) Successors(id int) []int {
	return sortedKeys(g.succs[id])
}

// Predecessors returns the sources of edges entering id, ascending.
// Complexity: O(deg log deg)
func (g *Graph) Predecessors(id int) []int {
	return sortedKeys(g.preds[id])
}

// OutDegree returns the number of edges leaving id.
// Complexity: O(1)
func (g *Graph) OutDegree(id int) int {
	return len(g.succs[id])
}

// InDegree returns the number of edges entering id.
// Complexity: O(1)
func (g *Graph) InDegree(id int) int {
	return len(g.preds[id])
}

// Sources returns the nodes without predecessors, ascending.
// Complexity: O(V log V)
func (g *Graph) Sources() []int {
	out := make([]int, 0)
	for id := range g.payloads {
		if len(g.preds[id]) == 0 {
			out = append(out, id)
		}
	}
	sort.Ints(out)

	return out
}

// Sinks returns the nodes without successors, ascending.
// Complexity: O(V log V)
func (g *Graph) Sinks() []int {
	out := make([]int, 0)
	for id := range g.payloads {
		if len(g.succs[id]) == 0 {
			out = append(out, id)
		}
	}
	sort.Ints(out)

	return out
}

// Clone returns an id-preserving copy of g. Node and edge payloads are
// copied by reference.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	out := New()
	for id, p := range g.payloads {
		out.attach(id, p)
	}
	for from, tos := range g.succs {
		for to := range tos {
			out.AddEdge(from, to)
		}
	}
	for k, p := range g.eloads {
		out.eloads[k] = p
	}

	return out
}

// Transpose reverses every edge in place. Edge payloads follow their
// edge.
// Complexity: O(V + E)
func (g *Graph) Transpose() {
	g.succs, g.preds = g.preds, g.succs
	flipped := make(map[edgeKey]any, len(g.eloads))
	for k, p := range g.eloads {
		flipped[edgeKey{k.to, k.from}] = p
	}
	g.eloads = flipped
}

// SubgraphByNodes returns the restriction of g to ids, keeping node
// ids, payloads, and every edge whose two endpoints are kept.
// Unknown ids are ignored.
// Complexity: O(V + E)
func (g *Graph) SubgraphByNodes(ids []int) *Graph {
	out := New()
	for _, id := range ids {
		if g.HasNode(id) {
			out.attach(id, g.payloads[id])
		}
	}
	for from := range out.payloads {
		for to := range g.succs[from] {
			if out.HasNode(to) {
				out.AddEdge(from, to)
				if p, ok := g.eloads[edgeKey{from, to}]; ok {
					out.eloads[edgeKey{from, to}] = p
				}
			}
		}
	}

	return out
}

// SubgraphByEdges returns the restriction of g to the given edges:
// every node is kept, but only listed edges survive. Edges absent from
// g are ignored.
// Complexity: O(V + E)
func (g *Graph) SubgraphByEdges(edges [][2]int) *Graph {
	out := New()
	for id, p := range g.payloads {
		out.attach(id, p)
	}
	for _, e := range edges {
		if g.HasEdge(e[0], e[1]) {
			out.AddEdge(e[0], e[1])
			if p, ok := g.eloads[edgeKey{e[0], e[1]}]; ok {
				out.eloads[edgeKey{e[0], e[1]}] = p
			}
		}
	}

	return out
}

// sortedKeys extracts map keys in ascending order.
func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}
