package dgraph

// reachable returns every node with a directed path from id. id itself
// is always excluded, even when it lies on a cycle.
func (g *Graph) reachable(id int, forward bool) map[int]struct{} {
	seen := make(map[int]struct{})
	stack := []int{id}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		var next []int
		if forward {
			next = g.Successors(v)
		} else {
			next = g.Predecessors(v)
		}
		for _, w := range next {
			if _, ok := seen[w]; !ok {
				seen[w] = struct{}{}
				stack = append(stack, w)
			}
		}
	}
	delete(seen, id)

	return seen
}

// Majorants returns every node strictly reachable from id, ascending.
// Complexity: O(V + E)
func (g *Graph) Majorants(id int) []int {
	return sortedKeys(g.reachable(id, true))
}

// Minorants returns every node from which id is strictly reachable,
// ascending.
// Complexity: O(V + E)
func (g *Graph) Minorants(id int) []int {
	return sortedKeys(g.reachable(id, false))
}

// TransitiveClosure adds an edge u→v for every node v strictly
// reachable from u. Self-loops are not introduced.
// Complexity: O(V·(V + E))
func (g *Graph) TransitiveClosure() {
	for _, u := range g.Nodes() {
		for v := range g.reachable(u, true) {
			if u != v {
				g.AddEdge(u, v)
			}
		}
	}
}

// TransitiveReduction removes every edge u→v for which an alternative
// directed path u→...→v exists. On a DAG this yields the unique Hasse
// diagram of the induced order; on cyclic input the result is
// unspecified.
// Complexity: O(E·(V + E))
func (g *Graph) TransitiveReduction() {
	for _, e := range g.Edges() {
		u, v := e[0], e[1]
		payload, hasPayload := g.EdgePayload(u, v)
		g.RemoveEdge(u, v)
		if _, ok := g.reachable(u, true)[v]; !ok {
			g.AddEdge(u, v)
			if hasPayload {
				g.SetEdgePayload(u, v, payload)
			}
		}
	}
}
