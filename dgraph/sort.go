package dgraph

// Visitation states for depth-first traversals.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored
)

// TopologicalSort returns a linear ordering of the nodes such that for
// every edge u→v, u appears before v. Roots are taken in ascending id
// order and neighbors are explored ascending, so the result is the
// same on every run. Returns ErrCycle when g is not acyclic.
// Complexity: O(V + E)
func (g *Graph) TopologicalSort() ([]int, error) {
	state := make(map[int]int, len(g.payloads))
	order := make([]int, 0, len(g.payloads))

	var visit func(id int) error
	visit = func(id int) error {
		// a gray node on the stack means a back-edge
		if state[id] == gray {
			return ErrCycle
		}
		if state[id] == black {
			return nil
		}
		state[id] = gray
		for _, to := range g.Successors(id) {
			if err := visit(to); err != nil {
				return err
			}
		}
		state[id] = black
		order = append(order, id)

		return nil
	}

	for _, id := range g.Nodes() {
		if state[id] == white {
			if err := visit(id); err != nil {
				return nil, err
			}
		}
	}
	// reverse post-order is the topological order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// IsAcyclic reports whether g has no directed cycle.
// Complexity: O(V + E)
func (g *Graph) IsAcyclic() bool {
	_, err := g.TopologicalSort()

	return err == nil
}
