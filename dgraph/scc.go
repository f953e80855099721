package dgraph

import "sort"

// Condense contracts every strongly connected component of g into one
// node and returns the resulting DAG together with the mapping from
// original ids to component ids.
//
// Each component node's payload is the sorted slice of its member ids
// ([]int). Components are numbered by ascending smallest member, which
// makes the condensation the canonical representative demanded by
// deterministic diagram generation.
// Complexity: O(V + E) for Tarjan, O(V log V) for canonicalisation
func (g *Graph) Condense() (*Graph, map[int]int) {
	// 1. Tarjan's algorithm, rooted at ascending ids with ascending
	//    neighbor exploration.
	index := make(map[int]int, len(g.payloads))
	low := make(map[int]int, len(g.payloads))
	onStack := make(map[int]bool, len(g.payloads))
	stack := make([]int, 0, len(g.payloads))
	next := 0
	var comps [][]int

	var strongconnect func(v int)
	strongconnect = func(v int) {
		index[v] = next
		low[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true
		for _, w := range g.Successors(v) {
			if _, seen := index[w]; !seen {
				strongconnect(w)
				if low[w] < low[v] {
					low[v] = low[w]
				}
			} else if onStack[w] && index[w] < low[v] {
				low[v] = index[w]
			}
		}
		if low[v] == index[v] {
			var comp []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			sort.Ints(comp)
			comps = append(comps, comp)
		}
	}

	for _, v := range g.Nodes() {
		if _, seen := index[v]; !seen {
			strongconnect(v)
		}
	}

	// 2. Canonical component order: ascending smallest member.
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })

	// 3. Build the condensation.
	dag := New()
	compOf := make(map[int]int, len(g.payloads))
	for _, comp := range comps {
		id := dag.AddNode(comp)
		for _, v := range comp {
			compOf[v] = id
		}
	}
	for _, e := range g.Edges() {
		cu, cv := compOf[e[0]], compOf[e[1]]
		if cu != cv {
			dag.AddEdge(cu, cv)
		}
	}

	return dag, compOf
}
