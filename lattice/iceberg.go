package lattice

// Iceberg returns the sub-lattice of the concepts whose relative
// support |extent| / |bottom extent| reaches threshold, with induced
// edges. The original top is kept as a sentinel even when its support
// falls short, and every newly exposed sink is wired to it so the
// result stays a lattice.
//
// Returns nil when some concept lacks an extent, when the lattice has
// no unique bottom/top, or when the bottom extent is empty.
// Complexity: O(V²)
func (cl *ConceptLattice) Iceberg(threshold float64) *ConceptLattice {
	if !cl.ContainsAllExtents() {
		return nil
	}
	bottom, ok := cl.Bottom()
	if !ok {
		return nil
	}
	top, ok := cl.Top()
	if !ok {
		return nil
	}
	card := cl.Concept(bottom).b.Size()
	if card == 0 {
		return nil
	}

	// 1. keep the supported concepts
	out := NewConceptLattice()
	kept := make(map[int]int)
	for _, id := range cl.g.Nodes() {
		c := cl.Concept(id)
		if float64(c.b.Size())/float64(card) >= threshold {
			kept[id] = out.AddConcept(c.Clone())
		}
	}

	// 2. induced edges
	for _, e := range cl.g.Edges() {
		nu, okU := kept[e[0]]
		nv, okV := kept[e[1]]
		if okU && okV {
			out.AddEdge(nu, nv)
		}
	}

	// 3. sentinel top and re-wiring of exposed sinks
	tid, ok := kept[top]
	if !ok {
		tid = out.AddConcept(cl.Concept(top).Clone())
	}
	for _, sink := range out.g.Sinks() {
		if sink != tid {
			out.AddEdge(sink, tid)
		}
	}

	return out
}
