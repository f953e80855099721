package lattice

import (
	"github.com/katalvlaran/hasse/set"
)

// MakeInclusionReduction strips redundant elements from the concepts
// in place: walking the nodes top-down, each intent loses the intents
// of its lower covers; walking bottom-up, each extent loses the
// extents of its upper covers. The lattice structure keeps the
// subtraction recoverable.
//
// Returns false when the lattice holds a non-concept payload or when
// neither all intents nor all extents are present.
// Complexity: O(V·E·|S|)
func (cl *ConceptLattice) MakeInclusionReduction() bool {
	intents := cl.ContainsAllIntents()
	extents := cl.ContainsAllExtents()
	if !intents && !extents {
		return false
	}
	order, err := cl.TopologicalSort()
	if err != nil {
		return false
	}

	if intents {
		// reverse topological: a node is reduced before its lower
		// covers are touched
		for i := len(order) - 1; i >= 0; i-- {
			to := cl.Concept(order[i])
			for _, p := range cl.g.Predecessors(order[i]) {
				to.a.RemoveAll(cl.Concept(p).a)
			}
		}
	}
	if extents {
		for _, id := range order {
			to := cl.Concept(id)
			for _, succ := range cl.g.Successors(id) {
				to.b.RemoveAll(cl.Concept(succ).b)
			}
		}
	}

	return true
}

// MakeIrreduciblesReduction performs the inclusion reduction, then
// empties the intent of every non-join-irreducible node and the
// extent of every non-meet-irreducible node.
// Complexity: O(V·E·|S|)
func (cl *ConceptLattice) MakeIrreduciblesReduction() bool {
	if !cl.MakeInclusionReduction() {
		return false
	}
	joinIrr := toSet(cl.JoinIrreducibles())
	meetIrr := toSet(cl.MeetIrreducibles())
	for _, id := range cl.g.Nodes() {
		c := cl.Concept(id)
		if _, ok := joinIrr[id]; !ok && c.a != nil && !c.a.IsEmpty() {
			c.a = set.New()
		}
		if _, ok := meetIrr[id]; !ok && c.b != nil && !c.b.IsEmpty() {
			c.b = set.New()
		}
	}

	return true
}

// MakeEdgeValuation tags every unvaluated Hasse edge with the intent
// difference of its endpoints (upper minus lower), as a *set.Set.
// Returns false when some node lacks an intent.
// Complexity: O(E·|S|)
func (cl *ConceptLattice) MakeEdgeValuation() bool {
	if !cl.ContainsAllIntents() {
		return false
	}
	for _, e := range cl.g.Edges() {
		if _, ok := cl.g.EdgePayload(e[0], e[1]); ok {
			continue
		}
		diff := cl.Concept(e[1]).a.Diff(cl.Concept(e[0]).a)
		cl.g.SetEdgePayload(e[0], e[1], diff)
	}

	return true
}

// JoinReduction returns a generic lattice where each join-irreducible
// node carries the first element of its reduced intent and every other
// node an anonymous nil payload; all edges are preserved. Returns nil
// when some node lacks an intent.
// Complexity: O(V·E·|S|)
func (cl *ConceptLattice) JoinReduction() *Lattice {
	if !cl.ContainsAllIntents() {
		return nil
	}
	csl := cl.Clone()
	csl.MakeIrreduciblesReduction()
	joinIrr := toSet(csl.JoinIrreducibles())

	return csl.project(func(id int, c *Concept) any {
		if _, ok := joinIrr[id]; ok && c.a != nil {
			if e, has := c.a.First(); has {
				return e
			}
		}

		return nil
	})
}

// MeetReduction returns a generic lattice where each meet-irreducible
// node carries the first element of its reduced extent and every other
// node an anonymous nil payload; all edges are preserved. Returns nil
// when some node lacks an extent.
// Complexity: O(V·E·|S|)
func (cl *ConceptLattice) MeetReduction() *Lattice {
	if !cl.ContainsAllExtents() {
		return nil
	}
	csl := cl.Clone()
	csl.MakeIrreduciblesReduction()
	meetIrr := toSet(csl.MeetIrreducibles())

	return csl.project(func(id int, c *Concept) any {
		if _, ok := meetIrr[id]; ok && c.b != nil {
			if e, has := c.b.First(); has {
				return e
			}
		}

		return nil
	})
}

// IrreduciblesReduction returns a generic lattice combining both
// reductions: a doubly irreducible node carries the set of the first
// reduced intent and extent elements, a join-irreducible its intent
// element, a meet-irreducible its extent element, every other node an
// anonymous nil payload.
// Complexity: O(V·E·|S|)
func (cl *ConceptLattice) IrreduciblesReduction() *Lattice {
	csl := cl.Clone()
	csl.MakeIrreduciblesReduction()
	joinIrr := toSet(csl.JoinIrreducibles())
	meetIrr := toSet(csl.MeetIrreducibles())

	return csl.project(func(id int, c *Concept) any {
		_, isJoin := joinIrr[id]
		_, isMeet := meetIrr[id]
		ja, okA := firstOf(c.a)
		mb, okB := firstOf(c.b)
		switch {
		case isJoin && isMeet && okA && okB:
			return set.Of(ja, mb)
		case isJoin && okA:
			return ja
		case isMeet && okB:
			return mb
		default:
			return nil
		}
	})
}

// project copies the lattice structure into a generic Lattice whose
// payloads come from pick.
func (cl *ConceptLattice) project(pick func(id int, c *Concept) any) *Lattice {
	out := NewLattice()
	mapped := make(map[int]int, cl.g.Order())
	for _, id := range cl.g.Nodes() {
		mapped[id] = out.AddNode(pick(id, cl.Concept(id)))
	}
	for _, e := range cl.g.Edges() {
		out.AddEdge(mapped[e[0]], mapped[e[1]])
	}

	return out
}

// toSet indexes a node-id slice for membership tests.
func toSet(ids []int) map[int]struct{} {
	out := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}

	return out
}

// firstOf unwraps the first element of a possibly absent set.
func firstOf(x *set.Set) (string, bool) {
	if x == nil {
		return "", false
	}

	return x.First()
}
