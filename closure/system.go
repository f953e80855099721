package closure

import (
	"github.com/katalvlaran/hasse/dgraph"
	"github.com/katalvlaran/hasse/set"
)

// System is the closure-system capability.
//
// Implementations must guarantee the three closure laws:
// extensive (X ⊆ Closure(X)), monotone (X ⊆ Y implies
// Closure(X) ⊆ Closure(Y)) and idempotent
// (Closure(Closure(X)) = Closure(X)).
type System interface {
	// GroundSet returns the ordered ground set S. The result is a
	// copy; mutating it does not affect the system.
	GroundSet() *set.Set

	// Closure returns the smallest superset of x closed under the
	// system. The argument is not mutated.
	Closure(x *set.Set) *set.Set
}

// PrecedenceGraph builds the precedence relation of sys: one node per
// ground-set element (payload = the element string) and an edge a → b
// iff b ∈ Closure({a}) \ {a}, i.e. a alone already forces b.
//
// The second result maps each element to its node id. For a
// non-reduced system the relation has cycles, which is why consumers
// contract it to strongly connected components instead of sorting it.
// Complexity: O(|S|·cl) where cl is one closure computation
func PrecedenceGraph(sys System) (*dgraph.Graph, map[string]int) {
	g := dgraph.New()
	ids := make(map[string]int)
	ground := sys.GroundSet()
	for _, e := range ground.Elements() {
		ids[e] = g.AddNode(e)
	}
	for _, a := range ground.Elements() {
		cl := sys.Closure(set.Of(a))
		for _, b := range cl.Elements() {
			if b != a && ground.Has(b) {
				g.AddEdge(ids[a], ids[b])
			}
		}
	}

	return g, ids
}

// AllClosures enumerates every closed set of sys exactly once, in
// lectic order with respect to the sorted ground set, using Ganter's
// Next Closure algorithm. The first entry is Closure(∅), the last is
// the full ground set's closure.
// Complexity: O(c·|S|·cl) where c is the number of closed sets
func AllClosures(sys System) []*set.Set {
	elems := sys.GroundSet().Elements()
	out := []*set.Set{sys.Closure(set.New())}
	for {
		next := nextClosure(sys, elems, out[len(out)-1])
		if next == nil {
			return out
		}
		out = append(out, next)
	}
}

// nextClosure returns the lectic successor of the closed set a, or nil
// when a is the last closed set.
func nextClosure(sys System, elems []string, a *set.Set) *set.Set {
	for i := len(elems) - 1; i >= 0; i-- {
		e := elems[i]
		if a.Has(e) {
			continue
		}
		// candidate: the prefix of a below e, plus e itself
		prefix := set.Of(e)
		for _, x := range elems[:i] {
			if a.Has(x) {
				prefix.Add(x)
			}
		}
		b := sys.Closure(prefix)
		// lectic test: b must agree with a strictly below e
		ok := true
		for _, x := range elems[:i] {
			if b.Has(x) != a.Has(x) {
				ok = false

				break
			}
		}
		if ok {
			return b
		}
	}

	return nil
}

// ReducibleElements lists every element equivalent by closure to a
// subset of the other elements, with that subset as its equivalence
// class:
//
//   - an element of Closure(∅) is equivalent to the empty set;
//   - in a non-singleton strongly connected component of the
//     precedence graph, every member but the smallest is equivalent to
//     the smallest;
//   - a remaining element x with x ∈ Closure(Closure({x}) \ {x}) is
//     equivalent to Closure({x}) \ {x}.
//
// Iterate the result through sorted keys for deterministic order.
// Complexity: O(|S|·cl)
func ReducibleElements(sys System) map[string]*set.Set {
	red := make(map[string]*set.Set)

	// 1. Elements implied by nothing.
	truth := sys.Closure(set.New())
	for _, x := range truth.Elements() {
		red[x] = set.New()
	}

	// 2. Closure-equivalent element groups: non-singleton SCCs of the
	//    precedence relation.
	prec, _ := PrecedenceGraph(sys)
	dag, _ := prec.Condense()
	grouped := set.New()
	for _, cc := range dag.Nodes() {
		members := dag.Payload(cc).([]int)
		if len(members) < 2 {
			continue
		}
		rep, _ := prec.Payload(members[0]).(string)
		grouped.Add(rep)
		for _, id := range members[1:] {
			x := prec.Payload(id).(string)
			grouped.Add(x)
			if _, done := red[x]; !done {
				red[x] = set.Of(rep)
			}
		}
	}

	// 3. Elements recoverable from their strict consequences. Kept
	//    representatives of the groups above stay irreducible.
	for _, x := range sys.GroundSet().Elements() {
		if _, done := red[x]; done {
			continue
		}
		if grouped.Has(x) {
			continue
		}
		rest := sys.Closure(set.Of(x))
		rest.Remove(x)
		if sys.Closure(rest).Has(x) {
			red[x] = rest
		}
	}

	return red
}
