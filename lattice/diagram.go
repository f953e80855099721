package lattice

import (
	"github.com/katalvlaran/hasse/closure"
	"github.com/katalvlaran/hasse/dgraph"
	"github.com/katalvlaran/hasse/set"
)

// Diagram generates the Hasse diagram of the closed-set lattice of sys
// with Bordat's algorithm, expanding immediate successors recursively
// from the bottom closed set Closure(∅).
//
// The dependency graph of the lattice is valuated while the diagram
// grows: each discovered dependency edge v → u collects the
// inclusion-minimal sets W such that u ∈ Closure(W ∪ {v}) while
// u ∉ Closure(W). It encodes at once the minimal generators and the
// canonical direct basis of the lattice.
// Complexity: O(c·cl·|S|³) with c the number of closed sets
func Diagram(sys closure.System) *ConceptLattice {
	cl := NewConceptLattice()

	// dependency graph over the whole ground set
	cl.dep = dgraph.New()
	cl.depIDs = make(map[string]int)
	ground := sys.GroundSet()
	for _, e := range ground.Elements() {
		cl.depIDs[e] = cl.dep.AddNode(e)
	}

	// the precedence relation is a property of sys alone; contract it
	// once and share the condensation across every expansion step
	prec, precIDs := closure.PrecedenceGraph(sys)
	precDag, precComp := prec.Condense()

	ex := &expander{
		sys:      sys,
		ground:   ground,
		cl:       cl,
		intents:  make(map[string]int),
		prec:     prec,
		precIDs:  precIDs,
		precDag:  precDag,
		precComp: precComp,
	}

	bottom := sys.Closure(set.New())
	id := cl.AddConcept(NewConcept(bottom, nil))
	ex.intents[bottom.String()] = id
	ex.expand(id, bottom)

	return cl
}

// expander carries the shared state of one diagram generation.
type expander struct {
	sys      closure.System
	ground   *set.Set
	cl       *ConceptLattice
	intents  map[string]int // intent key → node id
	prec     *dgraph.Graph
	precIDs  map[string]int
	precDag  *dgraph.Graph
	precComp map[int]int
}

// expand inserts every immediate successor of node id (intent f),
// recursing into successors seen for the first time.
func (ex *expander) expand(id int, f *set.Set) {
	for _, succ := range ex.immediateSuccessors(f) {
		key := succ.String()
		if existing, ok := ex.intents[key]; ok {
			ex.cl.AddEdge(id, existing)

			continue
		}
		nid := ex.cl.AddConcept(NewConcept(succ, nil))
		ex.intents[key] = nid
		ex.cl.AddEdge(id, nid)
		ex.expand(nid, succ)
	}
}

// immediateSuccessors returns the closed sets covering f, by Bordat's
// theorem: they are in bijection with the sink strongly connected
// components of the dependency subgraph induced by S ∖ f.
func (ex *expander) immediateSuccessors(f *set.Set) []*set.Set {
	// 1. newVal: f minus every element lying in a strict minorant
	//    component of a component meeting f. This is the valuation
	//    stamped on each dependency edge discovered at this step.
	newVal := f.Clone()
	for _, x := range f.Elements() {
		cc, ok := ex.precComp[ex.precIDs[x]]
		if !ok {
			continue
		}
		for _, minor := range ex.precDag.Minorants(cc) {
			for _, nid := range ex.precDag.Payload(minor).([]int) {
				newVal.Remove(ex.prec.Payload(nid).(string))
			}
		}
	}

	// 2. dependency relation on N = S ∖ f: an edge v → u whenever u
	//    falls into the closure of f ∪ {v}; its valuation absorbs
	//    newVal under the inclusion-minimal antichain discipline.
	n := ex.ground.Diff(f)
	var touched [][2]int
	for _, v := range n.Elements() {
		fPlus := ex.sys.Closure(f.Union(set.Of(v)))
		for _, u := range n.Elements() {
			if u == v || !fPlus.Has(u) {
				continue
			}
			from, to := ex.cl.depIDs[v], ex.cl.depIDs[u]
			ex.cl.dep.AddEdge(from, to)
			payload, _ := ex.cl.dep.EdgePayload(from, to)
			fam, _ := payload.(*set.Family)
			if fam == nil {
				fam = set.NewFamily()
				ex.cl.dep.SetEdgePayload(from, to, fam)
			}
			fam.AddMinimal(newVal)
			touched = append(touched, [2]int{from, to})
		}
	}

	// 3. restrict the dependency graph to N and to the edges observed
	//    at this step, and read the sink components as successors.
	nIDs := make([]int, 0, n.Size())
	for _, e := range n.Elements() {
		nIDs = append(nIDs, ex.cl.depIDs[e])
	}
	delta := ex.cl.dep.SubgraphByNodes(nIDs).SubgraphByEdges(touched)
	dag, _ := delta.Condense()

	var out []*set.Set
	for _, sink := range dag.Sinks() {
		succ := f.Clone()
		for _, nid := range dag.Payload(sink).([]int) {
			succ.Add(delta.Payload(nid).(string))
		}
		out = append(out, succ)
	}

	return out
}
