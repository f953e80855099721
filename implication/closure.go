package implication

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/hasse/set"
)

// compiled is the bitset form of a system: elements are numbered by
// their ground-set rank and every premise/conclusion becomes a bitset
// over those ranks. The fixpoint then runs on machine words instead of
// ordered sets.
type compiled struct {
	elems []string
	index map[string]uint
	prem  []*bitset.BitSet
	conc  []*bitset.BitSet
}

// invalidate drops the compiled form; called by every mutation.
func (s *System) invalidate() {
	s.comp = nil
}

// compiledForm builds (or reuses) the bitset form of Σ.
// Complexity: O(|Σ|·|S|)
func (s *System) compiledForm() *compiled {
	if s.comp != nil {
		return s.comp
	}
	c := &compiled{
		elems: s.ground.Elements(),
		index: make(map[string]uint, s.ground.Size()),
	}
	for i, e := range c.elems {
		c.index[e] = uint(i)
	}
	n := uint(len(c.elems))
	for _, r := range s.sigma {
		p := bitset.New(n)
		for _, e := range r.premise.Elements() {
			if i, ok := c.index[e]; ok {
				p.Set(i)
			}
		}
		q := bitset.New(n)
		for _, e := range r.conclusion.Elements() {
			if i, ok := c.index[e]; ok {
				q.Set(i)
			}
		}
		c.prem = append(c.prem, p)
		c.conc = append(c.conc, q)
	}
	s.comp = c

	return c
}

// Closure returns the smallest superset of x closed under Σ.
//
// The result starts at x; every rule whose premise is contained in the
// current set (an empty premise always is) contributes its conclusion,
// and passes repeat until a full pass adds nothing. A rule fires at
// most once: its conclusion is absorbed for good the first time its
// premise is covered.
//
// Elements of x outside the ground set are carried through untouched.
// For a direct system one pass suffices; in general at most |S| passes
// run, giving O(|Σ|·|S|) word operations overall.
func (s *System) Closure(x *set.Set) *set.Set {
	c := s.compiledForm()
	cur := bitset.New(uint(len(c.elems)))
	out := set.New()
	for _, e := range x.Elements() {
		if i, ok := c.index[e]; ok {
			cur.Set(i)
		} else {
			// foreign element: no rule can mention it
			out.Add(e)
		}
	}

	fired := make([]bool, len(c.prem))
	for changed := true; changed; {
		changed = false
		for i := range c.prem {
			if fired[i] || !cur.IsSuperSet(c.prem[i]) {
				continue
			}
			fired[i] = true
			before := cur.Count()
			cur.InPlaceUnion(c.conc[i])
			if cur.Count() != before {
				changed = true
			}
		}
	}

	for i, e := range c.elems {
		if cur.Test(uint(i)) {
			out.Add(e)
		}
	}

	return out
}
