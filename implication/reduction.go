package implication

import (
	"sort"

	"github.com/katalvlaran/hasse/closure"
	"github.com/katalvlaran/hasse/set"
)

// Reduction removes every reducible element from the system: each
// occurrence of a reducible element in a rule is replaced by its
// equivalence class, rules whose conclusion becomes a consequence of
// the empty set are dropped, and the element is deleted from the
// ground set. Returns the removed elements with their classes.
//
// After the reduction the closure operator agrees with the original
// one on every subset of the surviving ground set.
// Complexity: O(|S|·|Σ|·cl)
func (s *System) Reduction() map[string]*set.Set {
	red := closure.ReducibleElements(s)

	// elements implied by nothing stay implied by nothing throughout
	truth := s.Closure(set.New())

	keys := make([]string, 0, len(red))
	for x := range red {
		keys = append(keys, x)
	}
	sort.Strings(keys)

	for _, x := range keys {
		class := red[x]
		for _, r := range s.Rules() {
			p, pChanged := substitute(r.premise, x, class)
			c, cChanged := substitute(r.conclusion, x, class)
			switch {
			case !pChanged && !cChanged:
				if truth.ContainsAll(r.conclusion) {
					// always true, the rule carries nothing
					s.RemoveRule(r)
				}
			case truth.ContainsAll(c):
				s.RemoveRule(r)
			default:
				s.ReplaceRule(r, NewRule(p, c))
			}
		}
		s.DeleteElement(x)
	}

	return red
}

// substitute replaces x by class in a copy of half and reports whether
// a replacement happened.
func substitute(half *set.Set, x string, class *set.Set) (*set.Set, bool) {
	if !half.Has(x) {
		return half, false
	}
	out := half.Clone()
	out.Remove(x)
	out.AddAll(class)

	return out, true
}
