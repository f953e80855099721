package implication

import (
	"sort"
	"strings"

	"github.com/katalvlaran/hasse/set"
)

// System is an implicational system: an ordered ground set S and an
// ordered, duplicate-free rule set Σ whose elements all belong to S.
//
// The zero value is not ready for use; call New, NewFromRules or
// Parse. A System is value-owned and not safe for concurrent mutation.
type System struct {
	ground *set.Set
	sigma  []Rule

	// comp caches the bitset-compiled form of Σ used by Closure; any
	// mutation drops it.
	comp *compiled
}

// New returns an empty implicational system.
// Complexity: O(1)
func New() *System {
	return &System{ground: set.New()}
}

// NewFromRules returns a system whose ground set is the union of the
// given rules' elements and whose rule set holds the given rules,
// deduplicated.
// Complexity: O(|Σ| log |Σ| · |S|)
func NewFromRules(rules []Rule) *System {
	s := New()
	for _, r := range rules {
		s.ground.AddAll(r.premise)
		s.ground.AddAll(r.conclusion)
	}
	for _, r := range rules {
		s.AddRule(r)
	}

	return s
}

// Clone returns an independent copy of s.
// Complexity: O(|Σ| + |S|)
func (s *System) Clone() *System {
	out := &System{ground: s.ground.Clone(), sigma: make([]Rule, len(s.sigma))}
	// rules are immutable, sharing them is safe
	copy(out.sigma, s.sigma)

	return out
}

// GroundSet returns a copy of the ground set S.
func (s *System) GroundSet() *set.Set {
	return s.ground.Clone()
}

// Rules returns the rules of Σ in their total order. The slice is a
// copy; the rules themselves are immutable.
func (s *System) Rules() []Rule {
	out := make([]Rule, len(s.sigma))
	copy(out, s.sigma)

	return out
}

// SizeElements returns |S|.
func (s *System) SizeElements() int {
	return s.ground.Size()
}

// SizeRules returns |Σ|.
func (s *System) SizeRules() int {
	return len(s.sigma)
}

// searchRule returns the insertion index of r in sigma and whether an
// equal rule is present.
func (s *System) searchRule(r Rule) (int, bool) {
	i := sort.Search(len(s.sigma), func(i int) bool {
		return s.sigma[i].Compare(r) >= 0
	})

	return i, i < len(s.sigma) && s.sigma[i].Equal(r)
}

// ContainsRule reports whether Σ holds a rule structurally equal to r.
// Complexity: O(log |Σ| · |S|)
func (s *System) ContainsRule(r Rule) bool {
	_, ok := s.searchRule(r)

	return ok
}

// AddElement inserts e into S and reports whether e was absent.
// Complexity: O(|S|)
func (s *System) AddElement(e string) bool {
	if s.ground.Add(e) {
		s.invalidate()

		return true
	}

	return false
}

// AddAllElements inserts every element of x into S and reports whether
// every one of them was absent.
// Complexity: O(|S|·|x|)
func (s *System) AddAllElements(x *set.Set) bool {
	all := true
	for _, e := range x.Elements() {
		if !s.AddElement(e) {
			all = false
		}
	}

	return all
}

// DeleteElement removes e from S and from both halves of every rule;
// rules whose conclusion empties are dropped. Reports whether e was
// present.
// Complexity: O(|Σ|·|S|)
func (s *System) DeleteElement(e string) bool {
	if !s.ground.Remove(e) {
		return false
	}
	s.invalidate()
	for _, r := range s.Rules() {
		if !r.premise.Has(e) && !r.conclusion.Has(e) {
			continue
		}
		p := r.premise.Clone()
		p.Remove(e)
		c := r.conclusion.Clone()
		c.Remove(e)
		if c.IsEmpty() {
			s.RemoveRule(r)
		} else {
			s.ReplaceRule(r, NewRule(p, c))
		}
	}

	return true
}

// checkRuleElements reports whether every element of r belongs to S.
func (s *System) checkRuleElements(r Rule) bool {
	return s.ground.ContainsAll(r.premise) && s.ground.ContainsAll(r.conclusion)
}

// AddRule inserts r into Σ when r is new and its elements all belong
// to S; otherwise it is a no-op. Reports whether r was inserted.
// Complexity: O(|Σ| + |S| log |S|)
func (s *System) AddRule(r Rule) bool {
	if !s.checkRuleElements(r) {
		return false
	}
	i, ok := s.searchRule(r)
	if ok {
		return false
	}
	s.sigma = append(s.sigma, Rule{})
	copy(s.sigma[i+1:], s.sigma[i:])
	s.sigma[i] = r
	s.invalidate()

	return true
}

// RemoveRule deletes r from Σ and reports whether it was present.
// Complexity: O(|Σ|)
func (s *System) RemoveRule(r Rule) bool {
	i, ok := s.searchRule(r)
	if !ok {
		return false
	}
	s.sigma = append(s.sigma[:i], s.sigma[i+1:]...)
	s.invalidate()

	return true
}

// ReplaceRule removes old and inserts the replacement as one step.
// Reports whether both the removal and the insertion succeeded (the
// insertion fails on a duplicate, which collapses the two rules).
// Complexity: O(|Σ|)
func (s *System) ReplaceRule(old, replacement Rule) bool {
	return s.RemoveRule(old) && s.AddRule(replacement)
}

// Equal reports whether s and other have the same ground set and the
// same rule set, structurally.
// Complexity: O(|Σ|·|S|)
func (s *System) Equal(other *System) bool {
	if !s.ground.Equal(other.ground) || len(s.sigma) != len(other.sigma) {
		return false
	}
	for i, r := range s.sigma {
		if !r.Equal(other.sigma[i]) {
			return false
		}
	}

	return true
}

// String renders s in the text format: the ground set on the first
// line, then one rule per line.
func (s *System) String() string {
	var sb strings.Builder
	writeText(&sb, s)

	return sb.String()
}
