package implication

import "github.com/katalvlaran/hasse/set"

// Normalisation rewrites. Every rewrite preserves the closure
// operator and returns the signed rule-count delta before − after,
// measured at method entry. Each one iterates over a snapshot of Σ
// (Rules returns a copy) and mutates the live rule set through the
// add/remove API only.

// MakeProper deletes from every conclusion the elements already in the
// premise and drops rules whose conclusion empties.
// Complexity: O(|Σ|·|S|)
func (s *System) MakeProper() int {
	before := len(s.sigma)
	for _, r := range s.Rules() {
		conc := r.conclusion.Diff(r.premise)
		if conc.Equal(r.conclusion) {
			continue
		}
		if conc.IsEmpty() {
			s.RemoveRule(r)
		} else {
			s.ReplaceRule(r, NewRule(r.premise, conc))
		}
	}

	return before - len(s.sigma)
}

// MakeUnary replaces every rule with a non-singleton conclusion by one
// rule per conclusion element.
// Complexity: O(|Σ|·|S|)
func (s *System) MakeUnary() int {
	before := len(s.sigma)
	for _, r := range s.Rules() {
		if r.conclusion.Size() <= 1 {
			continue
		}
		s.RemoveRule(r)
		for _, c := range r.conclusion.Elements() {
			s.AddRule(NewRule(r.premise, set.Of(c)))
		}
	}

	return before - len(s.sigma)
}

// MakeCompact merges rules sharing a premise into one rule whose
// conclusion is the union of their conclusions. Σ is rebuilt into a
// fresh rule set rather than patched in place.
// Complexity: O(|Σ|·|S|)
func (s *System) MakeCompact() int {
	before := len(s.sigma)
	// sigma is sorted by premise first, so rules sharing a premise
	// are adjacent
	rebuilt := make([]Rule, 0, len(s.sigma))
	for i := 0; i < len(s.sigma); {
		conc := s.sigma[i].conclusion.Clone()
		j := i + 1
		for ; j < len(s.sigma); j++ {
			if !s.sigma[j].premise.Equal(s.sigma[i].premise) {
				break
			}
			conc.AddAll(s.sigma[j].conclusion)
		}
		rebuilt = append(rebuilt, NewRule(s.sigma[i].premise, conc))
		i = j
	}
	s.sigma = rebuilt
	s.invalidate()

	return before - len(s.sigma)
}

// MakeRightMaximal compacts Σ, then replaces every conclusion by the
// closure of its premise.
// Complexity: O(|Σ|·|S|·cl)
func (s *System) MakeRightMaximal() int {
	before := len(s.sigma)
	s.MakeCompact()
	for _, r := range s.Rules() {
		cl := s.Closure(r.premise)
		if !cl.Equal(r.conclusion) {
			s.ReplaceRule(r, NewRule(r.premise, cl))
		}
	}

	return before - len(s.sigma)
}

// MakeLeftMinimal first makes Σ unary; of two rules with the same
// conclusion and nested premises, the one with the larger premise is
// dropped; Σ is then compacted.
// Complexity: O(|Σ|²·|S|)
func (s *System) MakeLeftMinimal() int {
	before := len(s.sigma)
	s.MakeUnary()
	snapshot := s.Rules()
	for _, r1 := range snapshot {
		for _, r2 := range snapshot {
			if r1.Equal(r2) {
				continue
			}
			if r2.premise.ContainsAll(r1.premise) && r1.conclusion.Equal(r2.conclusion) {
				s.RemoveRule(r2)
			}
		}
	}
	s.MakeCompact()

	return before - len(s.sigma)
}

// MakeDirect makes Σ unary and proper, then saturates it: for rules
// r1, r2 whose premise of r1 does not cover r2's conclusion, the
// derived premise (P2 ∖ C1) ∪ P1 yields a new rule toward C2 unless it
// covers P2 already. The saturation repeats until no rule is added,
// which in the worst case takes exponentially many rules; Σ is then
// compacted. After this rewrite one closure pass suffices.
// Complexity: exponential in the worst case
func (s *System) MakeDirect() int {
	before := len(s.sigma)
	s.MakeUnary()
	s.MakeProper()
	for {
		snapshot := s.Rules()
		for _, r1 := range snapshot {
			for _, r2 := range snapshot {
				if r1.Equal(r2) || r1.premise.ContainsAll(r2.conclusion) {
					continue
				}
				q := r2.premise.Diff(r1.conclusion).Union(r1.premise)
				if !q.ContainsAll(r2.premise) {
					s.AddRule(NewRule(q, r2.conclusion))
				}
			}
		}
		if len(s.sigma) == len(snapshot) {
			break
		}
	}
	s.MakeCompact()

	return before - len(s.sigma)
}

// MakeMinimum makes Σ right-maximal, then drops every rule whose
// removal leaves the closure of its premise unchanged.
// Complexity: O(|Σ|·|S|·cl)
func (s *System) MakeMinimum() int {
	before := len(s.sigma)
	s.MakeRightMaximal()
	for _, r := range s.Rules() {
		epsilon := s.Clone()
		epsilon.RemoveRule(r)
		if epsilon.Closure(r.premise).Equal(s.Closure(r.premise)) {
			s.RemoveRule(r)
		}
	}

	return before - len(s.sigma)
}

// MakeCanonicalDirectBasis rewrites Σ into the canonical direct basis:
// proper, left-minimal, direct, left-minimal again, compact.
// Complexity: exponential in the worst case
func (s *System) MakeCanonicalDirectBasis() int {
	before := len(s.sigma)
	s.MakeProper()
	s.MakeLeftMinimal()
	s.MakeDirect()
	s.MakeLeftMinimal()
	s.MakeCompact()

	return before - len(s.sigma)
}

// MakeCanonicalBasis rewrites Σ into the canonical
// (Duquenne–Guigues) basis: minimum form, then every premise is
// replaced by its closure in Σ without the rule itself, then proper
// form.
// Complexity: O(|Σ|·|S|·cl)
func (s *System) MakeCanonicalBasis() int {
	before := len(s.sigma)
	s.MakeMinimum()
	for _, r := range s.Rules() {
		epsilon := s.Clone()
		epsilon.RemoveRule(r)
		pseudo := epsilon.Closure(r.premise)
		if !pseudo.Equal(r.premise) {
			s.ReplaceRule(r, NewRule(pseudo, r.conclusion))
		}
	}
	s.MakeProper()

	return before - len(s.sigma)
}
