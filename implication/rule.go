package implication

import (
	"sort"

	"github.com/katalvlaran/hasse/set"
)

// Rule is an implication premise → conclusion between two finite
// element sets. Rules are immutable: constructors copy their inputs
// and accessors return copies.
//
// Rules are totally ordered lexicographically by premise, then by
// conclusion, which fixes the iteration order of a rule set.
type Rule struct {
	premise    *set.Set
	conclusion *set.Set
}

// NewRule builds the rule premise → conclusion. Nil halves are treated
// as empty.
// Complexity: O(n)
func NewRule(premise, conclusion *set.Set) Rule {
	r := Rule{premise: set.New(), conclusion: set.New()}
	if premise != nil {
		r.premise = premise.Clone()
	}
	if conclusion != nil {
		r.conclusion = conclusion.Clone()
	}

	return r
}

// Premise returns a copy of the rule's premise.
func (r Rule) Premise() *set.Set {
	return r.premise.Clone()
}

// Conclusion returns a copy of the rule's conclusion.
func (r Rule) Conclusion() *set.Set {
	return r.conclusion.Clone()
}

// Compare orders rules lexicographically by premise, then conclusion.
// Returns -1, 0 or +1.
func (r Rule) Compare(other Rule) int {
	if c := r.premise.Compare(other.premise); c != 0 {
		return c
	}

	return r.conclusion.Compare(other.conclusion)
}

// Equal reports structural equality of the two rules.
func (r Rule) Equal(other Rule) bool {
	return r.Compare(other) == 0
}

// Elements returns the union of premise and conclusion.
func (r Rule) Elements() *set.Set {
	return r.premise.Union(r.conclusion)
}

// String renders the rule in the text-format syntax, e.g. "a b -> c d".
func (r Rule) String() string {
	return r.premise.String() + " -> " + r.conclusion.String()
}

// AssociationRule is a Rule carrying the support and confidence
// measures of association-rule mining, both in [0, 1].
type AssociationRule struct {
	Rule
	support    float64
	confidence float64
}

// NewAssociationRule builds an association rule with its measures.
func NewAssociationRule(premise, conclusion *set.Set, support, confidence float64) AssociationRule {
	return AssociationRule{
		Rule:       NewRule(premise, conclusion),
		support:    support,
		confidence: confidence,
	}
}

// Support returns the rule's support.
func (r AssociationRule) Support() float64 {
	return r.support
}

// Confidence returns the rule's confidence.
func (r AssociationRule) Confidence() float64 {
	return r.confidence
}

// AssociationRules is an ordered collection of association rules.
type AssociationRules []AssociationRule

// MakeCompact merges rules sharing premise, support AND confidence
// into one rule whose conclusion is the union of their conclusions,
// in place. Returns the rule-count delta before − after.
// Complexity: O(|Σ|² · |S|)
func (rs *AssociationRules) MakeCompact() int {
	before := len(*rs)
	// canonical order first, so groups are adjacent and the merge is
	// independent of the input order
	sort.Slice(*rs, func(i, j int) bool {
		a, b := (*rs)[i], (*rs)[j]
		if c := a.premise.Compare(b.premise); c != 0 {
			return c < 0
		}
		if a.support != b.support {
			return a.support < b.support
		}
		if a.confidence != b.confidence {
			return a.confidence < b.confidence
		}

		return a.conclusion.Compare(b.conclusion) < 0
	})

	merged := (*rs)[:0]
	for i := 0; i < len(*rs); {
		cur := (*rs)[i]
		conc := cur.conclusion.Clone()
		j := i + 1
		for ; j < len(*rs); j++ {
			next := (*rs)[j]
			if !next.premise.Equal(cur.premise) ||
				next.support != cur.support ||
				next.confidence != cur.confidence {
				break
			}
			conc.AddAll(next.conclusion)
		}
		merged = append(merged, NewAssociationRule(cur.premise, conc, cur.support, cur.confidence))
		i = j
	}
	*rs = merged

	return before - len(*rs)
}
