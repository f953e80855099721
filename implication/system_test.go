package implication_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hasse/implication"
	"github.com/katalvlaran/hasse/set"
)

// build parses a system from the text format, failing the test on a
// malformed fixture.
func build(t *testing.T, text string) *implication.System {
	t.Helper()
	s, err := implication.Parse(strings.NewReader(text))
	require.NoError(t, err)

	return s
}

// s1 is scenario S = {a,b,c,d,e}, Σ = {ab → cd, cd → e}.
func s1(t *testing.T) *implication.System {
	return build(t, "a b c d e\na b -> c d\nc d -> e\n")
}

// TestSystem_AddElement covers idempotent element insertion.
func TestSystem_AddElement(t *testing.T) {
	s := implication.New()
	assert.True(t, s.AddElement("a"))
	assert.False(t, s.AddElement("a"))
	assert.False(t, s.AddAllElements(set.Of("a", "b")), "one duplicate spoils the all-new report")
	assert.True(t, s.AddAllElements(set.Of("c", "d")))
	assert.Equal(t, 4, s.SizeElements())
}

// TestSystem_AddRule_ForeignElements verifies that a rule mentioning
// elements outside S is refused as a query, not an error.
func TestSystem_AddRule_ForeignElements(t *testing.T) {
	s := implication.New()
	s.AddElement("a")
	r := implication.NewRule(set.Of("a"), set.Of("z"))
	assert.False(t, s.AddRule(r))
	assert.Equal(t, 0, s.SizeRules())
}

// TestSystem_AddRule_Duplicate verifies structural deduplication.
func TestSystem_AddRule_Duplicate(t *testing.T) {
	s := implication.New()
	s.AddAllElements(set.Of("a", "b"))
	r := implication.NewRule(set.Of("a"), set.Of("b"))
	assert.True(t, s.AddRule(r))
	assert.False(t, s.AddRule(implication.NewRule(set.Of("a"), set.Of("b"))))
	assert.Equal(t, 1, s.SizeRules())
}

// TestSystem_DeleteElement removes the element from every rule and
// drops rules with emptied conclusions.
func TestSystem_DeleteElement(t *testing.T) {
	s := s1(t)
	assert.True(t, s.DeleteElement("e"))
	// c d -> e lost its whole conclusion and must be gone
	assert.Equal(t, 1, s.SizeRules())
	assert.False(t, s.GroundSet().Has("e"))

	s2 := s1(t)
	assert.True(t, s2.DeleteElement("c"))
	rules := s2.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "a b -> d", rules[0].String())
	assert.Equal(t, "d -> e", rules[1].String())

	assert.False(t, s2.DeleteElement("zz"))
}

// TestSystem_ReplaceRule swaps a rule atomically.
func TestSystem_ReplaceRule(t *testing.T) {
	s := s1(t)
	old := implication.NewRule(set.Of("c", "d"), set.Of("e"))
	repl := implication.NewRule(set.Of("c"), set.Of("e"))
	assert.True(t, s.ReplaceRule(old, repl))
	assert.False(t, s.ContainsRule(old))
	assert.True(t, s.ContainsRule(repl))
	// replacing a missing rule reports failure
	assert.False(t, s.ReplaceRule(old, repl))
}

// TestClosure_S1 pins the closure values of scenario S1.
func TestClosure_S1(t *testing.T) {
	s := s1(t)
	assert.Equal(t, "a b c d e", s.Closure(set.Of("a", "b")).String())
	assert.Equal(t, "c", s.Closure(set.Of("c")).String())
	assert.Equal(t, "c d e", s.Closure(set.Of("c", "d")).String())
}

// TestClosure_EmptyPremiseFires covers scenario S5: rules with an
// empty premise fire unconditionally.
func TestClosure_EmptyPremiseFires(t *testing.T) {
	s := build(t, "a b\n-> a\n")
	assert.Equal(t, "a", s.Closure(set.New()).String())
}

// TestClosure_Laws asserts extensivity, monotonicity and idempotence
// on scenario S1 subsets.
func TestClosure_Laws(t *testing.T) {
	s := s1(t)
	subsets := []*set.Set{
		set.New(), set.Of("a"), set.Of("a", "b"), set.Of("c", "d"),
		set.Of("b", "c"), set.Of("a", "b", "e"),
	}
	for _, x := range subsets {
		cl := s.Closure(x)
		assert.True(t, cl.ContainsAll(x), "extensive on %v", x)
		assert.True(t, s.Closure(cl).Equal(cl), "idempotent on %v", x)
		for _, y := range subsets {
			if y.ContainsAll(x) {
				assert.True(t, s.Closure(y).ContainsAll(cl), "monotone on %v ⊆ %v", x, y)
			}
		}
	}
}

// TestClosure_ForeignElementsCarried keeps elements outside S in the
// result untouched.
func TestClosure_ForeignElementsCarried(t *testing.T) {
	s := s1(t)
	cl := s.Closure(set.Of("zz", "a", "b"))
	assert.True(t, cl.Has("zz"))
	assert.True(t, cl.Has("e"))
}

// TestSystem_CloneIndependence verifies that clones do not share rule
// sets.
func TestSystem_CloneIndependence(t *testing.T) {
	s := s1(t)
	c := s.Clone()
	c.RemoveRule(implication.NewRule(set.Of("c", "d"), set.Of("e")))
	assert.Equal(t, 2, s.SizeRules())
	assert.Equal(t, 1, c.SizeRules())
	assert.True(t, s.Equal(s.Clone()))
	assert.False(t, s.Equal(c))
}

// TestNewFromRules derives the ground set from the rules.
func TestNewFromRules(t *testing.T) {
	s := implication.NewFromRules([]implication.Rule{
		implication.NewRule(set.Of("a"), set.Of("b")),
		implication.NewRule(set.Of("b"), set.Of("c")),
	})
	assert.Equal(t, "a b c", s.GroundSet().String())
	assert.Equal(t, 2, s.SizeRules())
}
