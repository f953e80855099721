package implication_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hasse/implication"
)

// TestIsProper_ElementWise uses the element-wise test: a single shared
// element between premise and conclusion already breaks properness.
func TestIsProper_ElementWise(t *testing.T) {
	assert.False(t, build(t, "a b\na -> a b\n").IsProper())
	assert.True(t, build(t, "a b\na -> b\n").IsProper())
}

// TestIsUnary distinguishes singleton from wider conclusions.
func TestIsUnary(t *testing.T) {
	assert.False(t, build(t, "a b c\na -> b c\n").IsUnary())
	assert.True(t, build(t, "a b c\na -> b\na -> c\n").IsUnary())
}

// TestIsCompact detects shared premises.
func TestIsCompact(t *testing.T) {
	assert.False(t, build(t, "a b c\na -> b\na -> c\n").IsCompact())
	assert.True(t, build(t, "a b c\na -> b c\n").IsCompact())
}

// TestIsRightMaximal requires every conclusion to equal the closure of
// its premise.
func TestIsRightMaximal(t *testing.T) {
	assert.False(t, build(t, "a b c\na -> b\nb -> c\n").IsRightMaximal())
	assert.True(t, build(t, "a b c\na -> a b c\nb -> b c\n").IsRightMaximal())
}

// TestIsLeftMinimal rejects nested premises with equal conclusions.
func TestIsLeftMinimal(t *testing.T) {
	assert.False(t, build(t, "a b c\na -> c\na b -> c\n").IsLeftMinimal())
	assert.True(t, build(t, "a b c\na -> c\nb -> c\n").IsLeftMinimal())
	// the compact form produced by MakeLeftMinimal passes the test too
	assert.True(t, build(t, "a b c\na -> b c\n").IsLeftMinimal())
}

// TestIsDirect_S2 pins scenario S2: false before MakeDirect, true
// after.
func TestIsDirect_S2(t *testing.T) {
	s := build(t, "a b c\na -> b\nb -> c\n")
	assert.False(t, s.IsDirect())
	s.MakeDirect()
	assert.True(t, s.IsDirect())
}

// TestIsMinimum detects redundant rules.
func TestIsMinimum(t *testing.T) {
	redundant := build(t, "a b c\na -> a b c\nb -> b c\na -> a c\n")
	assert.False(t, redundant.IsMinimum())

	minimal := build(t, "a b c\na -> a b c\nb -> b c\n")
	assert.True(t, minimal.IsMinimum())
}

// TestIsCanonicalBasis accepts exactly the Duquenne–Guigues form.
func TestIsCanonicalBasis(t *testing.T) {
	s := build(t, "a b c\na -> b\nb -> c\n")
	assert.False(t, s.IsCanonicalBasis())
	s.MakeCanonicalBasis()
	assert.True(t, s.IsCanonicalBasis())
}

// TestIsCanonicalDirectBasis accepts exactly the canonical direct
// form.
func TestIsCanonicalDirectBasis(t *testing.T) {
	s := build(t, "a b c d e\na b -> c d\nc d -> e\n")
	assert.False(t, s.IsCanonicalDirectBasis())
	s.MakeCanonicalDirectBasis()
	assert.True(t, s.IsCanonicalDirectBasis())
}

// TestIsIncludedIn compares proper-unary forms without mutating either
// side.
func TestIsIncludedIn(t *testing.T) {
	small := build(t, "a b c\na -> b\n")
	large := build(t, "a b c\na -> b c\n")
	assert.True(t, small.IsIncludedIn(large))
	assert.False(t, large.IsIncludedIn(small))
	// operands untouched
	assert.Equal(t, 1, small.SizeRules())
	assert.Equal(t, 1, large.SizeRules())
	assert.False(t, large.IsUnary())
}

// TestIsReduced_S6 marks the equivalent pair of scenario S6 as
// non-reduced without mutating the probed system.
func TestIsReduced_S6(t *testing.T) {
	s := build(t, "a b c\na -> b\nb -> a\na -> c\n")
	assert.False(t, s.IsReduced())
	assert.Equal(t, 3, s.SizeElements(), "probe must run on a clone")

	assert.True(t, build(t, "a b c\na -> b\nb -> c\n").IsReduced())
}

// TestRewrites_EstablishPredicates checks each rewrite against its own
// predicate across the shared fixtures.
func TestRewrites_EstablishPredicates(t *testing.T) {
	checks := []struct {
		name  string
		apply func(*implication.System) int
		holds func(*implication.System) bool
	}{
		{"proper", (*implication.System).MakeProper, (*implication.System).IsProper},
		{"unary", (*implication.System).MakeUnary, (*implication.System).IsUnary},
		{"compact", (*implication.System).MakeCompact, (*implication.System).IsCompact},
		{"rightMaximal", (*implication.System).MakeRightMaximal, (*implication.System).IsRightMaximal},
		{"leftMinimal", (*implication.System).MakeLeftMinimal, (*implication.System).IsLeftMinimal},
		{"direct", (*implication.System).MakeDirect, (*implication.System).IsDirect},
		{"minimum", (*implication.System).MakeMinimum, (*implication.System).IsMinimum},
		{"canonicalBasis", (*implication.System).MakeCanonicalBasis, (*implication.System).IsCanonicalBasis},
		{"canonicalDirectBasis", (*implication.System).MakeCanonicalDirectBasis, (*implication.System).IsCanonicalDirectBasis},
	}
	for _, c := range checks {
		for _, fx := range fixtures {
			s := build(t, fx)
			c.apply(s)
			assert.True(t, c.holds(s), "%s predicate must hold after its rewrite on %q", c.name, fx)
		}
	}
}
