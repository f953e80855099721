package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hasse/lattice"
	"github.com/katalvlaran/hasse/set"
)

// intents flattens every node intent, ascending by node id.
func intents(cl *lattice.ConceptLattice) []string {
	out := make([]string, 0, cl.Order())
	for _, id := range cl.Nodes() {
		out = append(out, cl.Concept(id).Intent().String())
	}

	return out
}

// TestMakeInclusionReduction_Chain strips each intent down to the new
// element introduced at its level of the S2 chain.
func TestMakeInclusionReduction_Chain(t *testing.T) {
	cl := lattice.Diagram(build(t, "a b c\na -> b\nb -> c\n"))
	require.True(t, cl.MakeInclusionReduction())
	// discovery order along the chain: ∅, {c}, {b,c}, {a,b,c}
	assert.Equal(t, []string{"", "c", "b", "a"}, intents(cl))
}

// TestMakeInclusionReduction_Diamond reduces intents top-down and
// extents bottom-up.
func TestMakeInclusionReduction_Diamond(t *testing.T) {
	cl, bottom, n1, n2, top := diamond()
	require.True(t, cl.MakeInclusionReduction())

	assert.Equal(t, "", cl.Concept(bottom).Intent().String())
	assert.Equal(t, "a", cl.Concept(n1).Intent().String())
	assert.Equal(t, "b", cl.Concept(n2).Intent().String())
	assert.Equal(t, "", cl.Concept(top).Intent().String(), "ab minus both covers")

	assert.Equal(t, "", cl.Concept(bottom).Extent().String(), "1234 minus both covers")
	assert.Equal(t, "1 2", cl.Concept(n1).Extent().String())
	assert.Equal(t, "3 4", cl.Concept(n2).Extent().String())
	assert.Equal(t, "", cl.Concept(top).Extent().String())
}

// TestMakeInclusionReduction_RequiresSomeHalf refuses a lattice with
// neither all intents nor all extents.
func TestMakeInclusionReduction_RequiresSomeHalf(t *testing.T) {
	cl := lattice.NewConceptLattice()
	cl.AddConcept(lattice.NewConcept(set.Of("a"), nil))
	cl.AddConcept(lattice.NewConcept(nil, set.Of("1")))
	assert.False(t, cl.MakeInclusionReduction())
}

// TestMakeIrreduciblesReduction clears the intent of the doubly
// covered top while the join-irreducible sides keep theirs.
func TestMakeIrreduciblesReduction(t *testing.T) {
	cl, bottom, n1, n2, top := diamond()
	require.True(t, cl.MakeIrreduciblesReduction())

	assert.Equal(t, "a", cl.Concept(n1).Intent().String())
	assert.Equal(t, "b", cl.Concept(n2).Intent().String())
	assert.True(t, cl.Concept(top).Intent().IsEmpty())
	assert.True(t, cl.Concept(bottom).Intent().IsEmpty())
	assert.True(t, cl.Concept(bottom).Extent().IsEmpty())
}

// TestMakeEdgeValuation tags covers with intent differences.
func TestMakeEdgeValuation(t *testing.T) {
	cl, bottom, n1, _, top := diamond()
	require.True(t, cl.MakeEdgeValuation())

	p, ok := cl.Graph().EdgePayload(bottom, n1)
	require.True(t, ok)
	assert.Equal(t, "a", p.(*set.Set).String())
	p, ok = cl.Graph().EdgePayload(n1, top)
	require.True(t, ok)
	assert.Equal(t, "b", p.(*set.Set).String())
}

// TestJoinReduction names join-irreducible nodes by their reduced
// intent element and leaves the rest anonymous.
func TestJoinReduction(t *testing.T) {
	cl, bottom, n1, n2, top := diamond()
	l := cl.JoinReduction()
	require.NotNil(t, l)
	require.Equal(t, 4, l.Order())
	assert.Equal(t, 4, l.Size(), "all edges preserved")

	assert.Nil(t, l.Payload(bottom))
	assert.Equal(t, "a", l.Payload(n1))
	assert.Equal(t, "b", l.Payload(n2))
	assert.Nil(t, l.Payload(top))
	// the source lattice is untouched
	assert.Equal(t, "a b", cl.Concept(top).Intent().String())
}

// TestMeetReduction names meet-irreducible nodes by their reduced
// extent element.
func TestMeetReduction(t *testing.T) {
	cl, bottom, n1, n2, top := diamond()
	l := cl.MeetReduction()
	require.NotNil(t, l)
	assert.Nil(t, l.Payload(bottom))
	assert.Equal(t, "1", l.Payload(n1))
	assert.Equal(t, "3", l.Payload(n2))
	assert.Nil(t, l.Payload(top))
}

// TestMeetReduction_RequiresExtents returns nil on intent-only
// lattices.
func TestMeetReduction_RequiresExtents(t *testing.T) {
	cl := lattice.Diagram(build(t, "a b c\na -> b\nb -> c\n"))
	assert.Nil(t, cl.MeetReduction())
	assert.NotNil(t, cl.JoinReduction())
}

// TestIrreduciblesReduction combines both namings; the diamond's sides
// are doubly irreducible and carry a two-element set.
func TestIrreduciblesReduction(t *testing.T) {
	cl, bottom, n1, n2, top := diamond()
	l := cl.IrreduciblesReduction()
	require.NotNil(t, l)

	assert.Nil(t, l.Payload(bottom))
	assert.Nil(t, l.Payload(top))
	p1, ok := l.Payload(n1).(*set.Set)
	require.True(t, ok)
	assert.Equal(t, "1 a", p1.String())
	p2, ok := l.Payload(n2).(*set.Set)
	require.True(t, ok)
	assert.Equal(t, "3 b", p2.String())
}
