package implication_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hasse/dgraph"
	"github.com/katalvlaran/hasse/set"
)

// elementID maps a ground-set element to its node id in a graph whose
// payloads are element strings.
func elementID(t *testing.T, g *dgraph.Graph, e string) int {
	t.Helper()
	for _, id := range g.Nodes() {
		if g.Payload(id) == e {
			return id
		}
	}
	t.Fatalf("element %q not found", e)

	return -1
}

// edgeFamily fetches the valuation family of an element edge.
func edgeFamily(t *testing.T, g *dgraph.Graph, from, to string) *set.Family {
	t.Helper()
	p, ok := g.EdgePayload(elementID(t, g, from), elementID(t, g, to))
	require.True(t, ok, "edge %s -> %s has no valuation", from, to)

	return p.(*set.Family)
}

// TestRepresentativeGraph builds the valuated edges of a small system:
// the rule b c -> a yields a → b valuated {c} and a → c valuated {b},
// and b -> a adds the empty valuation on a → b.
func TestRepresentativeGraph(t *testing.T) {
	s := build(t, "a b c\nb c -> a\nb -> a\n")
	g := s.RepresentativeGraph()

	assert.Equal(t, 3, g.Order())
	a, b, c := elementID(t, g, "a"), elementID(t, g, "b"), elementID(t, g, "c")
	assert.True(t, g.HasEdge(a, b))
	assert.True(t, g.HasEdge(a, c))
	assert.False(t, g.HasEdge(b, c))

	famAB := edgeFamily(t, g, "a", "b")
	require.Equal(t, 2, famAB.Size(), "two rules stack on one edge")
	assert.Equal(t, "", famAB.Sets()[0].String(), "b -> a contributes the empty context")
	assert.Equal(t, "c", famAB.Sets()[1].String())

	famAC := edgeFamily(t, g, "a", "c")
	require.Equal(t, 1, famAC.Size())
	assert.Equal(t, "b", famAC.Sets()[0].String())
}

// TestRepresentativeGraph_DoesNotMutate leaves the receiver in its
// original (non-unary) form.
func TestRepresentativeGraph_DoesNotMutate(t *testing.T) {
	s := build(t, "a b c\na -> b c\n")
	_ = s.RepresentativeGraph()
	assert.False(t, s.IsUnary())
}

// TestDependencyGraph_S2 pins the dependency graph of {a → b, b → c}:
// the canonical direct basis {a → bc, b → c} yields b → a ({}),
// c → a ({}) and c → b ({}).
func TestDependencyGraph_S2(t *testing.T) {
	s := build(t, "a b c\na -> b\nb -> c\n")
	g := s.DependencyGraph()

	b, a := elementID(t, g, "b"), elementID(t, g, "a")
	cID := elementID(t, g, "c")
	assert.True(t, g.HasEdge(b, a))
	assert.True(t, g.HasEdge(cID, a))
	assert.True(t, g.HasEdge(cID, b))
	assert.Equal(t, 3, g.Size())

	for _, e := range [][2]string{{"b", "a"}, {"c", "a"}, {"c", "b"}} {
		fam := edgeFamily(t, g, e[0], e[1])
		require.Equal(t, 1, fam.Size())
		assert.True(t, fam.Sets()[0].IsEmpty(), "unary premises leave empty contexts")
	}
}
