package lattice

import (
	"github.com/katalvlaran/hasse/set"
)

// Concept is a pair (A, B) where A is conventionally the intent (a
// closed element set) and B the extent (observations). Either half may
// be absent, which is distinct from being empty: a closed-set lattice
// generated from an implicational system carries intents only.
//
// Concepts are totally ordered lexicographically by A then B, absent
// halves sorting first.
type Concept struct {
	a, b *set.Set
}

// NewConcept builds a concept from copies of a and b; pass nil for an
// absent half.
func NewConcept(a, b *set.Set) *Concept {
	c := &Concept{}
	if a != nil {
		c.a = a.Clone()
	}
	if b != nil {
		c.b = b.Clone()
	}

	return c
}

// HasIntent reports whether the intent half is present.
func (c *Concept) HasIntent() bool {
	return c.a != nil
}

// HasExtent reports whether the extent half is present.
func (c *Concept) HasExtent() bool {
	return c.b != nil
}

// Intent returns a copy of the intent, or nil when absent.
func (c *Concept) Intent() *set.Set {
	if c.a == nil {
		return nil
	}

	return c.a.Clone()
}

// Extent returns a copy of the extent, or nil when absent.
func (c *Concept) Extent() *set.Set {
	if c.b == nil {
		return nil
	}

	return c.b.Clone()
}

// Compare orders concepts lexicographically by intent then extent,
// absent halves first. Returns -1, 0 or +1.
func (c *Concept) Compare(other *Concept) int {
	if r := compareHalf(c.a, other.a); r != 0 {
		return r
	}

	return compareHalf(c.b, other.b)
}

// Equal reports structural equality of the two concepts.
func (c *Concept) Equal(other *Concept) bool {
	return c.Compare(other) == 0
}

// Clone returns an independent copy of c.
func (c *Concept) Clone() *Concept {
	return NewConcept(c.a, c.b)
}

// String renders the concept as "(intent | extent)" with "_" for an
// absent half.
func (c *Concept) String() string {
	return "(" + halfString(c.a) + " | " + halfString(c.b) + ")"
}

func compareHalf(x, y *set.Set) int {
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	case y == nil:
		return 1
	default:
		return x.Compare(y)
	}
}

func halfString(x *set.Set) string {
	if x == nil {
		return "_"
	}

	return x.String()
}
