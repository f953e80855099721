package set

import (
	"sort"
	"strings"
)

// Set is an ordered finite set of string elements.
//
// The zero value is an empty set ready for use (New returns exactly
// that); Of builds a populated one. Elements are
// stored sorted lexicographically ascending with no duplicates, so all
// iteration order is total and stable.
type Set struct {
	elems []string
}

// New returns an empty Set.
// Complexity: O(1)
func New() *Set {
	return &Set{}
}

// Of returns a Set containing the given elements.
// Duplicates are collapsed.
// Complexity: O(n log n)
func Of(elems ...string) *Set {
	s := New()
	for _, e := range elems {
		s.Add(e)
	}

	return s
}

// search returns the insertion index of e and whether e is present.
func (s *Set) search(e string) (int, bool) {
	i := sort.SearchStrings(s.elems, e)

	return i, i < len(s.elems) && s.elems[i] == e
}

// Has reports whether e belongs to s.
// Complexity: O(log n)
func (s *Set) Has(e string) bool {
	_, ok := s.search(e)

	return ok
}

// Add inserts e into s and reports whether e was absent.
// Complexity: O(n)
func (s *Set) Add(e string) bool {
	i, ok := s.search(e)
	if ok {
		return false
	}
	s.elems = append(s.elems, "")
	copy(s.elems[i+1:], s.elems[i:])
	s.elems[i] = e

	return true
}

// AddAll inserts every element of other into s and reports whether
// every inserted element was absent.
// Complexity: O(n·m)
func (s *Set) AddAll(other *Set) bool {
	all := true
	for _, e := range other.elems {
		if !s.Add(e) {
			all = false
		}
	}

	return all
}

// Remove deletes e from s and reports whether e was present.
// Complexity: O(n)
func (s *Set) Remove(e string) bool {
	i, ok := s.search(e)
	if !ok {
		return false
	}
	s.elems = append(s.elems[:i], s.elems[i+1:]...)

	return true
}

// RemoveAll deletes every element of other from s and reports whether
// s changed.
// Complexity: O(n·m)
func (s *Set) RemoveAll(other *Set) bool {
	changed := false
	for _, e := range other.elems {
		if s.Remove(e) {
			changed = true
		}
	}

	return changed
}

// RetainAll keeps only elements of s that belong to other and reports
// whether s changed.
// Complexity: O(n log m)
func (s *Set) RetainAll(other *Set) bool {
	kept := s.elems[:0]
	changed := false
	for _, e := range s.elems {
		if other.Has(e) {
			kept = append(kept, e)
		} else {
			changed = true
		}
	}
	s.elems = kept

	return changed
}

// ContainsAll reports whether every element of other belongs to s.
// An empty other is contained in every set.
// Complexity: O(m log n)
func (s *Set) ContainsAll(other *Set) bool {
	for _, e := range other.elems {
		if !s.Has(e) {
			return false
		}
	}

	return true
}

// Union returns a new Set holding the elements of s and other.
// Complexity: O(n·m)
func (s *Set) Union(other *Set) *Set {
	out := s.Clone()
	out.AddAll(other)

	return out
}

// Intersect returns a new Set holding the elements common to s and other.
// Complexity: O(n log m)
func (s *Set) Intersect(other *Set) *Set {
	out := New()
	for _, e := range s.elems {
		if other.Has(e) {
			out.elems = append(out.elems, e)
		}
	}

	return out
}

// Diff returns a new Set holding the elements of s absent from other.
// Complexity: O(n log m)
func (s *Set) Diff(other *Set) *Set {
	out := New()
	for _, e := range s.elems {
		if !other.Has(e) {
			out.elems = append(out.elems, e)
		}
	}

	return out
}

// Clone returns an independent copy of s.
// Complexity: O(n)
func (s *Set) Clone() *Set {
	out := &Set{elems: make([]string, len(s.elems))}
	copy(out.elems, s.elems)

	return out
}

// Equal reports whether s and other hold the same elements.
// Complexity: O(n)
func (s *Set) Equal(other *Set) bool {
	if len(s.elems) != len(other.elems) {
		return false
	}
	for i, e := range s.elems {
		if other.elems[i] != e {
			return false
		}
	}

	return true
}

// Compare orders sets lexicographically on their sorted elements:
// the first differing element decides, a strict prefix sorts first.
// Returns -1, 0 or +1.
// Complexity: O(min(n, m))
func (s *Set) Compare(other *Set) int {
	n := len(s.elems)
	if m := len(other.elems); m < n {
		n = m
	}
	for i := 0; i < n; i++ {
		if s.elems[i] != other.elems[i] {
			if s.elems[i] < other.elems[i] {
				return -1
			}

			return 1
		}
	}
	switch {
	case len(s.elems) < len(other.elems):
		return -1
	case len(s.elems) > len(other.elems):
		return 1
	default:
		return 0
	}
}

// Elements returns the elements of s sorted ascending.
// The returned slice is a copy and safe to mutate.
// Complexity: O(n)
func (s *Set) Elements() []string {
	out := make([]string, len(s.elems))
	copy(out, s.elems)

	return out
}

// Size returns the number of elements of s.
// Complexity: O(1)
func (s *Set) Size() int {
	return len(s.elems)
}

// IsEmpty reports whether s has no elements.
// Complexity: O(1)
func (s *Set) IsEmpty() bool {
	return len(s.elems) == 0
}

// First returns the smallest element of s and whether s is non-empty.
// Complexity: O(1)
func (s *Set) First() (string, bool) {
	if len(s.elems) == 0 {
		return "", false
	}

	return s.elems[0], true
}

// String renders s as its elements joined by single spaces, e.g. "a b c".
// Complexity: O(n)
func (s *Set) String() string {
	return strings.Join(s.elems, " ")
}
