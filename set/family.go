package set

// Family is an ordered, duplicate-free collection of Sets, sorted by
// Set.Compare. It values the edges of representative and dependency
// graphs: each member is one premise context under which the edge's
// implication holds.
type Family struct {
	sets []*Set
}

// NewFamily returns an empty Family.
// Complexity: O(1)
func NewFamily() *Family {
	return &Family{}
}

// searchSet returns the insertion index of x and whether an equal set
// is present.
func (f *Family) searchSet(x *Set) (int, bool) {
	lo, hi := 0, len(f.sets)
	for lo < hi {
		mid := (lo + hi) / 2
		if f.sets[mid].Compare(x) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo, lo < len(f.sets) && f.sets[lo].Compare(x) == 0
}

// Add inserts a copy of x into f and reports whether an equal set was
// absent.
// Complexity: O(k·n)
func (f *Family) Add(x *Set) bool {
	i, ok := f.searchSet(x)
	if ok {
		return false
	}
	f.sets = append(f.sets, nil)
	copy(f.sets[i+1:], f.sets[i:])
	f.sets[i] = x.Clone()

	return true
}

// AddMinimal inserts a copy of x while maintaining f as an
// inclusion-minimal antichain: members strictly containing x are
// dropped, and x itself is refused when some member is strictly
// contained in it (or equal to it).
// Reports whether x was inserted.
// Complexity: O(k·n)
func (f *Family) AddMinimal(x *Set) bool {
	kept := f.sets[:0]
	blocked := false
	for _, w := range f.sets {
		switch {
		case w.ContainsAll(x) && !x.ContainsAll(w):
			// w ⊋ x: superseded by the newcomer, drop it
			continue
		case x.ContainsAll(w):
			// w ⊆ x: the newcomer is redundant
			blocked = true
		}
		kept = append(kept, w)
	}
	f.sets = kept
	if blocked {
		return false
	}

	return f.Add(x)
}

// Has reports whether f holds a set equal to x.
// Complexity: O(log k · n)
func (f *Family) Has(x *Set) bool {
	_, ok := f.searchSet(x)

	return ok
}

// Sets returns the members of f in order. The slice is a copy; the
// member Sets are shared and must not be mutated by the caller.
// Complexity: O(k)
func (f *Family) Sets() []*Set {
	out := make([]*Set, len(f.sets))
	copy(out, f.sets)

	return out
}

// Size returns the number of member sets.
// Complexity: O(1)
func (f *Family) Size() int {
	return len(f.sets)
}

// Clone returns an independent deep copy of f.
// Complexity: O(k·n)
func (f *Family) Clone() *Family {
	out := &Family{sets: make([]*Set, len(f.sets))}
	for i, w := range f.sets {
		out.sets[i] = w.Clone()
	}

	return out
}

// Equal reports whether f and other hold the same sets.
// Complexity: O(k·n)
func (f *Family) Equal(other *Family) bool {
	if len(f.sets) != len(other.sets) {
		return false
	}
	for i, w := range f.sets {
		if w.Compare(other.sets[i]) != 0 {
			return false
		}
	}

	return true
}
