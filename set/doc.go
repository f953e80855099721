// Package set provides ordered finite sets of string elements and
// ordered families of such sets.
//
// Set is the building block of the whole module: ground sets, rule
// premises and conclusions, closed sets and concept intents are all
// Sets. Elements are kept sorted lexicographically, so every
// enumeration surface (Elements, String, Compare) is deterministic and
// reproducible across runs.
//
// Family is an ordered, duplicate-free collection of Sets. Its
// AddMinimal method maintains an inclusion-minimal antichain, which is
// the invariant required by dependency-graph edge valuations.
//
// Complexity:
//
//   - Membership: O(log n) (binary search on the sorted backing slice)
//   - Insertion/removal: O(n) (slice shift)
//   - Intersection/difference: O(n log m)
//   - Union: O(n·m) (repeated insertion)
package set
