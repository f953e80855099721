// Package implication implements implicational systems: finite rule
// sets premise → conclusion over an ordered ground set, together with
// the closure operator they induce.
//
// The package provides the classical normalisation rewrites (proper,
// unary, compact, right-maximal, left-minimal, direct, minimum,
// canonical basis, canonical direct basis), the matching property
// predicates, ground-set reduction, the representative and dependency
// graphs, and a round-trippable line-oriented text format.
//
// Every rewrite preserves the closure operator: the system before and
// after defines the same Closure function on all subsets of the ground
// set. Rewrites iterate over a snapshot of the rule set and mutate the
// live one through the add/remove API, so a partially rewritten system
// is never observable.
//
// Iteration over elements and rules always follows their total orders
// (lexicographic on elements; lexicographic by premise then conclusion
// on rules), so results are reproducible across runs.
package implication
