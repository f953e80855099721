// Package closure defines the closure-system capability and the
// algorithms generic over it.
//
// A closure system is anything exposing a totally ordered ground set
// and a closure operator on its subsets: an implicational system, a
// formal context, or any future implementation. Every algorithm in
// this package, and the lattice generators built on top of it, depends
// only on the System interface.
//
// Provided algorithms:
//
//   - AllClosures: Ganter's Next Closure enumeration, every closed set
//     exactly once, in lectic order
//   - PrecedenceGraph: the element precedence relation a → b iff
//     b ∈ Closure({a}) \ {a}
//   - ReducibleElements: elements equivalent by closure to a subset of
//     the other elements
package closure
