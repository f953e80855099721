// Package lattice builds and manipulates closed-set and concept
// lattices.
//
// A Lattice is a DAG of payload-carrying nodes whose edges point from
// smaller to larger: the bottom concept is the unique source and the
// top concept the unique sink. A ConceptLattice restricts payloads to
// Concepts (an optional intent / extent pair) and carries the
// dependency graph computed during diagram generation.
//
// Two generators produce the closed-set lattice of any closure.System:
//
//   - Diagram: the Hasse diagram by Bordat's algorithm, expanding
//     immediate successors from the bottom closed set while valuating
//     the dependency graph with inclusion-minimal generators
//   - Complete: the transitively closed inclusion order over the
//     closed sets enumerated by Next Closure
//
// Ideal builds the lattice of ideals of a DAG. The remaining
// operations — iceberg filtering, inclusion and irreducibles
// reductions, join/meet reductions, edge valuation — transform an
// existing lattice.
package lattice
