// Package dgraph implements the directed-graph utility underlying
// precedence graphs, dependency graphs and lattice diagrams.
//
// Nodes live in an arena and are addressed by small integer ids; a node
// carries an arbitrary payload, and an edge may carry one too. All
// enumeration surfaces (Nodes, Edges, Successors, ...) return ids in
// ascending order, so every algorithm built on top of this package is
// deterministic and reproducible across runs.
//
// Provided algorithms:
//
//   - TopologicalSort (ErrCycle on cyclic input) and IsAcyclic
//   - Condense: strongly connected components contracted to a DAG
//   - TransitiveClosure and TransitiveReduction
//   - Minorants/Majorants: strict ancestors and descendants
//   - SubgraphByNodes/SubgraphByEdges: id-preserving restrictions
//   - DOT export for visual inspection
//
// Complexity:
//
//   - Traversals: O(V + E)
//   - Transitive closure: O(V·(V + E))
//   - Transitive reduction: O(E·(V + E))
package dgraph
