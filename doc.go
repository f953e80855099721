// Package hasse computes with implicational systems over a finite
// ground set and derives their closed-set (concept) lattices.
//
// 🚀 What is hasse?
//
//	A deterministic, value-semantics library that brings together:
//		• Ordered sets & set families: the element algebra everything runs on
//		• Implicational systems: closure fixpoints over premise → conclusion rules
//		• Normalisation: proper, unary, compact, right-maximal, left-minimal,
//		  direct, minimum, canonical basis, canonical direct basis
//		• Lattice generation: Bordat Hasse diagrams with dependency-graph
//		  valuation, Next Closure enumeration, ideal lattices
//		• Lattice surgery: iceberg filtering, inclusion & irreducibles
//		  reductions, join/meet reductions
//
// ✨ Why choose hasse?
//
//   - Reproducible – every enumeration follows a total order, equal inputs
//     give byte-equal outputs
//   - Rock-solid contracts – closure laws and rewrite invariants are the
//     test suite, not an afterthought
//   - Pure Go – no cgo, bitset-accelerated closure fixpoints
//   - Extensible – the closure.System seam accepts any closure operator,
//     formal contexts included
//
// Under the hood, everything is organized under five subpackages:
//
//	set/         — ordered element sets, inclusion-minimal set families
//	dgraph/      — arena-indexed digraphs: SCC, topo sort, transitive ops
//	closure/     — the ClosureSystem capability & generic algorithms
//	implication/ — rules, rewrites, predicates, reduction, text I/O
//	lattice/     — concept lattices, Bordat diagrams, reductions
//
// Quick ASCII example:
//
//	    {a,b,c}
//	       |
//	     {b,c}
//	       |
//	      {c}
//	       |
//	       ∅
//
//	the closed-set lattice of Σ = {a → b, b → c} over S = {a, b, c}.
//
// Dive into the package docs for the full contracts and complexity notes.
//
//	go get github.com/katalvlaran/hasse
package hasse
