// Package svlocus is your in-memory engine for merging structural-variant
// evidence into interval-keyed subgraphs.
//
// 🚀 What is svlocus?
//
//	A synchronous, embeddable library that brings together:
//
//	  • Interval primitives: half-open genomic ranges, union, intersection
//	  • Locus primitives: slot-addressed subgraphs with vertex coalescing
//	  • A container: global spatial index, merge engine, persistence
//
// ✨ Why choose svlocus?
//
//   - Deterministic   — slot recycling and vertex ordering are reproducible
//   - Single-writer   — no internal locking, no concurrent-merge support
//   - Pure Go         — no cgo
//
// Under the hood, everything is organized under three subpackages:
//
//	interval/    — Tid, Interval, and the Begin/End arithmetic over them
//	locus/       — Addr, Vertex, Locus, and the vertex-coalesce primitive
//	svlocusset/  — the container: slab, spatial index, merge, persistence
//
// Quick usage sketch:
//
//	set := svlocusset.New()
//	l := locus.New()
//	l.AddVertex(interval.New(0, 1000, 2000))
//	set.Merge(l)
package svlocus
