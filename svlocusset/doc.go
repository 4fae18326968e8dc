// Package svlocusset implements the container that owns every Locus, the
// global spatial index over all of their vertices, the merge engine that
// fuses input subgraphs into the container, persistence, and the
// self-consistency checker.
//
// This is the "merge engine" bucket of the design (the largest single
// component): SVLocusSet.Merge is the central algorithm, implemented across
// merge.go, with slab.go / spatialindex.go supplying its two storage
// primitives and persistence.go / invariant.go / stats.go covering the
// remaining external surface (§6).
package svlocusset
