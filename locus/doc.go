// Package locus implements the Subgraph ("Locus") and Vertex types that make
// up the merge engine's unit of work: a connected set of vertices, each
// labeled by a genomic interval, joined by directed weighted edges.
//
// A Locus is addressed by a slot assigned by its owning slab; a Vertex
// within it is addressed by its slot within the Locus. The pair
// (locus-slot, vertex-slot), Addr, is the stable reference used
// everywhere else in this module — by edges, by the global spatial index,
// and by callers of range queries.
//
// Mirrors lvlath/core's Graph/Vertex/Edge split, generalized from a flat
// string-ID-keyed graph to a slot-addressed one, and from a single global
// graph to many small disjoint subgraphs ("loci") that the merge engine
// unifies over time.
package locus
