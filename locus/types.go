package locus

import (
	"fmt"

	"github.com/katalvlaran/svlocus/interval"
)

// Addr is a stable vertex address: (locus-slot, vertex-slot). It is the
// key type for the global spatial index and the target type for edges.
//
// Addr is only stable across a single vertex's lifetime — a vertex removed
// by swap-with-last (see Locus.removeSlot) changes the VertexSlot of at
// most one surviving vertex (the one previously at the last slot); the
// owning container is responsible for propagating that one rename.
type Addr struct {
	LocusSlot  int
	VertexSlot int
}

// String renders "L<locus>.V<vertex>" for diagnostics.
func (a Addr) String() string {
	return fmt.Sprintf("L%d.V%d", a.LocusSlot, a.VertexSlot)
}

// EdgePayload carries the weight-summable state of a directed edge. Edge
// payloads are opaque beyond their observation count: the merge engine only
// ever adds two payloads together (when two edges collapse into one during
// a coalesce), never inspects their contents further.
type EdgePayload struct {
	ObsCount int64
}

// Add returns the element-wise sum of two edge payloads, used whenever a
// coalesce step discovers that two edges now share the same (source,
// target) pair.
func (p EdgePayload) Add(o EdgePayload) EdgePayload {
	return EdgePayload{ObsCount: p.ObsCount + o.ObsCount}
}

// Vertex is a node in a Locus: an interval, an observation count, and a set
// of outgoing directed edges keyed by target Addr. Incoming edges are not
// stored redundantly; they are discovered by scanning peer vertices' Edges
// maps, the same way lvlath/core derives "incoming" adjacency from the
// global edges map rather than maintaining a second index.
type Vertex struct {
	Interval interval.Interval
	ObsCount int64
	Edges    map[Addr]EdgePayload
}

// newVertex builds a fresh, edge-free vertex over iv.
func newVertex(iv interval.Interval) *Vertex {
	return &Vertex{
		Interval: iv,
		Edges:    make(map[Addr]EdgePayload),
	}
}

// AddEdge inserts or accumulates a directed edge from this vertex to target,
// summing with any edge already present to the same target.
func (v *Vertex) AddEdge(target Addr, payload EdgePayload) {
	v.Edges[target] = v.Edges[target].Add(payload)
}

// OutDegree returns the number of distinct outgoing edge targets.
func (v *Vertex) OutDegree() int {
	return len(v.Edges)
}
