package svlocusset

import (
	"github.com/katalvlaran/svlocus/interval"
	"github.com/katalvlaran/svlocus/locus"
)

// SVLocusSet is the container: it owns the slab, the global spatial index,
// and a small opaque header used by persistence (§3 "Container"). It is
// the merge engine's receiver and the single entry point external callers
// use.
type SVLocusSet struct {
	slab   *Slab
	index  *SpatialIndex
	header []byte
}

// New constructs an empty SVLocusSet.
func New(opts ...Option) *SVLocusSet {
	s := &SVLocusSet{
		slab:  NewSlab(),
		index: NewSpatialIndex(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Header returns the container's current persistence header blob.
func (s *SVLocusSet) Header() []byte {
	return append([]byte(nil), s.header...)
}

// SetHeader replaces the container's persistence header blob.
func (s *SVLocusSet) SetHeader(header []byte) {
	s.header = append([]byte(nil), header...)
}

// LocusCount returns the slab's total slot count (live and empty).
func (s *SVLocusSet) LocusCount() int {
	return s.slab.Size()
}

// GetLocus returns the Locus at slot, or nil if out of range.
func (s *SVLocusSet) GetLocus(slot int) *locus.Locus {
	return s.slab.Get(slot)
}

// EmptySlots returns the slab's current free-slot set in ascending order.
func (s *SVLocusSet) EmptySlots() []int {
	return s.slab.EmptySlots()
}

// NonEmptyLoci returns every slot holding a non-empty Locus, in ascending
// order.
func (s *SVLocusSet) NonEmptyLoci() []int {
	return s.slab.NonEmptyLoci()
}

// stageLocus inserts l into the slab and wires it to the spatial index,
// returning its assigned slot. This realizes the "stage the input" step of
// Merge (§4.4 step 1) and the per-subgraph wiring Load performs while
// rehydrating a stream (§4.6).
func (s *SVLocusSet) stageLocus(l *locus.Locus) int {
	slot := s.slab.Insert(l)
	l.SetObserver(s.index, slot)

	return slot
}

// GetRegionIntersect answers the external range-query interface (§6): every
// vertex address whose interval intersects (tid,begin,end). Implemented,
// per §4.5, by staging a synthetic single-vertex Locus at that interval,
// delegating to the same intersection scan the merge engine itself uses,
// and discarding the stage — so a range query can never observe anything
// the merge engine's own probes couldn't.
func (s *SVLocusSet) GetRegionIntersect(tid interval.Tid, begin, end int64) []locus.Addr {
	probeIv := interval.New(tid, begin, end)
	stage := locus.New()
	slot := s.stageLocus(stage)
	stage.AddVertex(probeIv)

	result := s.index.FindIntersecting(slot, probeIv)

	// Discard the stage: erase its vertex from the index, then recycle the
	// slot. The Locus itself is dropped with no further references.
	s.index.NotifyErase(locus.Addr{LocusSlot: slot, VertexSlot: 0}, probeIv)
	s.slab.Clear(slot)

	return result
}
