package svlocusset

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/svlocus/locus"
)

// slotHeap is a min-heap of recycled slot indices, giving the slab
// deterministic "always reuse the lowest free slot" recycling (required
// for reproducible serialization, §4.3). Grounded directly on
// lvlath/dijkstra's own container/heap priority queue (nodePQ): same
// Len/Less/Swap/Push/Pop shape, specialized to bare ints instead of
// *nodeItem.
type slotHeap []int

func (h slotHeap) Len() int            { return len(h) }
func (h slotHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h slotHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *slotHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *slotHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

// Slab is an append-addressable array of Loci plus a set of recycled empty
// slot indices. Insert prefers a recycled slot over growth; the slab's
// overall size only ever grows (§4.3).
type Slab struct {
	loci []*locus.Locus
	free slotHeap
}

// NewSlab returns an empty Slab.
func NewSlab() *Slab {
	return &Slab{}
}

// Reserve pre-allocates backing capacity for n loci without changing Size.
func (s *Slab) Reserve(n int) {
	if cap(s.loci) >= n {
		return
	}
	grown := make([]*locus.Locus, len(s.loci), n)
	copy(grown, s.loci)
	s.loci = grown
}

// Size returns the number of allocated slots (live and empty).
func (s *Slab) Size() int {
	return len(s.loci)
}

// Get returns the Locus at slot, or nil if out of range.
func (s *Slab) Get(slot int) *locus.Locus {
	if slot < 0 || slot >= len(s.loci) {
		return nil
	}
	return s.loci[slot]
}

// Insert places l into a recycled slot if one is available, otherwise grows
// the slab, and returns the assigned slot.
func (s *Slab) Insert(l *locus.Locus) int {
	if len(s.free) > 0 {
		slot := heap.Pop(&s.free).(int)
		s.loci[slot] = l

		return slot
	}
	slot := len(s.loci)
	s.loci = append(s.loci, l)

	return slot
}

// Clear empties slot i (replacing it with a fresh, unattached Locus so
// stale vertex data can't leak through a recycled slot) and marks i free.
func (s *Slab) Clear(i int) {
	s.loci[i] = locus.New()
	if !s.IsEmptySlot(i) {
		heap.Push(&s.free, i)
	}
}

// EmptySlots returns the current free-slot set in ascending order — the
// order Pop would yield them, used by the invariant checker (I5) and by
// diagnostics.
func (s *Slab) EmptySlots() []int {
	out := make([]int, len(s.free))
	copy(out, s.free)
	sort.Ints(out)

	return out
}

// IsEmptySlot reports whether the free set currently contains i.
func (s *Slab) IsEmptySlot(i int) bool {
	for _, f := range s.free {
		if f == i {
			return true
		}
	}

	return false
}

// NonEmptyLoci returns, in ascending slot order, every slot holding a
// non-empty Locus.
func (s *Slab) NonEmptyLoci() []int {
	var out []int
	for i, l := range s.loci {
		if l != nil && !l.Empty() {
			out = append(out, i)
		}
	}

	return out
}
