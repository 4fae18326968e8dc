package svlocusset

import (
	"github.com/google/btree"

	"github.com/katalvlaran/svlocus/interval"
	"github.com/katalvlaran/svlocus/locus"
)

// indexItem is the stored element: a vertex address plus a snapshot of the
// interval it was registered under. The snapshot — not a live
// dereference — is what makes Erase correct: by the time a caller erases
// an address whose interval just changed, the Locus has already mutated
// the vertex in place, so the only way to find the item's old tree
// position is to have kept its old key around.
type indexItem struct {
	iv   interval.Interval
	addr locus.Addr
}

// less orders items by interval (Tid, Begin, End) and breaks ties by
// address, giving the global spatial index the total order §4 requires
// ("locus/vertex slot as final tiebreak for determinism").
func less(a, b indexItem) bool {
	if interval.Less(a.iv, b.iv) {
		return true
	}
	if interval.Less(b.iv, a.iv) {
		return false
	}
	if a.addr.LocusSlot != b.addr.LocusSlot {
		return a.addr.LocusSlot < b.addr.LocusSlot
	}

	return a.addr.VertexSlot < b.addr.VertexSlot
}

// SpatialIndex is the ordered set of all vertex addresses in the container,
// keyed by the interval of the vertex they reference (§4.5). Backed by
// google/btree's generic BTreeG, which gives the balanced-tree
// lower_bound/ascend/descend primitives the merge engine's intersection
// scan needs without a hand-rolled tree.
type SpatialIndex struct {
	tree *btree.BTreeG[indexItem]
	size int
}

// NewSpatialIndex returns an empty SpatialIndex.
func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{tree: btree.NewG(32, less)}
}

// Len returns the number of registered addresses.
func (idx *SpatialIndex) Len() int {
	return idx.size
}

// NotifyInsert implements locus.IndexNotifier: registers addr under iv.
func (idx *SpatialIndex) NotifyInsert(addr locus.Addr, iv interval.Interval) {
	idx.tree.ReplaceOrInsert(indexItem{iv: iv, addr: addr})
	idx.size++
}

// NotifyErase implements locus.IndexNotifier: removes the entry previously
// registered for addr under iv. iv must be the interval addr was last
// inserted (or re-inserted) under — see indexItem's doc comment.
func (idx *SpatialIndex) NotifyErase(addr locus.Addr, iv interval.Interval) {
	if _, ok := idx.tree.Delete(indexItem{iv: iv, addr: addr}); ok {
		idx.size--
	}
}

// Has reports whether addr is currently registered under iv.
func (idx *SpatialIndex) Has(addr locus.Addr, iv interval.Interval) bool {
	_, ok := idx.tree.Get(indexItem{iv: iv, addr: addr})

	return ok
}

// FindIntersecting returns every address whose registered interval
// intersects iv, excluding addresses in the same Locus as excludeLocusSlot
// (§4.5). The scan locates the probe's position via AscendGreaterOrEqual,
// then walks forward and (separately) backward from there.
//
// Same-Locus entries are skipped without ever terminating either scan,
// since during a merge in progress the Locus currently being consolidated
// may transiently hold overlapping vertices on the same tid — only a
// different-Locus entry that fails to intersect marks a scan's boundary.
// This resolves the corner case spec.md's Open Question (§9) flags about
// the reverse scan: the intended rule is "skip, don't terminate" uniformly
// in both directions.
func (idx *SpatialIndex) FindIntersecting(excludeLocusSlot int, iv interval.Interval) []locus.Addr {
	probe := indexItem{iv: iv}

	var result []locus.Addr
	idx.tree.AscendGreaterOrEqual(probe, func(cur indexItem) bool {
		if cur.addr.LocusSlot == excludeLocusSlot {
			return true // same subgraph: skip, keep scanning
		}
		if !interval.Intersects(cur.iv, iv) {
			return false // different subgraph, no overlap: stop
		}
		result = append(result, cur.addr)

		return true
	})
	idx.tree.DescendLessThan(probe, func(cur indexItem) bool {
		if cur.addr.LocusSlot == excludeLocusSlot {
			return true
		}
		if !interval.Intersects(cur.iv, iv) {
			return false
		}
		result = append(result, cur.addr)

		return true
	})

	return result
}

// FindIntersectingAddr is a convenience wrapper for the common case of
// probing from a vertex that is itself already registered: it excludes
// addr's own Locus (equivalent to excluding addr itself and every vertex
// that shares its subgraph).
func (idx *SpatialIndex) FindIntersectingAddr(addr locus.Addr, iv interval.Interval) []locus.Addr {
	return idx.FindIntersecting(addr.LocusSlot, iv)
}

// IndexEntry is a read-only snapshot of one spatial-index registration,
// returned by All for diagnostics and the invariant checker.
type IndexEntry struct {
	Addr locus.Addr
	Iv   interval.Interval
}

// All returns every registered address in index order, for diagnostics and
// the invariant checker's overlap scan (§4.7).
func (idx *SpatialIndex) All() []IndexEntry {
	out := make([]IndexEntry, 0, idx.size)
	idx.tree.Ascend(func(cur indexItem) bool {
		out = append(out, IndexEntry{Addr: cur.addr, Iv: cur.iv})

		return true
	})

	return out
}
