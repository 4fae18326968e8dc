package svlocusset

import (
	"sort"

	"github.com/katalvlaran/svlocus/interval"
	"github.com/katalvlaran/svlocus/locus"
)

// pendingVertex tracks one of the input Locus's original vertices across
// the consolidation steps of Merge: the interval it was originally staged
// under (used only to fix the scan order up front) and its current live
// address, which migrates as unifySubgraphs folds in external loci and
// coalesce's swap-with-last removals move things around.
type pendingVertex struct {
	originalIv interval.Interval
	addr       locus.Addr
}

// applyRename updates every pending vertex whose current address matches
// the rename's old (locus-slot, old-slot) pair, and every entry of extra
// that matches it too. A single swap-with-last removal moves at most one
// vertex, so at most one update happens per slice per call.
func applyRename(pending []pendingVertex, extra []int, rename *locus.SlotRename) {
	if rename == nil {
		return
	}
	for i := range pending {
		if pending[i].addr.LocusSlot == rename.LocusSlot && pending[i].addr.VertexSlot == rename.OldSlot {
			pending[i].addr.VertexSlot = rename.NewSlot
		}
	}
	for i := range extra {
		if extra[i] == rename.OldSlot {
			extra[i] = rename.NewSlot
		}
	}
}

// applyCopyFrom updates every pending vertex currently addressed in
// fromLocusSlot according to slotMap (produced by Locus.CopyFrom), moving
// it to toLocusSlot at its mapped slot. Used when unifySubgraphs migrates
// an entire Locus's vertices into the surviving head.
func applyCopyFrom(pending []pendingVertex, fromLocusSlot, toLocusSlot int, slotMap map[int]int) {
	for i := range pending {
		if pending[i].addr.LocusSlot != fromLocusSlot {
			continue
		}
		newSlot, ok := slotMap[pending[i].addr.VertexSlot]
		if !ok {
			continue
		}
		pending[i].addr = locus.Addr{LocusSlot: toLocusSlot, VertexSlot: newSlot}
	}
}

// Merge inserts input into the container and fuses it with every existing
// subgraph whose vertices intersect it, per §4.4. input must be an
// unattached Locus (built via locus.New plus AddVertex/AddEdge by the
// caller); Merge takes ownership of it — the caller must not use input
// again afterward.
func (s *SVLocusSet) Merge(input *locus.Locus) error {
	stageSlot := s.stageLocus(input)
	head := stageSlot

	pending := make([]pendingVertex, input.Size())
	for i, v := range input.Vertices() {
		pending[i] = pendingVertex{
			originalIv: v.Interval,
			addr:       locus.Addr{LocusSlot: stageSlot, VertexSlot: i},
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return interval.Less(pending[i].originalIv, pending[j].originalIv)
	})

	for i := range pending {
		pv := &pending[i]

		curIv := s.slab.Get(pv.addr.LocusSlot).GetVertex(pv.addr.VertexSlot).Interval
		ext := s.index.FindIntersecting(head, curIv)
		if len(ext) > 0 {
			head = s.unifySubgraphs(ext, head, pending)
			curIv = s.slab.Get(pv.addr.LocusSlot).GetVertex(pv.addr.VertexSlot).Interval
		}

		headLocus := s.slab.Get(head)
		var overlapping []int
		for slot, v := range headLocus.Vertices() {
			if slot == pv.addr.VertexSlot {
				continue
			}
			if interval.Intersects(v.Interval, curIv) {
				overlapping = append(overlapping, slot)
			}
		}
		if len(overlapping) == 0 {
			continue
		}

		if err := s.coalesce(head, pending, i, overlapping); err != nil {
			return err
		}
	}

	if head != stageSlot {
		s.slab.Clear(stageSlot)
	}

	return nil
}

// unifySubgraphs moves every Locus referenced by ext (plus the current
// head Locus) into the single lowest-numbered slot among them, and returns
// that slot as the new head. Folded-in vertices simply become ordinary
// members of the target Locus; Merge's own local overlap scan is what
// discovers them afterward, the spatial index never returns same-Locus
// matches (§4.5, §9).
//
// CopyFrom leaves the donor Locus itself untouched (locus/locus.go), so
// before Clear recycles the donor's slot, every one of its vertices must be
// explicitly erased from the spatial index — Clear only swaps in a fresh
// empty Locus, it does not know about prior registrations.
func (s *SVLocusSet) unifySubgraphs(ext []locus.Addr, head int, pending []pendingVertex) int {
	involved := map[int]struct{}{head: {}}
	for _, a := range ext {
		involved[a.LocusSlot] = struct{}{}
	}

	target := head
	for slot := range involved {
		if slot < target {
			target = slot
		}
	}

	for slot := range involved {
		if slot == target {
			continue
		}
		donor := s.slab.Get(slot)
		if donor == nil || donor.Empty() {
			continue
		}
		targetLocus := s.slab.Get(target)
		slotMap := targetLocus.CopyFrom(donor)
		applyCopyFrom(pending, slot, target, slotMap)

		for vslot, v := range donor.Vertices() {
			s.index.NotifyErase(locus.Addr{LocusSlot: slot, VertexSlot: vslot}, v.Interval)
		}
		s.slab.Clear(slot)
	}

	return target
}

// coalesce collapses pending[pvIdx] and every vertex slot named in
// overlapping (all resident in the head Locus) into a single surviving
// vertex, per §4.4 step 3f: repeatedly merge the current highest slot in
// the working set into the lowest, so every removal proceeds in
// descending slot order and only ever renumbers a slot still ahead of the
// cursor.
func (s *SVLocusSet) coalesce(head int, pending []pendingVertex, pvIdx int, overlapping []int) error {
	headLocus := s.slab.Get(head)
	pv := &pending[pvIdx]

	all := append([]int{pv.addr.VertexSlot}, overlapping...)
	sort.Ints(all)
	anchor := all[0]
	rest := all[1:]

	for i := len(rest) - 1; i >= 0; i-- {
		slot := rest[i]
		if slot == anchor {
			continue
		}
		rename, err := headLocus.MergeVertex(slot, anchor)
		if err != nil {
			// Both vertices were found via the same-Locus overlap scan, so
			// they already share a Tid and distinct slots; a failure here
			// means the slot bookkeeping above has a bug.
			return invariantViolationf("svlocusset: merge: coalesce %d into %d in locus %d: %v", slot, anchor, head, err)
		}
		applyRename(pending, rest, rename)
	}

	pv.addr = locus.Addr{LocusSlot: head, VertexSlot: anchor}

	return nil
}

// MergeSet folds every non-empty Locus of other into s, one at a time, in
// ascending slot order for determinism. Each source Locus is a connected
// subgraph with no edges leaving it (§4.1's connectivity invariant), so a
// detached copy carries everything Merge needs; other itself is left
// untouched. Returns the first failure wrapped with the source slot that
// produced it.
func (s *SVLocusSet) MergeSet(other *SVLocusSet) error {
	for _, slot := range other.NonEmptyLoci() {
		src := other.GetLocus(slot)
		cp := locus.New()
		cp.CopyFrom(src)
		if err := s.Merge(cp); err != nil {
			return mergeFailuref("svlocusset", slot, err)
		}
	}

	return nil
}
