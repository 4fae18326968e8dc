package svlocusset

import (
	"github.com/katalvlaran/svlocus/interval"
	"github.com/katalvlaran/svlocus/locus"
)

// CheckState validates every structural invariant of §4.7/§8: each
// non-empty Locus passes its own LocalCheck, every edge anywhere in the
// container (local or cross-Locus) dereferences to a live vertex, the
// spatial index and the slab agree on exactly which vertices are live, the
// free-slot set matches which slab slots are actually empty, and — when
// checkOverlap is true — no two live vertices anywhere in the container
// still share an overlapping same-Tid interval, a state a correct Merge
// sequence should never leave behind. checkOverlap's sweep compares each
// index entry only with the next one in index order, so it is linear in the
// live vertex count.
func (s *SVLocusSet) CheckState(checkOverlap bool) error {
	liveCount := 0
	for _, slot := range s.NonEmptyLoci() {
		l := s.GetLocus(slot)
		if err := l.LocalCheck(); err != nil {
			return invariantViolationf("svlocusset: invariant: locus %d: %v", slot, err)
		}
		for vslot, v := range l.Vertices() {
			addr := locus.Addr{LocusSlot: slot, VertexSlot: vslot}
			if !s.index.Has(addr, v.Interval) {
				return invariantViolationf(
					"svlocusset: invariant: live vertex %s (%s) missing from spatial index", addr, v.Interval,
				)
			}
			for target := range v.Edges {
				if target.LocusSlot == slot {
					continue // already range-checked by LocalCheck above
				}
				if err := s.checkCrossLocusEdge(slot, vslot, target); err != nil {
					return err
				}
			}
			liveCount++
		}
		if s.slab.IsEmptySlot(slot) {
			return invariantViolationf("svlocusset: invariant: locus %d is non-empty but marked as a free slot", slot)
		}
	}

	if s.index.Len() != liveCount {
		return invariantViolationf(
			"svlocusset: invariant: spatial index holds %d entries, want %d live vertices", s.index.Len(), liveCount,
		)
	}

	for _, slot := range s.EmptySlots() {
		if l := s.GetLocus(slot); l != nil && !l.Empty() {
			return invariantViolationf("svlocusset: invariant: slot %d marked free but holds a non-empty locus", slot)
		}
	}

	if checkOverlap {
		entries := s.index.All()
		for i := range entries {
			for j := i + 1; j < len(entries); j++ {
				if !interval.Intersects(entries[i].Iv, entries[j].Iv) {
					break
				}
				return invariantViolationf(
					"svlocusset: invariant: unmerged overlapping vertices %s (%s) and %s (%s)",
					entries[i].Addr, entries[i].Iv, entries[j].Addr, entries[j].Iv,
				)
			}
		}
	}

	return nil
}

// checkCrossLocusEdge validates I4 for an edge whose target names a
// different Locus than the one it originates in: target must resolve to a
// live vertex. §4.1's connectivity invariant means this should never
// actually happen in a state Merge produced, but I4 is stated without that
// exception, and LocalCheck alone cannot see it — it only range-checks
// edges targeting their own Locus.
func (s *SVLocusSet) checkCrossLocusEdge(fromSlot, fromVertexSlot int, target locus.Addr) error {
	targetLocus := s.slab.Get(target.LocusSlot)
	if targetLocus == nil || targetLocus.Empty() {
		return invariantViolationf(
			"svlocusset: invariant: vertex L%d.V%d has edge to dangling locus %s",
			fromSlot, fromVertexSlot, target,
		)
	}
	if targetLocus.GetVertex(target.VertexSlot) == nil {
		return invariantViolationf(
			"svlocusset: invariant: vertex L%d.V%d has edge to dangling slot %s",
			fromSlot, fromVertexSlot, target,
		)
	}

	return nil
}
