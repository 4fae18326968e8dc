package locus

import (
	"github.com/katalvlaran/svlocus/interval"
)

// Locus is a connected subgraph: an ordered sequence of vertices (slots
// 0..N-1) joined by directed weighted edges, plus a non-owning handle back
// to the container that must be told about every vertex lifecycle event.
type Locus struct {
	obs      ObserverHandle
	vertices []*Vertex
}

// New builds an empty, unattached Locus. Use SetObserver once the Locus has
// been staged into a container's slab and assigned a slot, the same
// two-phase "allocate slot, then wire notifications" flow the container's
// persistence Load uses when rehydrating from a stream.
func New() *Locus {
	return &Locus{obs: ObserverHandle{Notifier: noopNotifier{}, LocusSlot: -1}}
}

// SetObserver wires this Locus to its owning container's spatial index and
// assigns its locus-slot identity. Any vertices already present (e.g. a
// caller-built input subgraph staged into the slab before its first Merge)
// are flushed into the notifier immediately, so the index never misses an
// entry for a live vertex.
//
// A caller building an input Locus before it has a real slot addresses its
// own internal edges with LocusSlot -1, the same sentinel New leaves in
// ObserverHandle — "this locus, whatever slot I end up at". SetObserver
// rewrites every edge still carrying the prior slot (-1, or the slot this
// Locus was previously attached under) to locusSlot before flushing
// inserts, so those edges resolve correctly once this Locus is live.
func (l *Locus) SetObserver(notifier IndexNotifier, locusSlot int) {
	oldSlot := l.obs.LocusSlot
	l.obs = ObserverHandle{Notifier: notifier, LocusSlot: locusSlot}

	if oldSlot != locusSlot {
		for _, v := range l.vertices {
			for target, payload := range v.Edges {
				if target.LocusSlot != oldSlot {
					continue
				}
				delete(v.Edges, target)
				newTarget := Addr{LocusSlot: locusSlot, VertexSlot: target.VertexSlot}
				v.Edges[newTarget] = v.Edges[newTarget].Add(payload)
			}
		}
	}

	for slot, v := range l.vertices {
		l.obs.Notifier.NotifyInsert(Addr{LocusSlot: locusSlot, VertexSlot: slot}, v.Interval)
	}
}

// Slot returns this Locus's slot in its owning slab, or -1 if unattached.
func (l *Locus) Slot() int {
	return l.obs.LocusSlot
}

// Size returns the number of live vertices.
func (l *Locus) Size() int {
	return len(l.vertices)
}

// Empty reports whether this Locus has no vertices.
func (l *Locus) Empty() bool {
	return len(l.vertices) == 0
}

// GetVertex returns the vertex at slot, or nil if out of range.
func (l *Locus) GetVertex(slot int) *Vertex {
	if slot < 0 || slot >= len(l.vertices) {
		return nil
	}
	return l.vertices[slot]
}

// Vertices returns the live vertex slice in slot order. The slice is owned
// by the Locus; callers must not retain it across a mutating call.
func (l *Locus) Vertices() []*Vertex {
	return l.vertices
}

// AddVertex appends a new vertex with the given interval and zero
// observations, returning its slot. The spatial index is notified
// immediately (a no-op if this Locus isn't attached to a container yet).
func (l *Locus) AddVertex(iv interval.Interval) int {
	slot := len(l.vertices)
	v := newVertex(iv)
	l.vertices = append(l.vertices, v)
	l.obs.Notifier.NotifyInsert(Addr{LocusSlot: l.obs.LocusSlot, VertexSlot: slot}, iv)

	return slot
}

// CopyFrom appends every vertex of other into l, translating edge targets
// that reference other's (now-stale) slots into l's newly assigned slots.
// other is left unmodified — this is the operation used to migrate an
// input Locus's vertices into the surviving head Locus during unification
// (§4.4 step 3c).
//
// Returns the old-slot → new-slot mapping for other's vertices, so a
// caller tracking live addresses of vertices it hasn't finished processing
// yet (the merge engine's pending-input bookkeeping) can rewrite them in
// one pass.
func (l *Locus) CopyFrom(other *Locus) map[int]int {
	slotMap := make(map[int]int, other.Size())
	base := len(l.vertices)
	for i := range other.vertices {
		slotMap[i] = base + i
	}

	for i, ov := range other.vertices {
		nv := newVertex(ov.Interval)
		nv.ObsCount = ov.ObsCount
		for target, payload := range ov.Edges {
			newTarget := target
			if target.LocusSlot == other.obs.LocusSlot {
				newTarget = Addr{LocusSlot: l.obs.LocusSlot, VertexSlot: slotMap[target.VertexSlot]}
			}
			nv.Edges[newTarget] = nv.Edges[newTarget].Add(payload)
		}
		l.vertices = append(l.vertices, nv)
		newSlot := slotMap[i]
		l.obs.Notifier.NotifyInsert(Addr{LocusSlot: l.obs.LocusSlot, VertexSlot: newSlot}, nv.Interval)
	}

	return slotMap
}

// SlotRename records that removing a vertex caused a different, surviving
// vertex to change address: the vertex previously at OldSlot now lives at
// NewSlot within the same Locus. A caller tracking addresses of vertices
// it hasn't finished processing must check every SlotRename against its
// own bookkeeping (§4.4's "descending slot order" rule exists precisely
// to bound how many renames a multi-removal pass must account for).
type SlotRename struct {
	LocusSlot        int
	OldSlot, NewSlot int
}

// MergeVertex merges the vertex at fromSlot into the vertex at toSlot,
// within this single Locus: toSlot's interval becomes the union (§3),
// toSlot's observation count gains fromSlot's, every edge incident to
// fromSlot (incoming or outgoing, including self-loops created by the
// merge itself) is retargeted to toSlot and summed with any edge already
// present to the same peer, and fromSlot is then removed via
// swap-with-last. Requires fromSlot != toSlot and both vertices on the
// same Tid. Returns the SlotRename produced by the removal, or nil if
// fromSlot was already the last slot (no vertex changed address).
func (l *Locus) MergeVertex(fromSlot, toSlot int) (*SlotRename, error) {
	if fromSlot == toSlot {
		return nil, ErrSameVertexSlot
	}
	if fromSlot < 0 || fromSlot >= len(l.vertices) || toSlot < 0 || toSlot >= len(l.vertices) {
		return nil, ErrVertexSlotOutOfRange
	}
	from := l.vertices[fromSlot]
	to := l.vertices[toSlot]
	if from.Interval.Tid != to.Interval.Tid {
		return nil, ErrCrossTidMerge
	}

	addrFrom := Addr{LocusSlot: l.obs.LocusSlot, VertexSlot: fromSlot}
	addrTo := Addr{LocusSlot: l.obs.LocusSlot, VertexSlot: toSlot}

	oldToInterval := to.Interval
	newToInterval := interval.Union(to.Interval, from.Interval)

	// Step 1: drain from's own outgoing edges into to, collapsing any
	// reference to from or to itself into a self-loop on to.
	for target, payload := range from.Edges {
		effTarget := target
		if target == addrFrom || target == addrTo {
			effTarget = addrTo
		}
		to.Edges[effTarget] = to.Edges[effTarget].Add(payload)
	}
	from.Edges = nil

	// Step 2: retarget every OTHER vertex's edge pointing at from (this
	// also catches to's own pre-existing edge to from, turning it into a
	// self-loop, since slot == toSlot is handled the same as any peer).
	for slot, v := range l.vertices {
		if slot == fromSlot {
			continue // already drained above
		}
		if payload, ok := v.Edges[addrFrom]; ok {
			delete(v.Edges, addrFrom)
			v.Edges[addrTo] = v.Edges[addrTo].Add(payload)
		}
	}

	to.ObsCount += from.ObsCount
	to.Interval = newToInterval
	if newToInterval != oldToInterval {
		l.obs.Notifier.NotifyErase(addrTo, oldToInterval)
		l.obs.Notifier.NotifyInsert(addrTo, newToInterval)
	}

	rename := l.removeSlot(fromSlot)

	return rename, nil
}

// removeSlot deletes the vertex at slot via swap-with-last-then-truncate:
// the vertex previously at the last slot (if different from slot) moves
// into slot, and every edge within this Locus that referenced the old
// last-slot address is rewritten to the new one. This is the only slot
// renumbering event a Locus ever produces (§4.2's "Tie-breaks and
// ordering"): callers removing several vertices in one pass must proceed
// in descending slot order so that not-yet-processed slots stay valid.
func (l *Locus) removeSlot(slot int) *SlotRename {
	removed := l.vertices[slot]
	l.obs.Notifier.NotifyErase(Addr{LocusSlot: l.obs.LocusSlot, VertexSlot: slot}, removed.Interval)

	last := len(l.vertices) - 1
	var rename *SlotRename
	if slot != last {
		moved := l.vertices[last]
		oldAddr := Addr{LocusSlot: l.obs.LocusSlot, VertexSlot: last}
		newAddr := Addr{LocusSlot: l.obs.LocusSlot, VertexSlot: slot}

		l.obs.Notifier.NotifyErase(oldAddr, moved.Interval)
		l.obs.Notifier.NotifyInsert(newAddr, moved.Interval)

		// Rewrite any edge (within this locus) that targeted the moved
		// vertex's old address, including the moved vertex's own self-loop.
		for _, v := range l.vertices {
			if payload, ok := v.Edges[oldAddr]; ok {
				delete(v.Edges, oldAddr)
				v.Edges[newAddr] = v.Edges[newAddr].Add(payload)
			}
		}
		l.vertices[slot] = moved
		rename = &SlotRename{LocusSlot: l.obs.LocusSlot, OldSlot: last, NewSlot: slot}
	}
	l.vertices[last] = nil
	l.vertices = l.vertices[:last]

	return rename
}

// LocalCheck validates this Locus's internal structure: every edge targets
// a currently-live vertex slot (local edges; cross-locus targets are the
// container's concern), and no edge carries a negative observation count.
// Returns a descriptive error on the first violation found, or nil.
func (l *Locus) LocalCheck() error {
	for slot, v := range l.vertices {
		if v.Interval.Begin >= v.Interval.End {
			return errInvalidInterval(l.obs.LocusSlot, slot, v.Interval)
		}
		for target, payload := range v.Edges {
			if payload.ObsCount < 0 {
				return errNegativeEdgeCount(l.obs.LocusSlot, slot, target)
			}
			if target.LocusSlot == l.obs.LocusSlot {
				if target.VertexSlot < 0 || target.VertexSlot >= len(l.vertices) {
					return errDanglingEdge(l.obs.LocusSlot, slot, target)
				}
			}
		}
	}

	return nil
}
