package locus

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/svlocus/interval"
)

// Sentinel errors for Locus-local operations. Callers branch on these with
// errors.Is, the same policy lvlath's packages document and enforce in
// their own sentinel sets (core.ErrVertexNotFound and siblings).
var (
	// ErrVertexSlotOutOfRange indicates a vertex slot index is negative or
	// >= the locus's current size.
	ErrVertexSlotOutOfRange = errors.New("locus: vertex slot out of range")

	// ErrSameVertexSlot indicates merge_vertex was called with from == to.
	ErrSameVertexSlot = errors.New("locus: merge_vertex requires distinct slots")

	// ErrCrossTidMerge indicates merge_vertex was asked to union vertices
	// on different chromosomes, which is never valid per §4.2.
	ErrCrossTidMerge = errors.New("locus: merge_vertex across different tids")

	// ErrLocalCheckFailed marks every diagnostic produced by LocalCheck, so
	// callers folding it into a larger InvariantViolation can still match
	// on it with errors.Is after wrapping.
	ErrLocalCheckFailed = errors.New("locus: local invariant violation")
)

func errInvalidInterval(locusSlot, vertexSlot int, iv interval.Interval) error {
	return errors.Mark(
		errors.Newf("locus: vertex L%d.V%d has non-positive-width interval %s", locusSlot, vertexSlot, iv),
		ErrLocalCheckFailed,
	)
}

func errNegativeEdgeCount(locusSlot, vertexSlot int, target Addr) error {
	return errors.Mark(
		errors.Newf("locus: vertex L%d.V%d has edge to %s with negative observation count", locusSlot, vertexSlot, target),
		ErrLocalCheckFailed,
	)
}

func errDanglingEdge(locusSlot, vertexSlot int, target Addr) error {
	return errors.Mark(
		errors.Newf("locus: vertex L%d.V%d has edge to dangling slot %s", locusSlot, vertexSlot, target),
		ErrLocalCheckFailed,
	)
}
