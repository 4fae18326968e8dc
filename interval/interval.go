package interval

import "fmt"

// Tid identifies a chromosome or other reference sequence. Intervals on
// different Tids are never compared for overlap.
type Tid int32

// Interval is a half-open genomic range [Begin, End) on a single Tid.
//
// Zero value is not meaningful (Begin == End == 0 violates Begin < End);
// always construct via New.
type Interval struct {
	Tid   Tid
	Begin int64
	End   int64
}

// New constructs an Interval, panicking if begin >= end. Construction is the
// one place this package enforces the Begin < End invariant (I3); every
// other function assumes it already holds, the way lvlath's option
// constructors validate eagerly and let algorithms trust the result.
func New(tid Tid, begin, end int64) Interval {
	if begin >= end {
		panic(fmt.Sprintf("interval: invalid range [%d,%d) on tid %d", begin, end, tid))
	}
	return Interval{Tid: tid, Begin: begin, End: end}
}

// Size returns End-Begin.
func (iv Interval) Size() int64 {
	return iv.End - iv.Begin
}

// String renders "tid:[begin,end)" for diagnostics.
func (iv Interval) String() string {
	return fmt.Sprintf("%d:[%d,%d)", iv.Tid, iv.Begin, iv.End)
}

// Intersects reports whether a and b share a Tid and their ranges overlap.
func Intersects(a, b Interval) bool {
	return a.Tid == b.Tid && a.Begin < b.End && b.Begin < a.End
}

// IsSupersetOf reports whether a fully contains b on the same Tid:
// a.Begin <= b.Begin && a.End >= b.End.
func IsSupersetOf(a, b Interval) bool {
	return a.Tid == b.Tid && a.Begin <= b.Begin && a.End >= b.End
}

// Union returns the smallest interval covering both a and b. Panics if the
// two are on different Tids — callers (the vertex coalesce path) only ever
// union intervals already known to share a Tid per §3/§4.2.
func Union(a, b Interval) Interval {
	if a.Tid != b.Tid {
		panic(fmt.Sprintf("interval: union across tids %d and %d", a.Tid, b.Tid))
	}
	begin := a.Begin
	if b.Begin < begin {
		begin = b.Begin
	}
	end := a.End
	if b.End > end {
		end = b.End
	}
	return Interval{Tid: a.Tid, Begin: begin, End: end}
}

// Less provides the total order used by the global spatial index: Tid
// ascending, then Begin ascending, then End ascending. Ties beyond this
// (same Tid/Begin/End) are broken by the caller using vertex address, since
// two distinct vertices in different subgraphs may legitimately share an
// interval only transiently during a merge in progress.
func Less(a, b Interval) bool {
	if a.Tid != b.Tid {
		return a.Tid < b.Tid
	}
	if a.Begin != b.Begin {
		return a.Begin < b.Begin
	}
	return a.End < b.End
}
