package svlocusset

import (
	"fmt"
	"io"

	"github.com/katalvlaran/svlocus/interval"
)

// Dump writes every non-empty Locus's vertices to out, one line per
// vertex, tab-separated: locus slot, vertex slot, interval, observation
// count, out-degree (§6).
func (s *SVLocusSet) Dump(out io.Writer) {
	for _, slot := range s.NonEmptyLoci() {
		l := s.GetLocus(slot)
		for vslot, v := range l.Vertices() {
			fmt.Fprintf(out, "%d\t%d\t%s\t%d\t%d\n", slot, vslot, v.Interval, v.ObsCount, v.OutDegree())
		}
	}
}

// DumpRegion writes the same per-vertex lines as Dump, restricted to
// vertices whose interval intersects (tid,begin,end) — a read-only
// diagnostic counterpart to GetRegionIntersect that renders its own
// output instead of returning addresses (§6, §B.1).
func (s *SVLocusSet) DumpRegion(out io.Writer, tid interval.Tid, begin, end int64) {
	for _, addr := range s.GetRegionIntersect(tid, begin, end) {
		l := s.GetLocus(addr.LocusSlot)
		v := l.GetVertex(addr.VertexSlot)
		fmt.Fprintf(out, "%d\t%d\t%s\t%d\t%d\n", addr.LocusSlot, addr.VertexSlot, v.Interval, v.ObsCount, v.OutDegree())
	}
}

// DumpStats writes the statistics table of §6: a header row followed by
// one tab-separated row per non-empty locus, each column a per-subgraph
// sum or maximum over its vertices and their edges.
func (s *SVLocusSet) DumpStats(out io.Writer) {
	fmt.Fprintln(out, "locusIndex\tnodeCount\tnodeObsCount\tmaxNodeObsCount\t"+
		"regionSize\tmaxRegionSize\tedgeCount\tmaxEdgeCount\tedgeObsCount\tmaxEdgeObsCount")

	for _, slot := range s.NonEmptyLoci() {
		l := s.GetLocus(slot)
		vertices := l.Vertices()

		var nodeObsCount, maxNodeObsCount int64
		var regionSize, maxRegionSize int64
		var edgeCount, maxEdgeCount int
		var edgeObsCount, maxEdgeObsCount int64

		for _, v := range vertices {
			nodeObsCount += v.ObsCount
			if v.ObsCount > maxNodeObsCount {
				maxNodeObsCount = v.ObsCount
			}

			size := v.Interval.Size()
			regionSize += size
			if size > maxRegionSize {
				maxRegionSize = size
			}

			degree := v.OutDegree()
			edgeCount += degree
			if degree > maxEdgeCount {
				maxEdgeCount = degree
			}

			for _, payload := range v.Edges {
				edgeObsCount += payload.ObsCount
				if payload.ObsCount > maxEdgeObsCount {
					maxEdgeObsCount = payload.ObsCount
				}
			}
		}

		fmt.Fprintf(out, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			slot, len(vertices), nodeObsCount, maxNodeObsCount,
			regionSize, maxRegionSize, edgeCount, maxEdgeCount, edgeObsCount, maxEdgeObsCount)
	}
}

// DumpIndex writes the spatial index's full contents in index order, one
// entry per line: vertex address and the interval it is registered
// under. Intended for debugging index/slab drift, not for production
// monitoring (§6).
func (s *SVLocusSet) DumpIndex(out io.Writer) {
	for _, e := range s.index.All() {
		fmt.Fprintf(out, "%d\t%d\t%s\n", e.Addr.LocusSlot, e.Addr.VertexSlot, e.Iv)
	}
}
