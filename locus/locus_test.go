package locus_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/svlocus/interval"
	"github.com/katalvlaran/svlocus/locus"
)

// recordingNotifier captures every Insert/Erase call so tests can assert on
// exactly what the spatial index would have seen, without pulling in the
// real index implementation.
type recordingNotifier struct {
	inserts []locus.Addr
	erases  []locus.Addr
}

func (r *recordingNotifier) NotifyInsert(addr locus.Addr, _ interval.Interval) {
	r.inserts = append(r.inserts, addr)
}

func (r *recordingNotifier) NotifyErase(addr locus.Addr, _ interval.Interval) {
	r.erases = append(r.erases, addr)
}

type LocusSuite struct {
	suite.Suite
}

func TestLocusSuite(t *testing.T) {
	suite.Run(t, new(LocusSuite))
}

func (s *LocusSuite) TestAddVertexNotifiesObserver() {
	n := &recordingNotifier{}
	l := locus.New()
	l.SetObserver(n, 3)

	slot := l.AddVertex(interval.New(0, 10, 20))
	require.Equal(s.T(), 0, slot)
	require.Equal(s.T(), []locus.Addr{{LocusSlot: 3, VertexSlot: 0}}, n.inserts)
	require.Equal(s.T(), 1, l.Size())
}

func (s *LocusSuite) TestSetObserverFlushesExistingVertices() {
	l := locus.New() // unattached: AddVertex is a no-op on the index
	l.AddVertex(interval.New(0, 0, 10))
	l.AddVertex(interval.New(0, 20, 30))

	n := &recordingNotifier{}
	l.SetObserver(n, 7)
	require.ElementsMatch(s.T(), []locus.Addr{
		{LocusSlot: 7, VertexSlot: 0},
		{LocusSlot: 7, VertexSlot: 1},
	}, n.inserts)
}

func (s *LocusSuite) TestCopyFromTranslatesEdgeTargets() {
	src := locus.New()
	src.SetObserver(&recordingNotifier{}, 1)
	v0 := src.AddVertex(interval.New(0, 10, 20))
	v1 := src.AddVertex(interval.New(0, 100, 110))
	src.GetVertex(v0).AddEdge(locus.Addr{LocusSlot: 1, VertexSlot: v1}, locus.EdgePayload{ObsCount: 1})

	dst := locus.New()
	n := &recordingNotifier{}
	dst.SetObserver(n, 5)
	// pre-existing vertex in dst to verify slot-base offsetting
	dst.AddVertex(interval.New(0, 500, 600))

	dst.CopyFrom(src)
	require.Equal(s.T(), 3, dst.Size())

	// src's v0 (now dst slot 1) should have an edge to src's v1 (now dst slot 2).
	translated := dst.GetVertex(1)
	require.Len(s.T(), translated.Edges, 1)
	_, ok := translated.Edges[locus.Addr{LocusSlot: 5, VertexSlot: 2}]
	require.True(s.T(), ok)

	// src itself must be untouched.
	require.Equal(s.T(), 2, src.Size())
	_, ok = src.GetVertex(v0).Edges[locus.Addr{LocusSlot: 1, VertexSlot: v1}]
	require.True(s.T(), ok)
}

func (s *LocusSuite) TestMergeVertexUnionsIntervalAndSumsObsCount() {
	l := locus.New()
	l.SetObserver(&recordingNotifier{}, 0)
	a := l.AddVertex(interval.New(0, 10, 30))
	b := l.AddVertex(interval.New(0, 20, 40))
	l.GetVertex(a).ObsCount = 3
	l.GetVertex(b).ObsCount = 5

	_, err := l.MergeVertex(b, a)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, l.Size())
	merged := l.GetVertex(a)
	require.Equal(s.T(), interval.New(0, 10, 40), merged.Interval)
	require.EqualValues(s.T(), 8, merged.ObsCount)
}

func (s *LocusSuite) TestMergeVertexRetargetsEdgesBothDirections() {
	l := locus.New()
	l.SetObserver(&recordingNotifier{}, 0)
	a := l.AddVertex(interval.New(0, 10, 20))
	b := l.AddVertex(interval.New(0, 100, 110))
	// a -> b and b -> a, both weight 1; after merging b into a, both
	// become a self-loop on a with summed weight 2.
	l.GetVertex(a).AddEdge(locus.Addr{LocusSlot: 0, VertexSlot: b}, locus.EdgePayload{ObsCount: 1})
	l.GetVertex(b).AddEdge(locus.Addr{LocusSlot: 0, VertexSlot: a}, locus.EdgePayload{ObsCount: 1})

	_, err := l.MergeVertex(b, a)
	require.NoError(s.T(), err)
	merged := l.GetVertex(a)
	selfAddr := locus.Addr{LocusSlot: 0, VertexSlot: a}
	require.Equal(s.T(), int64(2), merged.Edges[selfAddr].ObsCount)
}

func (s *LocusSuite) TestMergeVertexRequiresDistinctSlots() {
	l := locus.New()
	l.SetObserver(&recordingNotifier{}, 0)
	a := l.AddVertex(interval.New(0, 0, 10))
	_, err := l.MergeVertex(a, a)
	require.ErrorIs(s.T(), err, locus.ErrSameVertexSlot)
}

func (s *LocusSuite) TestMergeVertexRejectsCrossTid() {
	l := locus.New()
	l.SetObserver(&recordingNotifier{}, 0)
	a := l.AddVertex(interval.New(0, 0, 10))
	b := l.AddVertex(interval.New(1, 0, 10))
	_, err := l.MergeVertex(b, a)
	require.ErrorIs(s.T(), err, locus.ErrCrossTidMerge)
}

func (s *LocusSuite) TestRemoveSlotRewritesEdgesToMovedVertex() {
	l := locus.New()
	l.SetObserver(&recordingNotifier{}, 0)
	v0 := l.AddVertex(interval.New(0, 0, 10))
	v1 := l.AddVertex(interval.New(0, 20, 30))
	v2 := l.AddVertex(interval.New(0, 40, 50)) // will end up moved into v1's slot
	l.GetVertex(v0).AddEdge(locus.Addr{LocusSlot: 0, VertexSlot: v2}, locus.EdgePayload{ObsCount: 4})

	// Merge v1 into v0: v1 is at a lower slot than v2 (last), so v2 moves
	// into v1's old slot and v0's edge must be rewritten to point there.
	_, err := l.MergeVertex(v1, v0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, l.Size())

	rewritten := locus.Addr{LocusSlot: 0, VertexSlot: 1}
	require.Equal(s.T(), int64(4), l.GetVertex(v0).Edges[rewritten].ObsCount)
}

func (s *LocusSuite) TestLocalCheckDetectsDanglingEdge() {
	l := locus.New()
	l.SetObserver(&recordingNotifier{}, 2)
	a := l.AddVertex(interval.New(0, 0, 10))
	l.GetVertex(a).AddEdge(locus.Addr{LocusSlot: 2, VertexSlot: 99}, locus.EdgePayload{ObsCount: 1})
	require.ErrorIs(s.T(), l.LocalCheck(), locus.ErrLocalCheckFailed)
}

func (s *LocusSuite) TestLocalCheckPassesForCleanLocus() {
	l := locus.New()
	l.SetObserver(&recordingNotifier{}, 0)
	a := l.AddVertex(interval.New(0, 0, 10))
	b := l.AddVertex(interval.New(0, 20, 30))
	l.GetVertex(a).AddEdge(locus.Addr{LocusSlot: 0, VertexSlot: b}, locus.EdgePayload{ObsCount: 1})
	require.NoError(s.T(), l.LocalCheck())
}
