package svlocusset_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/svlocus/interval"
	"github.com/katalvlaran/svlocus/locus"
	"github.com/katalvlaran/svlocus/svlocusset"
)

type MergeSuite struct {
	suite.Suite
}

func TestMergeSuite(t *testing.T) {
	suite.Run(t, new(MergeSuite))
}

// singleVertex builds an unattached one-vertex Locus representing a single
// piece of evidence, the shape every external caller's Merge input takes
// for the simple cases below. Each freshly observed vertex counts as one
// observation (§3's "observation counts of the two originals summed"
// scenario only makes sense if each original starts at one, not zero).
func singleVertex(iv interval.Interval) *locus.Locus {
	l := locus.New()
	slot := l.AddVertex(iv)
	l.GetVertex(slot).ObsCount = 1

	return l
}

func (s *MergeSuite) TestDisjointInputsStayInSeparateLoci() {
	set := svlocusset.New()
	require.NoError(s.T(), set.Merge(singleVertex(interval.New(0, 0, 10))))
	require.NoError(s.T(), set.Merge(singleVertex(interval.New(0, 100, 110))))

	require.Len(s.T(), set.NonEmptyLoci(), 2)
	require.NoError(s.T(), set.CheckState(true))
}

func (s *MergeSuite) TestOverlappingInputCoalescesIntoExistingVertex() {
	set := svlocusset.New()
	require.NoError(s.T(), set.Merge(singleVertex(interval.New(0, 10, 30))))
	require.NoError(s.T(), set.Merge(singleVertex(interval.New(0, 20, 40))))

	loci := set.NonEmptyLoci()
	require.Len(s.T(), loci, 1)
	l := set.GetLocus(loci[0])
	require.Equal(s.T(), 1, l.Size())
	require.Equal(s.T(), interval.New(0, 10, 40), l.GetVertex(0).Interval)
	require.EqualValues(s.T(), 2, l.GetVertex(0).ObsCount)
	require.NoError(s.T(), set.CheckState(true))
}

func (s *MergeSuite) TestBridgingInputUnifiesTwoExistingLoci() {
	set := svlocusset.New()
	require.NoError(s.T(), set.Merge(singleVertex(interval.New(0, 0, 10))))
	require.NoError(s.T(), set.Merge(singleVertex(interval.New(0, 20, 30))))
	require.Len(s.T(), set.NonEmptyLoci(), 2)

	// A single vertex spanning [5,25) overlaps both prior vertices and
	// should fold everything into one locus with one fully-unioned vertex.
	require.NoError(s.T(), set.Merge(singleVertex(interval.New(0, 5, 25))))

	loci := set.NonEmptyLoci()
	require.Len(s.T(), loci, 1)
	l := set.GetLocus(loci[0])
	require.Equal(s.T(), 1, l.Size())
	require.Equal(s.T(), interval.New(0, 0, 30), l.GetVertex(0).Interval)
	require.EqualValues(s.T(), 3, l.GetVertex(0).ObsCount)
	require.NoError(s.T(), set.CheckState(true))
}

func (s *MergeSuite) TestTwoVertexInputWithEdgeJoinsOverlappedLocus() {
	set := svlocusset.New()
	require.NoError(s.T(), set.Merge(singleVertex(interval.New(0, 0, 10))))

	// One input Locus with two vertices: the first overlaps the existing
	// vertex, the second overlaps nothing yet but is connected to the
	// first by an edge, exercising edge retargeting during coalesce.
	input := locus.New()
	a := input.AddVertex(interval.New(0, 5, 15))
	b := input.AddVertex(interval.New(0, 50, 60))
	input.GetVertex(a).AddEdge(locus.Addr{LocusSlot: -1, VertexSlot: b}, locus.EdgePayload{ObsCount: 7})
	require.NoError(s.T(), set.Merge(input))

	loci := set.NonEmptyLoci()
	require.Len(s.T(), loci, 1)
	l := set.GetLocus(loci[0])
	require.Equal(s.T(), 2, l.Size())

	// Find the merged [0,15) vertex and the standalone [50,60) vertex by
	// interval rather than by slot, since coalesce may have renumbered them.
	var merged, standalone *locus.Vertex
	var mergedSlot, standaloneSlot int
	for slot, v := range l.Vertices() {
		if v.Interval == interval.New(0, 0, 15) {
			merged, mergedSlot = v, slot
		}
		if v.Interval == interval.New(0, 50, 60) {
			standalone, standaloneSlot = v, slot
		}
	}
	require.NotNil(s.T(), merged)
	require.NotNil(s.T(), standalone)
	payload, ok := merged.Edges[locus.Addr{LocusSlot: loci[0], VertexSlot: standaloneSlot}]
	require.True(s.T(), ok)
	require.EqualValues(s.T(), 7, payload.ObsCount)
	_ = mergedSlot

	require.NoError(s.T(), set.CheckState(true))
}

func (s *MergeSuite) TestMergeSetFoldsOneContainerIntoAnother() {
	a := svlocusset.New()
	require.NoError(s.T(), a.Merge(singleVertex(interval.New(0, 0, 10))))
	require.NoError(s.T(), a.Merge(singleVertex(interval.New(1, 0, 10))))

	b := svlocusset.New()
	require.NoError(s.T(), b.Merge(singleVertex(interval.New(0, 5, 15))))

	require.NoError(s.T(), a.MergeSet(b))

	require.NoError(s.T(), a.CheckState(true))
	// b's locus overlapped a's tid-0 locus and should have coalesced into
	// it, leaving a's tid-1 locus untouched: two live loci total.
	require.Len(s.T(), a.NonEmptyLoci(), 2)

	var tid0 *locus.Locus
	for _, slot := range a.NonEmptyLoci() {
		l := a.GetLocus(slot)
		if l.GetVertex(0).Interval.Tid == 0 {
			tid0 = l
		}
	}
	require.NotNil(s.T(), tid0)
	require.Equal(s.T(), 1, tid0.Size())
	require.Equal(s.T(), interval.New(0, 0, 15), tid0.GetVertex(0).Interval)
}

func (s *MergeSuite) TestGetRegionIntersectFindsMergedVertex() {
	set := svlocusset.New()
	require.NoError(s.T(), set.Merge(singleVertex(interval.New(0, 10, 20))))
	require.NoError(s.T(), set.Merge(singleVertex(interval.New(0, 100, 110))))

	hits := set.GetRegionIntersect(0, 15, 16)
	require.Len(s.T(), hits, 1)
	l := set.GetLocus(hits[0].LocusSlot)
	require.Equal(s.T(), interval.New(0, 10, 20), l.GetVertex(hits[0].VertexSlot).Interval)

	// A probe matching nothing must not leave a stray index entry behind.
	require.Empty(s.T(), set.GetRegionIntersect(0, 500, 600))
	require.NoError(s.T(), set.CheckState(true))
}
