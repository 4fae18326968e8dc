package interval_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/svlocus/interval"
)

// IntervalSuite exercises interval arithmetic used by the spatial index and
// the merge engine's coalesce step.
type IntervalSuite struct {
	suite.Suite
}

func TestIntervalSuite(t *testing.T) {
	suite.Run(t, new(IntervalSuite))
}

func (s *IntervalSuite) TestNewPanicsOnEmptyRange() {
	s.Require().Panics(func() { interval.New(0, 10, 10) })
	s.Require().Panics(func() { interval.New(0, 10, 5) })
	s.Require().NotPanics(func() { interval.New(0, 10, 11) })
}

func (s *IntervalSuite) TestIntersects() {
	a := interval.New(0, 10, 30)
	b := interval.New(0, 20, 40)
	c := interval.New(0, 30, 40) // touches but half-open, no overlap
	d := interval.New(1, 10, 30) // same range, different tid

	require.True(s.T(), interval.Intersects(a, b))
	require.False(s.T(), interval.Intersects(a, c))
	require.False(s.T(), interval.Intersects(a, d))
}

func (s *IntervalSuite) TestIsSupersetOf() {
	outer := interval.New(0, 0, 110)
	inner := interval.New(0, 5, 105)
	require.True(s.T(), interval.IsSupersetOf(outer, inner))
	require.False(s.T(), interval.IsSupersetOf(inner, outer))

	diffTid := interval.New(1, 0, 200)
	require.False(s.T(), interval.IsSupersetOf(diffTid, inner))
}

func (s *IntervalSuite) TestUnion() {
	a := interval.New(0, 10, 30)
	b := interval.New(0, 20, 40)
	u := interval.Union(a, b)
	require.Equal(s.T(), interval.New(0, 10, 40), u)

	s.Require().Panics(func() { interval.Union(a, interval.New(1, 10, 30)) })
}

func (s *IntervalSuite) TestLessOrdering() {
	require.True(s.T(), interval.Less(interval.New(0, 0, 10), interval.New(1, 0, 10)))
	require.True(s.T(), interval.Less(interval.New(0, 0, 10), interval.New(0, 5, 10)))
	require.True(s.T(), interval.Less(interval.New(0, 0, 10), interval.New(0, 0, 20)))
	require.False(s.T(), interval.Less(interval.New(0, 0, 10), interval.New(0, 0, 10)))
}
