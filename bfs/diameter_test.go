package bfs_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/socialgraph"
)

// DiameterSuite exercises Diameter and Eccentricity on small fixed graphs.
type DiameterSuite struct {
	suite.Suite
}

// TestFourNodeCycle is the canonical 0→1→2→3→1 example.
func (s *DiameterSuite) TestFourNodeCycle() {
	g := mustGraph(s.T(), ids(1), ids(2), ids(3), ids(1))
	d, err := bfs.Diameter(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, d)

	ecc, err := bfs.Eccentricity(g, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, ecc)
}

// TestOnVisitForwarded counts every dequeue across all per-source runs.
func (s *DiameterSuite) TestOnVisitForwarded() {
	g := mustGraph(s.T(), ids(1), ids(2), ids(3), ids(1))
	visits := 0
	d, err := bfs.Diameter(g,
		bfs.WithMaxDepth(1),
		bfs.WithOnVisit(func(socialgraph.NodeID, int) error {
			visits++
			return nil
		}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, d, "depth limit must not shorten the scan")
	require.Equal(s.T(), 4+3+3+3, visits)

	_, err = bfs.Diameter(g, bfs.WithOnVisit(func(socialgraph.NodeID, int) error {
		return context.DeadlineExceeded
	}))
	require.ErrorIs(s.T(), err, context.DeadlineExceeded)
}

// TestEmptyAndSingle returns 0 when there is nothing to traverse.
func (s *DiameterSuite) TestEmptyAndSingle() {
	for _, g := range []*socialgraph.Graph{mustGraph(s.T()), mustGraph(s.T(), ids()), mustGraph(s.T(), ids(0))} {
		d, err := bfs.Diameter(g)
		require.NoError(s.T(), err)
		require.Zero(s.T(), d)
	}
}

// TestDisconnected ignores unreachable pairs.
func (s *DiameterSuite) TestDisconnected() {
	// 0→1→2 and an isolated 3→4
	g := mustGraph(s.T(), ids(1), ids(2), ids(), ids(4), ids())
	d, err := bfs.Diameter(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, d)
}

// TestCompleteGraph has diameter 1.
func (s *DiameterSuite) TestCompleteGraph() {
	g, err := socialgraph.RandomSparse(6, 1, nil)
	require.NoError(s.T(), err)
	d, err := bfs.Diameter(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, d)
}

// TestMatchesEccentricities cross-checks against a per-source scan on a random graph.
func (s *DiameterSuite) TestMatchesEccentricities() {
	g, err := socialgraph.RandomSparse(60, 0.04, rand.New(rand.NewSource(3)))
	require.NoError(s.T(), err)
	want := 0
	for v := 0; v < g.Len(); v++ {
		tree, err := bfs.ShortestPathTree(g, socialgraph.NodeID(v))
		require.NoError(s.T(), err)
		for _, d := range tree.Distances() {
			if d > want {
				want = d
			}
		}
	}
	got, err := bfs.Diameter(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), want, got)
}

// TestErrors covers nil graphs, bad options and cancellation.
func (s *DiameterSuite) TestErrors() {
	_, err := bfs.Diameter(nil)
	require.ErrorIs(s.T(), err, bfs.ErrGraphNil)

	g := mustGraph(s.T(), ids(1), ids(0))
	_, err = bfs.Diameter(g, bfs.WithMaxDepth(-2))
	require.ErrorIs(s.T(), err, bfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.Diameter(g, bfs.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestDiameterSuite(t *testing.T) {
	suite.Run(t, new(DiameterSuite))
}
