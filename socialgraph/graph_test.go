package socialgraph_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/socialgraph"
)

// TestFromAdjacency_CopiesAndValidates ensures the input slice is not aliased.
func TestFromAdjacency_CopiesAndValidates(t *testing.T) {
	adj := [][]socialgraph.NodeID{{1, 2}, {2}, {0}}
	g, err := socialgraph.FromAdjacency(adj)
	require.NoError(t, err)
	adj[0][0] = 2
	require.Equal(t, []socialgraph.NodeID{1, 2}, g.Neighbors(0))
	require.Equal(t, 4, g.EdgeCount())

	_, err = socialgraph.FromAdjacency([][]socialgraph.NodeID{{3}})
	require.ErrorIs(t, err, socialgraph.ErrNodeOutOfRange)
	_, err = socialgraph.FromAdjacency([][]socialgraph.NodeID{{-1}})
	require.ErrorIs(t, err, socialgraph.ErrNodeOutOfRange)
}

// TestAdjacency_ReturnsCopy confirms callers cannot mutate the store.
func TestAdjacency_ReturnsCopy(t *testing.T) {
	g, err := socialgraph.FromAdjacency([][]socialgraph.NodeID{{1}, {0}})
	require.NoError(t, err)
	out := g.Adjacency()
	out[0][0] = 0
	require.Equal(t, []socialgraph.NodeID{1}, g.Neighbors(0))
}

// TestValid_Bounds exercises the id range check.
func TestValid_Bounds(t *testing.T) {
	g, err := socialgraph.FromAdjacency([][]socialgraph.NodeID{{}, {}})
	require.NoError(t, err)
	require.True(t, g.Valid(0))
	require.True(t, g.Valid(1))
	require.False(t, g.Valid(2))
	require.False(t, g.Valid(-1))
	require.Equal(t, 0, g.Degree(-1))
}

// TestWriteEdgeList_RoundTrip rebuilds a graph from its own serialization.
func TestWriteEdgeList_RoundTrip(t *testing.T) {
	g, err := socialgraph.RandomSparse(30, 0.1, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, socialgraph.WriteEdgeList(&buf, g))

	back, err := socialgraph.Build(&buf)
	require.NoError(t, err)
	require.Equal(t, g.Len(), back.Len())
	require.Equal(t, g.EdgeCount(), back.EdgeCount())
	for v := 0; v < g.Len(); v++ {
		require.Equal(t, g.Neighbors(socialgraph.NodeID(v)), back.Neighbors(socialgraph.NodeID(v)))
	}
}

// TestWriteEdgeList_Format pins the exact text layout.
func TestWriteEdgeList_Format(t *testing.T) {
	g, err := socialgraph.FromAdjacency([][]socialgraph.NodeID{{1}, {2}, {3}, {1}})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, socialgraph.WriteEdgeList(&buf, g))
	require.Equal(t, "4\n0 1\n1 2\n2 3\n3 1\n", buf.String())
}

// TestRandomSparse_Errors verifies parameter validation.
func TestRandomSparse_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := socialgraph.RandomSparse(0, 0.5, rng)
	require.ErrorIs(t, err, socialgraph.ErrTooFewVertices)
	_, err = socialgraph.RandomSparse(3, -0.1, rng)
	require.ErrorIs(t, err, socialgraph.ErrInvalidProbability)
	_, err = socialgraph.RandomSparse(3, 1.5, rng)
	require.ErrorIs(t, err, socialgraph.ErrInvalidProbability)
	_, err = socialgraph.RandomSparse(3, 0.5, nil)
	require.ErrorIs(t, err, socialgraph.ErrNeedRandSource)
}

// TestRandomSparse_Extremes checks the deterministic p=0 and p=1 cases without an rng.
func TestRandomSparse_Extremes(t *testing.T) {
	empty, err := socialgraph.RandomSparse(5, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.EdgeCount())

	full, err := socialgraph.RandomSparse(5, 1, nil)
	require.NoError(t, err)
	require.Equal(t, 5*4, full.EdgeCount())
	for v := 0; v < 5; v++ {
		require.False(t, full.HasEdge(socialgraph.NodeID(v), socialgraph.NodeID(v)), "no self-loops")
	}
}

// TestRandomSparse_SeedDeterminism requires identical graphs for identical seeds.
func TestRandomSparse_SeedDeterminism(t *testing.T) {
	a, err := socialgraph.RandomSparse(40, 0.05, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := socialgraph.RandomSparse(40, 0.05, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Equal(t, a.Adjacency(), b.Adjacency())
}

// TestNilGraph_BehavesAsEmpty lets read-only callers treat a nil graph as n=0.
func TestNilGraph_BehavesAsEmpty(t *testing.T) {
	var g *socialgraph.Graph
	require.Equal(t, 0, g.Len())
	require.Equal(t, 0, g.EdgeCount())
	require.False(t, g.Valid(0))
	require.Equal(t, 0, g.Degree(0))
	require.Nil(t, g.Neighbors(0))
	require.False(t, g.HasEdge(0, 0))
	require.Empty(t, g.Adjacency())

	var buf bytes.Buffer
	require.NoError(t, socialgraph.WriteEdgeList(&buf, g))
	require.Equal(t, "0\n", buf.String())
}
