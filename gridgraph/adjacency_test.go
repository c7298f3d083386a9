package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// TestBuild_OpenGrid verifies that a 3×3 grid without obstacles has exactly
// the orthogonal edges and none across row boundaries.
func TestBuild_OpenGrid(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 3, make([]bool, 9))
	require.NoError(t, err)
	a := gridgraph.Build(g)

	require.Equal(t, 9, a.Order())
	assert.Equal(t, 3, a.Rows())
	assert.Equal(t, 3, a.Cols())

	assert.True(t, a.HasEdge(0, 1))
	assert.True(t, a.HasEdge(1, 0))
	assert.True(t, a.HasEdge(0, 3))
	assert.True(t, a.HasEdge(4, 7))
	assert.False(t, a.HasEdge(2, 3), "row wrap 2→3 must not be an edge")
	assert.False(t, a.HasEdge(3, 2), "row wrap 3→2 must not be an edge")
	assert.False(t, a.HasEdge(0, 4), "diagonal must not be an edge")
	assert.False(t, a.HasEdge(0, 0))
	assert.False(t, a.HasEdge(-1, 0))
	assert.False(t, a.HasEdge(8, 9))

	assert.Equal(t, 2, a.Degree(0))
	assert.Equal(t, 3, a.Degree(1))
	assert.Equal(t, 4, a.Degree(4))
	assert.Equal(t, []int{1, 3, 5, 7}, a.AppendNeighbors(nil, 4))
	assert.Equal(t, gridgraph.Up|gridgraph.Left|gridgraph.Right|gridgraph.Down, a.Links(4))
}

// TestBuild_BlockedCellIsolated verifies that a blocked cell keeps its vertex
// but has no edges in or out.
func TestBuild_BlockedCellIsolated(t *testing.T) {
	g, err := gridgraph.FromRows([][]bool{
		{false, false, false},
		{false, true, false},
		{false, false, false},
	})
	require.NoError(t, err)
	a := gridgraph.Build(g)

	require.Equal(t, 9, a.Order())
	assert.Zero(t, a.Degree(4))
	assert.Empty(t, a.AppendNeighbors(nil, 4))
	for _, n := range []int{1, 3, 5, 7} {
		assert.False(t, a.HasEdge(4, n), "edge 4→%d", n)
		assert.False(t, a.HasEdge(n, 4), "edge %d→4", n)
	}
	assert.Equal(t, []int{0, 2}, a.AppendNeighbors(nil, 1))
}

// TestBuild_Symmetric checks HasEdge(u,v) == HasEdge(v,u) on a mixed grid.
func TestBuild_Symmetric(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 4, []bool{
		false, true, false, false,
		false, false, true, false,
		true, false, false, false,
	})
	require.NoError(t, err)
	a := gridgraph.Build(g)

	for u := 0; u < a.Order(); u++ {
		for v := 0; v < a.Order(); v++ {
			require.Equal(t, a.HasEdge(u, v), a.HasEdge(v, u), "asymmetric edge %d,%d", u, v)
			if a.HasEdge(u, v) {
				require.False(t, g.Blocked(u) || g.Blocked(v), "edge %d,%d touches a blocked cell", u, v)
			}
		}
	}
}

// TestBuild_SingleColumn covers cols == 1, where left/right never exist.
func TestBuild_SingleColumn(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 1, make([]bool, 3))
	require.NoError(t, err)
	a := gridgraph.Build(g)

	assert.True(t, a.HasEdge(0, 1))
	assert.True(t, a.HasEdge(2, 1))
	assert.False(t, a.HasEdge(0, 2))
	assert.Equal(t, []int{0, 2}, a.AppendNeighbors(nil, 1))
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "up", gridgraph.Up.String())
	assert.Equal(t, "left", gridgraph.Left.String())
	assert.Equal(t, "right", gridgraph.Right.String())
	assert.Equal(t, "down", gridgraph.Down.String())
	assert.Equal(t, "none", gridgraph.Direction(0).String())
}
