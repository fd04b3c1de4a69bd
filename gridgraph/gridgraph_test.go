package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/tilepath/coord"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/gridgraph"
)

//----------------------------------------------------------------------------//
// ToWeighted Tests
//----------------------------------------------------------------------------//

// TestToWeighted_Cardinal verifies node indexing, edge direction and weights.
//
//	tile 1 (cost 1) | tile 2 (cost 3)
//	tile 1          | tile 1
func TestToWeighted_Cardinal(t *testing.T) {
	g, err := grid.New(
		[][]int{{1, 2}, {1, 1}},
		grid.WithWalkable(1, 2),
		grid.WithCost(2, 3),
	)
	require.NoError(t, err)

	wg, ix, err := gridgraph.ToWeighted(g)
	require.NoError(t, err)
	require.Equal(t, 4, ix.Len())
	assert.Equal(t, 4, wg.Nodes().Len())

	a, err := ix.ID(coord.New(0, 0))
	require.NoError(t, err)
	b, err := ix.ID(coord.New(1, 0))
	require.NoError(t, err)
	d, err := ix.ID(coord.New(1, 1))
	require.NoError(t, err)

	w, ok := wg.Weight(a, b)
	require.True(t, ok)
	assert.Equal(t, 3.0, w, "entering tile 2 costs 3")
	w, ok = wg.Weight(b, a)
	require.True(t, ok)
	assert.Equal(t, 1.0, w, "entering tile 1 costs 1")

	assert.False(t, wg.HasEdgeFromTo(a, d), "no diagonal edge under Cardinal")

	c, ok := ix.Coord(d)
	require.True(t, ok)
	assert.Equal(t, coord.New(1, 1), c)
	_, ok = ix.Coord(99)
	assert.False(t, ok)
}

// TestToWeighted_Intercardinal verifies diagonal edges and skipped unwalkable cells.
func TestToWeighted_Intercardinal(t *testing.T) {
	g, err := grid.New(
		[][]int{{1, 0}, {0, 1}},
		grid.WithWalkable(1),
		grid.WithTopology(grid.Intercardinal),
	)
	require.NoError(t, err)

	wg, ix, err := gridgraph.ToWeighted(g)
	require.NoError(t, err)
	require.Equal(t, 2, ix.Len())

	a, _ := ix.ID(coord.New(0, 0))
	b, _ := ix.ID(coord.New(1, 1))
	assert.True(t, wg.HasEdgeFromTo(a, b))
	assert.True(t, wg.HasEdgeFromTo(b, a))

	_, err = ix.ID(coord.New(1, 0))
	assert.ErrorIs(t, err, gridgraph.ErrNotInGraph)
}

// TestToWeighted_GonumDijkstra runs gonum's Dijkstra on the exported graph
// around a costly column.
func TestToWeighted_GonumDijkstra(t *testing.T) {
	g, err := grid.New(
		[][]int{
			{1, 2, 1},
			{1, 2, 1},
			{1, 1, 1},
		},
		grid.WithWalkable(1, 2),
		grid.WithCost(2, 9),
	)
	require.NoError(t, err)

	wg, ix, err := gridgraph.ToWeighted(g)
	require.NoError(t, err)
	from, _ := ix.ID(coord.New(0, 0))
	to, _ := ix.ID(coord.New(2, 0))

	nodes, cost := path.DijkstraFrom(simple.Node(from), wg).To(to)
	assert.Equal(t, 6.0, cost)
	assert.Len(t, nodes, 7, "start plus six steps")
}

func TestToWeighted_NilGrid(t *testing.T) {
	_, _, err := gridgraph.ToWeighted(nil)
	assert.ErrorIs(t, err, gridgraph.ErrNilGrid)
}
