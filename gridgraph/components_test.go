// File: gridgraph/components_test.go
package gridgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/coord"
	"github.com/katalvlaran/tilepath/grid"
)

// islands is a 4×3 grid (1 = walkable, 0 = blocked):
//
//	1 1 0 1
//	0 1 0 1
//	1 0 0 1
var islands = [][]int{
	{1, 1, 0, 1},
	{0, 1, 0, 1},
	{1, 0, 0, 1},
}

func mustGrid(t testing.TB, tiles [][]int, opts ...grid.Option) *grid.Grid {
	t.Helper()
	g, err := grid.New(tiles, append([]grid.Option{grid.WithWalkable(1)}, opts...)...)
	require.NoError(t, err)
	return g
}

// TestComponents_Cardinal expects three islands; the lone (0,2) cell only
// touches (1,1) diagonally.
func TestComponents_Cardinal(t *testing.T) {
	comps, err := Components(mustGrid(t, islands))
	require.NoError(t, err)

	want := [][]coord.Coord{
		{coord.New(0, 0), coord.New(1, 0), coord.New(1, 1)},
		{coord.New(3, 0), coord.New(3, 1), coord.New(3, 2)},
		{coord.New(0, 2)},
	}
	assert.Equal(t, want, comps)
}

// TestComponents_DiagonalTopologies checks that Hex (via SW) and Intercardinal
// both join (0,2) to the first island.
func TestComponents_DiagonalTopologies(t *testing.T) {
	for _, topo := range []grid.Topology{grid.Hex, grid.Intercardinal} {
		t.Run(topo.String(), func(t *testing.T) {
			comps, err := Components(mustGrid(t, islands, grid.WithTopology(topo)))
			require.NoError(t, err)
			require.Len(t, comps, 2)
			assert.Equal(t,
				[]coord.Coord{coord.New(0, 0), coord.New(1, 0), coord.New(1, 1), coord.New(0, 2)},
				comps[0])
			assert.Equal(t, 0, ComponentOf(comps, coord.New(0, 2)))
			assert.Equal(t, 1, ComponentOf(comps, coord.New(3, 2)))
			assert.Equal(t, -1, ComponentOf(comps, coord.New(2, 2)))
		})
	}
}

// TestComponents_Overrides ensures unwalkable coordinates split regions.
func TestComponents_Overrides(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 1, 1}}, grid.WithUnwalkable(coord.New(1, 0)))
	comps, err := Components(g)
	require.NoError(t, err)
	assert.Len(t, comps, 2)
}

// TestComponents_EdgeCases tests:
//   - completely blocked grid → zero components
//   - ragged rows
//   - nil grid
func TestComponents_EdgeCases(t *testing.T) {
	comps, err := Components(mustGrid(t, [][]int{{0, 0}, {0, 0}}))
	require.NoError(t, err)
	assert.Empty(t, comps)

	comps, err = Components(mustGrid(t, [][]int{{1, 1, 1}, {1}}))
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 4)

	_, err = Components(nil)
	assert.ErrorIs(t, err, ErrNilGrid)
}
