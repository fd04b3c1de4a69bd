// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Components
////////////////////////////////////////////////////////////////////////////////

// ExampleComponents demonstrates how to identify contiguous walkable
// regions of a tile map.
// Scenario:
//
//   - Tile 0 = water, tiles 1 and 2 = land (both walkable)
//   - Cardinal: 4-directional adjacency (N/E/S/W)
//   - Expect two islands, separated by water.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleComponents() {
	g, _ := grid.New([][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{1, 0, 2, 2, 0},
	}, grid.WithWalkable(1, 2))

	comps, _ := gridgraph.Components(g)
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d: %v\n", i, comp)
	}

	// Output:
	// components: 2
	// component 0: [(1,0) (2,0) (0,1) (1,1) (0,2)]
	// component 1: [(4,0) (3,1) (4,1) (2,2) (3,2)]
}
