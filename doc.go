// Package tilepath finds least-cost paths and reachable regions on 2D tile
// grids.
//
// What is tilepath?
//
//	A small, dependency-light library for game-style maps where every cell
//	holds an integer tile type:
//		• Grids: walkable tile sets, per-tile and per-cell entry costs,
//		  unwalkable and unstoppable overrides, ragged rows
//		• Topologies: Cardinal (4-way), Hex (axial, 6-way), Intercardinal (8-way)
//		• Search: uniform-cost path finding with deterministic tie-breaking,
//		  multi-source walkable-area flood, optional A* heuristics
//		• Graph view: connected components and a gonum weighted export
//		• I/O: JSON and YAML grid descriptions, plus the tilepath CLI
//
// Under the hood, everything is organized under these subpackages:
//
//	coord/         Coord value type, row-major ordering, y → x maps
//	grid/          immutable Grid and its construction options
//	search/        Engine, FindPath, ShortestPath, FindWalkableArea
//	gridgraph/     Components, ToWeighted (gonum)
//	gridio/        wire format decoding and encoding
//	cmd/tilepath/  command-line front end
//
// Quick example:
//
//	g, _ := grid.New([][]int{
//		{1, 1, 1},
//		{1, 0, 1},
//		{1, 1, 1},
//	}, grid.WithWalkable(1))
//	path, err := search.FindPath(g, coord.New(0, 0), coord.New(2, 2))
//	// path == [(1,0) (2,0) (2,1) (2,2)]
//
//	go get github.com/katalvlaran/tilepath
package tilepath
