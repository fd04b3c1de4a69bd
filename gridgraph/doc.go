// Package gridgraph treats a grid.Grid as a graph, enabling component
// analysis and interoperation with gonum graph algorithms.
//
// What:
//
//   - Components identifies connected regions ("islands") of walkable cells.
//   - ToWeighted exports walkable cells to a gonum simple.WeightedDirectedGraph
//     whose edge weights are the entry costs of their target cells.
//   - Index maps grid coordinates to gonum node IDs and back.
//
// Why:
//
//   - Game maps: detect disconnected regions before running many searches.
//   - Cross-checking: gonum's Dijkstra on the exported graph gives the same
//     costs as package search.
//   - Access to the wider gonum toolbox (flows, centrality, spanning trees).
//
// Complexity:
//
//   - Components: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4, 6 or 8).
//   - ToWeighted: O(W×H×d), Memory: O(W×H + E).
//
// Errors:
//
//   - ErrNilGrid: nil grid.
//   - ErrNotInGraph: Index lookup of a cell that is not a node.
package gridgraph
