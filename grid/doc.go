// Package grid models a 2D tile map as a static cost/walkability surface.
//
// What:
//
//   - Grid wraps a row-major [][]int of tile types; tiles[y][x] is the type at (x, y).
//   - Rows may have different lengths; a coordinate is in bounds only if its row
//     exists and x falls within that row.
//   - Walkability comes from a set of walkable tile types, overridden per
//     coordinate by an unwalkable set.
//   - Stoppability is walkability minus an unstoppable set.
//   - Entry cost is a per-coordinate override, else a per-tile-type cost, else 1.
//   - Topology (Cardinal, Hex, Intercardinal) fixes the neighbor offsets.
//
// Why:
//
//   - Game maps: terrain costs, blocked cells, cells units may cross but not occupy.
//   - A single validated, read-only value shared by any number of concurrent searches.
//
// Options:
//
//   - WithTopology, WithWalkable, WithCost, WithCosts, WithExtraCost,
//     WithUnstoppable, WithUnwalkable, WithRectangular.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows.
//   - ErrNonRectangular: ragged rows with WithRectangular.
//   - ErrNegativeCost: a base or per-coordinate cost below zero.
//   - ErrUnknownTopology: topology outside the three supported kinds.
//   - ErrOutOfBounds: query for a coordinate that is not in the grid.
//
// Complexity:
//
//   - New:   O(W×H) time and memory (deep copy).
//   - Queries (InBounds, IsWalkable, IsStoppable, EntryCost): O(1).
package grid
