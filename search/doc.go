// Package search computes shortest-cost paths and reachable areas on a grid.Grid
// using uniform-cost search.
//
// Overview:
//
//   - FindPath / ShortestPath: cheapest path from a start to an end coordinate.
//   - FindWalkableArea: every walkable coordinate reachable from one or more sources.
//   - Engine: the per-call search state (node arena, frontier, cache), exported
//     so callers can seed custom multi-source searches and drive Run themselves.
//
// How it works:
//
//  1. Seed nodes are pushed at cost 0.
//  2. The frontier always yields the lowest accumulated cost; ties pop in
//     insertion order, so results are deterministic.
//  3. A popped node is marked visited and cached; stale duplicates are skipped.
//  4. Neighbors are examined in the fixed offset order of the grid topology:
//     Cardinal N,E,S,W; Hex N,NE,E,S,SW,W; Intercardinal N,NE,E,SE,S,SW,W,NW.
//  5. A walkable, unexpanded neighbor is pushed with cost = parent cost + entry cost.
//  6. The loop stops when the frontier is empty or the target is popped.
//
// With non-negative entry costs the first pop of the target is cost-optimal.
//
// Paths exclude the start coordinate: start == end yields an empty path, and
// a path of n steps has n coordinates ending on the target.
//
// Relaxation:
//
//   - RelaxStrict (default): a neighbor already queued at a lower or equal cost
//     is not pushed again.
//   - RelaxPermissive: every reach pushes a new node; duplicates are skipped on pop.
//     Observable paths are identical; the frontier is larger.
//
// Errors (sentinel):
//
//   - ErrNilGrid:         nil grid.
//   - ErrNoSources:       area search or engine with no seeds.
//   - ErrNoPath:          target unstoppable (without WithEndOnUnstoppable) or unreachable.
//   - ErrExpansionLimit:  WithMaxExpansions exceeded.
//   - ErrOptionViolation: invalid option.
//
// Thread safety:
//
//   - Every call owns its Engine; a *grid.Grid may be shared by concurrent calls.
//
// Complexity:
//
//   - Time:  O(N log N), N = frontier pushes ≤ cells × neighbors.
//   - Space: O(N) for the arena and frontier, O(cells) for the cache.
package search
