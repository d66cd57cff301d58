// SPDX-License-Identifier: MIT

// Package gridgraph treats a grid.Grid as a graph, enabling component
// analysis and minimal-cost bridging between regions.
//
// What:
//
//   - GridGraph[T] is a live view over a *grid.Grid[T] plus a passable
//     predicate; cells for which passable(v) holds are "open", others "closed".
//   - Components identifies connected regions of open cells.
//   - Bridge computes the cheapest chain of closed cells to open (0-1 BFS)
//     so that two regions become connected.
//
// Why:
//
//   - Generated maps: detect unreachable areas and carve roads between them.
//   - Topology checks in tests: count islands, lakes and rooms.
//
// Complexity:
//
//   - Components: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Bridge:     O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - WithConnectivity(Conn4 | Conn8): neighbor set (default Conn4).
//
// Errors:
//
//   - ErrNilGrid: New received a nil grid or nil predicate.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between the specified components.
//
// The view is not a copy: writes to the underlying grid are visible to the
// next Components or Bridge call.
package gridgraph
