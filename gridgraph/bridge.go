// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"
	"fmt"
)

// Bridge finds a minimum-conversion path of closed cells connecting any cell
// of component src to any cell of component dst, as numbered by Components().
// Each closed cell on the path costs 1 to convert; open cells are free.
// Returns the row-major cell indices of the path (including the start and end
// open cells) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all src cells:
//     • moving into an open cell   → cost 0
//     • moving into a closed cell  → cost 1
//  3. Stop when any dst cell is dequeued.
//  4. Reconstruct the path via predecessors.
//
// Cells that are holes (absent) are never crossed.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph[T]) Bridge(src, dst int) (path []int, cost int, err error) {
	comps := gg.Components()
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return nil, 0, fmt.Errorf("gridgraph: Bridge(%d,%d) of %d: %w", src, dst, len(comps), ErrComponentIndex)
	}

	return gg.BridgeCells(comps[src], comps[dst])
}

// BridgeCells is Bridge between two explicit sets of cell indices.
// Returns ErrNoPath when either set is empty or the sets cannot be joined.
func (gg *GridGraph[T]) BridgeCells(from, to []int) (path []int, cost int, err error) {
	if len(from) == 0 || len(to) == 0 {
		return nil, 0, ErrNoPath
	}
	dstSet := make(map[int]struct{}, len(to))
	for _, i := range to {
		dstSet[i] = struct{}{}
	}

	n := gg.g.Len()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, i := range from {
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.g.Present(vx, vy) {
				continue
			}
			v := gg.Index(vx, vy)
			step := 0
			if !gg.Open(vx, vy) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
