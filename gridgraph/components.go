// SPDX-License-Identifier: MIT

package gridgraph

// Components finds all contiguous regions of open cells according to the
// graph's connectivity.
// Returns a slice of components; each component is a slice of row-major cell
// indices in BFS order from its first (row-major) cell. Components are ordered
// by their first cell, so the result is deterministic.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph[T]) Components() [][]int {
	w, h := gg.g.Size()
	seen := make([]bool, w*h)
	var comps [][]int

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i0 := gg.Index(x, y)
			if seen[i0] || !gg.Open(x, y) {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Open(vx, vy) {
						continue
					}
					vi := gg.Index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// ComponentOf returns the index of the component in comps holding cell idx, or -1.
func ComponentOf(comps [][]int, idx int) int {
	for ci, comp := range comps {
		for _, i := range comp {
			if i == idx {
				return ci
			}
		}
	}

	return -1
}
