// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"
	"math"
)

// Noise maps a cell to a value in [0,1).
type Noise func(x, y int) float64

// ValueNoise returns deterministic lattice value noise.
// Lattice points are scale cells apart; values between them are blended with
// a smoothstep curve, so neighbouring cells get similar values.
// Panics when scale is not a positive finite number.
//
// Complexity: O(1) per sample, no allocation.
func ValueNoise(seed int64, scale float64) Noise {
	if !(scale > 0) || math.IsInf(scale, 0) {
		panic(fmt.Sprintf("generator: ValueNoise scale %v must be positive and finite", scale))
	}
	s := uint32(seed) ^ uint32(uint64(seed)>>32)

	return func(x, y int) float64 {
		fx, fy := float64(x)/scale, float64(y)/scale
		ix, iy := math.Floor(fx), math.Floor(fy)
		tx, ty := smoothstep(fx-ix), smoothstep(fy-iy)
		x0, y0 := int(ix), int(iy)

		a := lattice(s, x0, y0)
		b := lattice(s, x0+1, y0)
		c := lattice(s, x0, y0+1)
		d := lattice(s, x0+1, y0+1)

		ab := a + (b-a)*tx
		cd := c + (d-c)*tx
		return ab + (cd-ab)*ty
	}
}

// lattice hashes an integer lattice point to [0,1).
func lattice(seed uint32, ix, iy int) float64 {
	h := uint32(ix)*374761393 + uint32(iy)*668265263 + seed*1442695041
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float64(h&0x00FFFFFF) / float64(0x01000000)
}

func smoothstep(t float64) float64 { return t * t * (3 - 2*t) }
