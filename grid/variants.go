// SPDX-License-Identifier: MIT

// Package grid - symmetry variants.
//
// Variants expands one authored grid into its orbit under the dihedral group
// of the square (4 rotations × optional reflection) with duplicates removed.
// Symmetric shapes must not yield equal variants: a rewrite pass would test
// the same physical pattern several times per anchor.

package grid

// Variants returns the distinct grids obtainable from p by rotations and
// reflections. The first element is always a copy of p.
// MAIN DESCRIPTION:
//   - v0 = p, v1 = MirrorX(p), v2 = MirrorY(p), v3 = Rotate(p, 90).
//   - v1, v2, v3 are each tested against v0 with Equal; equal ones are redundant.
//
// Implementation:
//   - Stage 1: keep v0; append v1 if MirrorX is not redundant, v2 if MirrorY is not.
//   - Stage 2: append MirrorY(v1) only when BOTH mirrors are non-redundant.
//   - Stage 3: if the quarter turn is not redundant, rotate every variant
//     collected so far once more and append it (covers 90°/180°/270°).
//   - Every append is checked against the variants already produced.
//
// Behavior highlights:
//   - 1×1 → 1 variant; fully asymmetric → 8; a 3×1 increasing row → 4.
//   - No two returned variants are Equal under eq.
//
// Complexity:
//   - At most 8 transforms plus O(k²) equality checks, k ≤ 8.
func Variants[T any](p *Grid[T], eq Equality[T]) []*Grid[T] {
	v0 := p.Clone()
	v1 := MirrorX(p)
	v2 := MirrorY(p)
	v3 := rotate90(p)

	mirrorX := !Equal(v1, v0, eq)
	mirrorY := !Equal(v2, v0, eq)
	rotates := !Equal(v3, v0, eq)

	out := make([]*Grid[T], 1, 8)
	out[0] = v0
	add := func(v *Grid[T]) {
		for _, seen := range out {
			if Equal(seen, v, eq) {
				return
			}
		}
		out = append(out, v)
	}

	if mirrorX {
		add(v1)
	}
	if mirrorY {
		add(v2)
	}
	if mirrorX && mirrorY {
		add(MirrorY(v1))
	}
	if rotates {
		n := len(out)
		for i := 0; i < n; i++ {
			add(rotate90(out[i]))
		}
	}

	return out
}
