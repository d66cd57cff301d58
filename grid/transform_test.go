package grid_test

import (
	"testing"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/stretchr/testify/require"
)

// sample returns the asymmetric 3×2 grid
//
//	[1 2 3]
//	[4 5 6]
func sample(t *testing.T) *grid.Grid[int] {
	t.Helper()
	g, err := grid.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	return g
}

var eqInt = grid.Comparable[int]()

// TestSlice covers in-range windows and out-of-range holes.
func TestSlice(t *testing.T) {
	g := sample(t)

	s, err := grid.Slice(g, 1, 0, 2, 2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{2, 3}, {5, 6}}, s.Rows())

	s.Set(0, 0, 42) // slices never alias their source
	v, _ := g.At(1, 0)
	require.Equal(t, 2, v)

	s, err = grid.Slice(g, -1, 1, 2, 2)
	require.NoError(t, err)
	require.False(t, s.Present(0, 0)) // (-1,1) outside
	require.True(t, s.Present(1, 0))  // (0,1) inside
	require.False(t, s.Present(1, 1)) // (0,2) outside

	_, err = grid.Slice(g, 0, 0, 0, 1)
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)
}

// TestTransposeAndMirrors checks each primitive against hand-computed output.
func TestTransposeAndMirrors(t *testing.T) {
	g := sample(t)

	tr := grid.Transpose(g)
	require.Equal(t, 2, tr.Width())
	require.Equal(t, 3, tr.Height())
	require.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, tr.Rows())

	require.Equal(t, [][]int{{3, 2, 1}, {6, 5, 4}}, grid.MirrorX(g).Rows())
	require.Equal(t, [][]int{{4, 5, 6}, {1, 2, 3}}, grid.MirrorY(g).Rows())
}

// TestMirrorInvolution verifies MirrorX∘MirrorX == id and MirrorY∘MirrorY == id.
func TestMirrorInvolution(t *testing.T) {
	g := sample(t)
	require.True(t, grid.Equal(grid.MirrorX(grid.MirrorX(g)), g, eqInt))
	require.True(t, grid.Equal(grid.MirrorY(grid.MirrorY(g)), g, eqInt))
}

// TestRotate checks each quarter turn and the composition laws.
func TestRotate(t *testing.T) {
	g := sample(t)

	r90, err := grid.Rotate(g, 90)
	require.NoError(t, err)
	require.Equal(t, [][]int{{4, 1}, {5, 2}, {6, 3}}, r90.Rows()) // clockwise

	r180, err := grid.Rotate(g, 180)
	require.NoError(t, err)
	require.Equal(t, [][]int{{6, 5, 4}, {3, 2, 1}}, r180.Rows())

	r270, err := grid.Rotate(g, 270)
	require.NoError(t, err)
	require.Equal(t, [][]int{{3, 6}, {2, 5}, {1, 4}}, r270.Rows())

	r360, err := grid.Rotate(g, 360)
	require.NoError(t, err)
	require.True(t, grid.Equal(r360, g, eqInt)) // full turn is a copy
	r360.Set(0, 0, -1)
	v, _ := g.At(0, 0)
	require.Equal(t, 1, v) // ...and never the same buffer

	back, err := grid.Rotate(r90, 270)
	require.NoError(t, err)
	require.True(t, grid.Equal(back, g, eqInt)) // 90 then 270 is identity

	neg, err := grid.Rotate(g, -90)
	require.NoError(t, err)
	require.True(t, grid.Equal(neg, r270, eqInt)) // -90 == 270
}

// TestRotateInvalid locks the one validated precondition.
func TestRotateInvalid(t *testing.T) {
	_, err := grid.Rotate(sample(t), 45)
	require.ErrorIs(t, err, grid.ErrInvalidRotation)
	require.Contains(t, err.Error(), "Rotate(45)")
}

// TestTransformsKeepHoles checks absence survives transforms.
func TestTransformsKeepHoles(t *testing.T) {
	s, err := grid.Slice(sample(t), 2, 0, 2, 1) // [3, _]
	require.NoError(t, err)

	m := grid.MirrorX(s)
	require.False(t, m.Present(0, 0))
	require.True(t, m.Present(1, 0))

	tr := grid.Transpose(s)
	require.True(t, tr.Present(0, 0))
	require.False(t, tr.Present(0, 1))
}
