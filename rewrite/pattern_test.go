package rewrite_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/rewrite"
	"github.com/katalvlaran/tilegrid/weighted"
	"github.com/stretchr/testify/require"
)

// TestNewPatternErrors covers empty, ragged and nil-cell inputs.
func TestNewPatternErrors(t *testing.T) {
	_, err := rewrite.NewPattern[kind]()
	require.ErrorIs(t, err, rewrite.ErrEmptyPattern)

	_, err = rewrite.NewPattern(rewrite.Row[kind]())
	require.ErrorIs(t, err, rewrite.ErrEmptyPattern)

	a := rewrite.Any[kind]()
	_, err = rewrite.NewPattern(rewrite.Row[kind](a, a), rewrite.Row[kind](a))
	require.ErrorIs(t, err, grid.ErrNonRectangular)

	_, err = rewrite.NewPattern(rewrite.Row[kind](a, nil))
	require.ErrorIs(t, err, rewrite.ErrNilRule)
	require.Contains(t, err.Error(), "(1,0)")

	require.Panics(t, func() { rewrite.MustPattern[kind]() })
}

// TestPatternVariantsByIdentity: two distinct rules with equal behaviour are still distinct.
func TestPatternVariantsByIdentity(t *testing.T) {
	a := rewrite.Is(wall)
	b := rewrite.Is(wall) // same predicate, different identity

	same := rewrite.MustPattern(rewrite.Row[kind](a, a))
	require.Len(t, rewrite.Variants(same), 2) // horizontal and vertical

	diff := rewrite.MustPattern(rewrite.Row[kind](a, b))
	require.Len(t, rewrite.Variants(diff), 4)

	single := rewrite.MustPattern(rewrite.Row[kind](a))
	vs := rewrite.Variants(single)
	require.Len(t, vs, 1)
	require.NotSame(t, single, vs[0]) // variants are copies
}

// TestExpandKeepsSetOrder: all variants of the first pattern precede the second's.
func TestExpandKeepsSetOrder(t *testing.T) {
	e, w := rewrite.Is(empty), rewrite.Is(wall)
	corner := rewrite.MustPattern(
		rewrite.Row[kind](w, w),
		rewrite.Row[kind](w, e),
	)
	dot := rewrite.MustPattern(rewrite.Row[kind](e))

	out := rewrite.Expand(rewrite.PatternSet[kind]{corner, dot})
	require.Len(t, out, 5)
	last := out[4]
	r, ok := last.At(0, 0)
	require.True(t, ok)
	require.True(t, rewrite.Same[kind](e, r))
}

// TestExpandedCornerMatchesEveryOrientation: one expanded set finds all four corners.
func TestExpandedCornerMatchesEveryOrientation(t *testing.T) {
	g, err := grid.FromRows([][]kind{
		{wall, wall, empty, wall, wall},
		{wall, empty, empty, empty, wall},
		{empty, empty, empty, empty, empty},
		{wall, empty, empty, empty, wall},
		{wall, wall, empty, wall, wall},
	})
	require.NoError(t, err)
	e, w := rewrite.Is(empty), rewrite.Is(wall)
	corner := rewrite.MustPattern(
		rewrite.Row[kind](w, w),
		rewrite.Row[kind](w, e),
	)

	ms := rewrite.NewEngine[kind]().MatchAll(g, rewrite.Variants(corner))
	anchors := make([][2]int, 0, len(ms))
	for _, m := range ms {
		anchors = append(anchors, [2]int{m.X, m.Y})
	}
	require.ElementsMatch(t, [][2]int{{0, 0}, {3, 0}, {0, 3}, {3, 3}}, anchors)
}

// TestRuleConstructors exercises the stock rules.
func TestRuleConstructors(t *testing.T) {
	g := filled(t, 1, 1, empty)
	require.True(t, rewrite.Any[kind]().Match(road, 0, 0, g))
	require.True(t, rewrite.Is(wall, door).Match(door, 0, 0, g))
	require.False(t, rewrite.Is(wall, door).Match(road, 0, 0, g))
	require.True(t, rewrite.Not(wall).Match(road, 0, 0, g))
	require.False(t, rewrite.Not(wall).Match(wall, 0, 0, g))
	require.True(t, rewrite.Where(func(v kind) bool { return v > wall }).Match(door, 0, 0, g))

	b := rewrite.Becomes(rewrite.Is(empty), door)
	require.Equal(t, door, b.Rewrite(empty, 0, 0, g, g))

	k := rewrite.Keep[kind](b)
	require.True(t, k.Match(empty, 0, 0, g))
	require.Equal(t, empty, k.Rewrite(empty, 0, 0, g, g))

	require.True(t, rewrite.Same[kind](b, b))
	require.False(t, rewrite.Same[kind](b, k))
}

// TestChooseDrawsFromTable: weighted rewrites only produce positively weighted keys.
func TestChooseDrawsFromTable(t *testing.T) {
	tab, err := weighted.NewTable(map[kind]float64{road: 3, door: 1, wall: 0})
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(4))
	eng := rewrite.NewEngine[kind](rewrite.WithRand(rng))

	g := filled(t, 10, 10, empty)
	set := single(rewrite.Choose(rewrite.Is(empty), tab, eng.Rand()))
	require.True(t, eng.MatchReplaceShuffleAll(g, set))

	roads := grid.Count(grid.Sequential, g, func(v kind, _, _ int) bool { return v == road })
	doors := grid.Count(grid.Sequential, g, func(v kind, _, _ int) bool { return v == door })
	require.Equal(t, 100, roads+doors)
	require.Greater(t, roads, doors)
}
