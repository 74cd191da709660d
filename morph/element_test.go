package morph_test

import (
	"testing"

	"github.com/katalvlaran/gridmorph/morph"
	"github.com/stretchr/testify/require"
)

func TestSquare_Odd(t *testing.T) {
	se := morph.Square(3)
	require.Equal(t, 3, se.Width)
	require.Equal(t, 3, se.Height)
	require.Equal(t, 1, se.CenterX)
	require.Equal(t, 1, se.CenterY)
	require.Len(t, se.Offsets, 9)

	// Row-major order, top-left first.
	require.Equal(t, [2]int{-1, -1}, se.Offsets[0])
	require.Equal(t, [2]int{0, 0}, se.Offsets[4])
	require.Equal(t, [2]int{1, 1}, se.Offsets[8])
}

// TestSquare_EvenFootprint pins the even-size centering arithmetic:
// Square(4) centers at index 2 and spans offsets -2..+2 on both axes,
// a 5×5 footprint of 25 offsets. Coverage overlays depend on this exact
// offset set, so the arithmetic must not change.
func TestSquare_EvenFootprint(t *testing.T) {
	se := morph.Square(4)
	require.Equal(t, 2, se.CenterX)
	require.Equal(t, 2, se.CenterY)
	require.Len(t, se.Offsets, 25)
	require.Equal(t, [2]int{-2, -2}, se.Offsets[0])
	require.Equal(t, [2]int{2, 2}, se.Offsets[24])
}

func TestSquare_One(t *testing.T) {
	se := morph.Square(1)
	require.Equal(t, 0, se.CenterX)
	require.Equal(t, [][2]int{{0, 0}}, se.Offsets)
}

func TestCross_Shape(t *testing.T) {
	se := morph.Cross(3)
	require.Equal(t, 1, se.CenterX)
	// Center + 2 horizontal + 2 vertical, center listed exactly once.
	require.Len(t, se.Offsets, 5)
	require.Equal(t, [2]int{0, 0}, se.Offsets[0])

	seen := make(map[[2]int]int, len(se.Offsets))
	for _, d := range se.Offsets {
		seen[d]++
		require.True(t, d[0] == 0 || d[1] == 0, "offset %v off the arms", d)
	}
	require.Equal(t, 1, seen[[2]int{0, 0}], "duplicate center entry")
}

// TestCross_EvenFootprint verifies the even-size arms share Square's
// centering quirk: Cross(4) arms span -2..+2.
func TestCross_EvenFootprint(t *testing.T) {
	se := morph.Cross(4)
	require.Equal(t, 2, se.CenterX)
	// 1 center + 4 horizontal + 4 vertical.
	require.Len(t, se.Offsets, 9)
	require.Contains(t, se.Offsets, [2]int{-2, 0})
	require.Contains(t, se.Offsets, [2]int{0, 2})
}
