package morph

// StructuringElement is the offset set used to probe a grid during a
// morphological operation. Offsets are relative to the probed position and
// their order is fixed by the builder. Treat values as immutable once built.
type StructuringElement struct {
	Width, Height    int
	CenterX, CenterY int
	Offsets          [][2]int
}

// Square returns a size×size structuring element centered at size/2.
//
// The center uses integer division, so even sizes produce an asymmetric
// footprint wider than size: Square(4) centers at index 2 and spans offsets
// -2..+2 on both axes, a 5-wide footprint. Downstream geometry (coverage
// overlays) depends on this exact offset set, so it is pinned by tests and
// must not be "corrected".
// Complexity: O(size²).
func Square(size int) StructuringElement {
	se := StructuringElement{
		Width:   size,
		Height:  size,
		CenterX: size / 2,
		CenterY: size / 2,
	}

	for dy := -se.CenterY; dy <= se.CenterY; dy++ {
		for dx := -se.CenterX; dx <= se.CenterX; dx++ {
			se.Offsets = append(se.Offsets, [2]int{dx, dy})
		}
	}

	return se
}

// Cross returns a plus-shaped structuring element: the center pixel followed
// by the full horizontal and vertical arms, centered like Square (size/2),
// with no duplicate center entry.
// Complexity: O(size).
func Cross(size int) StructuringElement {
	se := StructuringElement{
		Width:   size,
		Height:  size,
		CenterX: size / 2,
		CenterY: size / 2,
	}

	se.Offsets = append(se.Offsets, [2]int{0, 0})
	for dx := -se.CenterX; dx <= se.CenterX; dx++ {
		if dx != 0 {
			se.Offsets = append(se.Offsets, [2]int{dx, 0})
		}
	}
	for dy := -se.CenterY; dy <= se.CenterY; dy++ {
		if dy != 0 {
			se.Offsets = append(se.Offsets, [2]int{0, dy})
		}
	}

	return se
}
