package morph_test

import (
	"fmt"

	"github.com/katalvlaran/gridmorph/bingrid"
	"github.com/katalvlaran/gridmorph/morph"
)

// render prints a grid as '#' foreground / '.' background rows.
func render(g *bingrid.Grid) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Get(x, y) {
				fmt.Print("#")
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
}

// ExampleMorphology_Apply demonstrates the canonical border effect of
// erosion under a zero boundary: a solid 5×5 block shrinks to its 3×3
// interior because every border pixel sees virtual background outside
// the grid.
func ExampleMorphology_Apply() {
	g := bingrid.New(5, 5)
	g.Fill(true)

	m := morph.New(morph.Square(3),
		morph.WithOperation(morph.Erosion),
		morph.WithBoundary(morph.BoundaryZero))

	render(m.Apply(g))

	// Output:
	// .....
	// .###.
	// .###.
	// .###.
	// .....
}

// ExampleMorphology_Apply_gradient extracts the full edge of a small blob:
// the morphological gradient marks pixels where dilation and erosion
// disagree, covering both the inner and outer contour.
func ExampleMorphology_Apply_gradient() {
	g := bingrid.New(7, 5)
	for y := 1; y <= 3; y++ {
		for x := 2; x <= 4; x++ {
			g.Set(x, y, true)
		}
	}

	m := morph.New(morph.Cross(3), morph.WithOperation(morph.Gradient))
	render(m.Apply(g))

	// Output:
	// ..###..
	// .#####.
	// .##.##.
	// .#####.
	// ..###..
}
