package bingrid_test

import (
	"fmt"

	"github.com/katalvlaran/gridmorph/bingrid"
)

// ExampleFromRows builds a grid from literal rows and shows the bounds-safe
// access contract: out-of-range reads are background, never a failure.
func ExampleFromRows() {
	g, _ := bingrid.FromRows([][]bool{
		{false, true, false},
		{true, true, true},
	})

	fmt.Println("size:", g.Width(), "x", g.Height(), "foreground:", g.Count())
	fmt.Println("in bounds:", g.Get(1, 1))
	fmt.Println("out of bounds:", g.Get(-1, 99))

	// Output:
	// size: 3 x 2 foreground: 4
	// in bounds: true
	// out of bounds: false
}
