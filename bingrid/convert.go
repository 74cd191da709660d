package bingrid

import "errors"

// Sentinel errors for grid conversion.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("bingrid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("bingrid: all rows must have the same length")
)

// FromRows constructs a Grid from a non-empty, rectangular [][]bool,
// deep-copying the input to ensure independence.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H).
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := New(w, h)
	for y := 0; y < h; y++ {
		copy(g.pixels[y*w:(y+1)*w], rows[y])
	}

	return g, nil
}

// Rows returns the grid content as a freshly allocated [][]bool,
// row-major, independent of the grid. Complexity: O(W×H).
func (g *Grid) Rows() [][]bool {
	out := make([][]bool, g.height)
	for y := 0; y < g.height; y++ {
		out[y] = make([]bool, g.width)
		copy(out[y], g.pixels[y*g.width:(y+1)*g.width])
	}

	return out
}
