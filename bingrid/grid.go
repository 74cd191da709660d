package bingrid

// Grid is a dense binary image: width×height booleans in row-major order.
// The zero value is an empty 0×0 grid; every read on it returns false and
// every write is dropped.
type Grid struct {
	width  int
	height int
	pixels []bool
}

// New returns a cleared width×height grid.
// Negative dimensions clamp to zero; a zero-size grid is a legal, inert value.
// Complexity: O(W×H).
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	return &Grid{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
	}
}

// Width returns the grid width in pixels. Complexity: O(1).
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in pixels. Complexity: O(1).
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the pixel at (x,y), or false for any out-of-bounds coordinate.
// The out-of-bounds case is a sentinel, not a failure: erosion at the border
// under a zero boundary relies on it. Complexity: O(1).
func (g *Grid) Get(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}

	return g.pixels[y*g.width+x]
}

// Set assigns the pixel at (x,y); out-of-bounds writes are silently dropped.
// Complexity: O(1).
func (g *Grid) Set(x, y int, value bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.pixels[y*g.width+x] = value
}

// Clear sets every pixel to background. Complexity: O(W×H).
func (g *Grid) Clear() {
	for i := range g.pixels {
		g.pixels[i] = false
	}
}

// Fill sets every pixel to value. Complexity: O(W×H).
func (g *Grid) Fill(value bool) {
	for i := range g.pixels {
		g.pixels[i] = value
	}
}

// Clone returns a deep, independent copy of the grid. Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	dup := &Grid{
		width:  g.width,
		height: g.height,
		pixels: make([]bool, len(g.pixels)),
	}
	copy(dup.pixels, g.pixels)

	return dup
}

// Count returns the number of foreground pixels. Complexity: O(W×H).
func (g *Grid) Count() int {
	n := 0
	for _, p := range g.pixels {
		if p {
			n++
		}
	}

	return n
}

// Equal reports whether both grids have identical dimensions and content.
// Complexity: O(W×H).
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.pixels {
		if g.pixels[i] != other.pixels[i] {
			return false
		}
	}

	return true
}
