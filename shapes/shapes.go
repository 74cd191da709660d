package shapes

import "github.com/katalvlaran/gridmorph/bingrid"

// Rectangle returns a width×height grid with a solid foreground rectangle
// inset by margin pixels on every side. A margin too large for the
// dimensions yields an empty grid.
func Rectangle(width, height, margin int) *bingrid.Grid {
	g := bingrid.New(width, height)
	for y := margin; y < height-margin; y++ {
		for x := margin; x < width-margin; x++ {
			g.Set(x, y, true)
		}
	}

	return g
}

// Cross returns a plus shape: horizontal and vertical bars of the given
// thickness through the grid center, stopping two pixels short of each edge.
func Cross(width, height, thickness int) *bingrid.Grid {
	g := bingrid.New(width, height)
	cx, cy := width/2, height/2
	half := thickness / 2

	for y := cy - half; y <= cy+half; y++ {
		for x := 2; x < width-2; x++ {
			g.Set(x, y, true)
		}
	}
	for y := 2; y < height-2; y++ {
		for x := cx - half; x <= cx+half; x++ {
			g.Set(x, y, true)
		}
	}

	return g
}

// LShape returns an L: a vertical bar down the left and a horizontal bar
// along the bottom, with arm thickness derived from the smaller dimension.
func LShape(width, height int) *bingrid.Grid {
	g := bingrid.New(width, height)

	thickness := min(width, height) / 4
	if thickness < 2 {
		thickness = 2
	}
	const margin = 2

	for y := margin; y < height-margin; y++ {
		for x := margin; x < margin+thickness; x++ {
			g.Set(x, y, true)
		}
	}
	for y := height - margin - thickness; y < height-margin; y++ {
		for x := margin; x < width-margin; x++ {
			g.Set(x, y, true)
		}
	}

	return g
}

// Circle returns a rasterized disk of the given radius centered in the grid
// (every pixel with dx²+dy² ≤ radius²).
func Circle(width, height, radius int) *bingrid.Grid {
	g := bingrid.New(width, height)
	cx, cy := width/2, height/2
	r2 := radius * radius

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r2 {
				g.Set(x, y, true)
			}
		}
	}

	return g
}
