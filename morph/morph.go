package morph

import "github.com/katalvlaran/gridmorph/bingrid"

// Morphology applies one morphological operation under one boundary policy.
// Apply and CheckPixel never mutate the input grid; an engine value carries
// no per-call state and may be reused across grids.
type Morphology struct {
	se       StructuringElement
	op       Op
	boundary BoundaryMode
}

// New constructs a Morphology engine for the given structuring element,
// applying any number of functional Options.
// Defaults: Erosion under BoundaryZero.
func New(se StructuringElement, opts ...Option) *Morphology {
	m := &Morphology{
		se:       se,
		op:       Erosion,
		boundary: BoundaryZero,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Element returns the structuring element. Complexity: O(1).
func (m *Morphology) Element() StructuringElement { return m.se }

// Operation returns the current operation. Complexity: O(1).
func (m *Morphology) Operation() Op { return m.op }

// Boundary returns the current boundary policy. Complexity: O(1).
func (m *Morphology) Boundary() BoundaryMode { return m.boundary }

// SetOperation switches the operation for subsequent calls.
func (m *Morphology) SetOperation(op Op) { m.op = op }

// SetBoundaryMode switches the boundary policy for subsequent calls.
func (m *Morphology) SetBoundaryMode(mode BoundaryMode) { m.boundary = mode }

// PixelWithBoundary reads (x,y) from g, resolving out-of-bounds coordinates
// per the engine's boundary policy:
//
//	BoundaryZero   → false
//	BoundaryOne    → true
//	BoundaryExtend → clamp each coordinate independently to [0,dim-1]
//	BoundaryWrap   → non-negative modulo per axis: ((v%d)+d)%d
//
// Complexity: O(1).
func (m *Morphology) PixelWithBoundary(g *bingrid.Grid, x, y int) bool {
	w, h := g.Width(), g.Height()
	if x >= 0 && x < w && y >= 0 && y < h {
		return g.Get(x, y)
	}

	switch m.boundary {
	case BoundaryZero:
		return false
	case BoundaryOne:
		return true
	case BoundaryExtend:
		if w == 0 || h == 0 {
			return false
		}
		return g.Get(clamp(x, 0, w-1), clamp(y, 0, h-1))
	case BoundaryWrap:
		if w == 0 || h == 0 {
			return false
		}
		return g.Get(((x%w)+w)%w, ((y%h)+h)%h)
	default:
		return false
	}
}

// checkErosion performs the AND-reduction over the structuring element at
// (x,y): every covered position must be foreground. Short-circuits to false
// on the first background probe. Complexity: O(K).
func (m *Morphology) checkErosion(g *bingrid.Grid, x, y int) bool {
	for _, d := range m.se.Offsets {
		if !m.PixelWithBoundary(g, x+d[0], y+d[1]) {
			return false
		}
	}

	return true
}

// checkDilation performs the OR-reduction over the structuring element at
// (x,y): any covered foreground position suffices. Short-circuits to true on
// the first foreground probe. Complexity: O(K).
func (m *Morphology) checkDilation(g *bingrid.Grid, x, y int) bool {
	for _, d := range m.se.Offsets {
		if m.PixelWithBoundary(g, x+d[0], y+d[1]) {
			return true
		}
	}

	return false
}

// CheckPixel computes the operation's result for the single pixel (x,y).
// The "original" term used by the boundary derivatives is the raw stored
// value at (x,y), never boundary-resolved. Complexity: O(K).
func (m *Morphology) CheckPixel(g *bingrid.Grid, x, y int) bool {
	original := g.Get(x, y)

	switch m.op {
	case Erosion:
		return m.checkErosion(g, x, y)
	case Dilation:
		return m.checkDilation(g, x, y)
	case InnerBoundary:
		return original && !m.checkErosion(g, x, y)
	case OuterBoundary:
		return m.checkDilation(g, x, y) && !original
	case Gradient:
		return m.checkDilation(g, x, y) != m.checkErosion(g, x, y)
	default:
		return original
	}
}

// Apply runs the operation over every pixel of g and returns a new grid of
// identical dimensions. Pure: g is never written, output pixels are mutually
// independent, and repeated calls yield identical results.
// Complexity: O(W×H×K) time, O(W×H) memory.
func (m *Morphology) Apply(g *bingrid.Grid) *bingrid.Grid {
	out := bingrid.New(g.Width(), g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			out.Set(x, y, m.CheckPixel(g, x, y))
		}
	}

	return out
}

// CoveredPositions returns the absolute coordinates (x+dx, y+dy) for every
// structuring-element offset, unclamped and in offset order. Intended for
// coverage overlays; value computation always goes through
// PixelWithBoundary instead. Complexity: O(K).
func (m *Morphology) CoveredPositions(x, y int) [][2]int {
	positions := make([][2]int, 0, len(m.se.Offsets))
	for _, d := range m.se.Offsets {
		positions = append(positions, [2]int{x + d[0], y + d[1]})
	}

	return positions
}

// clamp restricts v to [lo,hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
