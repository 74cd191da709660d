// Package morph implements binary mathematical morphology: erosion, dilation,
// and their three boundary derivatives over a bingrid.Grid, probed by a
// structuring element under a selectable out-of-bounds policy.
//
// What:
//
//   - StructuringElement: a named, ordered set of (dx,dy) offsets with a
//     designated center. Square(n) and Cross(n) builders generate the offset
//     sets deterministically from n.
//   - Op selects the operation:
//   - Erosion:        output=1 only if ALL probed pixels are 1
//   - Dilation:       output=1 if ANY probed pixel is 1
//   - InnerBoundary:  original AND NOT eroded   (contour inside the shape)
//   - OuterBoundary:  dilated AND NOT original  (contour outside the shape)
//   - Gradient:       dilated XOR eroded        (full edge)
//   - BoundaryMode assigns a virtual value to coordinates probed outside the
//     grid: BoundaryZero (background), BoundaryOne (foreground),
//     BoundaryExtend (clamp to the nearest border pixel), BoundaryWrap
//     (periodic, non-negative modulo per axis).
//   - Morphology.Apply is a pure function: one input grid, one new output
//     grid, no shared state.
//
// Why:
//
//   - Shape cleanup, contour extraction, and edge maps on occupancy grids,
//     masks, and cellular patterns.
//   - CheckPixel is exposed per pixel so callers can compute results
//     incrementally (e.g. step-by-step sweeps) without re-running Apply.
//
// Determinism:
//
//	Offset order is fixed by the builders (row-major for Square; center,
//	then horizontal arm, then vertical arm for Cross), so short-circuit
//	probe order is fully reproducible.
//
// Complexity (W×H grid, K offsets):
//
//   - Apply: O(W×H×K) time, O(W×H) memory.
//   - CheckPixel / PixelWithBoundary: O(K) / O(1).
//
// Usage:
//
//	se := morph.Square(3)
//	m := morph.New(se, morph.WithOperation(morph.Erosion), morph.WithBoundary(morph.BoundaryZero))
//	out := m.Apply(grid)
//
// Options:
//
//   - WithOperation(op):   select the operation (default Erosion).
//   - WithBoundary(mode):  select the boundary policy (default BoundaryZero).
//
// Every operation is total: there are no error conditions, for all integer
// coordinates and any structuring element.
package morph
