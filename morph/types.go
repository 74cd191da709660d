// Package morph defines the operation and boundary enumerations plus
// functional options for the morphology engine.
package morph

// Op identifies a morphological operation.
type Op int

const (
	// Erosion shrinks foreground: output=1 only if ALL probed pixels are 1.
	Erosion Op = iota
	// Dilation expands foreground: output=1 if ANY probed pixel is 1.
	Dilation
	// InnerBoundary keeps the internal contour: original AND NOT eroded.
	InnerBoundary
	// OuterBoundary keeps the external contour: dilated AND NOT original.
	OuterBoundary
	// Gradient keeps the full edge: dilated XOR eroded.
	Gradient
)

// String returns the operation name for display and test output.
func (op Op) String() string {
	switch op {
	case Erosion:
		return "Erosion"
	case Dilation:
		return "Dilation"
	case InnerBoundary:
		return "InnerBoundary"
	case OuterBoundary:
		return "OuterBoundary"
	case Gradient:
		return "Gradient"
	default:
		return "Unknown"
	}
}

// BoundaryMode selects the virtual value of coordinates probed outside the
// grid during a morphological operation.
type BoundaryMode int

const (
	// BoundaryZero treats out-of-bounds pixels as background (0).
	BoundaryZero BoundaryMode = iota
	// BoundaryOne treats out-of-bounds pixels as foreground (1).
	BoundaryOne
	// BoundaryExtend clamps each coordinate to the nearest border pixel.
	BoundaryExtend
	// BoundaryWrap wraps each coordinate to the opposite edge (periodic).
	BoundaryWrap
)

// String returns the boundary mode name for display and test output.
func (m BoundaryMode) String() string {
	switch m {
	case BoundaryZero:
		return "Zero"
	case BoundaryOne:
		return "One"
	case BoundaryExtend:
		return "Extend"
	case BoundaryWrap:
		return "Wrap"
	default:
		return "Unknown"
	}
}

// Option configures a Morphology engine via functional arguments.
type Option func(*Morphology)

// WithOperation selects the morphological operation (default Erosion).
func WithOperation(op Op) Option {
	return func(m *Morphology) {
		m.op = op
	}
}

// WithBoundary selects the boundary policy (default BoundaryZero).
func WithBoundary(mode BoundaryMode) Option {
	return func(m *Morphology) {
		m.boundary = mode
	}
}
