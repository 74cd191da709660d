// Package floodfill defines enumerations, options, and sentinel errors for
// the flood-fill engine.
package floodfill

import (
	"errors"
	"fmt"
)

// Sentinel errors for flood-fill execution.
var (
	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("floodfill: invalid option supplied")

	// ErrNotInitialized is returned by Run when no fill session is bound.
	ErrNotInitialized = errors.New("floodfill: engine not initialized")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, S, W, E.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// Algorithm selects the traversal order over the shared frontier deque.
type Algorithm int

const (
	// BFS pops the frontier front (queue order, uniform spread).
	BFS Algorithm = iota
	// DFS pops the frontier back (stack order, depth-first plunge).
	DFS
)

// PixelState tracks each pixel through the fill's five-state machine.
// Every pixel transitions away from Unvisited at most once; Processed,
// Boundary, and Unsafe are terminal.
type PixelState uint8

const (
	// Unvisited: not yet evaluated by any neighbor.
	Unvisited PixelState = iota
	// InQueue: scheduled on the frontier, awaiting processing.
	InQueue
	// Processed: dequeued and filled into the result grid.
	Processed
	// Boundary: value differs from the seed's; excluded from filling.
	Boundary
	// Unsafe: same value, but the clearance disk does not fit; excluded.
	Unsafe
)

// String returns the state name for display and test output.
func (s PixelState) String() string {
	switch s {
	case Unvisited:
		return "Unvisited"
	case InQueue:
		return "InQueue"
	case Processed:
		return "Processed"
	case Boundary:
		return "Boundary"
	case Unsafe:
		return "Unsafe"
	default:
		return "Unknown"
	}
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Option configures a FloodFill engine via functional arguments.
// An invalid Option (e.g. a negative radius) is recorded internally and
// surfaced as ErrOptionViolation when New is invoked.
type Option func(*FloodFill)

// WithConnectivity selects Conn4 or Conn8 (default Conn4).
func WithConnectivity(c Connectivity) Option {
	return func(f *FloodFill) {
		f.conn = c
	}
}

// WithAlgorithm selects BFS or DFS (default BFS).
func WithAlgorithm(a Algorithm) Option {
	return func(f *FloodFill) {
		f.algo = a
	}
}

// WithSafetyRadius sets the clearance radius.
//
//	r > 0: a disk of radius r must fit for a pixel to be traversable
//	r == 0: explicit "no clearance gate"
//	r < 0: invalid option → ErrOptionViolation
func WithSafetyRadius(r int) Option {
	return func(f *FloodFill) {
		if r < 0 {
			f.optErr = fmt.Errorf("%w: safety radius cannot be negative (%d)", ErrOptionViolation, r)
			return
		}
		f.radius = r
	}
}

// WithOnProcess registers a hook invoked after each pixel is processed
// (dequeued, filled, counted). A nil fn has no effect.
func WithOnProcess(fn func(x, y int)) Option {
	return func(f *FloodFill) {
		if fn != nil {
			f.onProcess = fn
		}
	}
}
