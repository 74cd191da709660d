package floodfill

import (
	"container/list"
	"context"

	"github.com/katalvlaran/gridmorph/bingrid"
)

// FloodFill is a stateful, caller-paced fill engine. Configure it once via
// New, bind a grid and seed via Initialize, then advance with Step. A single
// engine instance owns its grids exclusively and is not safe for concurrent
// use; re-Initialize discards all prior traversal state.
type FloodFill struct {
	conn   Connectivity
	algo   Algorithm
	radius int
	optErr error

	offsets     [][2]int // neighbor offsets, rebuilt on connectivity change
	diskOffsets [][2]int // clearance disk offsets, rebuilt on radius change

	source *bingrid.Grid
	result *bingrid.Grid
	safety *bingrid.Grid
	state  []PixelState // row-major, width×height

	frontier *list.List // deque of Point; BFS pops front, DFS pops back

	current     Point
	targetValue bool
	initialized bool
	filled      int
	unsafe      int
	width       int
	height      int

	onProcess func(x, y int)
}

// New constructs a FloodFill engine, applying any number of functional
// Options. Returns ErrOptionViolation if an invalid Option was supplied
// (e.g. a negative safety radius).
func New(opts ...Option) (*FloodFill, error) {
	f := &FloodFill{
		conn:     Conn4,
		algo:     BFS,
		radius:   0,
		frontier: list.New(),
		current:  Point{-1, -1},
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.optErr != nil {
		return nil, f.optErr
	}

	f.updateOffsets()
	f.updateDiskOffsets()

	return f, nil
}

// updateOffsets rebuilds the neighbor offset table from the connectivity.
func (f *FloodFill) updateOffsets() {
	f.offsets = [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	if f.conn == Conn8 {
		f.offsets = append(f.offsets,
			[2]int{-1, -1}, [2]int{1, -1}, [2]int{-1, 1}, [2]int{1, 1})
	}
}

// updateDiskOffsets rebuilds the clearance disk: every (dx,dy) with
// dx²+dy² ≤ radius². Empty for radius ≤ 0.
func (f *FloodFill) updateDiskOffsets() {
	f.diskOffsets = nil
	if f.radius <= 0 {
		return
	}

	r := f.radius
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r2 {
				f.diskOffsets = append(f.diskOffsets, [2]int{dx, dy})
			}
		}
	}
}

// isValid reports whether (x,y) lies within the bound grid.
func (f *FloodFill) isValid(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Initialize binds a copy of src, resets all traversal state, and seeds the
// fill at (startX, startY).
//
// An out-of-bounds seed leaves the engine permanently uninitialized: every
// subsequent Step is a no-op returning false. A seed that fails its own
// clearance check is marked Unsafe and the fill completes immediately with
// zero filled pixels. Neither case is an error.
//
// Complexity: O(W×H×D) for the safety-mask precomputation (D = disk size),
// O(W×H) when radius ≤ 0.
func (f *FloodFill) Initialize(src *bingrid.Grid, startX, startY int) {
	f.width = src.Width()
	f.height = src.Height()
	f.source = src.Clone()
	f.result = bingrid.New(f.width, f.height)
	f.state = make([]PixelState, f.width*f.height)

	f.frontier.Init()
	f.filled = 0
	f.unsafe = 0
	f.current = Point{-1, -1}

	if !f.isValid(startX, startY) {
		f.initialized = false
		return
	}

	f.targetValue = f.source.Get(startX, startY)
	f.precomputeSafetyMask()

	if !f.safety.Get(startX, startY) {
		f.state[startY*f.width+startX] = Unsafe
		f.unsafe++
		f.initialized = true
		return
	}

	f.frontier.PushBack(Point{startX, startY})
	f.state[startY*f.width+startX] = InQueue
	f.initialized = true
}

// precomputeSafetyMask marks every traversable pixel once per session.
// For radius ≤ 0 every pixel matching the target value is safe; otherwise a
// pixel is safe only if the whole clearance disk fits there.
func (f *FloodFill) precomputeSafetyMask() {
	f.safety = bingrid.New(f.width, f.height)

	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if f.source.Get(x, y) != f.targetValue {
				continue
			}
			if f.radius <= 0 || f.CheckCircleFits(x, y) {
				f.safety.Set(x, y, true)
			}
		}
	}
}

// CheckCircleFits reports whether a clearance disk of the configured radius
// fits at (cx,cy): every disk position must be in-bounds and match the
// seed's value. With radius ≤ 0 it degenerates to a plain in-bounds
// value-equality check. Usable ad hoc (e.g. hover previews) as well as for
// the mask precomputation. Complexity: O(D).
func (f *FloodFill) CheckCircleFits(cx, cy int) bool {
	if f.radius <= 0 {
		return f.isValid(cx, cy) && f.source.Get(cx, cy) == f.targetValue
	}

	for _, d := range f.diskOffsets {
		nx, ny := cx+d[0], cy+d[1]
		if !f.isValid(nx, ny) {
			return false
		}
		if f.source.Get(nx, ny) != f.targetValue {
			return false
		}
	}

	return true
}

// Step advances the traversal by exactly one frontier element:
// pop (front for BFS, back for DFS), mark Processed, fill the result, then
// classify each Unvisited neighbor as InQueue, Boundary, or Unsafe.
// Returns whether the frontier is non-empty afterwards; the just-processed
// pixel is done regardless of the return value. A no-op returning false when
// uninitialized or complete. Complexity: O(d).
func (f *FloodFill) Step() bool {
	if !f.initialized || f.frontier.Len() == 0 {
		return false
	}

	var elem *list.Element
	if f.algo == BFS {
		elem = f.frontier.Front()
	} else {
		elem = f.frontier.Back()
	}
	f.frontier.Remove(elem)
	p := elem.Value.(Point)

	f.current = p
	f.state[p.Y*f.width+p.X] = Processed
	f.result.Set(p.X, p.Y, true)
	f.filled++
	if f.onProcess != nil {
		f.onProcess(p.X, p.Y)
	}

	for _, d := range f.offsets {
		nx, ny := p.X+d[0], p.Y+d[1]
		if !f.isValid(nx, ny) {
			continue
		}

		// Each pixel is evaluated by its neighbors exactly once.
		if f.state[ny*f.width+nx] != Unvisited {
			continue
		}

		if f.source.Get(nx, ny) != f.targetValue {
			f.state[ny*f.width+nx] = Boundary
			continue
		}

		if !f.safety.Get(nx, ny) {
			f.state[ny*f.width+nx] = Unsafe
			f.unsafe++
			continue
		}

		f.frontier.PushBack(Point{nx, ny})
		f.state[ny*f.width+nx] = InQueue
	}

	return f.frontier.Len() > 0
}

// Run drives Step to completion, checking ctx once per step.
// Returns ErrNotInitialized when no session is bound, ctx.Err() on
// cancellation, nil when the fill completes.
func (f *FloodFill) Run(ctx context.Context) error {
	if !f.initialized {
		return ErrNotInitialized
	}

	for f.frontier.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		f.Step()
	}

	return nil
}

// IsComplete reports whether an initialized fill has drained its frontier.
// Always false for an engine whose Initialize was given an invalid seed.
func (f *FloodFill) IsComplete() bool {
	return f.initialized && f.frontier.Len() == 0
}

// State returns the traversal state of (x,y); Unvisited for out-of-bounds
// coordinates or before any Initialize.
func (f *FloodFill) State(x, y int) PixelState {
	if !f.isValid(x, y) || f.state == nil {
		return Unvisited
	}

	return f.state[y*f.width+x]
}

// CirclePositions returns the absolute disk coordinates around (cx,cy),
// unclamped, for clearance overlays. Empty when radius ≤ 0.
func (f *FloodFill) CirclePositions(cx, cy int) []Point {
	positions := make([]Point, 0, len(f.diskOffsets))
	for _, d := range f.diskOffsets {
		positions = append(positions, Point{cx + d[0], cy + d[1]})
	}

	return positions
}

// FrontierPositions snapshots the frontier in order, front to back.
func (f *FloodFill) FrontierPositions() []Point {
	positions := make([]Point, 0, f.frontier.Len())
	for e := f.frontier.Front(); e != nil; e = e.Next() {
		positions = append(positions, e.Value.(Point))
	}

	return positions
}

// Current returns the most recently processed pixel, or (-1,-1) before the
// first Step of a session.
func (f *FloodFill) Current() Point { return f.current }

// FrontierSize returns the number of scheduled pixels.
func (f *FloodFill) FrontierSize() int { return f.frontier.Len() }

// FilledCount returns the number of Processed pixels so far.
func (f *FloodFill) FilledCount() int { return f.filled }

// UnsafeCount returns the number of pixels rejected by the clearance gate.
func (f *FloodFill) UnsafeCount() int { return f.unsafe }

// Result returns the filled grid (true = filled). The grid is owned by the
// engine and evolves with each Step; treat it as a read-only view.
func (f *FloodFill) Result() *bingrid.Grid { return f.result }

// SafetyMask returns the per-session clearance mask, nil before the first
// successfully seeded Initialize. Owned by the engine; read-only.
func (f *FloodFill) SafetyMask() *bingrid.Grid { return f.safety }

// NeighborOffsets returns the active neighbor offset table (4 or 8 entries).
func (f *FloodFill) NeighborOffsets() [][2]int { return f.offsets }

// Connectivity returns the active connectivity.
func (f *FloodFill) Connectivity() Connectivity { return f.conn }

// Algorithm returns the active traversal order.
func (f *FloodFill) Algorithm() Algorithm { return f.algo }

// SafetyRadius returns the configured clearance radius.
func (f *FloodFill) SafetyRadius() int { return f.radius }

// SetConnectivity switches connectivity and rebuilds the offset table.
func (f *FloodFill) SetConnectivity(c Connectivity) {
	f.conn = c
	f.updateOffsets()
}

// SetAlgorithm switches the traversal order; takes effect on the next Step.
func (f *FloodFill) SetAlgorithm(a Algorithm) { f.algo = a }

// SetSafetyRadius switches the clearance radius and rebuilds the disk.
// Negative radii clamp to zero. The mask bound by a running session is not
// recomputed; the new radius applies from the next Initialize.
func (f *FloodFill) SetSafetyRadius(r int) {
	if r < 0 {
		r = 0
	}
	f.radius = r
	f.updateDiskOffsets()
}
