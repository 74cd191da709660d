// Package floodfill implements caller-paced flood fill over a bingrid.Grid
// with an optional clearance ("safety radius") constraint.
//
// What:
//
//   - FloodFill binds a source grid and a seed via Initialize, then advances
//     one frontier element per Step call, exposing the evolving per-pixel
//     PixelState grid, the filled result grid, and counters at any moment,
//     mid-traversal included.
//   - Conn4 or Conn8 connectivity; BFS (queue) or DFS (stack) order over one
//     shared deque — the algorithm choice only selects which end is popped.
//   - With a safety radius r > 0, a pixel is traversable only if the whole
//     disk dx²+dy²≤r² around it is in-bounds and matches the seed's value.
//     The mask is precomputed once per Initialize in O(W×H×disk) and stays
//     fixed for the session.
//
// Why:
//
//   - Clearance-gated reachability: navigable area detection for agents with
//     physical extent, play-space probing, region measurement with margins.
//   - Single-step advancement keeps the caller in charge of pacing, so the
//     same engine drives batch fills and animated sweeps alike.
//
// State machine (each pixel leaves Unvisited at most once):
//
//	Unvisited → InQueue → Processed      (normal fill path)
//	Unvisited → Boundary                 (differing value; terminal)
//	Unvisited → Unsafe                   (fails clearance; terminal)
//
// BFS and DFS always produce the same final {Processed, Boundary, Unsafe}
// partition; only the visitation order differs.
//
// Degraded inputs never fail:
//
//   - An out-of-bounds seed leaves the engine permanently uninitialized;
//     every Step is a no-op returning false.
//   - A seed that fails its own clearance check completes immediately with
//     zero filled pixels and one recorded unsafe pixel.
//
// Complexity (W×H grid, d = 4 or 8 neighbors, D = disk size):
//
//   - Initialize: O(W×H×D) for the safety mask (O(W×H) when radius ≤ 0).
//   - Step: O(d). Full traversal: O(W×H×d).
//   - Memory: O(W×H) for result, mask, and state.
//
// Usage:
//
//	ff, err := floodfill.New(
//	    floodfill.WithConnectivity(floodfill.Conn4),
//	    floodfill.WithAlgorithm(floodfill.BFS),
//	    floodfill.WithSafetyRadius(2),
//	)
//	if err != nil { ... } // ErrOptionViolation on a negative radius
//	ff.Initialize(grid, seedX, seedY)
//	for ff.Step() {
//	}
//
// Options:
//
//   - WithConnectivity(c):  Conn4 (default) or Conn8.
//   - WithAlgorithm(a):     BFS (default) or DFS.
//   - WithSafetyRadius(r):  clearance radius; 0 disables the gate (default),
//     r < 0 → ErrOptionViolation.
//   - WithOnProcess(fn):    hook invoked after each pixel is processed.
//
// Errors:
//
//   - ErrOptionViolation: invalid Option supplied to New.
//   - ErrNotInitialized:  Run called with no bound session.
package floodfill
