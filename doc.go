// Package gridmorph is an in-memory toolkit for transforming and traversing
// dense binary (foreground/background) grids.
//
// 🚀 What is gridmorph?
//
//	A small, deterministic library built around two engines:
//		• morph     — set-theoretic morphology: erosion, dilation, inner/outer
//		  boundary and gradient, under four boundary-extension policies
//		• floodfill — caller-paced BFS/DFS reachability with an optional
//		  clearance ("safety radius") gate over a precomputed disk-fit mask
//	plus their shared substrate and test-pattern generators:
//		• bingrid   — bounds-safe dense boolean grid (reads past the border
//		  are background; writes past it are dropped)
//		• shapes    — seeded, reproducible pattern generation (rectangles,
//		  crosses, circles, gradient noise)
//
// ✨ Why choose gridmorph?
//
//   - Total core — invalid input degrades to a defined, inert result; the
//     engines never panic and never fail
//   - Caller-paced — the fill advances one pixel per Step, so batch runs and
//     animated sweeps share one engine
//   - Deterministic — fixed probe orders, seeded noise, reproducible runs
//   - Pure Go — no cgo, no rendering, no I/O
//
// Quick ASCII example (erosion, 3×3 square, zero boundary):
//
//	#####        .....
//	#####        .###.
//	#####   →    .###.
//	#####        .###.
//	#####        .....
//
//	go get github.com/katalvlaran/gridmorph
package gridmorph
