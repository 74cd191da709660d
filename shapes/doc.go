// Package shapes generates deterministic binary test patterns: rectangles,
// crosses, L-shapes, rasterized circles, and seeded gradient noise.
//
// Every generator is a pure function of its parameters — there is no global
// random state, and Noise derives all randomness from its explicit seed — so
// morphology and fill runs over generated grids are fully reproducible.
//
// Complexity: every generator is O(W×H).
package shapes
