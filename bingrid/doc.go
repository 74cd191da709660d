// Package bingrid provides a dense two-dimensional binary grid, the shared
// substrate for the morph and floodfill engines.
//
// What:
//
//   - Grid stores width×height booleans in row-major order;
//     true = foreground, false = background.
//   - Reads outside [0,width)×[0,height) return false; writes outside are
//     silently dropped. Both are deliberate: background-at-infinity is what
//     makes erosion correct at grid edges under a zero boundary.
//   - Clone produces a fully independent copy; no two Grids ever alias.
//
// Why:
//
//   - Morphological operators and flood fills probe freely past the border;
//     a total, never-failing accessor keeps their inner loops branch-light.
//   - Value-style ownership (deep copies at every API boundary) removes any
//     need for locking in single-owner use.
//
// Complexity:
//
//   - Get/Set/InBounds: O(1).
//   - Fill/Clear/Clone/Count/Equal: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: FromRows input has no rows or no columns.
//   - ErrNonRectangular: FromRows rows have differing lengths.
//
// All Grid methods are total and never fail.
package bingrid
