// Package basin analyses a height map: low points, their risk levels, and the
// basins that flow down into them.
//
// A low point is a cell strictly lower than every in-bounds neighbor. A basin
// is grown from a seed cell by flood fill: a neighbor joins when its height is
// at least the height of the cell it is reached from and it is not a wall
// (height 9 by default). A visited set guarantees each cell is counted once,
// and the fill uses an explicit queue rather than recursion.
//
// Complexity (N = W×H cells):
//
//   - LowPoints, RiskSum: O(N·d).
//   - Size, Cells:        O(N·d) time, O(N) memory per call.
//   - Sizes:              O(L·N·d) for L low points.
package basin
