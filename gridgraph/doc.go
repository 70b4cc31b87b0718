// Package gridgraph treats a 2D grid of integer cells as a graph, giving
// the propagation and flood-fill kernels a shared neighbor relation.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a chosen Connectivity.
//   - ParseDigits reads the puzzle text format: one row per line, one decimal
//     digit per cell.
//   - Identifies regions of cells separated by a wall value (RegionsBelow).
//
// Why:
//
//   - Simulations: every cell update needs bounds-checked neighbors that never wrap.
//   - Height maps: basins are regions bounded by a wall height.
//
// Complexity:
//
//   - ParseDigits:         O(W×H), Memory: O(W×H).
//   - RegionsBelow:        O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidDigit: a parsed cell is not a decimal digit.
//   - *ParseError: carries the line/column of a parse failure and unwraps to
//     ErrInvalidDigit or ErrNonRectangular.
package gridgraph
