// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Bounds-checked neighbor enumeration in row-major index space
//   - Identification of regions separated by a wall value
package gridgraph

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// From2D builds a GridGraph with the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	return NewGridGraph(values, GridOptions{Conn: conn})
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// AppendNeighbors appends the row-major indices of the in-bounds neighbors of
// idx to dst and returns the extended slice. Order is clockwise from north. Passing dst[:0] makes the call allocation-free.
// Complexity: O(d).
func (gg *GridGraph) AppendNeighbors(dst []int, idx int) []int {
	x, y := gg.Coordinate(idx)
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if gg.InBounds(nx, ny) {
			dst = append(dst, gg.Index(nx, ny))
		}
	}
	return dst
}

// Len returns the number of cells, Width×Height.
func (gg *GridGraph) Len() int {
	return gg.Width * gg.Height
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Value returns the cell value at a row-major index.
func (gg *GridGraph) Value(idx int) int {
	x, y := gg.Coordinate(idx)
	return gg.CellValues[y][x]
}

// Flatten returns a row-major copy of the cell values.
func (gg *GridGraph) Flatten() []int {
	out := make([]int, 0, gg.Len())
	for _, row := range gg.CellValues {
		out = append(out, row...)
	}
	return out
}
