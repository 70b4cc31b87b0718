package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	neighborOffsets [][2]int
}
