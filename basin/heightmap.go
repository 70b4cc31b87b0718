package basin

import (
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/gridprop/gridgraph"
)

// HeightMap is an immutable grid of heights.
type HeightMap struct {
	grid *gridgraph.GridGraph
	opts Options
}

// New builds a HeightMap from a rectangular grid of heights.
func New(values [][]int, opts ...Option) (*HeightMap, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	gg, err := gridgraph.NewGridGraph(values, gridgraph.GridOptions{Conn: o.Conn})
	if err != nil {
		return nil, err
	}
	return &HeightMap{grid: gg, opts: o}, nil
}

// Parse reads a digit grid from r (see gridgraph.ParseDigits) and builds a HeightMap.
func Parse(r io.Reader, opts ...Option) (*HeightMap, error) {
	values, err := gridgraph.ParseDigits(r)
	if err != nil {
		return nil, err
	}
	return New(values, opts...)
}

// Width returns the number of columns.
func (hm *HeightMap) Width() int { return hm.grid.Width }

// Height returns the number of rows.
func (hm *HeightMap) Height() int { return hm.grid.Height }

// At returns the height at p.
func (hm *HeightMap) At(p Point) (int, error) {
	if !hm.grid.InBounds(p.X, p.Y) {
		return 0, hm.outOfBounds(p)
	}
	return hm.grid.CellValues[p.Y][p.X], nil
}

func (hm *HeightMap) outOfBounds(p Point) error {
	return fmt.Errorf("%w: %v in %dx%d map", ErrOutOfBounds, p, hm.grid.Width, hm.grid.Height)
}

func (hm *HeightMap) point(idx int) Point {
	x, y := hm.grid.Coordinate(idx)
	return Point{X: x, Y: y}
}

// LowPoints returns, in row-major order, every cell strictly lower than all
// of its in-bounds neighbors. A cell without neighbors is a low point.
func (hm *HeightMap) LowPoints() []Point {
	var (
		lows []Point
		nbuf []int
	)
	for i := 0; i < hm.grid.Len(); i++ {
		h := hm.grid.Value(i)
		low := true
		nbuf = hm.grid.AppendNeighbors(nbuf[:0], i)
		for _, j := range nbuf {
			if hm.grid.Value(j) <= h {
				low = false
				break
			}
		}
		if low {
			lows = append(lows, hm.point(i))
		}
	}
	return lows
}

// RiskSum returns the sum of (height + 1) over all low points.
func (hm *HeightMap) RiskSum() int {
	sum := 0
	for _, p := range hm.LowPoints() {
		sum += hm.grid.CellValues[p.Y][p.X] + 1
	}
	return sum
}

// Cells returns the members of the basin grown from seed, in fill order.
// A seed on a wall yields an empty basin.
func (hm *HeightMap) Cells(seed Point) ([]Point, error) {
	if !hm.grid.InBounds(seed.X, seed.Y) {
		return nil, hm.outOfBounds(seed)
	}
	start := hm.grid.Index(seed.X, seed.Y)
	if hm.grid.Value(start) == hm.opts.Wall {
		return nil, nil
	}

	visited := make([]bool, hm.grid.Len())
	visited[start] = true
	queue := []int{start}
	var nbuf []int
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		hu := hm.grid.Value(u)
		nbuf = hm.grid.AppendNeighbors(nbuf[:0], u)
		for _, v := range nbuf {
			if visited[v] {
				continue
			}
			// a lower neighbor is left unvisited: a different path may still reach it
			if hv := hm.grid.Value(v); hv >= hu && hv != hm.opts.Wall {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	out := make([]Point, len(queue))
	for i, idx := range queue {
		out[i] = hm.point(idx)
	}
	return out, nil
}

// Size returns the number of cells in the basin grown from seed.
func (hm *HeightMap) Size(seed Point) (int, error) {
	cells, err := hm.Cells(seed)
	return len(cells), err
}

// Sizes returns the basin size of every low point, in LowPoints order.
func (hm *HeightMap) Sizes() []int {
	lows := hm.LowPoints()
	sizes := make([]int, 0, len(lows))
	for _, p := range lows {
		n, _ := hm.Size(p) // low points are in bounds
		sizes = append(sizes, n)
	}
	return sizes
}

// LargestProduct multiplies the k largest basin sizes. With fewer than k
// basins every size is used; with none the product is 0.
func (hm *HeightMap) LargestProduct(k int) (int, error) {
	if k < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	sizes := hm.Sizes()
	if len(sizes) == 0 {
		return 0, nil
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	if k > len(sizes) {
		k = len(sizes)
	}
	product := 1
	for _, s := range sizes[:k] {
		product *= s
	}
	return product, nil
}
