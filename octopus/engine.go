package octopus

import (
	"fmt"
	"io"

	"github.com/katalvlaran/gridprop/gridgraph"
)

// Engine advances a grid of energies one tick at a time.
type Engine struct {
	grid    *gridgraph.GridGraph // neighbor relation; CellValues keep the initial energies
	opts    Options
	energy  []int  // row-major
	flashed []bool // set only while a tick is in progress

	tick  int
	total int
	last  int

	queue []int // reused work-queue
	nbuf  []int // reused neighbor buffer
}

// New builds an Engine from a rectangular grid of initial energies.
// Returns gridgraph.ErrEmptyGrid or gridgraph.ErrNonRectangular for a bad
// grid and ErrOptionViolation for bad options.
// Complexity: O(W×H).
func New(values [][]int, opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	gg, err := gridgraph.NewGridGraph(values, gridgraph.GridOptions{Conn: o.Conn})
	if err != nil {
		return nil, err
	}

	return &Engine{
		grid:    gg,
		opts:    o,
		energy:  gg.Flatten(),
		flashed: make([]bool, gg.Len()),
		queue:   make([]int, 0, gg.Len()),
		nbuf:    make([]int, 0, 8),
	}, nil
}

// Parse reads a digit grid from r (see gridgraph.ParseDigits) and builds an Engine.
func Parse(r io.Reader, opts ...Option) (*Engine, error) {
	values, err := gridgraph.ParseDigits(r)
	if err != nil {
		return nil, err
	}
	return New(values, opts...)
}

// Width returns the number of columns.
func (e *Engine) Width() int { return e.grid.Width }

// Height returns the number of rows.
func (e *Engine) Height() int { return e.grid.Height }

// Size returns the number of cells.
func (e *Engine) Size() int { return e.grid.Len() }

// Tick returns the number of completed ticks.
func (e *Engine) Tick() int { return e.tick }

// Total returns the cumulative flash count over all completed ticks.
func (e *Engine) Total() int { return e.total }

// LastFlashes returns the flash count of the most recent tick, or 0 before the first.
func (e *Engine) LastFlashes() int { return e.last }

// Options returns a copy of the effective options.
func (e *Engine) Options() Options { return e.opts }

// Energy returns the current energy at (x,y).
func (e *Engine) Energy(x, y int) (int, error) {
	if !e.grid.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, e.grid.Width, e.grid.Height)
	}
	return e.energy[e.grid.Index(x, y)], nil
}

// Snapshot returns a copy of the current energies indexed [y][x].
func (e *Engine) Snapshot() [][]int {
	out := make([][]int, e.grid.Height)
	for y := range out {
		row := e.energy[y*e.grid.Width : (y+1)*e.grid.Width]
		out[y] = append([]int(nil), row...)
	}
	return out
}

// String renders the energies one row per line. Values above 9 print as '*'.
func (e *Engine) String() string {
	buf := make([]byte, 0, e.grid.Len()+e.grid.Height)
	for i, v := range e.energy {
		if i > 0 && i%e.grid.Width == 0 {
			buf = append(buf, '\n')
		}
		switch {
		case v >= 0 && v <= 9:
			buf = append(buf, byte('0'+v))
		default:
			buf = append(buf, '*')
		}
	}
	return string(buf)
}
