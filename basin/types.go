package basin

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridprop/gridgraph"
)

// Sentinel errors for height map operations.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("basin: invalid option supplied")
	// ErrOutOfBounds is returned when a point lies outside the map.
	ErrOutOfBounds = errors.New("basin: point out of bounds")
	// ErrInvalidK is returned by LargestProduct for k < 1.
	ErrInvalidK = errors.New("basin: k must be at least 1")
)

// DefaultWall is the height that bounds every basin.
const DefaultWall = 9

// Point addresses a cell by column X and row Y.
type Point struct {
	X, Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Option configures a HeightMap.
type Option func(*Options)

// Options holds the tunable parameters of a HeightMap.
type Options struct {
	// Wall is the height no basin may include.
	Wall int
	// Conn selects the neighbor relation used for low points and flood fill.
	Conn gridgraph.Connectivity

	err error
}

// DefaultOptions returns wall height 9 and 4-connectivity.
func DefaultOptions() Options {
	return Options{Wall: DefaultWall, Conn: gridgraph.Conn4}
}

// WithWall sets the wall height.
func WithWall(h int) Option {
	return func(o *Options) { o.Wall = h }
}

// WithConnectivity selects Conn4 or Conn8.
func WithConnectivity(c gridgraph.Connectivity) Option {
	return func(o *Options) {
		if c != gridgraph.Conn4 && c != gridgraph.Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, int(c))
			return
		}
		o.Conn = c
	}
}
