package octopus

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridprop/gridgraph"
)

// Sentinel errors for engine construction and driving.
var (
	// ErrOptionViolation is returned when an invalid Option or driver argument is supplied.
	ErrOptionViolation = errors.New("octopus: invalid option supplied")

	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("octopus: coordinate out of bounds")

	// ErrNotSynchronized is returned when a tick limit runs out before every
	// cell flashes in the same tick.
	ErrNotSynchronized = errors.New("octopus: no synchronized tick within limit")
)

// Defaults used by DefaultOptions.
const (
	DefaultThreshold  = 9
	DefaultResetValue = 0
)

// Strategy selects how a tick's cascade is driven to its fixed point.
type Strategy int

const (
	// StrategyQueue processes cells from an explicit work-queue.
	StrategyQueue Strategy = iota
	// StrategyRescan repeats row-major scans until nothing new flashes.
	StrategyRescan
)

// String returns "queue" or "rescan".
func (s Strategy) String() string {
	switch s {
	case StrategyQueue:
		return "queue"
	case StrategyRescan:
		return "rescan"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Option configures the Engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the tunable parameters of an Engine.
type Options struct {
	// Threshold: a cell flashes when its energy is strictly greater.
	Threshold int

	// ResetValue is assigned to every flashed cell at the end of a tick.
	ResetValue int

	// Conn selects the neighbor relation.
	Conn gridgraph.Connectivity

	// Strategy selects the cascade driver.
	Strategy Strategy

	// OnFlash is called once per flash with the cell coordinates and the tick index.
	OnFlash func(x, y, tick int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with threshold 9, reset value 0,
// 8-connectivity, the work-queue strategy and a no-op OnFlash hook.
func DefaultOptions() Options {
	return Options{
		Threshold:  DefaultThreshold,
		ResetValue: DefaultResetValue,
		Conn:       gridgraph.Conn8,
		Strategy:   StrategyQueue,
		OnFlash:    func(int, int, int) {},
	}
}

// WithThreshold sets the flash threshold. Negative values are rejected.
func WithThreshold(t int) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: threshold cannot be negative (%d)", ErrOptionViolation, t)
			return
		}
		o.Threshold = t
	}
}

// WithResetValue sets the energy of a cell after it flashes.
// The value is checked against the final threshold by New.
func WithResetValue(v int) Option {
	return func(o *Options) {
		o.ResetValue = v
	}
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

// WithStrategy selects the cascade driver.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyQueue && s != StrategyRescan {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithOnFlash registers a hook called for every flash.
func WithOnFlash(fn func(x, y, tick int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFlash = fn
		}
	}
}

// validate checks cross-option constraints after all options are applied.
func (o *Options) validate() error {
	if o.err != nil {
		return o.err
	}
	if o.ResetValue < 0 || o.ResetValue > o.Threshold {
		return fmt.Errorf("%w: reset value %d outside [0, %d]", ErrOptionViolation, o.ResetValue, o.Threshold)
	}
	return nil
}

// StepResult describes one completed tick.
type StepResult struct {
	// Tick is the 1-based index of the tick since construction.
	Tick int
	// Flashes is the number of cells that flashed during this tick.
	Flashes int
	// Total is the cumulative flash count including this tick.
	Total int
	// Synchronized reports whether every cell flashed during this tick.
	Synchronized bool
}

// Report is the outcome of Engine.Report.
type Report struct {
	// FixedTicks echoes the requested tick index.
	FixedTicks int
	// FixedTotal is the cumulative flash count after tick FixedTicks.
	FixedTotal int
	// SyncTick is the first tick of the run in which every cell flashed.
	SyncTick int
}
