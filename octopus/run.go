package octopus

import "fmt"

// Run advances the engine by ticks steps and returns the cumulative flash count.
// Negative ticks yield ErrOptionViolation; zero is a no-op.
func (e *Engine) Run(ticks int) (int, error) {
	if ticks < 0 {
		return 0, fmt.Errorf("%w: ticks cannot be negative (%d)", ErrOptionViolation, ticks)
	}
	for i := 0; i < ticks; i++ {
		e.Step()
	}
	return e.total, nil
}

// RunUntilSynchronized steps until a tick in which every cell flashes and
// returns that tick's index. limit caps the number of ticks this call may
// execute; 0 means no cap. When the cap is reached the engine keeps its
// advanced state and ErrNotSynchronized is returned.
func (e *Engine) RunUntilSynchronized(limit int) (int, error) {
	if limit < 0 {
		return 0, fmt.Errorf("%w: limit cannot be negative (%d)", ErrOptionViolation, limit)
	}
	for n := 0; limit == 0 || n < limit; n++ {
		if r := e.Step(); r.Synchronized {
			return r.Tick, nil
		}
	}
	return 0, fmt.Errorf("%w: %d ticks run, engine at tick %d", ErrNotSynchronized, limit, e.tick)
}

// Report runs the engine once and records both the cumulative flash count
// after tick fixedTicks and the first synchronized tick, continuing past
// whichever is found first. fixedTicks is an absolute tick index and must not
// already be behind the engine; limit caps the ticks executed by this call
// (0 means no cap).
func (e *Engine) Report(fixedTicks, limit int) (Report, error) {
	if fixedTicks < e.tick {
		return Report{}, fmt.Errorf("%w: tick %d already passed (engine at %d)", ErrOptionViolation, fixedTicks, e.tick)
	}
	if limit < 0 {
		return Report{}, fmt.Errorf("%w: limit cannot be negative (%d)", ErrOptionViolation, limit)
	}

	rep := Report{FixedTicks: fixedTicks, FixedTotal: e.total}
	for n := 0; rep.SyncTick == 0 || e.tick < fixedTicks; n++ {
		if limit > 0 && n == limit {
			return rep, fmt.Errorf("%w: %d ticks run, engine at tick %d, want tick %d", ErrNotSynchronized, limit, e.tick, fixedTicks)
		}
		r := e.Step()
		if r.Tick <= fixedTicks {
			rep.FixedTotal = r.Total
		}
		if r.Synchronized && rep.SyncTick == 0 {
			rep.SyncTick = r.Tick
		}
	}
	return rep, nil
}
