package octopus

// Step advances the engine by one tick:
//  1. every energy is raised by one;
//  2. the flash cascade runs to its fixed point using the configured Strategy;
//  3. every flashed cell takes the reset value and its flag is cleared.
//
// Step cannot fail; all validation happens at construction.
func (e *Engine) Step() StepResult {
	e.tick++
	for i := range e.energy {
		e.energy[i]++
	}

	var n int
	if e.opts.Strategy == StrategyRescan {
		n = e.propagateRescan()
	} else {
		n = e.propagateQueue()
	}

	for i, f := range e.flashed {
		if f {
			e.energy[i] = e.opts.ResetValue
			e.flashed[i] = false
		}
	}

	e.last = n
	e.total += n

	return StepResult{
		Tick:         e.tick,
		Flashes:      n,
		Total:        e.total,
		Synchronized: n == len(e.energy),
	}
}

// flash marks cell i, fires the hook and raises every neighbor by one.
// On return e.nbuf holds the neighbor indices.
func (e *Engine) flash(i int) {
	e.flashed[i] = true
	x, y := e.grid.Coordinate(i)
	e.opts.OnFlash(x, y, e.tick)

	e.nbuf = e.grid.AppendNeighbors(e.nbuf[:0], i)
	for _, j := range e.nbuf {
		e.energy[j]++
	}
}

// propagateQueue seeds a work-queue with every cell already above threshold;
// a neighbor is pushed exactly when an increment takes it from threshold to
// threshold+1, so each cell enters the queue at most once per tick.
func (e *Engine) propagateQueue() int {
	limit := e.opts.Threshold
	q := e.queue[:0]
	for i, v := range e.energy {
		if v > limit {
			q = append(q, i)
		}
	}

	n := 0
	for len(q) > 0 {
		i := q[len(q)-1]
		q = q[:len(q)-1]
		if e.flashed[i] {
			continue
		}
		e.flash(i)
		n++
		for _, j := range e.nbuf {
			if !e.flashed[j] && e.energy[j] == limit+1 {
				q = append(q, j)
			}
		}
	}
	e.queue = q

	return n
}

// propagateRescan scans in row-major order, flashing every eligible cell,
// until a full scan flashes nothing.
func (e *Engine) propagateRescan() int {
	limit := e.opts.Threshold
	n := 0
	for {
		changed := false
		for i, v := range e.energy {
			if v > limit && !e.flashed[i] {
				e.flash(i)
				n++
				changed = true
			}
		}
		if !changed {
			return n
		}
	}
}
