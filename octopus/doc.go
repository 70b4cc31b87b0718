// Package octopus implements a grid propagation engine: every tick raises the
// energy of each cell by one, cells whose energy exceeds a threshold flash once,
// each flash raises the energy of the surrounding cells, and flashes cascade
// until a fixed point is reached. Flashed cells then drop back to a reset value.
//
// What
//
//   - Engine owns a rectangular grid of energies (parsed from digit text or
//     built from [][]int) and advances it one tick per Step.
//   - Step reports the tick index, the flashes in that tick, the running total,
//     and whether every cell flashed at once (a synchronized tick).
//   - Run, RunUntilSynchronized and Report drive the engine for a fixed number
//     of ticks, until synchronization, or both in a single pass.
//
// Propagation
//
//	A cell flashes at most once per tick, so a tick performs at most W×H flashes
//	and the cascade always terminates. The result is confluent: the set of
//	flashed cells and the final energies do not depend on the order in which
//	pending cells are processed. Two strategies are provided and must agree:
//
//	  - StrategyQueue (default): an explicit work-queue; a cell is pushed the
//	    moment its energy crosses the threshold.
//	  - StrategyRescan: row-major scans repeated until a full scan flashes nothing.
//
//	Neither strategy recurses, so grid size is bounded by memory, not stack depth.
//
// Complexity (N = W×H cells, d = 4 or 8 neighbors)
//
//   - Step (queue):  O(N·d) time, O(N) memory.
//   - Step (rescan): O(N·k) time where k is the cascade depth, O(1) extra memory.
//
// Options
//
//   - DefaultOptions(): threshold 9, reset 0, Conn8, StrategyQueue, no hook.
//   - WithThreshold(t):       flash when energy > t (t ≥ 0).
//   - WithResetValue(v):      energy assigned to flashed cells (0 ≤ v ≤ threshold).
//   - WithConnectivity(c):    gridgraph.Conn4 or gridgraph.Conn8.
//   - WithStrategy(s):        StrategyQueue or StrategyRescan.
//   - WithOnFlash(fn):        called for every flash with (x, y, tick).
//
// Errors
//
//   - gridgraph.ErrEmptyGrid, gridgraph.ErrNonRectangular, *gridgraph.ParseError
//     from construction.
//   - ErrOptionViolation      for an invalid option or driver argument.
//   - ErrOutOfBounds          from Energy for coordinates outside the grid.
//   - ErrNotSynchronized      when a tick limit is exhausted before synchronization.
//
// An Engine is not safe for concurrent use.
package octopus
