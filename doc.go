// Package gridprop collects small grid kernels that share one shape: parse a
// digit grid, apply a local rule, let its effects spread through neighbors,
// and report a count.
//
// Under the hood, everything is organized under these subpackages:
//
//	gridgraph/ - rectangular grid, Conn4/Conn8 neighbors, digit parser, regions
//	octopus/   - tick-based flash propagation to a fixed point, synchronization detection
//	basin/     - low points, risk sum and climbing flood fill over a height map
//
// Two programs drive them:
//
//	cmd/octopus - flash count after 100 ticks and first all-flash tick
//	cmd/basin   - risk sum and product of the three largest basins
//
// Quick ASCII example (one tick, threshold 9, 8-connectivity):
//
//	1 1 1 1 1        3 4 5 4 3
//	1 9 9 9 1        4 0 0 0 4
//	1 9 1 9 1   →    5 0 0 0 5
//	1 9 9 9 1        4 0 0 0 4
//	1 1 1 1 1        3 4 5 4 3
package gridprop
