package octopus_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridprop/octopus"
)

func benchGrid(n int) [][]int {
	rng := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
		for x := range grid[y] {
			grid[y][x] = rng.Intn(10)
		}
	}
	return grid
}

func benchmarkStep(b *testing.B, s octopus.Strategy) {
	e, err := octopus.New(benchGrid(200), octopus.WithStrategy(s))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Step()
	}
}

// BenchmarkStepQueue measures one tick on a 200×200 random grid with the work-queue.
func BenchmarkStepQueue(b *testing.B) { benchmarkStep(b, octopus.StrategyQueue) }

// BenchmarkStepRescan measures one tick on the same grid with repeated scans.
func BenchmarkStepRescan(b *testing.B) { benchmarkStep(b, octopus.StrategyRescan) }
