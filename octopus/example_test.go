// File: octopus/example_test.go
package octopus_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridprop/octopus"
)

// ExampleEngine_Step shows one cascade: the ring of nines flashes, and the
// center cell, raised by all eight of its flashing neighbors, flashes too.
func ExampleEngine_Step() {
	e, err := octopus.Parse(strings.NewReader("11111\n19991\n19191\n19991\n11111\n"))
	if err != nil {
		fmt.Println(err)
		return
	}

	r := e.Step()
	fmt.Printf("tick %d: %d flashes\n", r.Tick, r.Flashes)
	fmt.Println(e)

	// Output:
	// tick 1: 9 flashes
	// 34543
	// 40004
	// 50005
	// 40004
	// 34543
}

// ExampleEngine_Report gathers the total after a fixed number of ticks and
// the first tick in which every cell flashes.
func ExampleEngine_Report() {
	e, _ := octopus.New([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})

	rep, err := e.Report(12, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("total after 12 ticks:", rep.FixedTotal)
	fmt.Println("first synchronized tick:", rep.SyncTick)

	// Output:
	// total after 12 ticks: 9
	// first synchronized tick: 10
}
