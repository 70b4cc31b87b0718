// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridprop/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ParseDigits + RegionsBelow
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_RegionsBelow parses a small height map and lists the
// regions separated by height-9 walls.
//
// Scenario:
//
//   - Grid values are heights 0..9; 9 is a wall.
//   - Conn4: 4-directional adjacency (N/E/S/W).
//   - Expect two regions of three cells each.
func ExampleGridGraph_RegionsBelow() {
	values, err := gridgraph.ParseDigits(strings.NewReader("219\n398\n973\n"))
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	gg, _ := gridgraph.From2D(values, gridgraph.Conn4)

	for i, region := range gg.RegionsBelow(9) {
		fmt.Printf("region %d:", i)
		for _, idx := range region {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// region 0: (0,0) (1,0) (0,1)
	// region 1: (2,1) (2,2) (1,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: RegionsBelow with a zero wall
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_RegionsBelow_zeroWall groups contiguous non-zero cells,
// whatever their value, by treating 0 as the wall.
func ExampleGridGraph_RegionsBelow_zeroWall() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{0, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	comps := gg.RegionsBelow(0)
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 3
	// component 0: (1,0) (2,0) (1,1)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
	// component 2: (0,2)
}
