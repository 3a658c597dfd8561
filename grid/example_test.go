// SPDX-License-Identifier: MIT

package grid_test

import (
	"fmt"

	"github.com/katalvlaran/blacs2d/grid"
)

// ExampleGrid_Coord lists the row-major numbering of a 2x3 grid.
func ExampleGrid_Coord() {
	g, _ := grid.New(0, 2, 3, 0, 0)
	for rank := 0; rank < g.Size(); rank++ {
		r, c, _ := g.Coord(rank)
		fmt.Printf("%d=(%d,%d) ", rank, r, c)
	}
	fmt.Println()

	// Output:
	// 0=(0,0) 1=(0,1) 2=(0,2) 3=(1,0) 4=(1,1) 5=(1,2)
}
