package costmap_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlnav/costmap"
)

// ExampleLoad reads a small map and inspects it.
func ExampleLoad() {
	g, err := costmap.Load(strings.NewReader("0 0 0\n0 127 0\n0 0 0\n"), costmap.WithResolution(0.5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	centre := g.Discretize(0.75, 0.75)
	fmt.Println("centre:", centre, "cost:", g.Cost(centre))
	fmt.Println("free neighbours of [0, 0]:", g.NeighborsFor(costmap.Pose{}, 100))
	fmt.Println("outside:", g.Cost(costmap.Pose{X: -1, Y: 0}))
	// Output:
	// centre: [1, 1] cost: 127
	// free neighbours of [0, 0]: [[1, 0] [0, 1]]
	// outside: 127
}

// ExampleGrid_Inflate pads an obstacle by one cell.
func ExampleGrid_Inflate() {
	g, _ := costmap.NewGrid([][]uint8{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	_ = g.Inflate(costmap.Pose{X: 1, Y: 1}, 1, 64)

	var sb strings.Builder
	_, _ = g.WriteTo(&sb)
	fmt.Print(sb.String())
	// Output:
	// # costmap 3x3 origin 0,0 resolution 1
	// 0 64 0
	// 64 64 64
	// 0 64 0
}
