package navigation_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlnav/costmap"
	"github.com/katalvlaran/lvlnav/navigation"
)

// ExampleDijkstraPlanner plans around a wall.
func ExampleDijkstraPlanner() {
	grid, _ := costmap.Load(strings.NewReader(`
0   0   0
127 127 0
0   0   0
`))
	planner, _ := navigation.NewDijkstraPlanner()

	res, err := planner.Plan(context.Background(), grid, costmap.Pose{X: 0, Y: 0}, costmap.Pose{X: 0, Y: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	fmt.Printf("cost %.3f\n", res.Cost)
	// Output:
	// [0, 0] [1, 0] [2, 1] [1, 2] [0, 2]
	// cost 4.828
}

// ExampleWaypointGraph_PlanWaypoints routes along auto-linked waypoints.
func ExampleWaypointGraph_PlanWaypoints() {
	wg := navigation.NewWaypointGraph(1.5)
	_ = wg.Add(navigation.Waypoint{ID: "dock", X: 0, Y: 0})
	_ = wg.Add(navigation.Waypoint{ID: "hall", X: 1, Y: 0})
	_ = wg.Add(navigation.Waypoint{ID: "door", X: 2, Y: 0})
	_ = wg.Add(navigation.Waypoint{ID: "kitchen", X: 2, Y: 1})

	route, err := wg.PlanWaypoints(context.Background(), "dock", "kitchen")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(route.IDs(), " → "))
	fmt.Printf("%.3f m\n", route.Cost)
	// Output:
	// dock → hall → kitchen
	// 2.414 m
}
