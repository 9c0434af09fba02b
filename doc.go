// Package lvlnav is a grid path-planning toolkit for mobile robots: cost maps,
// Dijkstra and A* planners, waypoint routing and the priority frontier they
// all share.
//
// What is inside?
//
//	frontier/   generic min-priority queue with decrease-key and a score ledger
//	core/       thread-safe weighted graph (vertices, edges, adjacency)
//	dijkstra/   single-source shortest paths over core.Graph
//	costmap/    discretized occupancy grid: poses, costs, inflation, map I/O
//	navigation/ Dijkstra / A* planners, Path, waypoint graphs, batch planning
//	cmd/navplan command-line planner over a map file
//
// Quick start:
//
//	grid, _ := costmap.LoadFile("office.map.zst", costmap.WithResolution(0.05))
//	planner, _ := navigation.NewAStarPlanner()
//	res, err := planner.Plan(ctx, grid, grid.Discretize(0.5, 0.5), grid.Discretize(4, 2))
//	if err != nil {
//		// navigation.ErrNoPath, navigation.ErrBlocked, ...
//	}
//	fmt.Println(res.Path, res.Cost)
//
// Costs are integers in [0, costmap.MaxCost]. A cell is traversable when its
// cost does not exceed the planner's cost limit; cheaper cells are preferred
// through the cost scale added to every step.
package lvlnav
