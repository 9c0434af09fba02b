// Package navigation plans robot paths on a costmap.Grid and over sparse
// waypoint graphs. Every planner drives a frontier.Heap.
//
// Grid planners:
//
//   - DijkstraPlanner scores a step u→n as g(u) + CostScale·cost(u) + |u→n|,
//     with |u→n| = 1 orthogonally and √2 diagonally. Cells costing more than
//     CostLimit are walls; so is everything outside the grid.
//   - AStarPlanner uses the same step cost and orders the frontier by
//     g + h(n, target). The heap ledger therefore holds f-scores; g lives in a
//     separate map.
//   - Both keep finalized cells in a roaring bitmap keyed by Grid.Index. The
//     bitmap is returned as Result.Visited and its cardinality as Result.Expanded.
//   - Each run gets a uuid RunID. Debug logs mark the start, Info logs the
//     summary (expanded, cost, length) and failures log at Warn.
//
// Waypoint planner:
//
//   - WaypointGraph links waypoints closer than a connection distance, plus
//     explicit links. PlanWaypoints seeds every waypoint with +Inf, relaxes by
//     reading each popped waypoint's score back from the heap ledger, then
//     rebuilds the route from the target by stepping to the lowest-scored
//     neighbour.
//
// Batches:
//
//   - PlanBatch fans requests out with errgroup; each run owns its heap.
//
// Options are validated by the planner constructors; invalid values surface as
// ErrOptionViolation rather than panics.
//
// Complexity (grid planners): O(N log N) time, O(N) memory, N = reachable cells.
package navigation
