package navigation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/google/uuid"

	"github.com/katalvlaran/lvlnav/costmap"
	"github.com/katalvlaran/lvlnav/frontier"
)

// DijkstraPlanner finds the cheapest path on a cost map.
//
// The score of a neighbour n reached from u is
//
//	g(u) + CostScale·cost(u) + |u→n|
//
// where |u→n| is 1 or √2. Cells costing more than CostLimit are never entered.
type DijkstraPlanner struct {
	opts Options
}

// NewDijkstraPlanner validates opts. Returns ErrOptionViolation for bad options.
func NewDijkstraPlanner(opts ...Option) (*DijkstraPlanner, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &DijkstraPlanner{opts: o}, nil
}

// Plan implements Planner.
func (p *DijkstraPlanner) Plan(ctx context.Context, grid *costmap.Grid, origin, target costmap.Pose) (Result, error) {
	return search(ctx, "dijkstra", p.opts, zero, grid, origin, target)
}

// AStarPlanner uses the same step cost as DijkstraPlanner and orders the
// frontier by g + Heuristic(n, target). With an admissible, consistent
// heuristic (Octile, Euclidean, Chebyshev) the result cost equals Dijkstra's.
type AStarPlanner struct {
	opts Options
}

// NewAStarPlanner validates opts. Returns ErrOptionViolation for bad options.
func NewAStarPlanner(opts ...Option) (*AStarPlanner, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &AStarPlanner{opts: o}, nil
}

// Plan implements Planner.
func (p *AStarPlanner) Plan(ctx context.Context, grid *costmap.Grid, origin, target costmap.Pose) (Result, error) {
	return search(ctx, "astar", p.opts, p.opts.Heuristic, grid, origin, target)
}

// runner holds the state of one grid search.
type runner struct {
	grid   *costmap.Grid
	opts   Options
	h      Heuristic
	target costmap.Pose
	g      map[costmap.Pose]float64      // best known cost from origin
	prev   map[costmap.Pose]costmap.Pose // predecessor on that best path
	closed *roaring.Bitmap               // finalized cells by grid index
	pq     *frontier.Heap[costmap.Pose]  // ledger holds g+h
	log    *slog.Logger
}

func search(ctx context.Context, name string, opts Options, h Heuristic,
	grid *costmap.Grid, origin, target costmap.Pose) (Result, error) {
	// 1) Validate inputs.
	if grid == nil {
		return Result{}, ErrNilGrid
	}
	for _, p := range [2]costmap.Pose{origin, target} {
		if !grid.Contains(p) {
			return Result{}, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
		}
		if c := grid.Cost(p); c > opts.CostLimit {
			return Result{}, fmt.Errorf("%w: %s costs %d > %d", ErrBlocked, p, c, opts.CostLimit)
		}
	}

	// 2) Per-run state.
	runID := uuid.NewString()
	r := &runner{
		grid:   grid,
		opts:   opts,
		h:      h,
		target: target,
		g:      make(map[costmap.Pose]float64),
		prev:   make(map[costmap.Pose]costmap.Pose),
		closed: roaring.New(),
		pq:     frontier.New[costmap.Pose](),
		log:    opts.Logger.With("run_id", runID, "planner", name),
	}
	r.log.DebugContext(ctx, "plan started", "origin", origin.String(), "target", target.String())

	// 3) Search.
	found, err := r.run(ctx, origin)
	res := Result{Expanded: int(r.closed.GetCardinality()), Visited: r.closed, RunID: runID}
	if err != nil {
		r.log.WarnContext(ctx, "plan failed", "expanded", res.Expanded, "error", err)
		return res, err
	}
	if !found {
		err = fmt.Errorf("%w: %s → %s", ErrNoPath, origin, target)
		r.log.WarnContext(ctx, "plan failed", "expanded", res.Expanded, "error", err)
		return res, err
	}

	// 4) Walk predecessors back to the origin.
	res.Path = NewPath(target)
	for at := target; at != origin; {
		at = r.prev[at]
		res.Path.Append(at)
	}
	res.Path.Reverse()
	res.Cost = r.g[target]

	r.log.InfoContext(ctx, "plan finished",
		"expanded", res.Expanded,
		"cost", res.Cost,
		"length", res.Path.Length(),
	)

	return res, nil
}

// run pops cells until the target is finalized or the frontier empties.
func (r *runner) run(ctx context.Context, origin costmap.Pose) (bool, error) {
	r.g[origin] = 0
	if err := r.pq.SetScore(origin, r.h(origin, r.target)); err != nil {
		return false, err
	}

	for !r.pq.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		// 1) Finalize the best cell.
		u, err := r.pq.Pop()
		if err != nil {
			return false, err
		}
		idx, _ := r.grid.Index(u)
		r.closed.Add(uint32(idx))

		// 2) Done?
		if u == r.target {
			return true, nil
		}
		if r.opts.MaxExpansions > 0 && int(r.closed.GetCardinality()) >= r.opts.MaxExpansions {
			return false, fmt.Errorf("%w: %d cells", ErrExpansionLimit, r.opts.MaxExpansions)
		}

		// 3) Relax neighbours.
		if err = r.relax(u); err != nil {
			return false, err
		}
	}

	return false, nil
}

func (r *runner) relax(u costmap.Pose) error {
	base := r.g[u] + r.opts.CostScale*float64(r.grid.Cost(u))
	for _, n := range r.grid.NeighborsFor(u, r.opts.CostLimit) {
		idx, _ := r.grid.Index(n)
		if r.closed.Contains(uint32(idx)) {
			continue
		}
		nd := base + u.DistanceTo(n)
		if old, seen := r.g[n]; seen && nd >= old {
			continue
		}
		r.g[n] = nd
		r.prev[n] = u
		if err := r.pq.SetScore(n, nd+r.h(n, r.target)); err != nil {
			return err
		}
	}

	return nil
}
