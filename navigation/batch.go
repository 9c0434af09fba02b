package navigation

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlnav/costmap"
)

// Request is one origin/target pair for PlanBatch.
type Request struct {
	Origin, Target costmap.Pose
}

// BatchResult pairs a Request with its outcome. Err holds planning failures
// such as ErrNoPath or ErrBlocked.
type BatchResult struct {
	Request
	Result Result
	Err    error
}

// PlanBatch runs planner over reqs concurrently, at most limit at a time
// (limit <= 0 means unbounded). Results keep the order of reqs.
//
// A failed request does not stop the others; its error is stored in
// BatchResult.Err. Only cancellation of ctx aborts the batch, in which case
// the context error is returned along with whatever finished.
func PlanBatch(ctx context.Context, planner Planner, grid *costmap.Grid, reqs []Request, limit int) ([]BatchResult, error) {
	out := make([]BatchResult, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			res, err := planner.Plan(gctx, grid, req.Origin, req.Target)
			out[i] = BatchResult{Request: req, Result: res, Err: err}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}

	return out, nil
}
