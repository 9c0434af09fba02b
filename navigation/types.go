package navigation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvlnav/costmap"
	"github.com/katalvlaran/lvlnav/internal/logging"
)

// Sentinel errors returned by the planners.
var (
	// ErrNilGrid is returned when a planner is handed a nil grid.
	ErrNilGrid = errors.New("navigation: grid is nil")
	// ErrOutOfBounds is returned when origin or target lie outside the grid.
	ErrOutOfBounds = errors.New("navigation: pose outside grid")
	// ErrBlocked is returned when origin or target cost more than the cost limit.
	ErrBlocked = errors.New("navigation: pose is blocked")
	// ErrNoPath is returned when the target cannot be reached.
	ErrNoPath = errors.New("navigation: no path to target")
	// ErrExpansionLimit is returned when a search finalizes MaxExpansions cells
	// without reaching the target.
	ErrExpansionLimit = errors.New("navigation: expansion limit reached")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("navigation: invalid option supplied")
	// ErrIndexOutOfRange is returned by Path accessors.
	ErrIndexOutOfRange = errors.New("navigation: path index out of range")
	// ErrUnknownWaypoint is returned for waypoint IDs not in the graph.
	ErrUnknownWaypoint = errors.New("navigation: unknown waypoint")
	// ErrDuplicateWaypoint is returned when a waypoint ID is added twice.
	ErrDuplicateWaypoint = errors.New("navigation: duplicate waypoint")
	// ErrNoRoute is returned when two waypoints are not connected.
	ErrNoRoute = errors.New("navigation: no route between waypoints")
)

// Default tuning, matching the cost scale of costmap.MaxCost.
const (
	// DefaultCostLimit is the highest cell cost a path may enter.
	DefaultCostLimit = 100
	// DefaultCostScale brings cell costs [0, 127] to the range of a step length [1, 1.4].
	DefaultCostScale = 0.1
)

// Heuristic estimates the remaining cost from a to b. It must never exceed
// the true cost, or A* may return a longer path.
type Heuristic func(a, b costmap.Pose) float64

// Octile is the exact 8-connected distance on an empty grid.
func Octile(a, b costmap.Pose) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))

	return (dx + dy) + (math.Sqrt2-2)*math.Min(dx, dy)
}

// Euclidean is the straight-line distance.
func Euclidean(a, b costmap.Pose) float64 {
	return a.DistanceTo(b)
}

// Chebyshev is max(|dx|, |dy|).
func Chebyshev(a, b costmap.Pose) float64 {
	return math.Max(math.Abs(float64(a.X-b.X)), math.Abs(float64(a.Y-b.Y)))
}

// zero turns A* into Dijkstra.
func zero(costmap.Pose, costmap.Pose) float64 { return 0 }

// Options configures a grid planner.
// Invalid values are recorded and surfaced as ErrOptionViolation by the constructor.
type Options struct {
	// CostLimit: cells with a higher cost are not entered.
	CostLimit uint8
	// CostScale weighs the cost of the cell being left against the step length.
	CostScale float64
	// Heuristic is used by AStarPlanner only.
	Heuristic Heuristic
	// MaxExpansions bounds finalized cells per run; 0 means unlimited.
	MaxExpansions int
	// Logger receives run logs; a discard logger by default.
	Logger *slog.Logger

	err error
}

// Option configures a planner.
type Option func(*Options)

// WithCostLimit sets the highest enterable cell cost, in [0, costmap.MaxCost].
func WithCostLimit(limit int) Option {
	return func(o *Options) {
		if limit < 0 || limit > int(costmap.MaxCost) {
			o.err = fmt.Errorf("%w: CostLimit %d not in [0, %d]", ErrOptionViolation, limit, costmap.MaxCost)
			return
		}
		o.CostLimit = uint8(limit)
	}
}

// WithCostScale sets the weight of cell cost; must be finite and non-negative.
func WithCostScale(scale float64) Option {
	return func(o *Options) {
		if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
			o.err = fmt.Errorf("%w: CostScale %g", ErrOptionViolation, scale)
			return
		}
		o.CostScale = scale
	}
}

// WithHeuristic replaces the A* heuristic. nil is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMaxExpansions bounds the work of a single run.
//
//	n > 0: at most n cells are finalized
//	n == 0: unlimited
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger sets the run logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns CostLimit=100, CostScale=0.1, Octile heuristic,
// unlimited expansions and a discard logger.
func DefaultOptions() Options {
	return Options{
		CostLimit: DefaultCostLimit,
		CostScale: DefaultCostScale,
		Heuristic: Octile,
		Logger:    logging.Noop(),
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Result is the outcome of one planning run.
type Result struct {
	// Path runs from origin to target inclusive.
	Path *Path
	// Cost is the accumulated score of the target.
	Cost float64
	// Expanded is the number of finalized cells.
	Expanded int
	// Visited holds the grid indices (costmap.Grid.Index) of finalized cells.
	Visited *roaring.Bitmap
	// RunID correlates the run with its log lines.
	RunID string
}

// Planner computes a path between two poses of a cost map.
type Planner interface {
	Plan(ctx context.Context, grid *costmap.Grid, origin, target costmap.Pose) (Result, error)
}
