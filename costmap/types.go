package costmap

import (
	"errors"
	"fmt"
	"math"
)

// MaxCost is the highest cell cost. Cells outside the grid report MaxCost.
const MaxCost uint8 = 127

// Sentinel errors for cost-map construction and I/O.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("costmap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("costmap: all rows must have the same length")
	// ErrCostRange indicates a cost above MaxCost.
	ErrCostRange = errors.New("costmap: cost out of range")
	// ErrBadResolution indicates a resolution that is not a positive finite number.
	ErrBadResolution = errors.New("costmap: resolution must be positive and finite")
	// ErrOutOfGrid indicates a pose outside the grid was written to.
	ErrOutOfGrid = errors.New("costmap: pose outside grid")
	// ErrParse indicates a malformed map file.
	ErrParse = errors.New("costmap: parse error")
)

// Pose is a cell coordinate in cost-map space.
type Pose struct {
	X, Y int
}

// Offset returns p shifted by (dx, dy).
func (p Pose) Offset(dx, dy int) Pose {
	return Pose{X: p.X + dx, Y: p.Y + dy}
}

// SquaredDistanceTo returns the squared Euclidean distance in cells.
func (p Pose) SquaredDistanceTo(q Pose) float64 {
	dx := float64(q.X - p.X)
	dy := float64(q.Y - p.Y)

	return dx*dx + dy*dy
}

// DistanceTo returns the Euclidean distance in cells.
func (p Pose) DistanceTo(q Pose) float64 {
	return math.Sqrt(p.SquaredDistanceTo(q))
}

// ToWorld returns the world coordinates of the cell centre.
func (p Pose) ToWorld(resolution float64) (x, y float64) {
	return (float64(p.X) + 0.5) * resolution, (float64(p.Y) + 0.5) * resolution
}

// String formats the pose as "[x, y]".
func (p Pose) String() string {
	return fmt.Sprintf("[%d, %d]", p.X, p.Y)
}

// Options configures a Grid.
type Options struct {
	// OriginX, OriginY locate the grid's lower-left cell in cost-map space.
	OriginX, OriginY int
	// Resolution is the side of one cell in metres.
	Resolution float64
}

// Option mutates Options.
type Option func(*Options)

// WithOrigin places the lower-left cell at (x, y).
func WithOrigin(x, y int) Option {
	return func(o *Options) {
		o.OriginX, o.OriginY = x, y
	}
}

// WithResolution sets metres per cell.
// Panics with ErrBadResolution if res is not positive and finite.
func WithResolution(res float64) Option {
	return func(o *Options) {
		if !(res > 0) || math.IsInf(res, 0) {
			panic(ErrBadResolution.Error())
		}
		o.Resolution = res
	}
}

// DefaultOptions returns origin (0,0) and a resolution of 1 metre per cell.
func DefaultOptions() Options {
	return Options{Resolution: 1}
}
