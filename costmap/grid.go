package costmap

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/katalvlaran/lvlnav/core"
)

// neighborOffsets lists the 8-connected moves, counter-clockwise from east.
var neighborOffsets = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

// Grid is a rectangular cost map. The zero value is not usable; call NewGrid.
type Grid struct {
	mu            sync.RWMutex
	width, height int
	originX       int
	originY       int
	resolution    float64
	cells         []uint8 // row-major, row 0 = originY
}

// NewGrid builds a Grid from costs[row][col], where row r and column c map to
// pose (originX+c, originY+r). The input is deep-copied.
//
// Errors: ErrEmptyGrid, ErrNonRectangular, ErrCostRange.
// Complexity: O(W×H).
func NewGrid(costs [][]uint8, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(costs), len(costs[0])
	cells := make([]uint8, 0, w*h)
	for r, row := range costs {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		for c, v := range row {
			if v > MaxCost {
				return nil, fmt.Errorf("%w: %d at row %d col %d", ErrCostRange, v, r, c)
			}
		}
		cells = append(cells, row...)
	}

	return &Grid{
		width:      w,
		height:     h,
		originX:    cfg.OriginX,
		originY:    cfg.OriginY,
		resolution: cfg.Resolution,
		cells:      cells,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns Width×Height.
func (g *Grid) Size() int { return g.width * g.height }

// Resolution returns metres per cell.
func (g *Grid) Resolution() float64 { return g.resolution }

// Origin returns the pose of the lower-left cell.
func (g *Grid) Origin() Pose { return Pose{X: g.originX, Y: g.originY} }

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Pose) bool {
	x, y := p.X-g.originX, p.Y-g.originY

	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps p to its row-major cell index. ok is false outside the grid.
func (g *Grid) Index(p Pose) (idx int, ok bool) {
	if !g.Contains(p) {
		return 0, false
	}

	return (p.Y-g.originY)*g.width + (p.X - g.originX), true
}

// PoseAt is the inverse of Index. It does not validate idx.
func (g *Grid) PoseAt(idx int) Pose {
	return Pose{X: g.originX + idx%g.width, Y: g.originY + idx/g.width}
}

// Cost returns the cost of p, or MaxCost when p is outside the grid.
func (g *Grid) Cost(p Pose) uint8 {
	idx, ok := g.Index(p)
	if !ok {
		return MaxCost
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cells[idx]
}

// SetCost overwrites the cost of p.
// Errors: ErrOutOfGrid, ErrCostRange.
func (g *Grid) SetCost(p Pose, cost uint8) error {
	if cost > MaxCost {
		return fmt.Errorf("%w: %d", ErrCostRange, cost)
	}
	idx, ok := g.Index(p)
	if !ok {
		return fmt.Errorf("%w: %s", ErrOutOfGrid, p)
	}
	g.mu.Lock()
	g.cells[idx] = cost
	g.mu.Unlock()

	return nil
}

// Poses returns every pose in row-major order.
func (g *Grid) Poses() []Pose {
	out := make([]Pose, 0, g.Size())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			out = append(out, Pose{X: g.originX + x, Y: g.originY + y})
		}
	}

	return out
}

// NeighborsFor returns the in-bounds 8-connected neighbours of p whose cost is
// at most maxCost, counter-clockwise starting east.
func (g *Grid) NeighborsFor(p Pose, maxCost uint8) []Pose {
	out := make([]Pose, 0, len(neighborOffsets))
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, d := range neighborOffsets {
		n := p.Offset(d[0], d[1])
		idx, ok := g.Index(n)
		if !ok || g.cells[idx] > maxCost {
			continue
		}
		out = append(out, n)
	}

	return out
}

// Discretize maps world coordinates (metres) to the pose of the enclosing cell.
// The result may lie outside the grid.
func (g *Grid) Discretize(x, y float64) Pose {
	return Pose{
		X: int(math.Floor(x / g.resolution)),
		Y: int(math.Floor(y / g.resolution)),
	}
}

// Inflate sets cost on every in-grid cell within radius metres of p.
// The radius is rounded to whole cells; radius 0 touches p only.
func (g *Grid) Inflate(p Pose, radius float64, cost uint8) error {
	if cost > MaxCost {
		return fmt.Errorf("%w: %d", ErrCostRange, cost)
	}
	r := int(math.Round(radius / g.resolution))
	if r < 0 {
		r = 0
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			if idx, ok := g.Index(p.Offset(dx, dy)); ok {
				g.cells[idx] = cost
			}
		}
	}

	return nil
}

// VertexID formats the core.Graph vertex identifier for p ("x,y").
func VertexID(p Pose) string {
	buf := make([]byte, 0, 24)
	buf = strconv.AppendInt(buf, int64(p.X), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(p.Y), 10)

	return string(buf)
}

// ToCoreGraph converts the grid into a weighted, undirected *core.Graph.
// Each cell with cost ≤ maxCost becomes a vertex "x,y" with metadata {x, y, cost};
// 8-connected pairs of such cells are joined by an edge weighted with the step
// length (1 or √2).
// Complexity: O(W×H) time and memory.
func (g *Grid) ToCoreGraph(maxCost uint8) (*core.Graph, error) {
	out := core.NewGraph(core.WithWeighted())

	g.mu.RLock()
	defer g.mu.RUnlock()

	// 1) Vertices with metadata.
	for idx, c := range g.cells {
		if c > maxCost {
			continue
		}
		p := g.PoseAt(idx)
		id := VertexID(p)
		if err := out.AddVertex(id); err != nil {
			return nil, err
		}
		v, err := out.Vertex(id)
		if err != nil {
			return nil, err
		}
		v.Metadata["x"] = p.X
		v.Metadata["y"] = p.Y
		v.Metadata["cost"] = c
	}

	// 2) Edges. The first four offsets cover each undirected pair once.
	for idx, c := range g.cells {
		if c > maxCost {
			continue
		}
		p := g.PoseAt(idx)
		for _, d := range neighborOffsets[:4] {
			n := p.Offset(d[0], d[1])
			nIdx, ok := g.Index(n)
			if !ok || g.cells[nIdx] > maxCost {
				continue
			}
			if _, err := out.AddEdge(VertexID(p), VertexID(n), p.DistanceTo(n)); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
