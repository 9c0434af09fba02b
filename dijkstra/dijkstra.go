package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlnav/core"
	"github.com/katalvlaran/lvlnav/frontier"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in the weighted graph g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid, a negative weight is detected, or ctx is done.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. g must contain Target if one is set (ErrTargetNotFound).
//  6. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs in documented order
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, nil, fmt.Errorf("%w: %q", ErrTargetNotFound, cfg.Target)
	}

	// 3) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Prepare per-run state.
	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		pq:      frontier.New[string](frontier.WithCapacity(V)),
	}

	// 5) Initialize and run the main loop.
	if err := r.init(); err != nil {
		return nil, nil, err
	}
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph            // The input graph; read-only within Dijkstra.
	options Options                // Configuration options.
	dist    map[string]float64     // Vertex ID → best known distance from Source.
	prev    map[string]string      // Vertex ID → predecessor on the shortest path.
	pq      *frontier.Heap[string] // Frontier keyed by vertex ID.
}

// init sets dist[v] = +Inf for all v, dist[Source] = 0 and queues the source.
func (r *runner) init() error {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	return r.pq.SetScore(r.options.Source, 0)
}

// process repeatedly finalizes the closest queued vertex and relaxes its edges.
//
// Loop termination conditions:
//
//   - The frontier becomes empty (all reachable vertices processed).
//   - The minimum distance in the frontier exceeds MaxDistance.
//   - The configured Target has been finalized.
//   - The context is done (returns ctx.Err()).
func (r *runner) process() error {
	ctx := r.options.Ctx
	for !r.pq.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return err
		}

		// 1) Pop the closest vertex; its distance is final.
		top, err := r.pq.PopEntry()
		if err != nil {
			return err
		}
		u, d := top.Element, top.Score

		// 2) Everything left is farther than the cap. relax never queues such
		//    candidates, so this only guards the source itself.
		if d > r.options.MaxDistance {
			break
		}

		// 3) Early exit on target.
		if u == r.options.Target {
			break
		}

		// 4) Relax outgoing edges.
		if err = r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and lowers neighbour distances where possible.
// Edges at or above InfEdgeThreshold are skipped; candidates above MaxDistance are
// not queued.
func (r *runner) relax(u string, du float64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		v := e.Other(u)
		w := e.Weight

		if w >= r.options.InfEdgeThreshold {
			continue
		}

		nd := du + w
		if nd > r.options.MaxDistance {
			continue
		}

		// Strictly better only: finalized vertices can never improve with
		// non-negative weights, so they are never re-queued.
		if nd >= r.dist[v] {
			continue
		}

		r.dist[v] = nd
		r.prev[v] = u
		if err = r.pq.SetScore(v, nd); err != nil {
			return err
		}
	}

	return nil
}

// PathTo rebuilds the vertex sequence source → … → target from a predecessor
// map returned by Dijkstra with WithReturnPath.
// Returns ErrNoPath if target was not reached.
func PathTo(prev map[string]string, source, target string) ([]string, error) {
	if source == target {
		return []string{source}, nil
	}
	if prev[target] == "" {
		return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, source, target)
	}

	path := []string{target}
	for at := prev[target]; ; at = prev[at] {
		path = append(path, at)
		if at == source {
			break
		}
		// A broken chain (or a map from another run) would loop forever.
		if at == "" || len(path) > len(prev)+1 {
			return nil, fmt.Errorf("%w: predecessor chain broken at %q", ErrNoPath, at)
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
