package navigation

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/katalvlaran/lvlnav/frontier"
)

// DefaultConnectionDistance is the waypoint auto-link radius in metres.
const DefaultConnectionDistance = 0.25

// Waypoint is a named position in world coordinates (metres).
type Waypoint struct {
	ID   string
	X, Y float64
}

// DistanceTo returns the planar distance between two waypoints.
func (w Waypoint) DistanceTo(o Waypoint) float64 {
	return math.Hypot(o.X-w.X, o.Y-w.Y)
}

// Route is the outcome of PlanWaypoints.
type Route struct {
	Waypoints []Waypoint
	Cost      float64
}

// IDs returns the waypoint IDs of the route in order.
func (r Route) IDs() []string {
	out := make([]string, len(r.Waypoints))
	for i, w := range r.Waypoints {
		out[i] = w.ID
	}

	return out
}

// WaypointGraph is an undirected graph of waypoints. A new waypoint is linked
// to every existing waypoint strictly closer than the connection distance and
// to any waypoint named explicitly. Safe for concurrent use.
type WaypointGraph struct {
	mu          sync.RWMutex
	connectDist float64
	order       []string
	nodes       map[string]*waypointNode
}

type waypointNode struct {
	Waypoint
	links map[string]float64 // neighbour ID → distance
}

// NewWaypointGraph creates an empty graph. A non-positive or NaN distance
// selects DefaultConnectionDistance.
func NewWaypointGraph(connectionDistance float64) *WaypointGraph {
	if !(connectionDistance > 0) {
		connectionDistance = DefaultConnectionDistance
	}

	return &WaypointGraph{
		connectDist: connectionDistance,
		nodes:       make(map[string]*waypointNode),
	}
}

// Add inserts wp, links it to every waypoint within the connection distance,
// and additionally to each ID in force regardless of distance.
// Errors: ErrDuplicateWaypoint, ErrUnknownWaypoint (for force).
func (wg *WaypointGraph) Add(wp Waypoint, force ...string) error {
	wg.mu.Lock()
	defer wg.mu.Unlock()

	if _, ok := wg.nodes[wp.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateWaypoint, wp.ID)
	}
	forced := make(map[string]struct{}, len(force))
	for _, id := range force {
		if _, ok := wg.nodes[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownWaypoint, id)
		}
		forced[id] = struct{}{}
	}

	n := &waypointNode{Waypoint: wp, links: make(map[string]float64)}
	for _, id := range wg.order {
		other := wg.nodes[id]
		d := wp.DistanceTo(other.Waypoint)
		if _, f := forced[id]; f || d < wg.connectDist {
			n.links[id] = d
			other.links[wp.ID] = d
		}
	}
	wg.nodes[wp.ID] = n
	wg.order = append(wg.order, wp.ID)

	return nil
}

// Link joins two existing waypoints regardless of distance.
func (wg *WaypointGraph) Link(a, b string) error {
	wg.mu.Lock()
	defer wg.mu.Unlock()

	na, ok := wg.nodes[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownWaypoint, a)
	}
	nb, ok := wg.nodes[b]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownWaypoint, b)
	}
	if a == b {
		return nil
	}
	d := na.DistanceTo(nb.Waypoint)
	na.links[b] = d
	nb.links[a] = d

	return nil
}

// Remove deletes a waypoint and every link to it.
func (wg *WaypointGraph) Remove(id string) error {
	wg.mu.Lock()
	defer wg.mu.Unlock()

	n, ok := wg.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownWaypoint, id)
	}
	for nb := range n.links {
		delete(wg.nodes[nb].links, id)
	}
	delete(wg.nodes, id)
	for i, v := range wg.order {
		if v == id {
			wg.order = append(wg.order[:i], wg.order[i+1:]...)
			break
		}
	}

	return nil
}

// Len returns the number of waypoints.
func (wg *WaypointGraph) Len() int {
	wg.mu.RLock()
	defer wg.mu.RUnlock()

	return len(wg.order)
}

// Neighbors returns the IDs linked to id, sorted.
func (wg *WaypointGraph) Neighbors(id string) ([]string, error) {
	wg.mu.RLock()
	defer wg.mu.RUnlock()

	n, ok := wg.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWaypoint, id)
	}

	return sortedLinks(n), nil
}

// Connected reports whether every waypoint is reachable from the first one added.
// An empty graph is connected.
func (wg *WaypointGraph) Connected() bool {
	wg.mu.RLock()
	defer wg.mu.RUnlock()

	if len(wg.order) == 0 {
		return true
	}
	seen := map[string]struct{}{wg.order[0]: {}}
	stack := []string{wg.order[0]}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for nb := range wg.nodes[id].links {
			if _, ok := seen[nb]; !ok {
				seen[nb] = struct{}{}
				stack = append(stack, nb)
			}
		}
	}

	return len(seen) == len(wg.order)
}

// PlanWaypoints returns the shortest route from → to.
//
// Every waypoint is seeded into the frontier with +Inf and from with 0. Each
// pop reads the popped waypoint's final distance back from the frontier's
// ledger, which keeps scores of popped elements. The route is then rebuilt
// from to by repeatedly stepping to the neighbour whose ledger score plus
// link length is lowest (ties broken by ID).
//
// Errors: ErrUnknownWaypoint, ErrNoRoute, ctx.Err().
func (wg *WaypointGraph) PlanWaypoints(ctx context.Context, from, to string) (Route, error) {
	wg.mu.RLock()
	defer wg.mu.RUnlock()

	for _, id := range [2]string{from, to} {
		if _, ok := wg.nodes[id]; !ok {
			return Route{}, fmt.Errorf("%w: %q", ErrUnknownWaypoint, id)
		}
	}

	// 1) Seed.
	pq := frontier.New[string](frontier.WithCapacity(len(wg.order)))
	for _, id := range wg.order {
		if err := pq.SetScore(id, math.Inf(1)); err != nil {
			return Route{}, err
		}
	}
	if err := pq.SetScore(from, 0); err != nil {
		return Route{}, err
	}

	// 2) Drain.
	for !pq.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return Route{}, err
		}
		id, err := pq.Pop()
		if err != nil {
			return Route{}, err
		}
		score, err := pq.Score(id)
		if err != nil {
			return Route{}, err
		}
		if math.IsInf(score, 1) {
			continue // unreachable from `from`
		}
		for nb, d := range wg.nodes[id].links {
			cur, err := pq.Score(nb)
			if err != nil {
				return Route{}, err
			}
			if ns := score + d; ns < cur {
				if err = pq.SetScore(nb, ns); err != nil {
					return Route{}, err
				}
			}
		}
	}

	total, err := pq.Score(to)
	if err != nil {
		return Route{}, err
	}
	if math.IsInf(total, 1) {
		return Route{}, fmt.Errorf("%w: %q → %q", ErrNoRoute, from, to)
	}

	// 3) Back-track: the predecessor of at is the neighbour nb minimising
	//    Score(nb) + |nb→at|, which equals Score(at) on a shortest route.
	rev := []Waypoint{wg.nodes[to].Waypoint}
	onRoute := map[string]struct{}{to: {}}
	for at := to; at != from; {
		if len(rev) > len(wg.order) {
			return Route{}, fmt.Errorf("%w: back-track did not reach %q", ErrNoRoute, from)
		}
		node := wg.nodes[at]
		next, best := "", math.Inf(1)
		for _, nb := range sortedLinks(node) {
			if _, ok := onRoute[nb]; ok {
				continue
			}
			s, err := pq.Score(nb)
			if err != nil {
				return Route{}, err
			}
			if via := s + node.links[nb]; via < best {
				next, best = nb, via
			}
		}
		if next == "" {
			return Route{}, fmt.Errorf("%w: %q has no reachable links", ErrNoRoute, at)
		}
		at = next
		onRoute[at] = struct{}{}
		rev = append(rev, wg.nodes[at].Waypoint)
	}

	out := make([]Waypoint, len(rev))
	for i, w := range rev {
		out[len(rev)-1-i] = w
	}

	return Route{Waypoints: out, Cost: total}, nil
}

func sortedLinks(n *waypointNode) []string {
	out := make([]string, 0, len(n.links))
	for id := range n.links {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
