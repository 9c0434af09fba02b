package navigation_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnav/navigation"
)

// chain builds A-B-C-D spaced 0.2 m apart on the x axis (connection distance 0.25).
func chain(t *testing.T) *navigation.WaypointGraph {
	t.Helper()
	wg := navigation.NewWaypointGraph(0.25)
	for i, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, wg.Add(navigation.Waypoint{ID: id, X: 0.2 * float64(i)}))
	}

	return wg
}

func TestWaypointGraph_AutoLinks(t *testing.T) {
	wg := chain(t)
	assert.Equal(t, 4, wg.Len())
	assert.True(t, wg.Connected())

	nb, err := wg.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, nb)

	nb, err = wg.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, nb)

	_, err = wg.Neighbors("Z")
	assert.ErrorIs(t, err, navigation.ErrUnknownWaypoint)
}

func TestWaypointGraph_AddErrors(t *testing.T) {
	wg := chain(t)
	assert.ErrorIs(t, wg.Add(navigation.Waypoint{ID: "A"}), navigation.ErrDuplicateWaypoint)
	assert.ErrorIs(t, wg.Add(navigation.Waypoint{ID: "E"}, "nope"), navigation.ErrUnknownWaypoint)
	assert.Equal(t, 4, wg.Len(), "failed Add must not insert")
	assert.ErrorIs(t, wg.Link("A", "nope"), navigation.ErrUnknownWaypoint)
	assert.ErrorIs(t, wg.Remove("nope"), navigation.ErrUnknownWaypoint)
}

func TestNewWaypointGraph_DefaultDistance(t *testing.T) {
	wg := navigation.NewWaypointGraph(0)
	require.NoError(t, wg.Add(navigation.Waypoint{ID: "a"}))
	require.NoError(t, wg.Add(navigation.Waypoint{ID: "b", X: navigation.DefaultConnectionDistance - 0.01}))
	require.NoError(t, wg.Add(navigation.Waypoint{ID: "c", X: -navigation.DefaultConnectionDistance}))
	nb, err := wg.Neighbors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, nb, "the connection distance is exclusive")
}

func TestPlanWaypoints_Chain(t *testing.T) {
	wg := chain(t)
	route, err := wg.PlanWaypoints(context.Background(), "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, route.IDs())
	assert.InDelta(t, 0.6, route.Cost, 1e-9)

	route, err = wg.PlanWaypoints(context.Background(), "D", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "C", "B"}, route.IDs())

	route, err = wg.PlanWaypoints(context.Background(), "C", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, route.IDs())
	assert.Equal(t, 0.0, route.Cost)
}

func TestPlanWaypoints_ForcedLinkAndShortcut(t *testing.T) {
	wg := chain(t)
	require.NoError(t, wg.Add(navigation.Waypoint{ID: "E", X: 5, Y: 5}))

	_, err := wg.PlanWaypoints(context.Background(), "A", "E")
	assert.ErrorIs(t, err, navigation.ErrNoRoute)
	assert.False(t, wg.Connected())

	require.NoError(t, wg.Link("D", "E"))
	route, err := wg.PlanWaypoints(context.Background(), "A", "E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, route.IDs())
	assert.InDelta(t, 0.6+math.Hypot(4.4, 5), route.Cost, 1e-9)

	// A forced A-E link is shorter than going through the chain.
	require.NoError(t, wg.Link("A", "E"))
	route, err = wg.PlanWaypoints(context.Background(), "A", "E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "E"}, route.IDs())
	assert.InDelta(t, math.Hypot(5, 5), route.Cost, 1e-9)
}

func TestPlanWaypoints_AddWithForce(t *testing.T) {
	wg := chain(t)
	require.NoError(t, wg.Add(navigation.Waypoint{ID: "F", X: 0.6, Y: 3}, "D"))
	route, err := wg.PlanWaypoints(context.Background(), "A", "F")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "F"}, route.IDs())
	assert.Equal(t, "F", route.Waypoints[4].ID)
	assert.Equal(t, 3.0, route.Waypoints[4].Y)
}

func TestPlanWaypoints_RemoveBreaksRoute(t *testing.T) {
	wg := chain(t)
	require.NoError(t, wg.Remove("B"))
	assert.Equal(t, 3, wg.Len())

	nb, err := wg.Neighbors("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"D"}, nb)

	_, err = wg.PlanWaypoints(context.Background(), "A", "D")
	assert.ErrorIs(t, err, navigation.ErrNoRoute)
	_, err = wg.PlanWaypoints(context.Background(), "B", "D")
	assert.ErrorIs(t, err, navigation.ErrUnknownWaypoint)
}

// routeLength sums the link lengths along a route.
func routeLength(r navigation.Route) float64 {
	total := 0.0
	for i := 1; i < len(r.Waypoints); i++ {
		total += r.Waypoints[i-1].DistanceTo(r.Waypoints[i])
	}

	return total
}

func TestPlanWaypoints_BranchPicksPredecessor(t *testing.T) {
	// X sits closest to S, but its forced link to T is longer than S-Y-T.
	wg := navigation.NewWaypointGraph(0.25)
	require.NoError(t, wg.Add(navigation.Waypoint{ID: "S", X: 0}))
	require.NoError(t, wg.Add(navigation.Waypoint{ID: "Y", X: 0.2}))
	require.NoError(t, wg.Add(navigation.Waypoint{ID: "T", X: 0.4}))
	require.NoError(t, wg.Add(navigation.Waypoint{ID: "X", X: -0.1}))
	require.NoError(t, wg.Link("X", "T"))

	route, err := wg.PlanWaypoints(context.Background(), "S", "T")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "Y", "T"}, route.IDs())
	assert.InDelta(t, 0.4, route.Cost, 1e-9)
	assert.InDelta(t, route.Cost, routeLength(route), 1e-9)
}

func TestPlanWaypoints_RouteLengthMatchesCost(t *testing.T) {
	// 5×5 lattice, 0.2 m apart: auto-links are orthogonal only, plus a few long shortcuts.
	wg := navigation.NewWaypointGraph(0.25)
	var ids []string
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			id := string(rune('a'+y)) + string(rune('0'+x))
			ids = append(ids, id)
			require.NoError(t, wg.Add(navigation.Waypoint{ID: id, X: 0.2 * float64(x), Y: 0.2 * float64(y)}))
		}
	}
	require.NoError(t, wg.Link("a0", "e4"))
	require.NoError(t, wg.Link("a1", "c3"))
	require.NoError(t, wg.Link("e0", "b2"))
	require.NoError(t, wg.Link("d1", "a4"))

	for _, from := range ids {
		for _, to := range ids {
			route, err := wg.PlanWaypoints(context.Background(), from, to)
			require.NoError(t, err, "%s → %s", from, to)
			assert.Equal(t, from, route.Waypoints[0].ID)
			assert.Equal(t, to, route.Waypoints[len(route.Waypoints)-1].ID)
			assert.InDelta(t, route.Cost, routeLength(route), 1e-9, "%s → %s: %v", from, to, route.IDs())
		}
	}
}

func TestPlanWaypoints_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := chain(t).PlanWaypoints(ctx, "A", "D")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlanWaypoints_EmptyGraphConnected(t *testing.T) {
	assert.True(t, navigation.NewWaypointGraph(1).Connected())
}
