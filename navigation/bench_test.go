package navigation_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlnav/costmap"
	"github.com/katalvlaran/lvlnav/navigation"
)

// noisyGrid is an n×n grid with random costs below the default limit.
func noisyGrid(b *testing.B, n int) *costmap.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	costs := make([][]uint8, n)
	for y := range costs {
		costs[y] = make([]uint8, n)
		for x := range costs[y] {
			costs[y][x] = uint8(rng.Intn(navigation.DefaultCostLimit))
		}
	}

	return mustGrid(b, costs)
}

func benchPlanner(b *testing.B, p navigation.Planner, n int) {
	g := noisyGrid(b, n)
	target := costmap.Pose{X: n - 1, Y: n - 1}
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Plan(ctx, g, costmap.Pose{}, target); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDijkstraPlanner_100(b *testing.B) {
	p, _ := navigation.NewDijkstraPlanner()
	benchPlanner(b, p, 100)
}

func BenchmarkAStarPlanner_100(b *testing.B) {
	p, _ := navigation.NewAStarPlanner()
	benchPlanner(b, p, 100)
}

func BenchmarkPlanBatch_16x64(b *testing.B) {
	p, _ := navigation.NewAStarPlanner()
	g := noisyGrid(b, 64)
	reqs := make([]navigation.Request, 16)
	for i := range reqs {
		reqs[i] = navigation.Request{Target: costmap.Pose{X: 63, Y: i * 4}}
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := navigation.PlanBatch(ctx, p, g, reqs, 4); err != nil {
			b.Fatal(err)
		}
	}
}
