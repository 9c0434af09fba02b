// Command navplan plans a path across a cost map file.
//
//	navplan [--config file] [--map file] [--algorithm dijkstra|astar] [--] <ox> <oy> <tx> <ty>
//
// Origin and target are world coordinates in metres. A negative coordinate
// reads like a flag, so put -- before the coordinates when one is negative. The path is printed one
// pose per line as world coordinates of the cell centres, followed by a
// summary line starting with '#'.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvlnav/costmap"
	"github.com/katalvlaran/lvlnav/internal/config"
	"github.com/katalvlaran/lvlnav/internal/logging"
	"github.com/katalvlaran/lvlnav/navigation"
)

const usage = "usage: navplan [--config file] [--map file] [--algorithm name] [--] <ox> <oy> <tx> <ty>\n" +
	"       use -- before the coordinates when any of them is negative"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("navplan", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "TOML config file (default $NAVPLAN_CONFIG or ~/.config/navplan/config.toml)")
	mapPath := fs.String("map", "", "cost map file, overrides map.path")
	algorithm := fs.String("algorithm", "", "dijkstra or astar, overrides planner.algorithm")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "navplan:", err)
		fmt.Fprintln(stderr, usage)
		return 2
	}
	if fs.NArg() != 4 {
		fmt.Fprintln(stderr, usage)
		return 2
	}
	var coords [4]float64
	for i, a := range fs.Args() {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			fmt.Fprintf(stderr, "navplan: bad coordinate %q\n", a)
			return 2
		}
		coords[i] = v
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, "navplan:", err)
		return 1
	}
	if *mapPath != "" {
		cfg.Map.Path = *mapPath
	}
	if *algorithm != "" {
		cfg.Planner.Algorithm = *algorithm
	}
	if err = cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "navplan:", err)
		return 1
	}

	logger, err := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintln(stderr, "navplan:", err)
		return 1
	}

	grid, err := costmap.LoadFile(cfg.Map.Path,
		costmap.WithOrigin(cfg.Map.OriginX, cfg.Map.OriginY),
		costmap.WithResolution(cfg.Map.Resolution),
	)
	if err != nil {
		logger.Error("load map", "path", cfg.Map.Path, "error", err)
		return 1
	}
	logger.Debug("map loaded", "path", cfg.Map.Path, "width", grid.Width(), "height", grid.Height())

	opts := []navigation.Option{
		navigation.WithCostLimit(cfg.Planner.CostLimit),
		navigation.WithCostScale(cfg.Planner.CostScale),
		navigation.WithMaxExpansions(cfg.Planner.MaxExpansions),
		navigation.WithLogger(logger),
	}
	var planner navigation.Planner
	if cfg.Planner.Algorithm == "astar" {
		planner, err = navigation.NewAStarPlanner(opts...)
	} else {
		planner, err = navigation.NewDijkstraPlanner(opts...)
	}
	if err != nil {
		logger.Error("build planner", "error", err)
		return 1
	}

	origin := grid.Discretize(coords[0], coords[1])
	target := grid.Discretize(coords[2], coords[3])
	res, err := planner.Plan(ctx, grid, origin, target)
	if err != nil {
		logger.Error("plan", "origin", origin.String(), "target", target.String(), "error", err)
		return 1
	}

	for _, xy := range res.Path.ToWorld(grid.Resolution()) {
		fmt.Fprintf(stdout, "%.3f %.3f\n", xy[0], xy[1])
	}
	fmt.Fprintf(stdout, "# planner=%s poses=%d length=%.3f cost=%.3f expanded=%d run_id=%s\n",
		cfg.Planner.Algorithm, res.Path.Len(), res.Path.Length()*grid.Resolution(), res.Cost, res.Expanded, res.RunID)

	return 0
}
