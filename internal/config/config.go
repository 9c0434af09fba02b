// Package config loads navplan settings from defaults, a TOML file and
// NAVPLAN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Config holds application configuration.
type Config struct {
	Map     MapConfig
	Planner PlannerConfig
	Log     LogConfig
}

// MapConfig locates the cost map and places it in the world.
type MapConfig struct {
	Path       string
	Resolution float64
	OriginX    int `mapstructure:"origin_x"`
	OriginY    int `mapstructure:"origin_y"`
}

// PlannerConfig selects and tunes the planner.
type PlannerConfig struct {
	Algorithm     string
	CostLimit     int     `mapstructure:"cost_limit"`
	CostScale     float64 `mapstructure:"cost_scale"`
	MaxExpansions int     `mapstructure:"max_expansions"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration. path wins over NAVPLAN_CONFIG, which wins over
// $HOME/.config/navplan/config.toml. An explicitly named file must exist; the
// default one is optional. Env var overrides use prefix NAVPLAN_.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("map.path", "")
	v.SetDefault("map.resolution", 0.05)
	v.SetDefault("map.origin_x", 0)
	v.SetDefault("map.origin_y", 0)
	v.SetDefault("planner.algorithm", "dijkstra")
	v.SetDefault("planner.cost_limit", 100)
	v.SetDefault("planner.cost_scale", 0.1)
	v.SetDefault("planner.max_expansions", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("NAVPLAN_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "navplan"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NAVPLAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return c, nil
}

// Validate checks values the planners would otherwise reject later.
func (c Config) Validate() error {
	switch {
	case c.Map.Path == "":
		return fmt.Errorf("%w: map.path is empty", ErrInvalid)
	case !(c.Map.Resolution > 0) || math.IsInf(c.Map.Resolution, 0):
		return fmt.Errorf("%w: map.resolution %g", ErrInvalid, c.Map.Resolution)
	case c.Planner.Algorithm != "dijkstra" && c.Planner.Algorithm != "astar":
		return fmt.Errorf("%w: planner.algorithm %q (want dijkstra or astar)", ErrInvalid, c.Planner.Algorithm)
	}

	return nil
}
