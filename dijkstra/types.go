// Package dijkstra defines configuration options and sentinel errors
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      cap on distances to explore; vertices beyond it stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– Target:           stop as soon as this vertex is finalized.
//	– Ctx:              cancellation / deadline, polled once per finalized vertex.
//
// Errors (sentinel):
//
//	– ErrEmptySource      if the provided source ID is empty.
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrUnweightedGraph  if the graph is not configured to support weights.
//	– ErrVertexNotFound   if the source vertex does not exist in the graph.
//	– ErrTargetNotFound   if a target was set but does not exist in the graph.
//	– ErrNegativeWeight   if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance   if MaxDistance < 0 or NaN (panic in WithMaxDistance).
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0 or NaN (panic in WithInfEdgeThreshold).
//	– ErrNoPath           from PathTo when the target was not reached.
package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrTargetNotFound indicates that the configured target does not exist in the graph.
	ErrTargetNotFound = errors.New("dijkstra: target vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that no path from source to target was found.
	ErrNoPath = errors.New("dijkstra: target not reachable from source")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           string          // The ID of the source vertex
	Target           string          // Optional early-exit vertex ("" = explore everything)
	ReturnPath       bool            // Whether to return the predecessor map
	MaxDistance      float64         // Maximum distance to explore
	InfEdgeThreshold float64         // Weight threshold at or above which edges are non-traversable
	Ctx              context.Context // Cancellation and deadlines
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Must be supplied.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithTarget stops the search once target has been finalized. Distances of
// vertices that were never finalized are upper bounds (or +Inf).
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance for negative or NaN values.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Panics with ErrBadInfThreshold for values <= 0 or NaN.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithContext sets a context; the search returns ctx.Err() once it is done.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex ID.
//
// Defaults:
//   - ReturnPath:       false.
//   - MaxDistance:      +Inf (explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
//   - Ctx:              context.Background().
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Ctx:              context.Background(),
	}
}
