package frontier

import "errors"

// Sentinel errors returned by Heap operations.
var (
	// ErrEmptyHeap indicates Pop or Peek was called on an empty frontier.
	ErrEmptyHeap = errors.New("frontier: heap is empty")

	// ErrNotFound indicates Score was called for an element that was never scored.
	ErrNotFound = errors.New("frontier: element has no recorded score")

	// ErrInvalidScore indicates SetScore was called with NaN, which cannot be ordered.
	ErrInvalidScore = errors.New("frontier: score must not be NaN")

	// ErrBadCapacity indicates WithCapacity was given a negative value.
	ErrBadCapacity = errors.New("frontier: capacity must be non-negative")
)

// Entry pairs an element with the score it was queued under.
type Entry[T comparable] struct {
	Element T
	Score   float64
}

// Options configures a Heap at construction time.
//
// Capacity – expected number of distinct elements; used to pre-size the frontier
// slice and both maps. Zero means "grow on demand".
type Options struct {
	Capacity int
}

// Option represents a functional option for New.
type Option func(*Options)

// WithCapacity pre-allocates storage for n elements.
// Panics with ErrBadCapacity if n < 0.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// DefaultOptions returns the zero configuration: no pre-allocation.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}
