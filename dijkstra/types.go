// This file declares the sentinel errors and functional options for the
// Dijkstra engine.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/pathfind/path"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates a negative edge weight was found during the
	// optional validation pre-scan. Without WithValidateWeights the engine
	// never raises it; the run proceeds and the result is undefined.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates WithMaxDistance was given a negative cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures a single Dijkstra run.
//
// ValidateWeights – scan all edges for negative weights before running and
// fail fast with ErrNegativeWeight. Off by default: the scan costs O(E) and
// the non-negativity precondition is the caller's contract.
//
// MaxDistance – vertices whose shortest distance exceeds this cap are never
// finalized; their table entries stay Inf/None. Default path.Inf (no cap).
type Options struct {
	ValidateWeights bool
	MaxDistance     path.Weight
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// WithValidateWeights enables the debug-mode negative-weight pre-scan.
func WithValidateWeights() Option {
	return func(o *Options) { o.ValidateWeights = true }
}

// WithMaxDistance caps exploration at the given distance.
// Panics on a negative cap; a misconfigured threshold is a programming error
// best surfaced at construction time.
func WithMaxDistance(max path.Weight) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the Options used when no overrides are supplied:
// no validation pass, no distance cap.
func DefaultOptions() Options {
	return Options{
		ValidateWeights: false,
		MaxDistance:     path.Inf,
	}
}
