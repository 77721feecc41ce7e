package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/aoc24/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source node was configured.
	ErrNoSource = errors.New("dijkstra: source node not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source node does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnreachable indicates that none of the goal nodes has a distance.
	ErrUnreachable = errors.New("dijkstra: goal unreachable from source")
)

// noSource marks Options.Source as unset.
const noSource core.NodeID = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting node handle (must be set and present in the graph).
// MaxDistance – optional cap on distances to explore (nodes beyond are absent
//
//	from the result). Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Source      core.NodeID // The handle of the source node
	MaxDistance int64       // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options.
// Must be called to specify the starting node.
func Source(id core.NodeID) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct with no source and no distance cap.
func DefaultOptions() Options {
	return Options{
		Source:      noSource,
		MaxDistance: math.MaxInt64,
	}
}
