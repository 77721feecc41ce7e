package core

import (
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// NodeID is the handle of a node within one Graph. Handles are assigned
// densely from zero in AddNode order.
type NodeID int

// Edge is a weighted connection From→To. In an undirected graph each edge is
// reported from both endpoints, with From set to the endpoint asked about.
type Edge struct {
	From   NodeID
	To     NodeID
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(cfg *graphConfig)

type graphConfig struct {
	directed bool
	capacity int
}

// WithDirected sets whether edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(cfg *graphConfig) { cfg.directed = directed }
}

// WithCapacity preallocates room for n nodes.
func WithCapacity(n int) GraphOption {
	return func(cfg *graphConfig) {
		if n > 0 {
			cfg.capacity = n
		}
	}
}

// Graph is a weighted graph whose nodes carry a payload of type T.
//
// It is not safe for concurrent mutation; build it on one goroutine and
// share it read-only afterwards.
type Graph[T any] struct {
	directed bool

	nodes    []T      // NodeID → payload
	out      [][]Edge // NodeID → outgoing edges
	in       [][]Edge // NodeID → incoming edges
	numEdges int
}

// NewGraph creates an empty Graph. By default it is undirected.
// Complexity: O(capacity).
func NewGraph[T any](opts ...GraphOption) *Graph[T] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T]{
		directed: cfg.directed,
		nodes:    make([]T, 0, cfg.capacity),
		out:      make([][]Edge, 0, cfg.capacity),
		in:       make([][]Edge, 0, cfg.capacity),
	}
}
