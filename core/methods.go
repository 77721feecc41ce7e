package core

import (
	"fmt"
	"iter"
)

// AddNode appends a node carrying payload and returns its handle.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddNode(payload T) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, payload)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return id
}

// HasNode reports whether id names a node of g.
func (g *Graph[T]) HasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Node returns the payload stored for id.
func (g *Graph[T]) Node(id NodeID) (T, error) {
	if !g.HasNode(id) {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	return g.nodes[id], nil
}

// Nodes yields every handle with its payload in handle order.
func (g *Graph[T]) Nodes() iter.Seq2[NodeID, T] {
	return func(yield func(NodeID, T) bool) {
		for i, p := range g.nodes {
			if !yield(NodeID(i), p) {
				return
			}
		}
	}
}

// AddEdge connects from→to with the given weight. Undirected graphs also get
// the mirrored to→from entry; a self-loop is stored once.
//
// Steps:
//  1. Validate both handles (ErrNodeNotFound).
//  2. Reject weight < 0 (ErrNegativeWeight).
//  3. Append to out[from] and in[to].
//  4. Mirror when undirected and from != to.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddEdge(from, to NodeID, weight int64) error {
	if !g.HasNode(from) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	if !g.HasNode(to) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, to)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %d→%d weight=%d", ErrNegativeWeight, from, to, weight)
	}

	e := Edge{From: from, To: to, Weight: weight}
	g.out[from] = append(g.out[from], e)
	g.in[to] = append(g.in[to], e)
	if !g.directed && from != to {
		m := Edge{From: to, To: from, Weight: weight}
		g.out[to] = append(g.out[to], m)
		g.in[from] = append(g.in[from], m)
	}
	g.numEdges++

	return nil
}

// Edges returns the edges leaving id, in insertion order.
// Returns nil for unknown handles. The slice must not be modified.
func (g *Graph[T]) Edges(id NodeID) []Edge {
	if !g.HasNode(id) {
		return nil
	}
	return g.out[id]
}

// Incoming returns the edges arriving at id, in insertion order.
// Returns nil for unknown handles. The slice must not be modified.
func (g *Graph[T]) Incoming(id NodeID) []Edge {
	if !g.HasNode(id) {
		return nil
	}
	return g.in[id]
}

// HasEdge reports whether at least one edge from→to exists.
func (g *Graph[T]) HasEdge(from, to NodeID) bool {
	_, ok := g.Weight(from, to)
	return ok
}

// Weight returns the lowest weight among the edges from→to.
func (g *Graph[T]) Weight(from, to NodeID) (int64, bool) {
	var (
		best  int64
		found bool
	)
	for _, e := range g.Edges(from) {
		if e.To == to && (!found || e.Weight < best) {
			best, found = e.Weight, true
		}
	}
	return best, found
}

// Directed reports whether edges are one-way.
func (g *Graph[T]) Directed() bool { return g.directed }

// NodeCount returns |V|.
func (g *Graph[T]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of AddEdge calls that succeeded.
// A mirrored undirected edge counts once.
func (g *Graph[T]) EdgeCount() int { return g.numEdges }
