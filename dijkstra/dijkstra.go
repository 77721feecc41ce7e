// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes in a graph with non-negative edge weights.
// It processes nodes in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - core.Graph rejects negative weights at insertion, so no pre-scan is needed.
//   - Unreachable nodes are absent from the distance map rather than set to +∞.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/aoc24/core"
)

// Dijkstra computes shortest distances from the source node (Options.Source)
// to all other nodes reachable in g.
//
// Returns:
//
//   - dist: map from node handle to minimum distance. A node missing from the
//     map is unreachable; callers must check before indexing.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[T any](g *core.Graph[T], opts ...Option) (map[core.NodeID]int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == noSource {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, ErrVertexNotFound
	}

	r := &runner[T]{
		g:       g,
		options: cfg,
		dist:    make(map[core.NodeID]int64),
		visited: make([]bool, g.NodeCount()),
		pq:      make(nodePQ, 0, g.NodeCount()),
	}
	r.init()
	r.process()

	return r.dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[T any] struct {
	g       *core.Graph[T]        // The input graph; read-only within Dijkstra.
	options Options               // Configuration options.
	dist    map[core.NodeID]int64 // Best known distance from Source.
	visited []bool                // Tracks if a node's distance is finalized.
	pq      nodePQ                // Min-heap for the lazy priority queue.
}

// init records the source at distance zero and seeds the heap with it.
func (r *runner[T]) init() {
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop: it repeatedly extracts the node with the minimum
// distance and relaxes its outgoing edges, until the heap is empty or the
// smallest distance exceeds MaxDistance.
func (r *runner[T]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax examines each edge leaving u and improves distances to its neighbours.
// Assumes r.dist[u] is final.
func (r *runner[T]) relax(u core.NodeID) {
	du := r.dist[u]
	for _, e := range r.g.Edges(u) {
		newDist := du + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only, so equal distances do not re-enter the heap.
		if old, ok := r.dist[e.To]; ok && newDist >= old {
			continue
		}
		r.dist[e.To] = newDist
		heap.Push(&r.pq, nodeItem{id: e.To, dist: newDist})
	}
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   core.NodeID
	dist int64
}

// nodePQ is a min-heap of nodeItem, ordered by dist ascending.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
