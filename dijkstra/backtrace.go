package dijkstra

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/aoc24/core"
)

// MinDistance returns the smallest distance among goals. A goal group is
// typically the state variants of one cell. Returns false when no goal is
// present in dist.
func MinDistance(dist map[core.NodeID]int64, goals ...core.NodeID) (int64, bool) {
	var (
		best  int64
		found bool
	)
	for _, id := range goals {
		d, ok := dist[id]
		if ok && (!found || d < best) {
			best, found = d, true
		}
	}
	return best, found
}

// Backtrace returns every node lying on some minimum-weight path from the
// source of dist to the closest of goals, sorted by handle.
//
// Behavior:
//  1. Pick the goals whose distance equals MinDistance(dist, goals...).
//  2. Walk incoming edges backwards: predecessor p of n is on a shortest path
//     iff dist[n] == dist[p] + weight(p,n).
//  3. Memoize visited nodes so tied paths are explored once.
//
// The walk uses an explicit stack, so deep graphs do not grow the call stack.
// Returns ErrNilGraph for a nil graph and ErrUnreachable when no goal has a
// distance.
//
// Complexity: O(V + E) time, O(V) memory.
func Backtrace[T any](g *core.Graph[T], dist map[core.NodeID]int64, goals ...core.NodeID) ([]core.NodeID, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	best, ok := MinDistance(dist, goals...)
	if !ok {
		return nil, ErrUnreachable
	}

	visited := mapset.New[core.NodeID]()
	work := stack.New[core.NodeID]()
	for _, id := range goals {
		if d, ok := dist[id]; ok && d == best && !visited.Has(id) {
			visited.Put(id)
			work.Push(id)
		}
	}

	for work.Size() > 0 {
		n := work.Pop()
		dn := dist[n]
		for _, e := range g.Incoming(n) {
			if visited.Has(e.From) {
				continue
			}
			dp, ok := dist[e.From]
			if !ok || dp+e.Weight != dn {
				continue
			}
			visited.Put(e.From)
			work.Push(e.From)
		}
	}

	out := make([]core.NodeID, 0, visited.Size())
	visited.Each(func(id core.NodeID) {
		out = append(out, id)
	})
	slices.Sort(out)

	return out, nil
}
