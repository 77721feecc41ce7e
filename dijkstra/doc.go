// Package dijkstra provides single-source shortest paths over core.Graph and
// the backward trace that recovers every node lying on some shortest path.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a source node to all
//     reachable nodes in O((V + E) log V) time.
//   - Nodes that cannot be reached are absent from the returned map. Treat a
//     missing key as “unreachable”, never as distance zero.
//   - MinDistance reduces a goal group (e.g. the four facing variants of one
//     cell) to its best distance.
//   - Backtrace walks predecessors whose distance plus edge weight closes the
//     gap exactly, collecting every node of every tied optimal path.
//
// API reference:
//
//	func Dijkstra[T any](g *core.Graph[T], opts ...Option) (map[core.NodeID]int64, error)
//	func MinDistance(dist map[core.NodeID]int64, goals ...core.NodeID) (int64, bool)
//	func Backtrace[T any](g *core.Graph[T], dist map[core.NodeID]int64, goals ...core.NodeID) ([]core.NodeID, error)
//
// Options:
//
//   - Source(id):           required, the starting node.
//   - WithMaxDistance(d):   explore only nodes with distance ≤ d (d ≥ 0).
//
// Thread safety:
//
//   - Dijkstra only reads g; concurrent queries on an unchanging graph are fine.
package dijkstra
