// Package core provides the in-memory node/state graph the puzzle solvers
// build over a grid before running a shortest-path search.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Nodes are dense integer handles (NodeID 0,1,2,…) allocated by AddNode,
//     each carrying a payload T (typically the grid cell it stands for).
//   - Edges carry a non-negative int64 weight; AddEdge rejects negative ones,
//     which is the precondition Dijkstra relies on.
//   - Directed graphs store from→to only; undirected graphs mirror each edge.
//   - Outgoing and incoming adjacency are both kept, so a backward walk over
//     predecessors is as cheap as a forward relaxation.
//
// Typical recipe (cell × facing):
//
//	g := core.NewGraph[gridgraph.Vector2d](core.WithDirected(true))
//	for each traversable cell c:
//	    nodes[c] = [4]NodeID{g.AddNode(c), g.AddNode(c), g.AddNode(c), g.AddNode(c)}
//	for each cell c, facing i, neighbour n = c + Orthogonal[i]:
//	    g.AddEdge(nodes[c][i], nodes[n][i], 1)       // step forward
//	    g.AddEdge(nodes[c][i], nodes[c][(i+1)%4], 1000) // turn
//
// A graph is built once per query and never edited in place; callers that
// need a different obstacle layout build a new one.
//
// Errors:
//
//	ErrNodeNotFound   - a handle does not name a node of this graph.
//	ErrNegativeWeight - AddEdge was given a weight below zero.
package core
