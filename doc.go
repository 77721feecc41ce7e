// Package aoc24 collects the grid and shortest-path puzzles of Advent of
// Code 2024 around a small shared core.
//
// 🚀 What is inside?
//
//	• gridgraph/: Vector2d, direction sets, the read-only byte Grid, flood
//	  fill and conversion of open cells into a core.Graph
//	• core/     : compact directed/undirected weighted graph over any node
//	  payload, addressed by dense NodeID handles
//	• dijkstra/ : single-source distances, goal-group minimum, and the
//	  backward trace recovering every node of every shortest path
//	• internal/ : configuration, solver registry and the day programs
//	• cmd/aoc   : the command-line runner
//
// ✨ The cell×state pattern
//
// Puzzles whose cost depends on more than position (facing, cheat budget,
// time) are modelled as a graph with one node per (cell, state) pair. The
// caller keeps a lookup from the pair to its core.NodeID, adds edges for
// moves and state changes, then asks dijkstra for distances from the start
// node and reduces a goal group with dijkstra.MinDistance.
//
//	g := core.NewGraph[state](core.WithDirected(true))
//	// ... AddNode per (cell, facing), AddEdge per move and turn
//	dist, _ := dijkstra.Dijkstra(g, dijkstra.Source(start))
//	best, ok := dijkstra.MinDistance(dist, goals...)
//	cells, _ := dijkstra.Backtrace(g, dist, goals...)
//
// Quick start:
//
//	go run ./cmd/aoc list
//	AOC24_INPUT_DIR=./inputs go run ./cmd/aoc run 16
package aoc24
