// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/aoc24/core"
	"github.com/katalvlaran/aoc24/dijkstra"
)

// ExampleDijkstra_triangle demonstrates computing shortest paths on a simple triangle graph.
// Complexity: O((V+E) log V) because we push/pop up to E entries and extract each node once.
func ExampleDijkstra_triangle() {
	g := core.NewGraph[string]()
	a, b, c := g.AddNode("A"), g.AddNode("B"), g.AddNode("C")
	_ = g.AddEdge(a, b, 1)
	_ = g.AddEdge(b, c, 2)
	_ = g.AddEdge(a, c, 5)

	dist, err := dijkstra.Dijkstra(g, dijkstra.Source(a))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[A]=%d, dist[B]=%d, dist[C]=%d\n", dist[a], dist[b], dist[c])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExampleBacktrace shows how tied shortest paths are merged: both middle
// nodes of the square are reported.
//
//	A──B
//	│  │
//	C──D
func ExampleBacktrace() {
	g := core.NewGraph[string]()
	a, b, c, d := g.AddNode("A"), g.AddNode("B"), g.AddNode("C"), g.AddNode("D")
	_ = g.AddEdge(a, b, 1)
	_ = g.AddEdge(a, c, 1)
	_ = g.AddEdge(b, d, 1)
	_ = g.AddEdge(c, d, 1)

	dist, _ := dijkstra.Dijkstra(g, dijkstra.Source(a))
	nodes, _ := dijkstra.Backtrace(g, dist, d)
	for _, id := range nodes {
		name, _ := g.Node(id)
		fmt.Print(name, " ")
	}
	fmt.Println()
	// Output: A B C D
}
