// Package day16 runs the reindeer maze: moving forward costs 1, turning a
// quarter costs 1000. The state graph has one node per (cell, facing).
package day16

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/aoc24/core"
	"github.com/katalvlaran/aoc24/dijkstra"
	"github.com/katalvlaran/aoc24/gridgraph"
)

const (
	stepCost int64 = 1
	turnCost int64 = 1000
	// east is the index of (1,0) in gridgraph.Orthogonal.
	east = 0
)

// state is a node payload: a position and an index into gridgraph.Orthogonal.
type state struct {
	Pos    gridgraph.Vector2d
	Facing int
}

// maze is the built state graph plus the handles needed to query it.
type maze struct {
	graph *core.Graph[state]
	// nodes[p][i] is the handle for facing i at p.
	nodes map[gridgraph.Vector2d][4]core.NodeID
	start core.NodeID
	goals []core.NodeID
}

// build creates four nodes per open cell, then wires them:
//  1. a[i] -> b[i] with stepCost when b is the open neighbour in direction i;
//  2. a[i] -> a[i±1] with turnCost.
func build(input string) (*maze, error) {
	g, err := gridgraph.New(input)
	if err != nil {
		return nil, err
	}
	s, err := g.Find('S')
	if err != nil {
		return nil, err
	}
	e, err := g.Find('E')
	if err != nil {
		return nil, err
	}

	m := &maze{
		graph: core.NewGraph[state](core.WithDirected(true), core.WithCapacity(4*g.Width()*g.Height())),
		nodes: make(map[gridgraph.Vector2d][4]core.NodeID),
	}
	for p, c := range g.All() {
		if c == '#' {
			continue
		}
		var ids [4]core.NodeID
		for i := range ids {
			ids[i] = m.graph.AddNode(state{Pos: p, Facing: i})
		}
		m.nodes[p] = ids
	}

	for p, a := range m.nodes {
		for i, d := range gridgraph.Orthogonal {
			if b, ok := m.nodes[p.Add(d)]; ok {
				if err := m.graph.AddEdge(a[i], b[i], stepCost); err != nil {
					return nil, err
				}
			}
			if err := m.graph.AddEdge(a[i], a[(i+1)%4], turnCost); err != nil {
				return nil, err
			}
			if err := m.graph.AddEdge(a[i], a[(i+3)%4], turnCost); err != nil {
				return nil, err
			}
		}
	}

	m.start = m.nodes[s][east]
	goal := m.nodes[e]
	m.goals = goal[:]
	return m, nil
}

func (m *maze) distances() (map[core.NodeID]int64, error) {
	return dijkstra.Dijkstra(m.graph, dijkstra.Source(m.start))
}

// best returns the lowest score over the goal facings.
func (m *maze) best(dist map[core.NodeID]int64) (int64, error) {
	score, ok := dijkstra.MinDistance(dist, m.goals...)
	if !ok {
		return 0, fmt.Errorf("day16: %w", dijkstra.ErrUnreachable)
	}
	return score, nil
}

// seats counts the cells lying on at least one lowest-score path.
func (m *maze) seats(dist map[core.NodeID]int64) (int, error) {
	onPath, err := dijkstra.Backtrace(m.graph, dist, m.goals...)
	if err != nil {
		return 0, fmt.Errorf("day16: %w", err)
	}

	cells := mapset.New[gridgraph.Vector2d]()
	for _, id := range onPath {
		st, err := m.graph.Node(id)
		if err != nil {
			return 0, err
		}
		cells.Put(st.Pos)
	}
	return cells.Size(), nil
}

// solve builds the maze and runs Dijkstra once for both answers.
func solve(input string) (int64, int, error) {
	m, err := build(input)
	if err != nil {
		return 0, 0, err
	}
	dist, err := m.distances()
	if err != nil {
		return 0, 0, err
	}
	score, err := m.best(dist)
	if err != nil {
		return 0, 0, err
	}
	cells, err := m.seats(dist)
	if err != nil {
		return 0, 0, err
	}
	return score, cells, nil
}

// Part1 returns the lowest score from S (facing east) to E in any facing.
func Part1(input string) (int64, error) {
	m, err := build(input)
	if err != nil {
		return 0, err
	}
	dist, err := m.distances()
	if err != nil {
		return 0, err
	}
	return m.best(dist)
}

// Part2 counts the cells lying on at least one lowest-score path.
func Part2(input string) (int, error) {
	m, err := build(input)
	if err != nil {
		return 0, err
	}
	dist, err := m.distances()
	if err != nil {
		return 0, err
	}
	return m.seats(dist)
}
