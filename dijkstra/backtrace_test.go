package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/aoc24/core"
	"github.com/katalvlaran/aoc24/dijkstra"
	"github.com/katalvlaran/aoc24/gridgraph"
)

// BacktraceSuite groups tests for MinDistance and Backtrace.
type BacktraceSuite struct {
	suite.Suite
}

// TestDiamondTies: S→A→T and S→B→T both cost 2, so all four nodes lie on a
// shortest path; the detour S→C→T (cost 5) does not.
func (s *BacktraceSuite) TestDiamondTies() {
	g, id := buildNamed(true, "S", "A", "B", "C", "T")
	for _, e := range []struct {
		u, v string
		w    int64
	}{
		{"S", "A", 1}, {"A", "T", 1},
		{"S", "B", 1}, {"B", "T", 1},
		{"S", "C", 1}, {"C", "T", 4},
	} {
		require.NoError(s.T(), g.AddEdge(id[e.u], id[e.v], e.w))
	}

	dist, err := dijkstra.Dijkstra(g, dijkstra.Source(id["S"]))
	require.NoError(s.T(), err)

	nodes, err := dijkstra.Backtrace(g, dist, id["T"])
	require.NoError(s.T(), err)
	require.Equal(s.T(), []core.NodeID{id["S"], id["A"], id["B"], id["T"]}, nodes)
}

// TestGoalGroupPicksClosest: of two goal variants only the cheaper one seeds
// the walk.
func (s *BacktraceSuite) TestGoalGroupPicksClosest() {
	g, id := buildNamed(true, "S", "G1", "G2", "X")
	require.NoError(s.T(), g.AddEdge(id["S"], id["G1"], 3))
	require.NoError(s.T(), g.AddEdge(id["S"], id["X"], 1))
	require.NoError(s.T(), g.AddEdge(id["X"], id["G2"], 5))

	dist, err := dijkstra.Dijkstra(g, dijkstra.Source(id["S"]))
	require.NoError(s.T(), err)

	best, ok := dijkstra.MinDistance(dist, id["G1"], id["G2"])
	require.True(s.T(), ok)
	require.Equal(s.T(), int64(3), best)

	nodes, err := dijkstra.Backtrace(g, dist, id["G1"], id["G2"])
	require.NoError(s.T(), err)
	require.Equal(s.T(), []core.NodeID{id["S"], id["G1"]}, nodes)
}

// TestUnreachable: a goal absent from dist is reported, not defaulted.
func (s *BacktraceSuite) TestUnreachable() {
	g, id := buildNamed(true, "S", "T")

	dist, err := dijkstra.Dijkstra(g, dijkstra.Source(id["S"]))
	require.NoError(s.T(), err)

	_, ok := dijkstra.MinDistance(dist, id["T"])
	require.False(s.T(), ok)

	_, err = dijkstra.Backtrace(g, dist, id["T"])
	require.ErrorIs(s.T(), err, dijkstra.ErrUnreachable)

	_, err = dijkstra.Backtrace[string](nil, dist, id["T"])
	require.ErrorIs(s.T(), err, dijkstra.ErrNilGraph)
}

// TestBounds: the trace always contains the goal and never more than the
// reachable nodes.
func (s *BacktraceSuite) TestBounds() {
	const n = 30
	g := core.NewGraph[int]()
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	// Ladder: i->i+1 and i->i+2 with weights that create many ties.
	for i := 0; i+1 < n; i++ {
		require.NoError(s.T(), g.AddEdge(core.NodeID(i), core.NodeID(i+1), 1))
		if i+2 < n {
			require.NoError(s.T(), g.AddEdge(core.NodeID(i), core.NodeID(i+2), 2))
		}
	}

	dist, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(s.T(), err)

	for goal := 0; goal < n; goal++ {
		nodes, err := dijkstra.Backtrace(g, dist, core.NodeID(goal))
		require.NoError(s.T(), err)
		require.GreaterOrEqual(s.T(), len(nodes), 1)
		require.LessOrEqual(s.T(), len(nodes), len(dist))
		require.Contains(s.T(), nodes, core.NodeID(goal))
		require.Contains(s.T(), nodes, core.NodeID(0))
	}
}

// cellFacing is a node payload for a grid cell seen with one facing.
type cellFacing struct {
	pos    gridgraph.Vector2d
	facing int
}

// TestCellFacingBounds builds a cell×facing graph (move 1, quarter turn
// 1000) on a ring-shaped grid. Several nodes share a cell, so the trace is
// counted in cells: every goal cell yields at least one cell and never more
// than the reachable cells, the source cell included.
func (s *BacktraceSuite) TestCellFacingBounds() {
	grid := gridgraph.MustNew("#####\n#S..#\n#.#.#\n#...#\n#####\n")
	g := core.NewGraph[cellFacing](core.WithDirected(true))
	nodes := make(map[gridgraph.Vector2d][4]core.NodeID)
	for p, c := range grid.All() {
		if c == '#' {
			continue
		}
		var ids [4]core.NodeID
		for i := range ids {
			ids[i] = g.AddNode(cellFacing{pos: p, facing: i})
		}
		nodes[p] = ids
	}
	for p, a := range nodes {
		for i, d := range gridgraph.Orthogonal {
			if b, ok := nodes[p.Add(d)]; ok {
				require.NoError(s.T(), g.AddEdge(a[i], b[i], 1))
			}
			require.NoError(s.T(), g.AddEdge(a[i], a[(i+1)%4], 1000))
			require.NoError(s.T(), g.AddEdge(a[i], a[(i+3)%4], 1000))
		}
	}

	start, err := grid.Find('S')
	require.NoError(s.T(), err)
	dist, err := dijkstra.Dijkstra(g, dijkstra.Source(nodes[start][0]))
	require.NoError(s.T(), err)

	reachable := make(map[gridgraph.Vector2d]bool)
	for id := range dist {
		n, err := g.Node(id)
		require.NoError(s.T(), err)
		reachable[n.pos] = true
	}
	require.Len(s.T(), reachable, 8)

	cellsOnPath := func(goal gridgraph.Vector2d) map[gridgraph.Vector2d]bool {
		goals := nodes[goal]
		trace, err := dijkstra.Backtrace(g, dist, goals[:]...)
		require.NoError(s.T(), err)
		cells := make(map[gridgraph.Vector2d]bool)
		for _, id := range trace {
			n, err := g.Node(id)
			require.NoError(s.T(), err)
			cells[n.pos] = true
		}
		return cells
	}

	for goal := range nodes {
		cells := cellsOnPath(goal)
		require.GreaterOrEqual(s.T(), len(cells), 1)
		require.LessOrEqual(s.T(), len(cells), len(reachable))
		require.True(s.T(), cells[start], "goal %v: source cell missing", goal)
		require.True(s.T(), cells[goal], "goal %v: goal cell missing", goal)
	}

	// The start cell alone: four facing nodes, one cell.
	require.Len(s.T(), cellsOnPath(start), 1)
	// Opposite corner: going east first needs one turn (1004), going south
	// first needs two (2004), so only the top and right sides count.
	far := cellsOnPath(gridgraph.V(3, 3))
	require.Len(s.T(), far, 5)
	require.False(s.T(), far[gridgraph.V(1, 3)])
}

// Entry point for running the suite.
func TestBacktraceSuite(t *testing.T) {
	suite.Run(t, new(BacktraceSuite))
}
