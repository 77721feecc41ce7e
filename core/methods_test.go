package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc24/core"
)

func TestAddNode_DenseHandles(t *testing.T) {
	g := core.NewGraph[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")

	require.Equal(t, core.NodeID(0), a)
	require.Equal(t, core.NodeID(1), b)
	require.Equal(t, 2, g.NodeCount())

	p, err := g.Node(b)
	require.NoError(t, err)
	require.Equal(t, "B", p)
}

func TestNode_Unknown(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddNode("A")

	for _, id := range []core.NodeID{-1, 1, 42} {
		_, err := g.Node(id)
		require.ErrorIs(t, err, core.ErrNodeNotFound, "id=%d", id)
		require.False(t, g.HasNode(id))
	}
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph[int](core.WithDirected(true))
	a := g.AddNode(0)
	b := g.AddNode(1)

	err := g.AddEdge(a, 7, 1)
	require.True(t, errors.Is(err, core.ErrNodeNotFound))

	err = g.AddEdge(-1, b, 1)
	require.True(t, errors.Is(err, core.ErrNodeNotFound))

	err = g.AddEdge(a, b, -3)
	require.True(t, errors.Is(err, core.ErrNegativeWeight))

	require.Zero(t, g.EdgeCount())
	require.Empty(t, g.Edges(a))
}

func TestAddEdge_Directed(t *testing.T) {
	g := core.NewGraph[int](core.WithDirected(true))
	a := g.AddNode(0)
	b := g.AddNode(1)
	require.NoError(t, g.AddEdge(a, b, 5))

	require.True(t, g.Directed())
	require.True(t, g.HasEdge(a, b))
	require.False(t, g.HasEdge(b, a))
	require.Equal(t, []core.Edge{{From: a, To: b, Weight: 5}}, g.Edges(a))
	require.Empty(t, g.Edges(b))
	require.Equal(t, []core.Edge{{From: a, To: b, Weight: 5}}, g.Incoming(b))
	require.Empty(t, g.Incoming(a))
	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_UndirectedMirrors(t *testing.T) {
	g := core.NewGraph[int]()
	a := g.AddNode(0)
	b := g.AddNode(1)
	require.NoError(t, g.AddEdge(a, b, 2))

	require.False(t, g.Directed())
	require.True(t, g.HasEdge(a, b))
	require.True(t, g.HasEdge(b, a))
	require.Equal(t, []core.Edge{{From: b, To: a, Weight: 2}}, g.Edges(b))
	require.Equal(t, []core.Edge{{From: b, To: a, Weight: 2}}, g.Incoming(a))
	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_UndirectedSelfLoopStoredOnce(t *testing.T) {
	g := core.NewGraph[int]()
	a := g.AddNode(0)
	require.NoError(t, g.AddEdge(a, a, 1))

	require.Len(t, g.Edges(a), 1)
	require.Len(t, g.Incoming(a), 1)
}

func TestWeight_ParallelEdgesReportMinimum(t *testing.T) {
	g := core.NewGraph[int](core.WithDirected(true), core.WithCapacity(2))
	a := g.AddNode(0)
	b := g.AddNode(1)
	require.NoError(t, g.AddEdge(a, b, 9))
	require.NoError(t, g.AddEdge(a, b, 4))

	w, ok := g.Weight(a, b)
	require.True(t, ok)
	require.Equal(t, int64(4), w)

	_, ok = g.Weight(b, a)
	require.False(t, ok)
}

func TestNodes_HandleOrder(t *testing.T) {
	g := core.NewGraph[string]()
	for _, s := range []string{"x", "y", "z"} {
		g.AddNode(s)
	}

	var got []string
	for id, p := range g.Nodes() {
		require.Equal(t, int(id), len(got))
		got = append(got, p)
	}
	require.Equal(t, []string{"x", "y", "z"}, got)
}

func TestEdges_UnknownHandle(t *testing.T) {
	g := core.NewGraph[int]()
	require.Nil(t, g.Edges(3))
	require.Nil(t, g.Incoming(3))
	require.False(t, g.HasEdge(0, 1))
}
