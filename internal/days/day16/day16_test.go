package day16

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/aoc24/dijkstra"
	"github.com/katalvlaran/aoc24/gridgraph"
	"github.com/katalvlaran/aoc24/internal/registry"
)

const small = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

const big = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`

type MazeSuite struct {
	suite.Suite
}

func (s *MazeSuite) TestSmallSample() {
	p1, err := Part1(small)
	s.Require().NoError(err)
	s.Equal(int64(7036), p1)

	p2, err := Part2(small)
	s.Require().NoError(err)
	s.Equal(45, p2)
}

func (s *MazeSuite) TestBigSample() {
	p1, err := Part1(big)
	s.Require().NoError(err)
	s.Equal(int64(11048), p1)

	p2, err := Part2(big)
	s.Require().NoError(err)
	s.Equal(64, p2)
}

// Goal straight ahead: no turn needed.
func (s *MazeSuite) TestCorridor() {
	p1, err := Part1("#####\n#S.E#\n#####\n")
	s.Require().NoError(err)
	s.Equal(int64(2), p1)

	p2, err := Part2("#####\n#S.E#\n#####\n")
	s.Require().NoError(err)
	s.Equal(3, p2)
}

// Goal behind the start: two turns.
func (s *MazeSuite) TestTurnAround() {
	p1, err := Part1("#####\n#E.S#\n#####\n")
	s.Require().NoError(err)
	s.Equal(int64(2002), p1)
}

func (s *MazeSuite) TestErrors() {
	_, err := Part1("#####\n#S#E#\n#####\n")
	s.ErrorIs(err, dijkstra.ErrUnreachable)

	_, err = Part2("#####\n#S#E#\n#####\n")
	s.ErrorIs(err, dijkstra.ErrUnreachable)

	_, err = Part1("####\n#S.#\n####\n")
	s.ErrorIs(err, gridgraph.ErrMarkerNotFound)
}

func TestMazeSuite(t *testing.T) {
	suite.Run(t, new(MazeSuite))
}

func TestBuild(t *testing.T) {
	m, err := build("#####\n#S.E#\n#####\n")
	require.NoError(t, err)
	// 3 open cells x 4 facings.
	require.Equal(t, 12, m.graph.NodeCount())
	// Per node 2 turns; 2 forward moves per direction pair (east and west).
	require.Equal(t, 12*2+4, m.graph.EdgeCount())
	require.Len(t, m.goals, 4)
}

func TestSolver(t *testing.T) {
	s, err := registry.Create(16, nil)
	require.NoError(t, err)
	ans, err := s.Solve(small)
	require.NoError(t, err)
	require.Equal(t, registry.Answers{Part1: "7036", Part2: "45"}, ans)

	_, err = s.Solve("#####\n#S#E#\n#####\n")
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)
}
