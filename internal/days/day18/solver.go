package day18

import (
	"strconv"

	"github.com/katalvlaran/aoc24/internal/config"
	"github.com/katalvlaran/aoc24/internal/registry"
)

func init() {
	registry.Register(18, newSolver)
}

type solver struct {
	size, bytes int
}

func newSolver(p config.DayParams) registry.Solver {
	return solver{
		size:  p.Int("size", DefaultSize),
		bytes: p.Int("bytes", DefaultBytes),
	}
}

func (solver) Day() int      { return 18 }
func (solver) Title() string { return "RAM Run" }

func (s solver) Solve(input string) (registry.Answers, error) {
	p1, err := Part1(input, s.size, s.bytes)
	if err != nil {
		return registry.Answers{}, err
	}
	p2, err := Part2(input, s.size)
	if err != nil {
		return registry.Answers{}, err
	}
	return registry.Answers{Part1: strconv.FormatInt(p1, 10), Part2: p2}, nil
}
