package day16

import (
	"strconv"

	"github.com/katalvlaran/aoc24/internal/config"
	"github.com/katalvlaran/aoc24/internal/registry"
)

func init() {
	registry.Register(16, func(config.DayParams) registry.Solver { return solver{} })
}

type solver struct{}

func (solver) Day() int      { return 16 }
func (solver) Title() string { return "Reindeer Maze" }

// Solve shares one graph and one distance map between both parts.
func (solver) Solve(input string) (registry.Answers, error) {
	score, cells, err := solve(input)
	if err != nil {
		return registry.Answers{}, err
	}
	return registry.Answers{Part1: strconv.FormatInt(score, 10), Part2: strconv.Itoa(cells)}, nil
}
