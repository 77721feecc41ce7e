package day12

import (
	"strconv"

	"github.com/katalvlaran/aoc24/internal/config"
	"github.com/katalvlaran/aoc24/internal/registry"
)

func init() {
	registry.Register(12, func(config.DayParams) registry.Solver { return solver{} })
}

type solver struct{}

func (solver) Day() int      { return 12 }
func (solver) Title() string { return "Garden Groups" }

func (solver) Solve(input string) (registry.Answers, error) {
	p1, err := Part1(input)
	if err != nil {
		return registry.Answers{}, err
	}
	p2, err := Part2(input)
	if err != nil {
		return registry.Answers{}, err
	}
	return registry.Answers{Part1: strconv.Itoa(p1), Part2: strconv.Itoa(p2)}, nil
}
