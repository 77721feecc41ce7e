package day15

import (
	"strconv"

	"github.com/katalvlaran/aoc24/internal/config"
	"github.com/katalvlaran/aoc24/internal/registry"
)

func init() {
	registry.Register(15, func(config.DayParams) registry.Solver { return solver{} })
}

type solver struct{}

func (solver) Day() int      { return 15 }
func (solver) Title() string { return "Warehouse Woes" }

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
