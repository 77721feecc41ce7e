package day10

import (
	"strconv"

	"github.com/katalvlaran/aoc24/internal/config"
	"github.com/katalvlaran/aoc24/internal/registry"
)

func init() {
	registry.Register(10, func(config.DayParams) registry.Solver { return solver{} })
}

type solver struct{}

func (solver) Day() int      { return 10 }
func (solver) Title() string { return "Hoof It" }

// Solve walks the trails once and reports both totals.
func (solver) Solve(input string) (registry.Answers, error) {
	score, rating, err := solve(input)
	if err != nil {
		return registry.Answers{}, err
	}
	return registry.Answers{Part1: strconv.Itoa(score), Part2: strconv.Itoa(rating)}, nil
}
