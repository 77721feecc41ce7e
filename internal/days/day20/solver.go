package day20

import (
	"strconv"

	"github.com/katalvlaran/aoc24/internal/config"
	"github.com/katalvlaran/aoc24/internal/registry"
)

func init() {
	registry.Register(20, func(p config.DayParams) registry.Solver {
		return solver{minSaving: p.Int("min_saving", DefaultMinSaving)}
	})
}

type solver struct {
	minSaving int
}

func (solver) Day() int      { return 20 }
func (solver) Title() string { return "Race Condition" }

// Solve measures the track once for both cheat lengths.
func (s solver) Solve(input string) (registry.Answers, error) {
	t, err := NewTrack(input)
	if err != nil {
		return registry.Answers{}, err
	}
	return registry.Answers{
		Part1: strconv.Itoa(t.Savings(ShortCheat, s.minSaving)),
		Part2: strconv.Itoa(t.Savings(LongCheat, s.minSaving)),
	}, nil
}
