// Package day06 simulates the lab guard: walk forward, turn right on '#',
// until the guard leaves the map or repeats a state.
package day06

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/aoc24/gridgraph"
)

// up is the initial facing. Rotate turns it right (screen coordinates).
var up = gridgraph.V(0, -1)

type state struct {
	pos, dir gridgraph.Vector2d
}

// patrol walks the guard from start. obstacle, when set, is treated as an
// additional '#'. If cells is non-nil every visited cell is put into it.
// Returns true when the guard never leaves the map.
//
// Only states right before a turn are remembered: a loop has to turn, and
// a walk that repeats one of those states repeats forever.
func patrol(g *gridgraph.Grid, start gridgraph.Vector2d, obstacle *gridgraph.Vector2d, cells *mapset.Set[gridgraph.Vector2d]) bool {
	blocked := func(v gridgraph.Vector2d) bool {
		return g.Is(v, '#') || (obstacle != nil && v == *obstacle)
	}

	turns := mapset.New[state]()
	pos, dir := start, up
	for {
		if cells != nil {
			cells.Put(pos)
		}
		next := pos.Add(dir)
		if blocked(next) {
			s := state{pos, dir}
			if turns.Has(s) {
				return true
			}
			turns.Put(s)
			// Boxed in on all four sides: the guard spins in place.
			for i := 0; blocked(next); i++ {
				if i == 4 {
					return true
				}
				dir = dir.Rotate()
				next = pos.Add(dir)
			}
		}
		if !g.Contains(next) {
			return false
		}
		pos = next
	}
}

func parse(input string) (*gridgraph.Grid, gridgraph.Vector2d, error) {
	g, err := gridgraph.New(input)
	if err != nil {
		return nil, gridgraph.Vector2d{}, err
	}
	start, err := g.Find('^')
	if err != nil {
		return nil, gridgraph.Vector2d{}, err
	}
	return g, start, nil
}

// Part1 returns the number of distinct cells the guard visits.
func Part1(input string) (int, error) {
	g, start, err := parse(input)
	if err != nil {
		return 0, err
	}
	cells := mapset.New[gridgraph.Vector2d]()
	if patrol(g, start, nil, &cells) {
		return 0, ErrLoop
	}
	return cells.Size(), nil
}

// Part2 counts positions where one extra obstacle traps the guard in a
// loop. Only cells on the original route can matter; the start cell is
// excluded.
func Part2(input string) (int, error) {
	g, start, err := parse(input)
	if err != nil {
		return 0, err
	}
	route := mapset.New[gridgraph.Vector2d]()
	if patrol(g, start, nil, &route) {
		return 0, ErrLoop
	}

	count := 0
	route.Each(func(v gridgraph.Vector2d) {
		if v == start {
			return
		}
		if patrol(g, start, &v, nil) {
			count++
		}
	})
	return count, nil
}
