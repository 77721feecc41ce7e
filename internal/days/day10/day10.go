// Package day10 scores hiking trails: paths from height 0 to 9 climbing
// exactly one step at a time.
package day10

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/aoc24/gridgraph"
)

// trails explores every trail from head and returns the summits it reaches
// together with the number of distinct trails. A trail is a path, so no
// visited set is kept: the strict height increase rules out cycles.
func trails(g *gridgraph.Grid, head gridgraph.Vector2d) (mapset.Set[gridgraph.Vector2d], int) {
	summits := mapset.New[gridgraph.Vector2d]()
	paths := 0

	work := stack.New[gridgraph.Vector2d]()
	work.Push(head)
	for work.Size() > 0 {
		p := work.Pop()
		h, _ := g.Get(p)
		if h == '9' {
			summits.Put(p)
			paths++
			continue
		}
		for _, n := range p.Neighbours() {
			if g.Is(n, h+1) {
				work.Push(n)
			}
		}
	}
	return summits, paths
}

func solve(input string) (score, rating int, err error) {
	g, err := gridgraph.New(input)
	if err != nil {
		return 0, 0, err
	}
	for _, head := range g.FindAll('0') {
		summits, paths := trails(g, head)
		score += summits.Size()
		rating += paths
	}
	return score, rating, nil
}

// Part1 sums, over all trailheads, the number of distinct 9s reachable.
func Part1(input string) (int, error) {
	score, _, err := solve(input)
	return score, err
}

// Part2 sums, over all trailheads, the number of distinct trails.
func Part2(input string) (int, error) {
	_, rating, err := solve(input)
	return rating, err
}
