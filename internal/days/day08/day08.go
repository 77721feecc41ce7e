// Package day08 places antinodes on the lines through pairs of antennas
// sharing a frequency.
package day08

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/aoc24/gridgraph"
)

// antennas groups every non-'.' cell by its label, in row-major order.
func antennas(g *gridgraph.Grid) map[byte][]gridgraph.Vector2d {
	out := make(map[byte][]gridgraph.Vector2d)
	for v, c := range g.All() {
		if c != '.' {
			out[c] = append(out[c], v)
		}
	}
	return out
}

// countAntinodes visits each pair of same-label antennas once and lets mark place
// antinodes for it.
func countAntinodes(input string, mark func(g *gridgraph.Grid, a, b gridgraph.Vector2d, seen mapset.Set[gridgraph.Vector2d])) (int, error) {
	g, err := gridgraph.New(input)
	if err != nil {
		return 0, err
	}
	seen := mapset.New[gridgraph.Vector2d]()
	for _, group := range antennas(g) {
		for i := range group {
			for j := i + 1; j < len(group); j++ {
				mark(g, group[i], group[j], seen)
			}
		}
	}
	return seen.Size(), nil
}

// Part1 counts cells twice as far from one antenna as from the other.
func Part1(input string) (int, error) {
	return countAntinodes(input, func(g *gridgraph.Grid, a, b gridgraph.Vector2d, seen mapset.Set[gridgraph.Vector2d]) {
		diff := b.Sub(a)
		for _, p := range [2]gridgraph.Vector2d{b.Add(diff), a.Sub(diff)} {
			if g.Contains(p) {
				seen.Put(p)
			}
		}
	})
}

// Part2 counts every grid cell in line with a pair, the antennas included.
func Part2(input string) (int, error) {
	return countAntinodes(input, func(g *gridgraph.Grid, a, b gridgraph.Vector2d, seen mapset.Set[gridgraph.Vector2d]) {
		diff := b.Sub(a)
		for p := b; g.Contains(p); p = p.Add(diff) {
			seen.Put(p)
		}
		for p := a; g.Contains(p); p = p.Sub(diff) {
			seen.Put(p)
		}
	})
}
