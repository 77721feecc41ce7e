// Package day12 prices garden fences. Plots are the 4-connected regions of
// equal letters; the price is area times perimeter, or area times number of
// straight sides.
package day12

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/aoc24/gridgraph"
)

// perimeter counts cell edges facing out of the region.
func perimeter(region mapset.Set[gridgraph.Vector2d]) int {
	n := 0
	region.Each(func(p gridgraph.Vector2d) {
		for _, q := range p.Neighbours() {
			if !region.Has(q) {
				n++
			}
		}
	})
	return n
}

// sides counts straight fence segments. A polygon has as many sides as
// corners, and each corner is found at one cell by looking at two adjacent
// directions d and d.Rotate():
//   - outer corner: both neighbours are outside;
//   - inner corner: both are inside but the diagonal between them is not.
func sides(region mapset.Set[gridgraph.Vector2d]) int {
	n := 0
	region.Each(func(p gridgraph.Vector2d) {
		for _, d := range gridgraph.Orthogonal {
			e := d.Rotate()
			a, b := region.Has(p.Add(d)), region.Has(p.Add(e))
			switch {
			case !a && !b:
				n++
			case a && b && !region.Has(p.Add(d).Add(e)):
				n++
			}
		}
	})
	return n
}

func price(input string, measure func(mapset.Set[gridgraph.Vector2d]) int) (int, error) {
	g, err := gridgraph.New(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range g.Regions(gridgraph.Conn4) {
		total += r.Size() * measure(r)
	}
	return total, nil
}

// Part1 returns the total price using perimeters.
func Part1(input string) (int, error) {
	return price(input, perimeter)
}

// Part2 returns the total price using side counts.
func Part2(input string) (int, error) {
	return price(input, sides)
}
