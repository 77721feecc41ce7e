// Package day04 solves the word search: XMAS along any of the eight
// directions, and MAS crossing on the diagonals.
package day04

import (
	"github.com/katalvlaran/aoc24/gridgraph"
)

const word = "XMAS"

// Part1 counts occurrences of XMAS in every direction, overlaps included.
func Part1(input string) (int, error) {
	g, err := gridgraph.New(input)
	if err != nil {
		return 0, err
	}

	count := 0
	for p, c := range g.All() {
		if c != word[0] {
			continue
		}
		for _, d := range gridgraph.AllDirections {
			if spells(g, p, d) {
				count++
			}
		}
	}
	return count, nil
}

func spells(g *gridgraph.Grid, p, d gridgraph.Vector2d) bool {
	for i := 0; i < len(word); i++ {
		if !g.Is(p.Add(d.Scale(i)), word[i]) {
			return false
		}
	}
	return true
}

// Part2 counts cells where two diagonal MAS words cross on the A.
func Part2(input string) (int, error) {
	g, err := gridgraph.New(input)
	if err != nil {
		return 0, err
	}

	count := 0
	for p, c := range g.All() {
		if c != 'A' {
			continue
		}
		mas := 0
		for _, d := range gridgraph.Diagonals {
			if g.Is(p.Sub(d), 'M') && g.Is(p.Add(d), 'S') {
				mas++
			}
		}
		if mas >= 2 {
			count++
		}
	}
	return count, nil
}
