// Package day20 counts race cheats: a cheat lets the program pass through
// walls for up to a fixed number of steps, and is worth the picoseconds it
// saves on the single racetrack.
package day20

import (
	"fmt"

	"github.com/katalvlaran/aoc24/dijkstra"
	"github.com/katalvlaran/aoc24/gridgraph"
)

// DefaultMinSaving is the smallest saving that counts for the full puzzle.
const DefaultMinSaving = 100

// Cheat durations for the two parts.
const (
	ShortCheat = 2
	LongCheat  = 20
)

// Track holds the distance from S for every reachable cell.
type Track struct {
	dist map[gridgraph.Vector2d]int64
}

// NewTrack runs Dijkstra from S over the open cells.
func NewTrack(input string) (*Track, error) {
	g, err := gridgraph.New(input)
	if err != nil {
		return nil, err
	}
	s, err := g.Find('S')
	if err != nil {
		return nil, err
	}
	// E only has to exist: the track is a single path, so every reachable
	// cell already lies on the race.
	if _, err := g.Find('E'); err != nil {
		return nil, err
	}

	graph, lookup := g.ToCoreGraph(func(c byte) bool { return c != '#' }, gridgraph.Conn4)
	byID, err := dijkstra.Dijkstra(graph, dijkstra.Source(lookup[s]))
	if err != nil {
		return nil, fmt.Errorf("day20: %w", err)
	}

	t := &Track{dist: make(map[gridgraph.Vector2d]int64, len(byID))}
	for pos, id := range lookup {
		if d, ok := byID[id]; ok {
			t.dist[pos] = d
		}
	}
	return t, nil
}

// Savings returns how many cheats of at most maxLen steps save at least
// minSaving. A cheat from p to q costs their Manhattan distance and saves
// dist[q] - dist[p] - cost; only positive savings are cheats.
func (t *Track) Savings(maxLen, minSaving int) int {
	var offsets []gridgraph.Vector2d
	for dx := -maxLen; dx <= maxLen; dx++ {
		rest := maxLen - gridgraph.Abs(dx)
		for dy := -rest; dy <= rest; dy++ {
			if dx != 0 || dy != 0 {
				offsets = append(offsets, gridgraph.V(dx, dy))
			}
		}
	}

	count := 0
	for p, dp := range t.dist {
		for _, off := range offsets {
			dq, ok := t.dist[p.Add(off)]
			if !ok {
				continue
			}
			saving := dq - dp - int64(off.Manhattan())
			if saving > 0 && saving >= int64(minSaving) {
				count++
			}
		}
	}
	return count
}

// Part1 counts 2-step cheats saving at least minSaving.
func Part1(input string, minSaving int) (int, error) {
	t, err := NewTrack(input)
	if err != nil {
		return 0, err
	}
	return t.Savings(ShortCheat, minSaving), nil
}

// Part2 counts cheats of up to 20 steps saving at least minSaving.
func Part2(input string, minSaving int) (int, error) {
	t, err := NewTrack(input)
	if err != nil {
		return 0, err
	}
	return t.Savings(LongCheat, minSaving), nil
}
