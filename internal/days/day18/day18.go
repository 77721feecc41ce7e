// Package day18 finds the way across a memory grid while bytes fall onto
// it, each one corrupting a cell.
package day18

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc24/dijkstra"
	"github.com/katalvlaran/aoc24/gridgraph"
)

// Default parameters for the full puzzle.
const (
	DefaultSize  = 70
	DefaultBytes = 1024
)

var (
	// ErrBadCoordinate indicates a line that is not "x,y" within the grid.
	ErrBadCoordinate = errors.New("day18: bad coordinate")
	// ErrNeverBlocked indicates that no byte ever cuts the path.
	ErrNeverBlocked = errors.New("day18: exit never becomes unreachable")
)

// Memory describes one puzzle: a grid spanning 0..Size on both axes and
// the ordered list of falling bytes.
type Memory struct {
	Size  int
	Bytes []gridgraph.Vector2d
}

// Parse reads one "x,y" pair per line. Blank lines are skipped.
// size must be non-negative.
func Parse(input string, size int) (*Memory, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: grid size %d is negative", ErrBadCoordinate, size)
	}
	m := &Memory{Size: size}
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadCoordinate, i+1, line)
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrBadCoordinate, i+1, line, err)
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrBadCoordinate, i+1, line, err)
		}
		if x < 0 || x > size || y < 0 || y > size {
			return nil, fmt.Errorf("%w: line %d (%d,%d) outside 0..%d", ErrBadCoordinate, i+1, x, y, size)
		}
		m.Bytes = append(m.Bytes, gridgraph.V(x, y))
	}
	return m, nil
}

// render draws the grid after the first n bytes have fallen.
func (m *Memory) render(n int) *gridgraph.Grid {
	side := m.Size + 1
	buf := bytes.Repeat([]byte{'.'}, (side+1)*side)
	for y := 0; y < side; y++ {
		buf[y*(side+1)+side] = '\n'
	}
	for _, b := range m.Bytes[:n] {
		buf[b.Y*(side+1)+b.X] = '#'
	}
	return gridgraph.MustNew(string(buf))
}

// Steps returns the shortest number of steps from the top-left to the
// bottom-right corner after n bytes, or false if the exit is cut off.
// The graph is rebuilt from scratch on every call.
func (m *Memory) Steps(n int) (int64, bool, error) {
	g := m.render(min(n, len(m.Bytes)))
	graph, lookup := g.ToCoreGraph(func(c byte) bool { return c != '#' }, gridgraph.Conn4)

	start, ok := lookup[gridgraph.V(0, 0)]
	if !ok {
		return 0, false, nil
	}
	exit, ok := lookup[gridgraph.V(m.Size, m.Size)]
	if !ok {
		return 0, false, nil
	}
	dist, err := dijkstra.Dijkstra(graph, dijkstra.Source(start))
	if err != nil {
		return 0, false, err
	}
	d, ok := dist[exit]
	return d, ok, nil
}

// Part1 returns the step count after the first n bytes.
func Part1(input string, size, n int) (int64, error) {
	m, err := Parse(input, size)
	if err != nil {
		return 0, err
	}
	d, ok, err := m.Steps(n)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("day18: after %d bytes: %w", n, dijkstra.ErrUnreachable)
	}
	return d, nil
}

// Part2 returns the coordinates ("x,y") of the first byte after which the
// exit can no longer be reached.
//
// Once cut off, the exit stays cut off as more bytes fall, so the first
// blocking byte is found by binary search over the byte count. Each step
// still renders and searches a fresh graph.
func Part2(input string, size int) (string, error) {
	m, err := Parse(input, size)
	if err != nil {
		return "", err
	}
	n, err := m.FirstBlocking()
	if err != nil {
		return "", err
	}
	return m.Bytes[n-1].String(), nil
}

// FirstBlocking returns the smallest byte count n after which the exit is
// unreachable. Returns ErrNeverBlocked when every byte still leaves a path.
func (m *Memory) FirstBlocking() (int, error) {
	// Invariant: reachable after lo bytes, unreachable after hi bytes.
	// An empty grid always has a path, so lo = 0 holds from the start.
	lo, hi := 0, len(m.Bytes)
	if _, ok, err := m.Steps(hi); err != nil {
		return 0, err
	} else if ok {
		return 0, ErrNeverBlocked
	}
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		_, ok, err := m.Steps(mid)
		if err != nil {
			return 0, err
		}
		if ok {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi, nil
}
