// Package day15 simulates the warehouse robot: '@' walks a list of moves
// and shoves rows of 'O' boxes ahead of it until they meet a '#'.
package day15

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/aoc24/gridgraph"
)

var (
	// ErrNoMoves indicates the input lacks the blank line before the moves.
	ErrNoMoves = errors.New("day15: missing move list")
	// ErrBadMove indicates a move byte other than ^ > v <.
	ErrBadMove = errors.New("day15: bad move")
)

// moves maps the arrow bytes onto gridgraph.Orthogonal.
var moves = map[byte]gridgraph.Vector2d{
	'>': gridgraph.Orthogonal[0],
	'^': gridgraph.Orthogonal[1],
	'<': gridgraph.Orthogonal[2],
	'v': gridgraph.Orthogonal[3],
}

// parse splits the map from the move list. Line breaks inside the move
// list carry no meaning.
func parse(input string) (*gridgraph.Grid, []gridgraph.Vector2d, error) {
	layout, list, ok := strings.Cut(input, "\n\n")
	if !ok {
		return nil, nil, ErrNoMoves
	}
	g, err := gridgraph.New(layout)
	if err != nil {
		return nil, nil, err
	}

	var dirs []gridgraph.Vector2d
	for i := 0; i < len(list); i++ {
		c := list[i]
		if c == '\n' {
			continue
		}
		d, ok := moves[c]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q at offset %d", ErrBadMove, c, i)
		}
		dirs = append(dirs, d)
	}
	return g, dirs, nil
}

// warehouse tracks the robot and the left cell of every box. Boxes are
// width cells wide; width 2 is the doubled warehouse where each map cell
// spans two columns.
type warehouse struct {
	grid  *gridgraph.Grid
	width int
	robot gridgraph.Vector2d
	boxes mapset.Set[gridgraph.Vector2d]
}

func newWarehouse(g *gridgraph.Grid, width int) (*warehouse, error) {
	robot, err := g.Find('@')
	if err != nil {
		return nil, err
	}
	w := &warehouse{
		grid:  g,
		width: width,
		robot: gridgraph.V(robot.X*width, robot.Y),
		boxes: mapset.New[gridgraph.Vector2d](),
	}
	for _, b := range g.FindAll('O') {
		w.boxes.Put(gridgraph.V(b.X*width, b.Y))
	}
	return w, nil
}

// wall reports whether p (in warehouse columns) falls on a '#'.
func (w *warehouse) wall(p gridgraph.Vector2d) bool {
	return w.grid.Is(gridgraph.V(p.X/w.width, p.Y), '#')
}

// boxAt returns the left cell of the box covering p.
func (w *warehouse) boxAt(p gridgraph.Vector2d) (gridgraph.Vector2d, bool) {
	for dx := 0; dx < w.width; dx++ {
		b := gridgraph.V(p.X-dx, p.Y)
		if w.boxes.Has(b) {
			return b, true
		}
	}
	return gridgraph.Vector2d{}, false
}

// step moves the robot one cell in direction d if nothing blocks it.
//
// Behavior:
//  1. Collect every box the move would touch, transitively, with an
//     explicit stack.
//  2. If any robot or box target cell is a wall, nothing moves.
//  3. Otherwise all collected boxes shift by d together with the robot.
func (w *warehouse) step(d gridgraph.Vector2d) {
	target := w.robot.Add(d)
	if w.wall(target) {
		return
	}

	moving := mapset.New[gridgraph.Vector2d]()
	work := stack.New[gridgraph.Vector2d]()
	if b, ok := w.boxAt(target); ok {
		moving.Put(b)
		work.Push(b)
	}
	for work.Size() > 0 {
		b := work.Pop()
		for dx := 0; dx < w.width; dx++ {
			c := gridgraph.V(b.X+dx, b.Y).Add(d)
			if w.wall(c) {
				return
			}
			next, ok := w.boxAt(c)
			if !ok || next == b || moving.Has(next) {
				continue
			}
			moving.Put(next)
			work.Push(next)
		}
	}

	var shifted []gridgraph.Vector2d
	moving.Each(func(b gridgraph.Vector2d) {
		w.boxes.Remove(b)
		shifted = append(shifted, b.Add(d))
	})
	for _, b := range shifted {
		w.boxes.Put(b)
	}
	w.robot = target
}

// gps sums x + 100·y over the left cell of every box.
func (w *warehouse) gps() int {
	sum := 0
	w.boxes.Each(func(b gridgraph.Vector2d) {
		sum += b.X + 100*b.Y
	})
	return sum
}

func run(input string, width int) (int, error) {
	g, dirs, err := parse(input)
	if err != nil {
		return 0, err
	}
	w, err := newWarehouse(g, width)
	if err != nil {
		return 0, err
	}
	for _, d := range dirs {
		w.step(d)
	}
	return w.gps(), nil
}

// Part1 returns the GPS sum after all moves in the original warehouse.
func Part1(input string) (int, error) {
	return run(input, 1)
}

// Part2 returns the GPS sum in the doubled warehouse, where boxes are two
// cells wide.
func Part2(input string) (int, error) {
	return run(input, 2)
}
