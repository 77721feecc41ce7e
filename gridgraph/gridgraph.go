package gridgraph

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/aoc24/core"
)

// Grid is a read-only character matrix built once from input text.
// Width is the length of the first line, Height the number of lines.
// The backing buffer keeps the line terminators, so every row is padded by
// exactly one byte and cell (x,y) is text[x + y*(width+1)].
type Grid struct {
	width, height int
	text          []byte
}

// New builds a Grid from text. Every line must have the same length as the
// first one; a trailing newline is optional.
// Returns ErrEmptyGrid if text has no columns, ErrNonRectangular (wrapped
// with the offending row) if any row length differs or a row carries '\r'.
// Complexity: O(len(text)).
func New(text string) (*Grid, error) {
	width := strings.IndexByte(text, '\n')
	if width < 0 {
		width = len(text)
	}
	if width == 0 {
		return nil, ErrEmptyGrid
	}

	height := 0
	for rest := text; rest != ""; height++ {
		line, tail, _ := strings.Cut(rest, "\n")
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, height, len(line), width)
		}
		if strings.IndexByte(line, '\r') >= 0 {
			return nil, fmt.Errorf("%w: row %d contains a carriage return", ErrNonRectangular, height)
		}
		rest = tail
	}

	return &Grid{
		width:  width,
		height: height,
		text:   []byte(text),
	}, nil
}

// MustNew is New for literal fixtures; it panics on malformed input.
func MustNew(text string) *Grid {
	g, err := New(text)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Contains reports whether v lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) Contains(v Vector2d) bool {
	return v.X >= 0 && v.X < g.width && v.Y >= 0 && v.Y < g.height
}

// Get returns the byte at v, or false when v is outside the grid.
// It never panics, whatever v is.
func (g *Grid) Get(v Vector2d) (byte, bool) {
	if !g.Contains(v) {
		return 0, false
	}
	return g.text[g.offset(v)], true
}

// Is reports whether v is inside the grid and holds b.
func (g *Grid) Is(v Vector2d, b byte) bool {
	c, ok := g.Get(v)
	return ok && c == b
}

// All yields every cell in row-major order (y outer, x inner).
// Each call returns a fresh sequence.
func (g *Grid) All() iter.Seq2[Vector2d, byte] {
	return func(yield func(Vector2d, byte) bool) {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				v := Vector2d{x, y}
				if !yield(v, g.text[g.offset(v)]) {
					return
				}
			}
		}
	}
}

// Find returns the first cell (row-major) holding marker.
// Returns ErrMarkerNotFound when no cell does.
func (g *Grid) Find(marker byte) (Vector2d, error) {
	for v, c := range g.All() {
		if c == marker {
			return v, nil
		}
	}
	return Vector2d{}, fmt.Errorf("%w: %q", ErrMarkerNotFound, marker)
}

// FindAll returns every cell holding marker in row-major order.
func (g *Grid) FindAll(marker byte) []Vector2d {
	var out []Vector2d
	for v, c := range g.All() {
		if c == marker {
			out = append(out, v)
		}
	}
	return out
}

// ToCoreGraph converts the traversable cells into a directed, weighted
// *core.Graph. Each cell for which passable returns true becomes one node
// carrying its position; every pair of traversable neighbours (according to
// conn) is joined by unit-weight edges in both directions.
// The returned lookup maps positions to node handles.
// Complexity: O(W×H×d) time and memory.
func (g *Grid) ToCoreGraph(passable func(byte) bool, conn Connectivity) (*core.Graph[Vector2d], map[Vector2d]core.NodeID) {
	cg := core.NewGraph[Vector2d](core.WithDirected(true), core.WithCapacity(g.width*g.height))
	lookup := make(map[Vector2d]core.NodeID, g.width*g.height)

	for v, c := range g.All() {
		if passable(c) {
			lookup[v] = cg.AddNode(v)
		}
	}

	offsets := conn.Offsets()
	for v, c := range g.All() {
		if !passable(c) {
			continue
		}
		from := lookup[v]
		for _, d := range offsets {
			to, ok := lookup[v.Add(d)]
			if !ok {
				continue
			}
			// Both handles come from lookup and the weight is positive.
			_ = cg.AddEdge(from, to, 1)
		}
	}

	return cg, lookup
}

// String returns the grid text.
func (g *Grid) String() string {
	return string(g.text)
}

// offset maps (x,y) to its position in text: x + y*(width+1).
func (g *Grid) offset(v Vector2d) int {
	return v.X + v.Y*(g.width+1)
}
