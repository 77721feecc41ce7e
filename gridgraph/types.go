package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input text has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrMarkerNotFound indicates a required marker byte is absent from the grid.
	ErrMarkerNotFound = errors.New("gridgraph: marker not found")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity in Orthogonal order.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: AllDirections.
	Conn8
)

// Offsets returns the direction set for the connectivity.
func (c Connectivity) Offsets() []Vector2d {
	if c == Conn8 {
		return AllDirections[:]
	}
	return Orthogonal[:]
}

// Orthogonal holds the four unit moves. The order is fixed: callers index
// into it to pair a facing with the move that keeps that facing.
var Orthogonal = [4]Vector2d{
	{1, 0},
	{0, -1},
	{-1, 0},
	{0, 1},
}

// Diagonals holds the four diagonal unit moves.
var Diagonals = [4]Vector2d{
	{-1, -1},
	{-1, 1},
	{1, -1},
	{1, 1},
}

// AllDirections is the 3×3 neighbourhood without the origin.
var AllDirections = [8]Vector2d{
	{-1, -1},
	{-1, 0},
	{-1, 1},
	{0, -1},
	{0, 1},
	{1, -1},
	{1, 0},
	{1, 1},
}
