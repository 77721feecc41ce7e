// Package gridgraph treats a rectangular block of text as a 2D grid of cells
// and provides the geometry every grid puzzle is built on.
//
// What:
//
//   - Vector2d is an integer (x, y) pair used both as a position and as a
//     displacement. It is comparable, so it keys maps and sets directly.
//   - Grid is an immutable snapshot of the input text. Rows keep their line
//     terminator, so cell (x, y) lives at byte offset x + y*(width+1).
//   - Orthogonal, Diagonals and AllDirections are the fixed direction sets
//     used to enumerate candidate moves.
//   - Regions flood-fills contiguous cells carrying the same byte.
//   - ToCoreGraph turns every traversable cell into a core.Graph node with
//     unit-weight edges to its traversable neighbours.
//
// Coordinates:
//
//	(0,0) ──► x
//	  │
//	  ▼  y        Orthogonal order: (1,0) (0,-1) (-1,0) (0,1)
//
// Rotate maps (x, y) to (-y, x). With y growing downwards that is a quarter
// turn clockwise, so four rotations return the original vector.
//
// Complexity:
//
//   - New:         O(len(text)) time and memory.
//   - Get:         O(1).
//   - All:         O(W×H), restartable.
//   - Regions:     O(W×H×d), Memory: O(W×H)   (d = 4 or 8).
//   - ToCoreGraph: O(W×H×d), Memory: O(W×H×d).
//
// Errors:
//
//   - ErrEmptyGrid:      input text has no rows or an empty first row.
//   - ErrNonRectangular: a row length differs from the first row.
//   - ErrMarkerNotFound: Find did not see the requested byte.
package gridgraph
