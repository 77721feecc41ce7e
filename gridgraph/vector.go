package gridgraph

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Vector2d is an integer 2D coordinate. It is a plain value: copy it freely
// and compare it with ==.
type Vector2d struct {
	X, Y int
}

// V is shorthand for Vector2d{x, y}.
func V(x, y int) Vector2d {
	return Vector2d{X: x, Y: y}
}

// Add returns the component-wise sum a + b.
func (a Vector2d) Add(b Vector2d) Vector2d {
	return Vector2d{a.X + b.X, a.Y + b.Y}
}

// Neg returns -a.
func (a Vector2d) Neg() Vector2d {
	return Vector2d{-a.X, -a.Y}
}

// Sub returns a - b, i.e. a.Add(b.Neg()).
func (a Vector2d) Sub(b Vector2d) Vector2d {
	return a.Add(b.Neg())
}

// Scale multiplies both components by k.
func (a Vector2d) Scale(k int) Vector2d {
	return Vector2d{a.X * k, a.Y * k}
}

// Rotate returns (-y, x), a quarter turn. Repeated rotation cycles through
// the four orientations of a direction.
func (a Vector2d) Rotate() Vector2d {
	return Vector2d{-a.Y, a.X}
}

// Manhattan returns |x| + |y|.
func (a Vector2d) Manhattan() int {
	return Abs(a.X) + Abs(a.Y)
}

// Neighbours returns a + d for every d in Orthogonal, in that order.
func (a Vector2d) Neighbours() [4]Vector2d {
	var out [4]Vector2d
	for i, d := range Orthogonal {
		out[i] = a.Add(d)
	}
	return out
}

// String formats the vector as "x,y".
func (a Vector2d) String() string {
	return strconv.Itoa(a.X) + "," + strconv.Itoa(a.Y)
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
