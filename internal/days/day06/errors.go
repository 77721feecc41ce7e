package day06

import "errors"

// ErrLoop is returned when the unmodified map already traps the guard.
var ErrLoop = errors.New("day06: guard never leaves the map")
