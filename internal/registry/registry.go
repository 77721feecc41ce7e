// Package registry provides a global registry of puzzle solvers.
// Days register themselves in init() functions, so the CLI can discover
// and run them without a hardcoded list.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/aoc24/internal/config"
)

// ErrUnknownDay is returned by Create for a day nobody registered.
var ErrUnknownDay = errors.New("registry: unknown day")

// Answers holds both parts of a day's result, already formatted.
type Answers struct {
	Part1 string
	Part2 string
}

// Solver is implemented by every day package.
type Solver interface {
	// Day returns the puzzle number (1..25).
	Day() int

	// Title returns a human-readable name for listings.
	Title() string

	// Solve runs both parts against the raw puzzle input.
	Solve(input string) (Answers, error)
}

// DayInfo contains metadata about a registered day.
type DayInfo struct {
	Day   int
	Title string
}

// Factory builds a solver from that day's configured parameters.
// params may be nil; solvers fall back to their own defaults.
type Factory func(params config.DayParams) Solver

var (
	factories = make(map[int]Factory)
	titles    = make(map[int]string)
	mu        sync.RWMutex
)

// Register adds a solver factory to the registry.
// Panics if the day is already registered.
func Register(day int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[day]; exists {
		panic(fmt.Sprintf("registry: day %d already registered", day))
	}

	factories[day] = f
	titles[day] = f(nil).Title()
}

// List returns all registered days, sorted by number.
func List() []DayInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DayInfo, 0, len(factories))
	for day := range factories {
		result = append(result, DayInfo{Day: day, Title: titles[day]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Day < result[j].Day
	})

	return result
}

// Create instantiates the solver for day.
func Create(day int, params config.DayParams) (Solver, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return f(params), nil
}

// Exists checks whether day is registered.
func Exists(day int) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[day]
	return ok
}
