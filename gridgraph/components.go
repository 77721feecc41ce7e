package gridgraph

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// Region collects the contiguous cells reachable from start through cells
// holding the same byte as start, according to conn.
// Returns an empty set if start is outside the grid.
//
// The fill uses an explicit stack, so its depth does not grow with the
// region size.
//
// Time:   O(R·d), where R is the region size and d = 4 or 8.
// Memory: O(R).
func (g *Grid) Region(start Vector2d, conn Connectivity) mapset.Set[Vector2d] {
	area := mapset.New[Vector2d]()
	kind, ok := g.Get(start)
	if !ok {
		return area
	}

	offsets := conn.Offsets()
	work := stack.New[Vector2d]()
	area.Put(start)
	work.Push(start)
	for work.Size() > 0 {
		u := work.Pop()
		for _, d := range offsets {
			v := u.Add(d)
			if area.Has(v) || !g.Is(v, kind) {
				continue
			}
			area.Put(v)
			work.Push(v)
		}
	}
	return area
}

// Regions partitions the whole grid into same-byte regions (“islands”).
// Regions appear in the row-major order of their first cell; every cell
// belongs to exactly one region.
//
// Time:   O(W·H·d).
// Memory: O(W·H) for the seen set and output.
func (g *Grid) Regions(conn Connectivity) []mapset.Set[Vector2d] {
	seen := mapset.New[Vector2d]()
	var regions []mapset.Set[Vector2d]

	for v := range g.All() {
		if seen.Has(v) {
			continue
		}
		area := g.Region(v, conn)
		area.Each(func(c Vector2d) {
			seen.Put(c)
		})
		regions = append(regions, area)
	}
	return regions
}
