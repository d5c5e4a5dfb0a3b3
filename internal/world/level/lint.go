package level

import (
	"fmt"

	"github.com/dhconnelly/rtreego"

	"chosenoffset.com/dogwalk/internal/core/geom"
	"chosenoffset.com/dogwalk/internal/core/raycast"
)

// Issue is a lint finding. Overlapping walls render fine but usually mean
// the level was authored by mistake.
type Issue struct {
	Walls   []int // indexes into Map.Walls
	Message string
}

func (i Issue) String() string {
	return i.Message
}

type indexedWall struct {
	index int
	rect  rtreego.Rect
}

func (w *indexedWall) Bounds() rtreego.Rect {
	return w.rect
}

// Lint reports overlapping walls and a spawn point inside a wall.
func Lint(m *Map) []Issue {
	var issues []Issue

	tree := rtreego.NewTree(2, 2, 8)
	entries := make([]*indexedWall, 0, len(m.walls))
	for i, w := range m.walls {
		rect, err := rtreego.NewRect(rtreego.Point{w.X, w.Y}, []float64{w.Width, w.Height})
		if err != nil {
			issues = append(issues, Issue{Walls: []int{i}, Message: fmt.Sprintf("wall %d: %v", i, err)})
			continue
		}
		e := &indexedWall{index: i, rect: rect}
		entries = append(entries, e)
		tree.Insert(e)
	}

	for _, e := range entries {
		for _, s := range tree.SearchIntersect(e.rect) {
			other := s.(*indexedWall)
			// report each pair once
			if other.index <= e.index {
				continue
			}
			a, b := m.walls[e.index], m.walls[other.index]
			if !overlaps(a, b) {
				continue
			}
			issues = append(issues, Issue{
				Walls:   []int{e.index, other.index},
				Message: fmt.Sprintf("walls %d and %d overlap", e.index, other.index),
			})
		}
	}

	spawn := geom.Pt(m.spawn.X, m.spawn.Y)
	for i, w := range m.walls {
		if w.Contains(spawn) {
			issues = append(issues, Issue{
				Walls:   []int{i},
				Message: fmt.Sprintf("spawn (%v, %v) is inside wall %d", spawn.X, spawn.Y, i),
			})
		}
	}
	return issues
}

// overlaps reports whether a and b share interior area. Touching edges do
// not count.
func overlaps(a, b raycast.Wall) bool {
	amin, amax := a.Min(), a.Max()
	bmin, bmax := b.Min(), b.Max()
	return amin.X < bmax.X && bmin.X < amax.X && amin.Y < bmax.Y && bmin.Y < amax.Y
}
