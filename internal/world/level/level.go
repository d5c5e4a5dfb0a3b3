// Package level defines the static map the viewpoint moves through.
package level

import (
	"math"

	"chosenoffset.com/dogwalk/internal/core/geom"
	"chosenoffset.com/dogwalk/internal/core/raycast"
)

// Spawn is where the viewpoint starts.
type Spawn struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"`
}

// Map is an ordered, immutable set of walls.
type Map struct {
	name  string
	spawn Spawn
	walls []raycast.Wall
}

// New creates a map. The walls are copied.
func New(name string, spawn Spawn, walls ...raycast.Wall) *Map {
	return &Map{
		name:  name,
		spawn: spawn,
		walls: append([]raycast.Wall(nil), walls...),
	}
}

// Reference returns the built-in level: a closed 19x9 box with two full
// obstacles and one half-height obstacle.
func Reference() *Map {
	return New("reference", Spawn{X: 2.5, Y: 5, Heading: 0},
		raycast.NewWall(1, 0, 19, 1, raycast.Full),
		raycast.NewWall(0, 0, 1, 9, raycast.Full),
		raycast.NewWall(0, 9, 19, 1, raycast.Full),
		raycast.NewWall(19, 1, 1, 9, raycast.Full),
		raycast.NewWall(15, 3, 2, 4, raycast.Full),
		raycast.NewWall(5, 3, 2, 3, raycast.Full),
		raycast.NewWall(7, 3, 3, 2, raycast.Half),
	)
}

// Name returns the level name.
func (m *Map) Name() string {
	return m.name
}

// Spawn returns the starting viewpoint.
func (m *Map) Spawn() Spawn {
	return m.spawn
}

// Walls returns the walls in level order. The slice is shared and must not
// be modified.
func (m *Map) Walls() []raycast.Wall {
	return m.walls
}

// Bounds returns the smallest rectangle containing every wall.
func (m *Map) Bounds() (min, max geom.Point) {
	if len(m.walls) == 0 {
		return geom.Point{}, geom.Point{}
	}
	min = geom.Pt(math.Inf(1), math.Inf(1))
	max = geom.Pt(math.Inf(-1), math.Inf(-1))
	for _, w := range m.walls {
		lo, hi := w.Min(), w.Max()
		min = geom.Pt(math.Min(min.X, lo.X), math.Min(min.Y, lo.Y))
		max = geom.Pt(math.Max(max.X, hi.X), math.Max(max.Y, hi.Y))
	}
	return min, max
}
