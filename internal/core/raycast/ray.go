package raycast

import (
	"math"
	"slices"

	"chosenoffset.com/dogwalk/internal/core/geom"
)

// Collision is a point where a ray enters a wall.
type Collision struct {
	Point    geom.Point
	Kind     WallKind
	Distance float64 // from the ray origin
}

// Ray is a single cast ray and the walls it crosses.
type Ray struct {
	Origin geom.Point
	Dir    geom.Point
	// Collisions is ordered farthest first so that painting in slice order
	// leaves the nearest wall on top.
	Collisions []Collision
}

// NewRay creates a ray with no collisions.
func NewRay(origin, dir geom.Point) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// ComputeIntersections replaces the ray's collisions with one entry per wall
// the ray hits, sorted by distance descending. Walls at equal distance keep
// their order in walls, and NaN distances sort to the far end.
func (r *Ray) ComputeIntersections(walls []Wall) {
	collisions := r.Collisions[:0]
	for _, wall := range walls {
		t, ok := wall.Intersect(r.Origin, r.Dir)
		if !ok {
			continue
		}
		p := r.Origin.Add(r.Dir.Scale(t))
		collisions = append(collisions, Collision{
			Point:    p,
			Kind:     wall.Kind,
			Distance: geom.Distance(r.Origin, p),
		})
	}

	slices.SortStableFunc(collisions, func(a, b Collision) int {
		return farthestFirst(a.Distance, b.Distance)
	})
	r.Collisions = collisions
}

func farthestFirst(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}

// Nearest returns the closest collision, which is the last one.
func (r *Ray) Nearest() (Collision, bool) {
	if len(r.Collisions) == 0 {
		return Collision{}, false
	}
	return r.Collisions[len(r.Collisions)-1], true
}

// Len returns the distance to the nearest collision, or +Inf when the ray
// hits nothing.
func (r *Ray) Len() float64 {
	c, ok := r.Nearest()
	if !ok {
		return math.Inf(1)
	}
	return c.Distance
}
