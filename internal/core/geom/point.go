// Package geom holds the 2D value types shared by the ray caster.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point represents a 2D point or vector in world units.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by s on both axes.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Len returns the Euclidean length of p treated as a vector.
func (p Point) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return b.Sub(a).Len()
}

// FromAngle returns the unit vector (cos, sin) for an angle in degrees.
func FromAngle(deg float64) Point {
	rad := mgl64.DegToRad(deg)
	return Point{X: math.Cos(rad), Y: math.Sin(rad)}
}
