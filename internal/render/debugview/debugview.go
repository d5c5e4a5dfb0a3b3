// Package debugview maps world coordinates onto the screen for the top-down
// debug overlay.
package debugview

import (
	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/dogwalk/internal/core/geom"
)

// Transform is a 2D homogeneous world-to-screen transform.
type Transform struct {
	m     mgl64.Mat3
	scale float64
}

// New returns a transform scaling world units by scale pixels.
func New(scale float64) Transform {
	return Transform{m: mgl64.Scale2D(scale, scale), scale: scale}
}

// Apply maps a world point to screen pixels.
func (t Transform) Apply(p geom.Point) (x, y float32) {
	v := t.m.Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
	return float32(v.X()), float32(v.Y())
}

// Length maps a world distance to pixels.
func (t Transform) Length(d float64) float32 {
	return float32(d * t.scale)
}

// Scale returns the world-to-screen scale.
func (t Transform) Scale() float64 {
	return t.scale
}
