// Package player holds the movable viewpoint the world is rendered from.
package player

import (
	"math"

	"chosenoffset.com/dogwalk/internal/core/geom"
)

// View is an immutable snapshot of the viewpoint taken once per frame.
type View struct {
	Pos     geom.Point
	Heading float64 // degrees, [0, 360)
}

// Dir returns the unit vector the view is facing.
func (v View) Dir() geom.Point {
	return geom.FromAngle(v.Heading)
}

// Controls is the logical input state for one frame.
type Controls struct {
	Forward   bool
	Backward  bool
	TurnLeft  bool
	TurnRight bool
}

// Player is the viewpoint. It does not collide with walls.
type Player struct {
	pos     geom.Point
	heading float64
}

// New creates a player at (x, y) facing heading degrees.
func New(x, y, heading float64) *Player {
	return &Player{
		pos:     geom.Pt(x, y),
		heading: NormalizeHeading(heading),
	}
}

// Pos returns the current position.
func (p *Player) Pos() geom.Point {
	return p.pos
}

// Heading returns the current heading in degrees.
func (p *Player) Heading() float64 {
	return p.heading
}

// Snapshot captures the current state for casting a frame.
func (p *Player) Snapshot() View {
	return View{Pos: p.pos, Heading: p.heading}
}

// MoveForward moves distance units along the heading.
func (p *Player) MoveForward(distance float64) {
	p.pos = p.pos.Add(geom.FromAngle(p.heading).Scale(distance))
}

// MoveBackward moves distance units against the heading.
func (p *Player) MoveBackward(distance float64) {
	p.pos = p.pos.Sub(geom.FromAngle(p.heading).Scale(distance))
}

// Turn rotates the heading by delta degrees.
func (p *Player) Turn(delta float64) {
	p.heading = NormalizeHeading(p.heading + delta)
}

// Apply advances the player by one frame of input. Forward takes
// precedence over backward and left over right.
func (p *Player) Apply(c Controls, dt, moveSpeed, turnSpeed float64) {
	if c.Forward {
		p.MoveForward(moveSpeed * dt)
	} else if c.Backward {
		p.MoveBackward(moveSpeed * dt)
	}
	if c.TurnLeft {
		p.Turn(-turnSpeed * dt)
	} else if c.TurnRight {
		p.Turn(turnSpeed * dt)
	}
}

// NormalizeHeading maps any angle onto [0, 360). Non-finite input maps to 0.
func NormalizeHeading(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	// -1e-17 + 360 rounds to 360
	if h >= 360 {
		h = 0
	}
	return h
}
