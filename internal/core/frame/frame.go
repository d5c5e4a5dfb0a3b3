// Package frame turns a viewpoint snapshot into the shaded wall bars of one
// frame: one ray per screen column, projected by inverse distance and painted
// farthest first.
package frame

import (
	"context"
	"image/color"
	"math"

	"golang.org/x/sync/errgroup"

	"chosenoffset.com/dogwalk/internal/core/geom"
	"chosenoffset.com/dogwalk/internal/core/player"
	"chosenoffset.com/dogwalk/internal/core/raycast"
)

// MinDistance is the nearest collision that still produces a bar. Anything
// closer would divide by (almost) zero in the projection.
const MinDistance = 1e-9

// Settings configures the projection. It is read-only once a Caster is built.
type Settings struct {
	FOV        float64 // degrees
	Stride     int     // pixels per ray
	Visibility float64 // collisions farther than this are dropped; 0 disables
	Workers    int     // rays cast concurrently; <= 1 casts on the caller
	FullColor  color.RGBA
	HalfColor  color.RGBA
}

// Bar is one rectangle to paint.
type Bar struct {
	X, Y, W, H int
	Color      color.RGBA
	Kind       raycast.WallKind
	Distance   float64
}

// Column is the result of one ray. Bars are in paint order.
type Column struct {
	Index int
	X     int
	Angle float64
	Ray   raycast.Ray
	Bars  []Bar
}

// Frame is everything cast for one screen.
type Frame struct {
	Width, Height int
	View          player.View
	Columns       []Column
}

// Bars returns every bar of the frame in paint order.
func (f *Frame) Bars() []Bar {
	var bars []Bar
	for _, c := range f.Columns {
		bars = append(bars, c.Bars...)
	}
	return bars
}

// Caster casts frames against a fixed set of walls.
type Caster struct {
	settings Settings
	walls    []raycast.Wall
}

// NewCaster creates a caster. walls must not be modified afterwards.
func NewCaster(settings Settings, walls []raycast.Wall) *Caster {
	return &Caster{settings: settings, walls: walls}
}

// Settings returns the caster's settings.
func (c *Caster) Settings() Settings {
	return c.settings
}

// Cast renders the view into a width x height frame. Columns are independent,
// so with Workers > 1 they are cast concurrently; each goroutine only writes
// its own column.
func (c *Caster) Cast(ctx context.Context, view player.View, width, height int) (*Frame, error) {
	count := RayCount(width, c.settings.Stride)
	f := &Frame{
		Width:   width,
		Height:  height,
		View:    view,
		Columns: make([]Column, count),
	}

	if c.settings.Workers <= 1 {
		for i := range f.Columns {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			c.castColumn(&f.Columns[i], view, i, count, height)
		}
		return f, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.settings.Workers)
	for i := range f.Columns {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c.castColumn(&f.Columns[i], view, i, count, height)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return f, nil
}

func (c *Caster) castColumn(col *Column, view player.View, i, count, height int) {
	s := c.settings
	angle := RayAngle(view.Heading, s.FOV, count, i)

	ray := raycast.NewRay(view.Pos, geom.FromAngle(angle))
	ray.ComputeIntersections(c.walls)

	col.Index = i
	col.X = s.Stride * i
	col.Angle = angle
	col.Ray = ray

	for _, hit := range ray.Collisions {
		dist := geom.Distance(view.Pos, hit.Point)
		if !(dist >= MinDistance) {
			continue
		}
		if s.Visibility > 0 && dist > s.Visibility {
			continue
		}
		y, h := Project(hit.Kind, dist, height)
		col.Bars = append(col.Bars, Bar{
			X:        col.X,
			Y:        y,
			W:        s.Stride,
			H:        h,
			Color:    Shade(c.baseColor(hit.Kind), dist),
			Kind:     hit.Kind,
			Distance: dist,
		})
	}
}

func (c *Caster) baseColor(kind raycast.WallKind) color.RGBA {
	if kind == raycast.Half {
		return c.settings.HalfColor
	}
	return c.settings.FullColor
}

// RayCount is the number of rays for a screen width. Pixels left over on the
// right are not covered.
func RayCount(width, stride int) int {
	if stride <= 0 || width <= 0 {
		return 0
	}
	return width / stride
}

// RayAngle returns the heading of ray i out of count, in degrees.
func RayAngle(heading, fov float64, count, i int) float64 {
	step := fov / float64(count)
	return heading - fov/2 + step*float64(i)
}

// Project returns the top and height in pixels of a wall bar seen at
// distance. Full walls are centred on the horizon; half walls hang from it.
func Project(kind raycast.WallKind, distance float64, screenHeight int) (y, h int) {
	sh := float64(screenHeight)
	barHeight := sh / distance
	if kind == raycast.Half {
		return int(sh / 2), clampInt(barHeight / 2)
	}
	return clampInt(sh/2 - barHeight/2), clampInt(barHeight)
}

// Shade darkens base by 0.75/distance per channel. Channels saturate at 255
// rather than wrapping. Alpha is always opaque.
func Shade(base color.RGBA, distance float64) color.RGBA {
	f := 0.75 / distance
	return color.RGBA{
		R: scaleChannel(base.R, f),
		G: scaleChannel(base.G, f),
		B: scaleChannel(base.B, f),
		A: 0xff,
	}
}

func scaleChannel(v uint8, f float64) uint8 {
	x := float64(v) * f
	switch {
	case !(x > 0):
		return 0
	case x >= 255:
		return 255
	}
	return uint8(x)
}

func clampInt(v float64) int {
	switch {
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	case math.IsNaN(v):
		return 0
	}
	return int(v)
}
