package frame

import (
	"context"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/dogwalk/internal/core/geom"
	"chosenoffset.com/dogwalk/internal/core/player"
	"chosenoffset.com/dogwalk/internal/core/raycast"
)

var (
	grey = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	red  = color.RGBA{0xaa, 0x33, 0x33, 0xff}
)

var box = []raycast.Wall{
	raycast.NewWall(1, 0, 19, 1, raycast.Full),
	raycast.NewWall(0, 0, 1, 9, raycast.Full),
	raycast.NewWall(0, 9, 19, 1, raycast.Full),
	raycast.NewWall(19, 1, 1, 9, raycast.Full),
	raycast.NewWall(15, 3, 2, 4, raycast.Full),
	raycast.NewWall(5, 3, 2, 3, raycast.Full),
	raycast.NewWall(7, 3, 3, 2, raycast.Half),
}

func settings() Settings {
	return Settings{FOV: 90, Stride: 10, Workers: 1, FullColor: grey, HalfColor: red}
}

func TestRayCount(t *testing.T) {
	assert.Equal(t, 80, RayCount(800, 10))
	assert.Equal(t, 80, RayCount(809, 10))
	assert.Equal(t, 0, RayCount(9, 10))
	assert.Equal(t, 0, RayCount(800, 0))
}

func TestRayAngle(t *testing.T) {
	assert.InDelta(t, -45.0, RayAngle(0, 90, 80, 0), 1e-12)
	assert.InDelta(t, 0.0, RayAngle(0, 90, 80, 40), 1e-12)
	assert.InDelta(t, 43.875, RayAngle(0, 90, 80, 79), 1e-12)
	assert.InDelta(t, 135.0, RayAngle(180, 90, 80, 0), 1e-12)
}

func TestProject(t *testing.T) {
	y, h := Project(raycast.Full, 2.5, 600)
	assert.Equal(t, 180, y)
	assert.Equal(t, 240, h)

	y, h = Project(raycast.Half, 2.5, 600)
	assert.Equal(t, 300, y, "half walls start at the horizon")
	assert.Equal(t, 120, h)

	y, h = Project(raycast.Full, 0.5, 600)
	assert.Equal(t, -300, y, "near walls overflow the screen")
	assert.Equal(t, 1200, h)
}

func TestShade(t *testing.T) {
	assert.Equal(t, color.RGBA{51, 51, 51, 255}, Shade(grey, 2.5))
	assert.Equal(t, color.RGBA{51, 15, 15, 255}, Shade(red, 2.5))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Shade(grey, 0.25), "saturates instead of wrapping")
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, Shade(grey, 1e12))
}

func TestCastReferenceCentreRay(t *testing.T) {
	c := NewCaster(settings(), box)
	f, err := c.Cast(context.Background(), player.View{Pos: geom.Pt(2.5, 5), Heading: 0}, 800, 600)
	require.NoError(t, err)
	require.Len(t, f.Columns, 80)

	centre := f.Columns[40]
	assert.InDelta(t, 0.0, centre.Angle, 1e-12)
	assert.Equal(t, 400, centre.X)
	assert.InDelta(t, 2.5, centre.Ray.Len(), 1e-9, "the obstacle at x=5 blocks the far wall")

	require.Len(t, centre.Bars, 4)
	assert.InDelta(t, 16.5, centre.Bars[0].Distance, 1e-9)
	last := centre.Bars[3]
	assert.Equal(t, raycast.Full, last.Kind)
	assert.Equal(t, Bar{X: 400, Y: 180, W: 10, H: 240, Color: color.RGBA{51, 51, 51, 255}, Kind: raycast.Full, Distance: last.Distance}, last)
}

func TestCastFarWallWhenUnobstructed(t *testing.T) {
	c := NewCaster(settings(), box)
	f, err := c.Cast(context.Background(), player.View{Pos: geom.Pt(2.5, 8), Heading: 0}, 800, 600)
	require.NoError(t, err)

	assert.InDelta(t, 16.5, f.Columns[40].Ray.Len(), 1e-9)
}

func TestCastHalfPaintedAfterFull(t *testing.T) {
	walls := []raycast.Wall{
		raycast.NewWall(10, -1, 1, 2, raycast.Full),
		raycast.NewWall(4, -1, 1, 2, raycast.Half),
	}
	s := settings()
	s.FOV = 1
	s.Stride = 100
	c := NewCaster(s, walls)

	f, err := c.Cast(context.Background(), player.View{Heading: 0.5}, 100, 400)
	require.NoError(t, err)
	require.Len(t, f.Columns, 1)

	bars := f.Columns[0].Bars
	require.Len(t, bars, 2)
	assert.Equal(t, raycast.Full, bars[0].Kind)
	assert.Equal(t, 200-20, bars[0].Y)
	assert.Equal(t, 40, bars[0].H)
	assert.Equal(t, raycast.Half, bars[1].Kind)
	assert.Equal(t, 200, bars[1].Y)
	assert.Equal(t, 50, bars[1].H)
	assert.Equal(t, bars, f.Bars())
}

func TestCastVisibilityCutoff(t *testing.T) {
	s := settings()
	s.Visibility = 10
	c := NewCaster(s, box)

	f, err := c.Cast(context.Background(), player.View{Pos: geom.Pt(2.5, 5)}, 800, 600)
	require.NoError(t, err)

	centre := f.Columns[40]
	require.Len(t, centre.Bars, 2)
	for _, b := range centre.Bars {
		assert.LessOrEqual(t, b.Distance, 10.0)
	}
	assert.Len(t, centre.Ray.Collisions, 4, "the ray itself keeps every hit")
}

func TestCastSkipsZeroDistance(t *testing.T) {
	walls := []raycast.Wall{raycast.NewWall(5, 3, 2, 3, raycast.Full)}
	s := settings()
	s.FOV = 1
	s.Stride = 1
	c := NewCaster(s, walls)

	f, err := c.Cast(context.Background(), player.View{Pos: geom.Pt(5, 4), Heading: 0.5}, 1, 100)
	require.NoError(t, err)
	require.Len(t, f.Columns, 1)
	assert.Len(t, f.Columns[0].Ray.Collisions, 1)
	assert.Empty(t, f.Columns[0].Bars)
}

func TestCastEmptyColumns(t *testing.T) {
	c := NewCaster(settings(), nil)
	f, err := c.Cast(context.Background(), player.View{}, 800, 600)
	require.NoError(t, err)
	require.Len(t, f.Columns, 80)
	assert.Empty(t, f.Bars())
}

func TestCastParallelMatchesSequential(t *testing.T) {
	view := player.View{Pos: geom.Pt(11.25, 6.5), Heading: 217}

	seq, err := NewCaster(settings(), box).Cast(context.Background(), view, 640, 480)
	require.NoError(t, err)

	s := settings()
	s.Workers = 8
	par, err := NewCaster(s, box).Cast(context.Background(), view, 640, 480)
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}

func TestCastCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		s := settings()
		s.Workers = workers
		_, err := NewCaster(s, box).Cast(ctx, player.View{Pos: geom.Pt(2.5, 5)}, 800, 600)
		assert.ErrorIs(t, err, context.Canceled)
	}
}
