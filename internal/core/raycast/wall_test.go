package raycast

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/dogwalk/internal/core/geom"
)

func TestWallIntersectAxisAligned(t *testing.T) {
	wall := NewWall(5, 5, 1, 1, Full)

	tHit, ok := wall.Intersect(geom.Pt(0, 5), geom.Pt(1, 0))
	require.True(t, ok)
	assert.InDelta(t, 5.0, tHit, 1e-12)

	p := geom.Pt(0, 5).Add(geom.Pt(1, 0).Scale(tHit))
	assert.InDelta(t, 5.0, p.X, 1e-12)
	assert.InDelta(t, 5.0, p.Y, 1e-12)
}

func TestWallIntersectParallelMiss(t *testing.T) {
	wall := NewWall(5, 5, 1, 1, Full)

	_, ok := wall.Intersect(geom.Pt(0, 4), geom.Pt(1, 0))
	assert.False(t, ok, "ray below the wall")

	_, ok = wall.Intersect(geom.Pt(5.5, 0), geom.Pt(0, -1))
	assert.False(t, ok, "vertical ray pointing away")

	tHit, ok := wall.Intersect(geom.Pt(5.5, 0), geom.Pt(0, 1))
	require.True(t, ok, "vertical ray pointing at the wall")
	assert.InDelta(t, 5.0, tHit, 1e-12)
}

func TestWallIntersectBehindOrigin(t *testing.T) {
	wall := NewWall(5, 5, 1, 1, Full)
	_, ok := wall.Intersect(geom.Pt(10, 5.5), geom.Pt(1, 0))
	assert.False(t, ok)
}

func TestWallIntersectFromInside(t *testing.T) {
	wall := NewWall(0, 0, 4, 4, Full)
	_, ok := wall.Intersect(geom.Pt(2, 2), geom.Pt(1, 0))
	assert.False(t, ok, "entry lies behind an origin inside the wall")
}

func TestWallIntersectNaNOrigin(t *testing.T) {
	wall := NewWall(0, 0, 1, 1, Full)
	_, ok := wall.Intersect(geom.Pt(math.NaN(), 0.5), geom.Pt(1, 0))
	assert.False(t, ok)
}

func TestWallIntersectHitLiesOnBoundary(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const eps = 1e-9
	hits := 0

	for i := 0; i < 2000; i++ {
		wall := NewWall(rng.Float64()*10, rng.Float64()*10, 0.1+rng.Float64()*3, 0.1+rng.Float64()*3, Full)
		origin := geom.Pt(rng.Float64()*20-5, rng.Float64()*20-5)
		if wall.Contains(origin) {
			continue
		}
		dir := geom.FromAngle(rng.Float64() * 360)

		tHit, ok := wall.Intersect(origin, dir)
		if !ok {
			continue
		}
		hits++
		require.GreaterOrEqual(t, tHit, 0.0)

		p := origin.Add(dir.Scale(tHit))
		min, max := wall.Min(), wall.Max()
		onX := math.Abs(p.X-min.X) < eps || math.Abs(p.X-max.X) < eps
		onY := math.Abs(p.Y-min.Y) < eps || math.Abs(p.Y-max.Y) < eps
		inside := p.X >= min.X-eps && p.X <= max.X+eps && p.Y >= min.Y-eps && p.Y <= max.Y+eps
		assert.True(t, inside && (onX || onY), "hit %v not on boundary of %+v", p, wall)
	}
	assert.Greater(t, hits, 100)
}

func TestWallIntersectPointingAway(t *testing.T) {
	walls := []Wall{
		NewWall(5, 5, 1, 1, Full),
		NewWall(5, -3, 2, 1, Half),
		NewWall(8, 0, 1, 6, Full),
	}
	origin := geom.Pt(0, 0)
	for _, deg := range []float64{100, 135, 180, 225, 260} {
		dir := geom.FromAngle(deg)
		for _, w := range walls {
			_, ok := w.Intersect(origin, dir)
			assert.False(t, ok, "deg %v wall %+v", deg, w)
		}
	}
}

func TestWallKindText(t *testing.T) {
	for _, k := range []WallKind{Full, Half} {
		b, err := k.MarshalText()
		require.NoError(t, err)

		var back WallKind
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, k, back)
	}

	var k WallKind
	assert.Error(t, k.UnmarshalText([]byte("quarter")))
	_, err := WallKind(9).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "WallKind(9)", WallKind(9).String())
}
