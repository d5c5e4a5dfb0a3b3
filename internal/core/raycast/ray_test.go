package raycast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/dogwalk/internal/core/geom"
)

// box mirrors the built-in level so the tests stay independent of the
// level package.
var box = []Wall{
	NewWall(1, 0, 19, 1, Full),
	NewWall(0, 0, 1, 9, Full),
	NewWall(0, 9, 19, 1, Full),
	NewWall(19, 1, 1, 9, Full),
	NewWall(15, 3, 2, 4, Full),
	NewWall(5, 3, 2, 3, Full),
	NewWall(7, 3, 3, 2, Half),
}

func TestRayComputeIntersectionsOrder(t *testing.T) {
	ray := NewRay(geom.Pt(2.5, 5), geom.Pt(1, 0))
	ray.ComputeIntersections(box)

	require.Len(t, ray.Collisions, 4)
	want := []struct {
		dist float64
		kind WallKind
	}{
		{16.5, Full},
		{12.5, Full},
		{4.5, Half},
		{2.5, Full},
	}
	for i, w := range want {
		assert.InDelta(t, w.dist, ray.Collisions[i].Distance, 1e-9, "collision %d", i)
		assert.Equal(t, w.kind, ray.Collisions[i].Kind, "collision %d", i)
	}
	assert.InDelta(t, 2.5, ray.Len(), 1e-9)

	near, ok := ray.Nearest()
	require.True(t, ok)
	assert.InDelta(t, 5.0, near.Point.X, 1e-9)
	assert.InDelta(t, 5.0, near.Point.Y, 1e-9)
}

func TestRayNonIncreasingDistance(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 7.5 {
		ray := NewRay(geom.Pt(3, 7.5), geom.FromAngle(deg))
		ray.ComputeIntersections(box)

		require.NotEmpty(t, ray.Collisions, "deg %v: the box is closed", deg)
		for i := 1; i < len(ray.Collisions); i++ {
			assert.GreaterOrEqual(t, ray.Collisions[i-1].Distance, ray.Collisions[i].Distance)
		}
	}
}

func TestRayIdempotent(t *testing.T) {
	ray := NewRay(geom.Pt(12, 2), geom.FromAngle(33))
	ray.ComputeIntersections(box)
	first := append([]Collision(nil), ray.Collisions...)

	ray.ComputeIntersections(box)
	assert.Equal(t, first, ray.Collisions)
}

func TestRayHalfInFrontOfFull(t *testing.T) {
	walls := []Wall{
		NewWall(10, -1, 1, 2, Full),
		NewWall(4, -1, 1, 2, Half),
	}
	ray := NewRay(geom.Pt(0, 0), geom.Pt(1, 0))
	ray.ComputeIntersections(walls)

	require.Len(t, ray.Collisions, 2)
	assert.Equal(t, Full, ray.Collisions[0].Kind)
	assert.Equal(t, Half, ray.Collisions[1].Kind)
	assert.InDelta(t, 4.0, ray.Len(), 1e-12)
}

func TestRayEmpty(t *testing.T) {
	ray := NewRay(geom.Pt(0, 0), geom.Pt(-1, 0))
	ray.ComputeIntersections([]Wall{NewWall(5, -1, 1, 2, Full)})

	assert.Empty(t, ray.Collisions)
	assert.True(t, math.IsInf(ray.Len(), 1))
	_, ok := ray.Nearest()
	assert.False(t, ok)
}

func TestRayTiesKeepWallOrder(t *testing.T) {
	walls := []Wall{
		NewWall(5, -1, 1, 2, Full),
		NewWall(5, -2, 2, 4, Half),
	}
	ray := NewRay(geom.Pt(0, 0), geom.Pt(1, 0))
	ray.ComputeIntersections(walls)

	require.Len(t, ray.Collisions, 2)
	assert.Equal(t, Full, ray.Collisions[0].Kind)
	assert.Equal(t, Half, ray.Collisions[1].Kind)
}

func TestFarthestFirstNaN(t *testing.T) {
	assert.Equal(t, -1, farthestFirst(math.NaN(), 3))
	assert.Equal(t, 1, farthestFirst(3, math.NaN()))
	assert.Equal(t, 0, farthestFirst(math.NaN(), math.NaN()))
	assert.Equal(t, -1, farthestFirst(4, 3))
	assert.Equal(t, 1, farthestFirst(3, 4))
	assert.Equal(t, 0, farthestFirst(3, 3))
}
