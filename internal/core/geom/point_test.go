package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(3, -1)

	assert.Equal(t, Pt(4, 1), p.Add(q))
	assert.Equal(t, Pt(-2, 3), p.Sub(q))
	assert.Equal(t, Pt(2.5, 5), p.Scale(2.5))
	assert.InDelta(t, 5.0, Pt(3, 4).Len(), 1e-12)
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(Pt(1, 1), Pt(4, 5)), 1e-12)
	assert.Equal(t, 0.0, Distance(Pt(2, 2), Pt(2, 2)))
}

func TestFromAngle(t *testing.T) {
	cases := []struct {
		deg  float64
		want Point
	}{
		{0, Pt(1, 0)},
		{90, Pt(0, 1)},
		{180, Pt(-1, 0)},
		{270, Pt(0, -1)},
		{45, Pt(math.Sqrt2/2, math.Sqrt2/2)},
	}
	for _, c := range cases {
		got := FromAngle(c.deg)
		assert.InDelta(t, c.want.X, got.X, 1e-12, "deg %v", c.deg)
		assert.InDelta(t, c.want.Y, got.Y, 1e-12, "deg %v", c.deg)
		assert.InDelta(t, 1.0, got.Len(), 1e-12)
	}
}
