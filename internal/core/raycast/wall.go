// Package raycast implements the ray/wall intersection geometry: axis-aligned
// walls tested with the slab method and rays that collect every wall they
// cross ordered farthest first.
package raycast

import (
	"fmt"
	"math"
	"strings"

	"chosenoffset.com/dogwalk/internal/core/geom"
)

// WallKind classifies how tall a wall is when projected.
type WallKind int

const (
	// Full walls span floor to ceiling.
	Full WallKind = iota
	// Half walls only occupy the lower half of the projection.
	Half
)

func (k WallKind) String() string {
	switch k {
	case Full:
		return "full"
	case Half:
		return "half"
	default:
		return fmt.Sprintf("WallKind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k WallKind) MarshalText() ([]byte, error) {
	switch k {
	case Full, Half:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("unknown wall kind %d", int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *WallKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "full", "":
		*k = Full
	case "half":
		*k = Half
	default:
		return fmt.Errorf("unknown wall kind %q", string(text))
	}
	return nil
}

// Wall is an axis-aligned rectangle. (X, Y) is the corner with the smallest
// coordinates.
type Wall struct {
	X, Y          float64
	Width, Height float64
	Kind          WallKind
}

// NewWall creates a wall of the given kind.
func NewWall(x, y, width, height float64, kind WallKind) Wall {
	return Wall{X: x, Y: y, Width: width, Height: height, Kind: kind}
}

// Min returns the corner with the smallest coordinates.
func (w Wall) Min() geom.Point {
	return geom.Pt(w.X, w.Y)
}

// Max returns the corner with the largest coordinates.
func (w Wall) Max() geom.Point {
	return geom.Pt(w.X+w.Width, w.Y+w.Height)
}

// Contains reports whether p lies inside the wall or on its boundary.
func (w Wall) Contains(p geom.Point) bool {
	return p.X >= w.X && p.X <= w.X+w.Width && p.Y >= w.Y && p.Y <= w.Y+w.Height
}

// Intersect tests the ray origin + dir*t (t >= 0) against the wall using the
// slab method. It returns the entry distance t when the ray hits.
//
// A zero direction component makes the ray parallel to that axis: the slab
// then either contains the origin for every t or for none.
func (w Wall) Intersect(origin, dir geom.Point) (float64, bool) {
	nearX, farX, ok := slab(origin.X, dir.X, w.X, w.X+w.Width)
	if !ok {
		return 0, false
	}
	nearY, farY, ok := slab(origin.Y, dir.Y, w.Y, w.Y+w.Height)
	if !ok {
		return 0, false
	}

	tmin := math.Max(nearX, nearY)
	tmax := math.Min(farX, farY)

	if tmax >= tmin && tmin >= 0 {
		return tmin, true
	}
	return 0, false
}

// slab returns the parametric interval during which the ray is between lo
// and hi on one axis.
func slab(origin, dir, lo, hi float64) (near, far float64, ok bool) {
	if dir == 0 {
		if origin < lo || origin > hi {
			return 0, 0, false
		}
		return math.Inf(-1), math.Inf(1), true
	}
	t1 := (lo - origin) / dir
	t2 := (hi - origin) / dir
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2, true
}
