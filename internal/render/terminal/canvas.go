// Package terminal implements the render interfaces on a tcell screen. One
// character cell is one pixel; rectangles are painted with the cell
// background and lines, circles and text with the foreground.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/dogwalk/internal/render"
)

const strokeRune = '•'

// Canvas is the screen seen as a render.Image.
type Canvas struct {
	screen        tcell.Screen
	width, height int
}

// NewCanvas wraps screen, clipped to width x height cells.
func NewCanvas(screen tcell.Screen, width, height int) *Canvas {
	return &Canvas{screen: screen, width: width, height: height}
}

// Size returns the drawable size in cells.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Fill paints every cell with clr.
func (c *Canvas) Fill(clr color.Color) {
	style := tcell.StyleDefault.Background(toTcell(clr))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Clear resets every cell to the default style.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *Canvas) paint(x, y int, clr tcell.Color) {
	if c.inside(x, y) {
		c.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(clr))
	}
}

func (c *Canvas) stroke(x, y int, r rune, clr tcell.Color) {
	if !c.inside(x, y) {
		return
	}
	_, _, style, _ := c.screen.GetContent(x, y)
	c.screen.SetContent(x, y, r, nil, style.Foreground(clr))
}

// Renderer implements render.Renderer for Canvas images.
type Renderer struct{}

// NewRenderer creates a terminal renderer.
func NewRenderer() render.Renderer {
	return &Renderer{}
}

// FillRect paints the cells covered by the rectangle.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	c := dst.(*Canvas)
	x0, y0 := clampCell(x, c.width), clampCell(y, c.height)
	x1, y1 := clampCell(x+width, c.width), clampCell(y+height, c.height)
	tc := toTcell(clr)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.paint(cx, cy, tc)
		}
	}
}

// StrokeRect outlines the rectangle. strokeWidth is always one cell.
func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
	x1, y1 := x+width-1, y+height-1
	r.StrokeLine(dst, x, y, x1, y, strokeWidth, clr)
	r.StrokeLine(dst, x1, y, x1, y1, strokeWidth, clr)
	r.StrokeLine(dst, x1, y1, x, y1, strokeWidth, clr)
	r.StrokeLine(dst, x, y1, x, y, strokeWidth, clr)
}

// StrokeLine draws the part of the segment that lies on the canvas.
func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	c := dst.(*Canvas)
	fx0, fy0, fx1, fy1, ok := clipSegment(float64(x0), float64(y0), float64(x1), float64(y1), float64(c.width-1), float64(c.height-1))
	if !ok {
		return
	}
	tc := toTcell(clr)
	for _, p := range bresenham(round(fx0), round(fy0), round(fx1), round(fy1)) {
		c.stroke(p[0], p[1], strokeRune, tc)
	}
}

// StrokeCircle draws a circle outline with the midpoint algorithm.
func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius, strokeWidth float32, clr color.Color) {
	c := dst.(*Canvas)
	tc := toTcell(clr)
	cx, cy, rad := round(float64(x)), round(float64(y)), round(float64(radius))
	if rad <= 0 {
		c.stroke(cx, cy, strokeRune, tc)
		return
	}
	px, py := rad, 0
	d := 1 - rad
	for px >= py {
		for _, o := range [][2]int{{px, py}, {py, px}, {-py, px}, {-px, py}, {-px, -py}, {-py, -px}, {py, -px}, {px, -py}} {
			c.stroke(cx+o[0], cy+o[1], strokeRune, tc)
		}
		py++
		if d < 0 {
			d += 2*py + 1
		} else {
			px--
			d += 2*(py-px) + 1
		}
	}
}

// DrawText writes str starting at (x, y) without wrapping.
func (r *Renderer) DrawText(dst render.Image, str string, x, y int, clr color.Color) {
	c := dst.(*Canvas)
	tc := toTcell(clr)
	for _, ch := range str {
		c.stroke(x, y, ch, tc)
		x++
	}
}

func toTcell(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func clampCell(v float32, limit int) int {
	f := math.Floor(float64(v))
	switch {
	case f < 0 || math.IsNaN(f):
		return 0
	case f > float64(limit):
		return limit
	}
	return int(f)
}

func round(v float64) int {
	return int(math.Round(v))
}

// clipSegment clips a segment to [0, maxX] x [0, maxY] (Liang-Barsky).
func clipSegment(x0, y0, x1, y1, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	if maxX < 0 || maxY < 0 {
		return 0, 0, 0, 0, false
	}
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, maxX - x0},
		{-dy, y0},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}
	if math.IsNaN(t0) || math.IsNaN(t1) {
		return 0, 0, 0, 0, false
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func bresenham(x0, y0, x1, y1 int) [][2]int {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	points := make([][2]int, 0, max(dx, -dy)+1)
	err := dx + dy
	for {
		points = append(points, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			return points
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
