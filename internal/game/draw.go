package game

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"math"

	"chosenoffset.com/dogwalk/internal/core/frame"
	"chosenoffset.com/dogwalk/internal/render"
)

var (
	wallOutlineColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	viewpointColor   = color.RGBA{0xe6, 0x29, 0x37, 0xff}
	rayColor         = color.RGBA{0x00, 0xe4, 0x30, 0xff}
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	w, h := screen.Size()
	screen.Fill(color.Black)

	f, err := g.Caster.Cast(context.Background(), g.Player.Snapshot(), w, h)
	if err != nil {
		log.Printf("cast failed: %v", err)
		return
	}
	g.LastFrame = f

	g.drawBars(screen, f)
	if g.Debug {
		g.drawDebug(screen, f)
	}
	g.drawUI(screen)
}

// drawBars paints in frame order: column by column, farthest bar first.
func (g *Game) drawBars(screen render.Image, f *frame.Frame) {
	for _, col := range f.Columns {
		for _, b := range col.Bars {
			g.Renderer.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), b.Color)
		}
	}
}

func (g *Game) drawDebug(screen render.Image, f *frame.Frame) {
	dv := g.DebugView

	for _, wall := range g.Level.Walls() {
		x, y := dv.Apply(wall.Min())
		g.Renderer.StrokeRect(screen, x, y, dv.Length(wall.Width), dv.Length(wall.Height), 1, wallOutlineColor)
	}

	px, py := dv.Apply(f.View.Pos)
	g.Renderer.StrokeCircle(screen, px, py, 5, 1, viewpointColor)

	for _, col := range f.Columns {
		dist := col.Ray.Len()
		if g.Visibility > 0 {
			dist = math.Min(dist, g.Visibility)
		}
		if math.IsInf(dist, 0) {
			continue
		}
		ex, ey := dv.Apply(col.Ray.Origin.Add(col.Ray.Dir.Scale(dist)))
		g.Renderer.StrokeLine(screen, px, py, ex, ey, 1, rayColor)
	}

	w, _ := screen.Size()
	g.Renderer.DrawText(screen, fmt.Sprintf("FPS: %0.1f", g.Clock.ActualFPS()), w-80, 10, color.White)
}

func (g *Game) drawUI(screen render.Image) {
	y := 30
	for _, msg := range g.Messages {
		alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
		g.Renderer.DrawText(screen, msg.Text, 10, y, color.NRGBA{255, 255, 255, alpha})
		y += 20
	}
}
