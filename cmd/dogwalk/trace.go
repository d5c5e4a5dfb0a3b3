package main

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"chosenoffset.com/dogwalk/internal/config"
	"chosenoffset.com/dogwalk/internal/core/frame"
	"chosenoffset.com/dogwalk/internal/core/player"
	"chosenoffset.com/dogwalk/internal/core/raycast"
)

func traceAction(c *cli.Context) error {
	cfg, err := config.FromContext(c)
	if err != nil {
		return err
	}
	lvl, err := loadLevel(cfg.Level)
	if err != nil {
		return err
	}
	settings, err := cfg.FrameSettings()
	if err != nil {
		return err
	}

	spawn := lvl.Spawn()
	x, y, heading := spawn.X, spawn.Y, spawn.Heading
	if c.IsSet("x") {
		x = c.Float64("x")
	}
	if c.IsSet("y") {
		y = c.Float64("y")
	}
	if c.IsSet("heading") {
		heading = c.Float64("heading")
	}
	view := player.New(x, y, heading).Snapshot()

	f, err := frame.NewCaster(settings, lvl.Walls()).Cast(context.Background(), view, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	out := c.App.Writer
	fmt.Fprintf(out, "level %s, viewpoint (%.3f, %.3f) heading %.3f, %d rays\n",
		lvl.Name(), view.Pos.X, view.Pos.Y, view.Heading, len(f.Columns))
	for _, col := range f.Columns {
		fmt.Fprintf(out, "%4d %9.3f %s %s\n", col.Index, col.Angle, formatDistance(col.Ray.Len()), describeHits(col.Ray))
	}
	return nil
}

func formatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return fmt.Sprintf("%8s", "inf")
	}
	return fmt.Sprintf("%8.3f", d)
}

// describeHits lists the ray's collisions farthest first, coloured by kind.
func describeHits(ray raycast.Ray) string {
	parts := make([]string, 0, len(ray.Collisions))
	for _, hit := range ray.Collisions {
		s := fmt.Sprintf("%s@%.3f", hit.Kind, hit.Distance)
		if hit.Kind == raycast.Half {
			s = chalk.Red.Color(s)
		} else {
			s = chalk.White.Color(s)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}
