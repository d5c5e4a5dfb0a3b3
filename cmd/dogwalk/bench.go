package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/cheggaaa/pb"
	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"chosenoffset.com/dogwalk/internal/config"
	"chosenoffset.com/dogwalk/internal/core/frame"
	"chosenoffset.com/dogwalk/internal/core/player"
)

func benchAction(c *cli.Context) error {
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
	frames := c.Int("frames")
	if frames <= 0 {
		return cli.NewExitError("frames must be positive", 1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	caster := frame.NewCaster(settings, lvl.Walls())
	spawn := lvl.Spawn()
	p := player.New(spawn.X, spawn.Y, spawn.Heading)
	step := 360 / float64(frames)

	bar := pb.New(frames)
	bar.Output = errWriter(c)
	bar.SetWidth(80)
	bar.Start()

	var bars int
	begin := time.Now()
	for i := 0; i < frames; i++ {
		f, err := caster.Cast(ctx, p.Snapshot(), cfg.Width, cfg.Height)
		if err != nil {
			bar.Finish()
			return err
		}
		bars += len(f.Bars())
		p.Turn(step)
		bar.Increment()
	}
	bar.Finish()
	took := time.Since(begin)

	log.Print(chalk.Green)
	log.Printf("%d frames of %d rays in %v (%v per frame, %d workers)",
		frames, frame.RayCount(cfg.Width, cfg.Stride), took, took/time.Duration(frames), cfg.Workers)
	log.Printf("%.1f bars per frame", float64(bars)/float64(frames))
	log.Print(chalk.Reset)
	return nil
}
