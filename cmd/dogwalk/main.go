package main

import (
	"io"
	"log"
	"os"

	"github.com/urfave/cli"

	"chosenoffset.com/dogwalk/internal/config"
	"chosenoffset.com/dogwalk/internal/world/level"
)

func main() {
	if err := makeapp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "dogwalk"
	app.Usage = "first-person raycaster over a map of rectangular walls"
	app.Flags = config.Flags()
	app.Action = runAction

	app.Commands = []cli.Command{
		{
			Name:   "run",
			Usage:  "Open the renderer (default)",
			Flags:  config.Flags(),
			Action: runAction,
		},
		{
			Name:  "trace",
			Usage: "Cast one frame and print every column",
			Flags: append(config.Flags(),
				cli.Float64Flag{Name: "x", Usage: "Viewpoint x; level spawn when unset"},
				cli.Float64Flag{Name: "y", Usage: "Viewpoint y; level spawn when unset"},
				cli.Float64Flag{Name: "heading", Usage: "Viewpoint heading in degrees; level spawn when unset"},
			),
			Action: traceAction,
		},
		{
			Name:  "bench",
			Usage: "Cast frames headless while turning and report timings",
			Flags: append(config.Flags(),
				cli.IntFlag{Name: "frames", Value: 600, Usage: "Number of frames to cast"},
			),
			Action: benchAction,
		},
		{
			Name:  "lint",
			Usage: "Report overlapping walls and a spawn point inside a wall",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "level", Usage: "Level file; the built-in level when empty"},
			},
			Action: lintAction,
		},
	}
	return app
}

func loadLevel(path string) (*level.Map, error) {
	if path == "" {
		return level.Reference(), nil
	}
	return level.Load(path)
}

func errWriter(c *cli.Context) io.Writer {
	if c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}
	return os.Stderr
}
