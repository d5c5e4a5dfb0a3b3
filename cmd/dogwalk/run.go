package main

import (
	"io"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"chosenoffset.com/dogwalk/internal/config"
	"chosenoffset.com/dogwalk/internal/game"
	"chosenoffset.com/dogwalk/internal/render"
	ebitenrender "chosenoffset.com/dogwalk/internal/render/ebiten"
	"chosenoffset.com/dogwalk/internal/render/terminal"
)

func runAction(c *cli.Context) error {
	cfg, err := config.FromContext(c)
	if err != nil {
		return err
	}
	lvl, err := loadLevel(cfg.Level)
	if err != nil {
		return err
	}
	log.Printf("Level %q: %d walls", lvl.Name(), len(lvl.Walls()))
	log.Printf("Config: %dx%d fov=%v stride=%d visibility=%v workers=%d fps=%d debug=%v",
		cfg.Width, cfg.Height, cfg.FOV, cfg.Stride, cfg.Visibility, cfg.Workers, cfg.FPS, cfg.Debug)

	backend, err := newBackend(cfg.Backend)
	if err != nil {
		return err
	}

	g, err := game.New(cfg, lvl, backend)
	if err != nil {
		return err
	}

	engine := backend.Engine
	engine.SetWindowSize(cfg.Width, cfg.Height)
	engine.SetWindowTitle("Dog Walk")
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.FPS)

	log.Printf("Starting %s backend...", cfg.Backend)
	return engine.RunGame(g)
}

func newBackend(name string) (render.Backend, error) {
	switch name {
	case config.BackendTerminal:
		screen, err := tcell.NewScreen()
		if err != nil {
			return render.Backend{}, errors.Wrap(err, "failed to open terminal")
		}
		log.Println("Logging disabled while the terminal backend owns the screen")
		log.SetOutput(io.Discard)
		return terminal.NewBackend(screen), nil
	default:
		return ebitenrender.NewBackend(), nil
	}
}
