package game

import (
	"log"

	"chosenoffset.com/dogwalk/internal/config"
	"chosenoffset.com/dogwalk/internal/core/frame"
	"chosenoffset.com/dogwalk/internal/core/player"
	"chosenoffset.com/dogwalk/internal/render"
	"chosenoffset.com/dogwalk/internal/render/debugview"
	"chosenoffset.com/dogwalk/internal/world/level"
)

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Level        *level.Map
	Player       *player.Player
	Caster       *frame.Caster
	DebugView    debugview.Transform
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Clock        render.Clock

	MoveSpeed  float64
	TurnSpeed  float64
	Visibility float64

	// UI state
	Debug    bool
	Messages []Message

	// LastFrame is the most recently drawn frame.
	LastFrame *frame.Frame
}

// New creates a game for lvl using the backend's renderer, input and clock.
func New(cfg *config.Config, lvl *level.Map, backend render.Backend) (*Game, error) {
	settings, err := cfg.FrameSettings()
	if err != nil {
		return nil, err
	}
	spawn := lvl.Spawn()
	return &Game{
		ScreenWidth:  cfg.Width,
		ScreenHeight: cfg.Height,
		Level:        lvl,
		Player:       player.New(spawn.X, spawn.Y, spawn.Heading),
		Caster:       frame.NewCaster(settings, lvl.Walls()),
		DebugView:    debugview.New(cfg.DebugScale),
		Renderer:     backend.Renderer,
		InputMgr:     backend.Input,
		Clock:        backend.Clock,
		MoveSpeed:    cfg.MoveSpeed,
		TurnSpeed:    cfg.TurnSpeed,
		Visibility:   cfg.Visibility,
		Debug:        cfg.Debug,
	}, nil
}

// Update handles game logic updates.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrTerminate
	}

	dt := g.Clock.FrameTime()
	g.updateMessages(dt)

	if g.InputMgr.IsKeyJustPressed(render.KeyF3) {
		g.Debug = !g.Debug
		if g.Debug {
			g.ShowMessage("Debug overlay on")
		} else {
			g.ShowMessage("Debug overlay off")
		}
	}

	g.Player.Apply(readControls(g.InputMgr), dt, g.MoveSpeed, g.TurnSpeed)
	return nil
}

// Layout follows the window so resizing changes the projection.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.ScreenWidth, g.ScreenHeight = outsideWidth, outsideHeight
	}
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})

	log.Printf("Message: %s", text)
}
