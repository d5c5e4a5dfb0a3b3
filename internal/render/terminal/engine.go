package terminal

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"chosenoffset.com/dogwalk/internal/render"
)

// DefaultHold is how long a key counts as held after its last key event.
// Terminals only report presses and auto-repeat, never releases.
const DefaultHold = 150 * time.Millisecond

// Input implements render.InputManager from terminal key events.
type Input struct {
	hold        time.Duration
	now         func() time.Time
	lastPress   map[render.Key]time.Time
	justPressed map[render.Key]bool
}

// NewInput creates an input manager treating keys as held for hold after
// each event.
func NewInput(hold time.Duration) *Input {
	return &Input{
		hold:        hold,
		now:         time.Now,
		lastPress:   make(map[render.Key]time.Time),
		justPressed: make(map[render.Key]bool),
	}
}

// Press records a key event.
func (in *Input) Press(key render.Key) {
	if !in.IsKeyPressed(key) {
		in.justPressed[key] = true
	}
	in.lastPress[key] = in.now()
}

// EndFrame forgets which keys were pressed since the last update.
func (in *Input) EndFrame() {
	clear(in.justPressed)
}

// IsKeyPressed reports whether key had an event within the hold window.
func (in *Input) IsKeyPressed(key render.Key) bool {
	t, ok := in.lastPress[key]
	return ok && in.now().Sub(t) <= in.hold
}

// IsKeyJustPressed reports whether key went down since the last update.
func (in *Input) IsKeyJustPressed(key render.Key) bool {
	return in.justPressed[key]
}

// Clock measures real frame times.
type Clock struct {
	frameTime float64
	fps       float64
	frames    int
	window    time.Duration
}

// FrameTime returns the seconds between the last two updates.
func (c *Clock) FrameTime() float64 {
	return c.frameTime
}

// ActualFPS returns the updates counted over the last full second.
func (c *Clock) ActualFPS() float64 {
	return c.fps
}

func (c *Clock) tick(dt time.Duration) {
	c.frameTime = dt.Seconds()
	c.frames++
	c.window += dt
	if c.window >= time.Second {
		c.fps = float64(c.frames) / c.window.Seconds()
		c.frames = 0
		c.window = 0
	}
}

// Engine runs a render.Game on a tcell screen.
type Engine struct {
	screen tcell.Screen
	input  *Input
	clock  *Clock
	tps    int
}

// NewBackend creates a terminal backend drawing to screen. The screen is
// initialised and finalised by RunGame.
func NewBackend(screen tcell.Screen) render.Backend {
	e := &Engine{
		screen: screen,
		input:  NewInput(DefaultHold),
		clock:  &Clock{},
		tps:    30,
	}
	return render.Backend{
		Renderer: NewRenderer(),
		Input:    e.input,
		Clock:    e.clock,
		Engine:   e,
	}
}

// SetWindowSize is a no-op: the terminal decides its size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle logs the title; terminals have no window title to set.
func (e *Engine) SetWindowTitle(title string) {
	log.Printf("terminal: %s", title)
}

// SetWindowResizable is a no-op: terminals are always resizable.
func (e *Engine) SetWindowResizable(resizable bool) {}

// SetTPS sets the number of updates per second.
func (e *Engine) SetTPS(tps int) {
	if tps <= 0 {
		tps = 30
	}
	e.tps = tps
}

// RunGame runs the update/draw loop until the game terminates, Ctrl-C is
// pressed or the screen closes.
func (e *Engine) RunGame(game render.Game) error {
	if err := e.screen.Init(); err != nil {
		return errors.Wrap(err, "failed to initialise terminal")
	}
	defer e.screen.Fini()
	e.screen.HideCursor()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(e.tps))
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if e.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			e.clock.tick(now.Sub(last))
			last = now

			if err := game.Update(); err != nil {
				if errors.Is(err, render.ErrTerminate) {
					return nil
				}
				return err
			}
			e.input.EndFrame()

			w, h := e.screen.Size()
			lw, lh := game.Layout(w, h)
			game.Draw(NewCanvas(e.screen, min(w, lw), min(h, lh)))
			e.screen.Show()
		}
	}
}

// handleEvent feeds input and reports whether the loop should stop.
func (e *Engine) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		e.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if key, ok := translateKey(ev); ok {
			e.input.Press(key)
		}
	}
	return false
}

func translateKey(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyF3:
		return render.KeyF3, true
	case tcell.KeyEscape:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return render.KeyW, true
		case 'a', 'A':
			return render.KeyA, true
		case 's', 'S':
			return render.KeyS, true
		case 'd', 'D':
			return render.KeyD, true
		}
	}
	return 0, false
}
