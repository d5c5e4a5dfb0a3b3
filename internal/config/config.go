// Package config holds the startup configuration. Values are read once from
// defaults, an optional JSON file and command-line flags, in that order.
package config

import (
	"encoding/json"
	"image/color"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"chosenoffset.com/dogwalk/internal/core/frame"
)

// Backend names.
const (
	BackendEbiten   = "ebiten"
	BackendTerminal = "terminal"
)

// Config is the full configuration surface.
type Config struct {
	Width  int `json:"width"`  // Screen width in pixels
	Height int `json:"height"` // Screen height in pixels

	FOV        float64 `json:"fov"`        // Field of view in degrees
	Stride     int     `json:"stride"`     // Pixels per ray
	Visibility float64 `json:"visibility"` // Render distance cutoff, 0 for none
	Workers    int     `json:"workers"`    // Concurrent ray casters

	FPS        int     `json:"fps"`
	Debug      bool    `json:"debug"`
	DebugScale float64 `json:"debug_scale"` // World-to-screen scale of the debug overlay

	MoveSpeed float64 `json:"move_speed"` // Units per second
	TurnSpeed float64 `json:"turn_speed"` // Degrees per second

	FullColor string `json:"full_color"`
	HalfColor string `json:"half_color"`

	Backend string `json:"backend"`
	Level   string `json:"level"` // Level file, empty for the built-in level
}

// Default returns the reference configuration.
func Default() *Config {
	return &Config{
		Width:      800,
		Height:     600,
		FOV:        90,
		Stride:     10,
		Visibility: 24,
		Workers:    1,
		FPS:        30,
		Debug:      false,
		DebugScale: 10,
		MoveSpeed:  2,
		TurnSpeed:  180,
		FullColor:  "#AAAAAA",
		HalfColor:  "#AA3333",
		Backend:    BackendEbiten,
	}
}

// Load overlays a JSON file on the defaults. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "failed to read config")
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	return cfg, nil
}

// Validate rejects values the renderer cannot work with.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return errors.Errorf("invalid screen size %dx%d", cfg.Width, cfg.Height)
	case cfg.FOV <= 0 || cfg.FOV >= 360:
		return errors.Errorf("fov must be in (0, 360), got %v", cfg.FOV)
	case cfg.Stride <= 0:
		return errors.Errorf("stride must be positive, got %d", cfg.Stride)
	case cfg.Visibility < 0:
		return errors.Errorf("visibility must not be negative, got %v", cfg.Visibility)
	case cfg.Workers < 0:
		return errors.Errorf("workers must not be negative, got %d", cfg.Workers)
	case cfg.FPS <= 0:
		return errors.Errorf("fps must be positive, got %d", cfg.FPS)
	case cfg.DebugScale <= 0:
		return errors.Errorf("debug scale must be positive, got %v", cfg.DebugScale)
	case cfg.MoveSpeed <= 0 || cfg.TurnSpeed <= 0:
		return errors.Errorf("speeds must be positive, got %v and %v", cfg.MoveSpeed, cfg.TurnSpeed)
	}
	switch cfg.Backend {
	case BackendEbiten, BackendTerminal:
	default:
		return errors.Errorf("unknown backend %q", cfg.Backend)
	}
	if _, err := ParseColor(cfg.FullColor); err != nil {
		return errors.Wrap(err, "full_color")
	}
	if _, err := ParseColor(cfg.HalfColor); err != nil {
		return errors.Wrap(err, "half_color")
	}
	return nil
}

// FrameSettings converts the configuration into caster settings.
func (cfg *Config) FrameSettings() (frame.Settings, error) {
	full, err := ParseColor(cfg.FullColor)
	if err != nil {
		return frame.Settings{}, errors.Wrap(err, "full_color")
	}
	half, err := ParseColor(cfg.HalfColor)
	if err != nil {
		return frame.Settings{}, errors.Wrap(err, "half_color")
	}
	return frame.Settings{
		FOV:        cfg.FOV,
		Stride:     cfg.Stride,
		Visibility: cfg.Visibility,
		Workers:    cfg.Workers,
		FullColor:  full,
		HalfColor:  half,
	}, nil
}

// ParseColor parses an opaque "#RRGGBB" colour. The leading '#' is optional.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "invalid colour %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
