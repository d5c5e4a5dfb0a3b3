package config

import (
	"github.com/urfave/cli"
)

// Flags returns the command-line flags that override configuration values.
// Their defaults mirror Default so --help shows the effective values.
func Flags() []cli.Flag {
	d := Default()
	return []cli.Flag{
		cli.StringFlag{Name: "config", Usage: "JSON configuration file"},
		cli.IntFlag{Name: "width", Value: d.Width, Usage: "Screen width in pixels"},
		cli.IntFlag{Name: "height", Value: d.Height, Usage: "Screen height in pixels"},
		cli.Float64Flag{Name: "fov", Value: d.FOV, Usage: "Field of view in degrees"},
		cli.IntFlag{Name: "ray-step", Value: d.Stride, Usage: "Pixels per ray"},
		cli.Float64Flag{Name: "visibility", Value: d.Visibility, Usage: "Render distance cutoff; 0 disables"},
		cli.IntFlag{Name: "workers", Value: d.Workers, Usage: "Rays cast concurrently"},
		cli.IntFlag{Name: "fps", Value: d.FPS, Usage: "Target frame rate"},
		cli.BoolFlag{Name: "debug, d", Usage: "Draw the debug overlay"},
		cli.Float64Flag{Name: "debug-scale", Value: d.DebugScale, Usage: "World-to-screen scale of the debug overlay"},
		cli.StringFlag{Name: "backend", Value: d.Backend, Usage: "Rendering backend: ebiten or terminal"},
		cli.StringFlag{Name: "level", Usage: "Level file; the built-in level when empty"},
	}
}

// FromContext loads the --config file and applies every flag the user set.
func FromContext(c *cli.Context) (*Config, error) {
	cfg, err := Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	cfg.Override(c)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Override copies explicitly set flags into cfg.
func (cfg *Config) Override(c *cli.Context) {
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("fov") {
		cfg.FOV = c.Float64("fov")
	}
	if c.IsSet("ray-step") {
		cfg.Stride = c.Int("ray-step")
	}
	if c.IsSet("visibility") {
		cfg.Visibility = c.Float64("visibility")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("fps") {
		cfg.FPS = c.Int("fps")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-scale") {
		cfg.DebugScale = c.Float64("debug-scale")
	}
	if c.IsSet("backend") {
		cfg.Backend = c.String("backend")
	}
	if c.IsSet("level") {
		cfg.Level = c.String("level")
	}
}
