package level

import (
	"encoding/json"
	"math"
	"os"

	"github.com/pkg/errors"

	"chosenoffset.com/dogwalk/internal/core/raycast"
)

// WallData is a wall as stored in a level file.
type WallData struct {
	X      float64          `json:"x"`
	Y      float64          `json:"y"`
	Width  float64          `json:"width"`
	Height float64          `json:"height"`
	Kind   raycast.WallKind `json:"kind"`
}

// Data is the on-disk representation of a level.
type Data struct {
	Name  string     `json:"name"`
	Spawn Spawn      `json:"spawn"`
	Walls []WallData `json:"walls"`
}

// Load reads a level from a JSON file.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read level file %s", path)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid level file %s", path)
	}
	return m, nil
}

// Parse decodes and validates a JSON level.
func Parse(data []byte) (*Map, error) {
	var d Data
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(err, "failed to parse level")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	walls := make([]raycast.Wall, len(d.Walls))
	for i, w := range d.Walls {
		walls[i] = raycast.NewWall(w.X, w.Y, w.Width, w.Height, w.Kind)
	}
	name := d.Name
	if name == "" {
		name = "unnamed"
	}
	return New(name, d.Spawn, walls...), nil
}

// Validate checks the level for values the renderer cannot use.
func (d *Data) Validate() error {
	if len(d.Walls) == 0 {
		return errors.New("level has no walls")
	}
	if !finite(d.Spawn.X, d.Spawn.Y, d.Spawn.Heading) {
		return errors.Errorf("spawn is not finite: %+v", d.Spawn)
	}
	for i, w := range d.Walls {
		if !finite(w.X, w.Y, w.Width, w.Height) {
			return errors.Errorf("wall %d is not finite", i)
		}
		if w.Width <= 0 || w.Height <= 0 {
			return errors.Errorf("wall %d has invalid size %vx%v", i, w.Width, w.Height)
		}
	}
	return nil
}

// Encode returns the level as indented JSON.
func Encode(m *Map) ([]byte, error) {
	d := Data{Name: m.name, Spawn: m.spawn}
	for _, w := range m.walls {
		d.Walls = append(d.Walls, WallData{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height, Kind: w.Kind})
	}
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode level")
	}
	return out, nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
