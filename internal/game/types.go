package game

import (
	"chosenoffset.com/dogwalk/internal/core/player"
	"chosenoffset.com/dogwalk/internal/render"
)

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// keyBindings maps each logical control to the keys that drive it.
var keyBindings = struct {
	forward, backward, turnLeft, turnRight []render.Key
}{
	forward:   []render.Key{render.KeyW, render.KeyUp},
	backward:  []render.Key{render.KeyS, render.KeyDown},
	turnLeft:  []render.Key{render.KeyA, render.KeyLeft},
	turnRight: []render.Key{render.KeyD, render.KeyRight},
}

// readControls polls the input manager for this frame's logical controls.
func readControls(in render.InputManager) player.Controls {
	return player.Controls{
		Forward:   anyPressed(in, keyBindings.forward),
		Backward:  anyPressed(in, keyBindings.backward),
		TurnLeft:  anyPressed(in, keyBindings.turnLeft),
		TurnRight: anyPressed(in, keyBindings.turnRight),
	}
}

func anyPressed(in render.InputManager, keys []render.Key) bool {
	for _, k := range keys {
		if in.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
