// Package controls maps one frame of raw input to simulation commands and
// client actions.
package controls

import "battleships/game"

// Frame is the input sampled for one update
type Frame struct {
	// Cursor is the mouse position in screen pixels
	Cursor game.Vec2

	// Select and Order are true on the frame the left or right button went down
	Select bool
	Order  bool
	Shift  bool

	Forward, Reverse, TurnLeft, TurnRight bool

	// Fire is true on the frame Space went down
	Fire bool

	// ModeKey is 1..4 on the frame a mode key went down, else 0
	ModeKey     int
	Escape      bool
	ToggleGrid  bool
	SaveDesign  bool
	SpawnEnemy  bool
	SpawnAlly   bool
	CycleLevel  bool
	ToggleAudio bool
}

// Action is a client-side request that is not a simulation command
type Action int

const (
	ActionStartMode Action = iota
	ActionSandbox
	ActionToggleGrid
	ActionSaveDesign
	ActionSpawnEnemy
	ActionSpawnAlly
	ActionCycleDifficulty
	ActionToggleAudio
)

// Request is an Action plus its arguments
type Request struct {
	Action Action
	Mode   game.Mode
	// At is the cursor in world coordinates
	At game.Vec2
}

// Commands translates the frame into simulation commands using cam to map
// the cursor into the world
func Commands(f Frame, cam game.Camera) []game.Command {
	var cmds []game.Command
	cursor := cam.ScreenToWorld(f.Cursor)

	if f.Select {
		cmds = append(cmds, game.SelectAt{Position: cursor, Additive: f.Shift})
	}
	if f.Order {
		cmds = append(cmds, game.MoveOrder{Target: cursor})
	}

	thrust := axis(f.Forward, f.Reverse)
	turn := axis(f.TurnRight, f.TurnLeft)
	if thrust != 0 || turn != 0 {
		cmds = append(cmds, game.Impulse{Thrust: thrust, Turn: turn})
	}

	if f.Fire {
		cmds = append(cmds, game.FireNow{})
	}
	return cmds
}

// Requests returns the client actions asked for in the frame.
// Spawning is only offered in sandbox.
func Requests(f Frame, cam game.Camera, mode game.Mode) []Request {
	var out []Request
	cursor := cam.ScreenToWorld(f.Cursor)

	if f.ModeKey >= 1 && f.ModeKey <= len(game.Modes) {
		out = append(out, Request{Action: ActionStartMode, Mode: game.Modes[f.ModeKey-1]})
	}
	if f.Escape {
		out = append(out, Request{Action: ActionSandbox, Mode: game.ModeSandbox})
	}
	if f.ToggleGrid {
		out = append(out, Request{Action: ActionToggleGrid})
	}
	if f.SaveDesign {
		out = append(out, Request{Action: ActionSaveDesign})
	}
	if f.CycleLevel {
		out = append(out, Request{Action: ActionCycleDifficulty})
	}
	if f.ToggleAudio {
		out = append(out, Request{Action: ActionToggleAudio})
	}
	if mode == game.ModeSandbox {
		if f.SpawnEnemy {
			out = append(out, Request{Action: ActionSpawnEnemy, At: cursor})
		}
		if f.SpawnAlly {
			out = append(out, Request{Action: ActionSpawnAlly, At: cursor})
		}
	}
	return out
}

// NextDifficulty cycles easy, normal, hard
func NextDifficulty(d game.Difficulty) game.Difficulty {
	switch d {
	case game.DifficultyEasy:
		return game.DifficultyNormal
	case game.DifficultyNormal:
		return game.DifficultyHard
	default:
		return game.DifficultyEasy
	}
}

func axis(pos, neg bool) float64 {
	v := 0.0
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}
