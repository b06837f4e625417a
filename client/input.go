package client

import (
	"battleships/controls"
	"battleships/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var modeKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// sampleFrame reads the keyboard and mouse for this update
func sampleFrame() controls.Frame {
	cx, cy := ebiten.CursorPosition()
	f := controls.Frame{
		Cursor: game.V(float64(cx), float64(cy)),
		Select: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Order:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Shift:  ebiten.IsKeyPressed(ebiten.KeyShift),

		Forward:   ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Reverse:   ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		TurnLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		TurnRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),

		Fire:        inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Escape:      inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ToggleGrid:  inpututil.IsKeyJustPressed(ebiten.KeyF1),
		SaveDesign:  inpututil.IsKeyJustPressed(ebiten.KeyF5),
		SpawnEnemy:  inpututil.IsKeyJustPressed(ebiten.KeyE),
		SpawnAlly:   inpututil.IsKeyJustPressed(ebiten.KeyR),
		CycleLevel:  inpututil.IsKeyJustPressed(ebiten.KeyTab),
		ToggleAudio: inpututil.IsKeyJustPressed(ebiten.KeyM),
	}
	for i, k := range modeKeys {
		if inpututil.IsKeyJustPressed(k) {
			f.ModeKey = i + 1
		}
	}
	return f
}

// toggleFullscreen handles Alt+Enter
func toggleFullscreen() {
	alt := ebiten.IsKeyPressed(ebiten.KeyAlt)
	if alt && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
}
