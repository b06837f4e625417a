package controls

import (
	"testing"

	"battleships/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func camera() game.Camera {
	cam := game.NewCamera(800, 600)
	cam.Position = game.V(100, 50)
	return cam
}

func TestCommands_MouseUsesWorldCoordinates(t *testing.T) {
	cmds := Commands(Frame{Cursor: game.V(400, 300), Select: true, Shift: true, Order: true}, camera())

	require.Len(t, cmds, 2)
	assert.Equal(t, game.SelectAt{Position: game.V(100, 50), Additive: true}, cmds[0])
	assert.Equal(t, game.MoveOrder{Target: game.V(100, 50)}, cmds[1])
}

func TestCommands_Impulse(t *testing.T) {
	tests := []struct {
		name  string
		frame Frame
		want  []game.Command
	}{
		{"idle", Frame{}, nil},
		{"forward", Frame{Forward: true}, []game.Command{game.Impulse{Thrust: 1}}},
		{"reverse left", Frame{Reverse: true, TurnLeft: true}, []game.Command{game.Impulse{Thrust: -1, Turn: -1}}},
		{"opposed keys cancel", Frame{Forward: true, Reverse: true}, nil},
		{"fire", Frame{TurnRight: true, Fire: true}, []game.Command{game.Impulse{Turn: 1}, game.FireNow{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Commands(tt.frame, camera()))
		})
	}
}

func TestRequests(t *testing.T) {
	cam := camera()

	got := Requests(Frame{ModeKey: 3, ToggleGrid: true}, cam, game.ModeSkirmish)
	require.Len(t, got, 2)
	assert.Equal(t, Request{Action: ActionStartMode, Mode: game.ModeGrinder}, got[0])
	assert.Equal(t, ActionToggleGrid, got[1].Action)

	assert.Empty(t, Requests(Frame{ModeKey: 9}, cam, game.ModeSandbox))

	got = Requests(Frame{SpawnEnemy: true, Cursor: game.V(0, 0)}, cam, game.ModeSandbox)
	require.Len(t, got, 1)
	assert.Equal(t, game.V(-300, -250), got[0].At)

	assert.Empty(t, Requests(Frame{SpawnEnemy: true, SpawnAlly: true}, cam, game.ModeBlockade), "spawning is sandbox only")
}

func TestNextDifficulty(t *testing.T) {
	assert.Equal(t, game.DifficultyNormal, NextDifficulty(game.DifficultyEasy))
	assert.Equal(t, game.DifficultyHard, NextDifficulty(game.DifficultyNormal))
	assert.Equal(t, game.DifficultyEasy, NextDifficulty(game.DifficultyHard))
}
