package audio

import (
	"testing"
	"time"

	"battleships/game"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTone_StaysInRangeAndEnds(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		tone := NewTone(rate, wave, 440, 220, 100*time.Millisecond, 0.8)

		total := 0
		buf := make([][2]float64, 256)
		for {
			n, ok := tone.Stream(buf)
			for i := 0; i < n; i++ {
				assert.LessOrEqual(t, buf[i][0], 0.8)
				assert.GreaterOrEqual(t, buf[i][0], -0.8)
				assert.Equal(t, buf[i][0], buf[i][1])
			}
			total += n
			if !ok {
				break
			}
		}
		assert.Equal(t, rate.N(100*time.Millisecond), total, "wave %d", wave)
		assert.NoError(t, tone.Err())
	}
}

func TestTone_ClampsAmplitude(t *testing.T) {
	tone := NewTone(beep.SampleRate(8000), WaveSquare, 100, 100, time.Second, 3)
	buf := make([][2]float64, 2000)
	n, ok := tone.Stream(buf)
	require.True(t, ok)
	for i := 0; i < n; i++ {
		assert.LessOrEqual(t, buf[i][0], 1.0)
	}
}

func TestSoundFor(t *testing.T) {
	_, ok := soundFor(game.Event{Kind: game.EventWeaponFired, Weapon: game.SectionMissile})
	assert.True(t, ok)
	_, ok = soundFor(game.Event{Kind: game.EventWeaponFired, Weapon: game.SectionEngine})
	assert.False(t, ok)
	for _, kind := range []game.EventKind{
		game.EventHit, game.EventModuleDestroyed, game.EventShipDestroyed, game.EventShipSelected,
		game.EventDeploy, game.EventWaveCleared, game.EventPlayerDead,
	} {
		_, ok := soundFor(game.Event{Kind: kind})
		assert.True(t, ok, string(kind))
	}
}

func TestPlayer_SilentUntilInitialized(t *testing.T) {
	p := NewPlayer(true, 2, zerolog.Nop())
	assert.Equal(t, 1.0, p.Volume())

	var n game.Notifier = p
	n.Notify(game.Event{Kind: game.EventShipDestroyed})
	assert.Zero(t, p.mixer.Len())

	p.SetEnabled(false)
	assert.False(t, p.Enabled())
	p.Close()
}
