// Package audio turns simulation events into short synthesized sounds.
package audio

import (
	"sync"
	"time"

	"battleships/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const (
	sampleRate = beep.SampleRate(44100)
	// maxVoices bounds overlapping one-shots so heavy fire cannot pile up
	maxVoices = 24
)

// sound describes the tone played for an event
type sound struct {
	wave     Wave
	from, to float64
	length   time.Duration
	amp      float64
}

var weaponSounds = map[game.SectionType]sound{
	game.SectionCannon:  {WaveSquare, 220, 110, 120 * time.Millisecond, 0.25},
	game.SectionLaser:   {WaveSine, 1400, 900, 80 * time.Millisecond, 0.2},
	game.SectionMissile: {WaveSaw, 180, 320, 300 * time.Millisecond, 0.25},
	game.SectionRailgun: {WaveSaw, 2000, 200, 250 * time.Millisecond, 0.3},
}

var eventSounds = map[game.EventKind]sound{
	game.EventHit:             {WaveNoise, 0, 0, 60 * time.Millisecond, 0.15},
	game.EventModuleDestroyed: {WaveNoise, 0, 0, 250 * time.Millisecond, 0.35},
	game.EventShipDestroyed:   {WaveNoise, 0, 0, 700 * time.Millisecond, 0.5},
	game.EventShipSelected:    {WaveSine, 660, 880, 60 * time.Millisecond, 0.2},
	game.EventDeploy:          {WaveSine, 330, 660, 200 * time.Millisecond, 0.2},
	game.EventWaveCleared:     {WaveSquare, 440, 880, 400 * time.Millisecond, 0.25},
	game.EventPlayerDead:      {WaveSaw, 440, 55, 1200 * time.Millisecond, 0.4},
}

// soundFor picks the tone for an event; ok is false for silent events
func soundFor(e game.Event) (sound, bool) {
	if e.Kind == game.EventWeaponFired {
		s, ok := weaponSounds[e.Weapon]
		return s, ok
	}
	s, ok := eventSounds[e.Kind]
	return s, ok
}

// Player plays event sounds through the speaker. It implements
// game.Notifier; until Init succeeds, and whenever disabled, it is silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool
	log         zerolog.Logger
}

// NewPlayer creates a player with volume in [0, 1]
func NewPlayer(enabled bool, volume float64, log zerolog.Logger) *Player {
	p := &Player{
		mixer:   &beep.Mixer{},
		enabled: enabled,
		log:     log,
	}
	p.SetVolume(volume)
	return p
}

// Init opens the speaker. Failure leaves the player silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Debug().Int("sampleRate", int(sampleRate)).Msg("Audio initialized")
	return nil
}

// Close stops every sound
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// SetVolume sets the master volume, clamped to [0, 1]
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = max(0, min(v, 1))
	p.mu.Unlock()
}

// Volume returns the master volume
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetEnabled mutes or unmutes the player
func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	p.enabled = on
	p.mu.Unlock()
}

// Enabled reports whether sounds are played
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Notify implements game.Notifier
func (p *Player) Notify(e game.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.enabled || p.volume == 0 {
		return
	}
	s, ok := soundFor(e)
	if !ok {
		return
	}

	speaker.Lock()
	if p.mixer.Len() < maxVoices {
		p.mixer.Add(NewTone(sampleRate, s.wave, s.from, s.to, s.length, s.amp*p.volume))
	}
	speaker.Unlock()
}
