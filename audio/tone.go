package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects the oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone is a one-shot sound: a frequency sweep with a linear attack and an
// exponential decay. It ends after its duration.
type Tone struct {
	sr        beep.SampleRate
	wave      Wave
	startFreq float64
	endFreq   float64
	amp       float64
	total     int
	pos       int
	phase     float64
	noise     *rand.Rand
}

// NewTone creates a tone sweeping from startFreq to endFreq over d
func NewTone(sr beep.SampleRate, wave Wave, startFreq, endFreq float64, d time.Duration, amp float64) *Tone {
	return &Tone{
		sr:        sr,
		wave:      wave,
		startFreq: startFreq,
		endFreq:   endFreq,
		amp:       math.Max(0, math.Min(amp, 1)),
		total:     max(sr.N(d), 1),
		noise:     rand.New(rand.NewSource(int64(startFreq*1000) ^ int64(d))),
	}
}

// Stream implements beep.Streamer
func (g *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	attack := g.sr.N(5 * time.Millisecond)
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.startFreq + (g.endFreq-g.startFreq)*progress
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		var v float64
		switch g.wave {
		case WaveSquare:
			v = 1
			if g.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2*g.phase - 1
		case WaveNoise:
			v = g.noise.Float64()*2 - 1
		default:
			v = math.Sin(2 * math.Pi * g.phase)
		}

		env := math.Exp(-4 * progress)
		if g.pos < attack {
			env *= float64(g.pos) / float64(attack)
		}
		s := v * env * g.amp
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer
func (g *Tone) Err() error {
	return nil
}
