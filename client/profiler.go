package client

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Profiler captures a CPU profile when the frame rate drops.
// Captures run in the background and are rate limited.
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	log             zerolog.Logger
}

// NewProfiler creates a profiler writing into dir; an empty dir disables it
func NewProfiler(dir string, log zerolog.Logger) *Profiler {
	return &Profiler{
		captureCooldown: 30 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		log:             log,
	}
}

// Enabled reports whether captures are written anywhere
func (p *Profiler) Enabled() bool {
	return p != nil && p.profilesDir != ""
}

// Capture starts a background CPU profile tagged with reason
func (p *Profiler) Capture(reason string) error {
	if !p.Enabled() {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", since.Round(time.Second))
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("creating profiles dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	path := filepath.Join(p.profilesDir, fmt.Sprintf("frame-spike-%s-%s.cpu.prof", time.Now().Format("20060102-150405"), reason))

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()
		if err := p.captureCPU(path); err != nil {
			p.log.Warn().Err(err).Msg("CPU profile failed")
			return
		}

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		p.log.Info().
			Str("path", path).
			Uint64("heapKB", m.HeapAlloc/1024).
			Uint32("numGC", m.NumGC).
			Msg("CPU profile saved; inspect with go tool pprof")
	}()
	return nil
}

func (p *Profiler) captureCPU(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()
	return nil
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
