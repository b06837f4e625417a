// Package client runs the battle in an ebiten window: it samples input,
// steps the world once per update and draws the result.
package client

import (
	"fmt"
	"time"

	"battleships/controls"
	"battleships/game"
	"battleships/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

const (
	messageDuration = 2.5
	// spikeThreshold is the update duration treated as a frame spike
	spikeThreshold = 50 * time.Millisecond
	// spikeWarmup ignores spikes while assets and caches settle
	spikeWarmup = 3 * time.Second
)

// DesignSaver stores exported ship designs
type DesignSaver interface {
	SaveDesign(game.Design) error
}

// AudioToggle mutes and unmutes sound
type AudioToggle interface {
	Enabled() bool
	SetEnabled(bool)
}

// Tally reports event counts for the debug overlay
type Tally interface {
	Tally() []telemetry.KindCount
}

// Options are the optional collaborators of a Game
type Options struct {
	Logger      zerolog.Logger
	Designs     DesignSaver
	Audio       AudioToggle
	Tally       Tally
	ProfilesDir string
}

// Game implements ebiten.Game
type Game struct {
	world    *game.World
	log      zerolog.Logger
	renderer *renderer
	designs  DesignSaver
	audio    AudioToggle
	tally    Tally
	profiler *Profiler

	showGrid   bool
	spawned    int
	started    time.Time
	lastUpdate time.Time

	message    string
	messageTTL float64
}

// NewGame wraps a world; the world should already have a mode started
func NewGame(w *game.World, opts Options) (*Game, error) {
	cam := w.Camera()
	r, err := newRenderer(w.Config().Seed, cam.Width, cam.Height)
	if err != nil {
		return nil, fmt.Errorf("loading sprites: %w", err)
	}
	return &Game{
		world:    w,
		log:      opts.Logger,
		renderer: r,
		designs:  opts.Designs,
		audio:    opts.Audio,
		tally:    opts.Tally,
		profiler: NewProfiler(opts.ProfilesDir, opts.Logger),
		started:  time.Now(),
	}, nil
}

// World returns the simulated world
func (g *Game) World() *game.World { return g.world }

// Update samples input and advances the simulation by the elapsed wall time
func (g *Game) Update() error {
	now := time.Now()
	dt := 1.0 / float64(ebiten.TPS())
	if !g.lastUpdate.IsZero() {
		dt = now.Sub(g.lastUpdate).Seconds()
	}
	g.lastUpdate = now

	toggleFullscreen()
	frame := sampleFrame()
	cam := g.world.Camera()
	for _, cmd := range controls.Commands(frame, cam) {
		g.world.Enqueue(cmd)
	}
	for _, req := range controls.Requests(frame, cam, g.world.Director().Mode()) {
		g.handle(req)
	}

	start := time.Now()
	g.world.Step(dt)
	g.checkSpike(time.Since(start))

	if g.messageTTL > 0 {
		g.messageTTL -= dt
	}
	return nil
}

func (g *Game) handle(req controls.Request) {
	switch req.Action {
	case controls.ActionStartMode, controls.ActionSandbox:
		g.world.StartMode(req.Mode)
		g.flash(fmt.Sprintf("%s started", req.Mode))
	case controls.ActionToggleGrid:
		g.showGrid = !g.showGrid
	case controls.ActionSaveDesign:
		g.saveSelectedDesign()
	case controls.ActionCycleDifficulty:
		next := controls.NextDifficulty(g.world.Config().Difficulty)
		g.world.SetDifficulty(next)
		g.flash(fmt.Sprintf("Difficulty: %s", next))
	case controls.ActionToggleAudio:
		if g.audio != nil {
			g.audio.SetEnabled(!g.audio.Enabled())
			if g.audio.Enabled() {
				g.flash("Audio on")
			} else {
				g.flash("Audio off")
			}
		}
	case controls.ActionSpawnEnemy:
		teams := []game.Team{game.TeamPirate, game.TeamAlien, game.TeamRazor}
		team := teams[g.spawned%len(teams)]
		g.spawned++
		g.world.SpawnTemplate(game.EnemyTemplate(team, 1+g.spawned/3), team, req.At)
	case controls.ActionSpawnAlly:
		g.world.SpawnTemplate(game.PlayerFlagship, game.TeamAllied, req.At)
	}
}

// saveSelectedDesign exports the first selected ship to the design store
func (g *Game) saveSelectedDesign() {
	sel := g.world.Selected()
	if len(sel) == 0 {
		g.flash("Select a ship to save its design")
		return
	}
	if g.designs == nil {
		g.flash("No design storage configured")
		return
	}
	s := sel[0]
	name := fmt.Sprintf("%s %s", shipLabel(s), time.Now().Format("0102-150405"))
	d := game.ExportDesign(s, name, fmt.Sprintf("Saved from %s", g.world.Director().Mode()), time.Now())
	if err := g.designs.SaveDesign(d); err != nil {
		g.log.Error().Err(err).Str("design", name).Msg("Failed to save design")
		g.flash("Design save failed")
		return
	}
	g.log.Info().Str("design", name).Int("sections", len(d.Sections)).Msg("Design saved")
	g.flash("Saved " + name)
}

func (g *Game) checkSpike(took time.Duration) {
	if took < spikeThreshold || time.Since(g.started) < spikeWarmup || !g.profiler.Enabled() {
		return
	}
	reason := fmt.Sprintf("%dms-ships%d-shots%d", took.Milliseconds(), len(g.world.Ships()), len(g.world.Projectiles()))
	if err := g.profiler.Capture(reason); err != nil {
		g.log.Debug().Err(err).Msg("Skipping profile capture")
		return
	}
	g.log.Warn().Dur("step", took).Msg("Frame spike detected, capturing CPU profile")
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTTL = messageDuration
}

// Draw renders the world and the HUD
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.draw(screen, g.world, g.showGrid)
	g.drawOffscreenIndicators(screen)
	g.drawRadar(screen)
	g.drawHUD(screen)
}

// Layout tracks the window size so the camera always fills it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cam := g.world.Camera()
	if float64(outsideWidth) != cam.Width || float64(outsideHeight) != cam.Height {
		g.world.SetViewport(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
