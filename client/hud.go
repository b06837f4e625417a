package client

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"battleships/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudLineHeight     = 15
	indicatorMargin   = 24.0
	indicatorArrowLen = 14.0
)

var (
	colorHUD      = color.RGBA{220, 230, 255, 255}
	colorHUDDim   = color.RGBA{140, 150, 180, 255}
	colorHUDAlert = color.RGBA{255, 90, 70, 255}
)

func drawLines(screen *ebiten.Image, lines []string, x, y int, clr color.Color) {
	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, x, y+i*hudLineHeight, clr)
	}
}

// drawHUD prints the run status, the selection and the controls
func (g *Game) drawHUD(screen *ebiten.Image) {
	st := g.world.Director().Status()
	cfg := g.world.Config()

	lines := []string{
		fmt.Sprintf("Mode: %s  Difficulty: %s", st.Mode, cfg.Difficulty),
	}
	if st.Mode != game.ModeSandbox {
		lines = append(lines,
			fmt.Sprintf("Wave: %d  Enemies: %d", st.Wave, st.EnemiesRemaining),
			fmt.Sprintf("Score: %d  Kills: %d  Time: %.0fs", st.Score, st.Kills, st.SurvivalTime),
		)
	}
	drawLines(screen, lines, 10, 20, colorHUD)

	if sel := g.world.Selected(); len(sel) > 0 {
		s := sel[0]
		info := []string{
			fmt.Sprintf("%s (%d selected)", shipLabel(s), len(sel)),
			fmt.Sprintf("Hull %.0f/%.0f  Shield %.0f  Armor %.0f", s.Health, s.MaxHealth, s.TotalShield, s.TotalArmor),
			fmt.Sprintf("Speed %.0f  Sections %d", s.Velocity.Length(), len(s.Sections)),
		}
		drawLines(screen, info, 10, int(g.world.Camera().Height)-3*hudLineHeight-10, colorHUD)
	}

	help := "1-4 modes  WASD steer  LMB select  RMB move  Space fire  Tab difficulty  M audio  F1 grid  F5 save  Esc sandbox"
	if st.Mode == game.ModeSandbox {
		help += "  E enemy  R ally"
	}
	text.Draw(screen, help, basicfont.Face7x13, 10, int(g.world.Camera().Height)-8, colorHUDDim)

	if st.Phase == game.PhasePlayerDead {
		g.drawCentered(screen, []string{
			"FLEET DESTROYED",
			fmt.Sprintf("Score %d  Wave %d  Kills %d", st.Score, st.Wave, st.Kills),
			"Press 1-4 to play again or Esc for sandbox",
		}, colorHUDAlert)
	}

	if g.message != "" && g.messageTTL > 0 {
		g.drawCentered(screen, []string{g.message}, colorHUD)
	}

	if g.showGrid {
		g.drawDebug(screen)
	}
}

func shipLabel(s *game.Ship) string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("%s #%d", s.Team, s.ID)
}

func (g *Game) drawCentered(screen *ebiten.Image, lines []string, clr color.Color) {
	cam := g.world.Camera()
	y := int(cam.Height/2) - len(lines)*hudLineHeight/2
	for i, line := range lines {
		x := int(cam.Width/2) - len(line)*7/2
		text.Draw(screen, line, basicfont.Face7x13, x, y+i*hudLineHeight, clr)
	}
}

// drawDebug shows frame timing and event counters in the top right corner
func (g *Game) drawDebug(screen *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("Tick %d  Ships %d  Shots %d  Particles %d",
			g.world.Tick(), len(g.world.Ships()), len(g.world.Projectiles()), len(g.world.Particles())),
		fmt.Sprintf("Timers %d", g.world.Scheduler().Len()),
	}
	if g.tally != nil {
		var parts []string
		for _, kc := range g.tally.Tally() {
			parts = append(parts, fmt.Sprintf("%s=%d", kc.Kind, kc.Count))
		}
		if len(parts) > 0 {
			lines = append(lines, strings.Join(parts, " "))
		}
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l)*7)
	}
	drawLines(screen, lines, int(g.world.Camera().Width)-width-10, 20, colorHUDDim)
}

// drawOffscreenIndicators points at hostile ships outside the view
func (g *Game) drawOffscreenIndicators(screen *ebiten.Image) {
	cam := g.world.Camera()
	center := game.V(cam.Width/2, cam.Height/2)

	for _, s := range g.world.Ships() {
		if !s.Alive || !game.Hostile(game.TeamPlayer, s.Team) {
			continue
		}
		sp := cam.WorldToScreen(s.Position)
		if sp.X >= 0 && sp.X <= cam.Width && sp.Y >= 0 && sp.Y <= cam.Height {
			continue
		}
		dir := sp.Sub(center).Normalize()
		if dir.LengthSq() == 0 {
			continue
		}
		pos := game.V(
			math.Min(math.Max(sp.X, indicatorMargin), cam.Width-indicatorMargin),
			math.Min(math.Max(sp.Y, indicatorMargin), cam.Height-indicatorMargin),
		)
		clr := game.GetTeamConfig(s.Team).Color

		tip := pos.Add(dir.Scale(indicatorArrowLen * 0.6))
		tail := pos.Sub(dir.Scale(indicatorArrowLen * 0.4))
		vector.StrokeLine(screen, float32(tail.X), float32(tail.Y), float32(tip.X), float32(tip.Y), 2, clr, true)
		for _, wing := range []float64{math.Pi / 6, -math.Pi / 6} {
			end := tip.Sub(dir.Rotate(wing).Scale(indicatorArrowLen * 0.5))
			vector.StrokeLine(screen, float32(tip.X), float32(tip.Y), float32(end.X), float32(end.Y), 2, clr, true)
		}
	}
}
