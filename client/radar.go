package client

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"battleships/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	radarRadius         = 70.0
	radarRange          = 3000.0
	radarMargin         = 12.0
	radarBlipSize       = 2.5
	radarStackThreshold = 6.0
	radarStackSpacing   = 5.0
)

var (
	colorRadarBackdrop = color.RGBA{10, 14, 30, 190}
	colorRadarRing     = color.RGBA{60, 90, 140, 200}
	colorRadarView     = color.RGBA{120, 140, 190, 120}
)

type radarBlip struct {
	offset  game.Vec2 // radar coordinates relative to the centre
	dist    float64
	clr     color.RGBA
	clamped bool
}

// radarBlips projects every live ship onto a north-up radar centred on the camera.
// Ships beyond radarRange sit on the rim.
func radarBlips(ships []*game.Ship, center game.Vec2) []radarBlip {
	scale := radarRadius / radarRange
	edge := radarRadius - radarBlipSize - 1

	blips := make([]radarBlip, 0, len(ships))
	for _, s := range ships {
		if !s.Alive {
			continue
		}
		d := s.Position.Sub(center)
		b := radarBlip{
			offset: d.Scale(scale),
			dist:   d.Length(),
			clr:    game.GetTeamConfig(s.Team).Color,
		}
		if l := b.offset.Length(); l > edge {
			b.offset = b.offset.Scale(edge / l)
			b.clamped = true
		}
		blips = append(blips, b)
	}
	return blips
}

// stackBlips groups blips that would overlap and spreads each group vertically,
// closest ship at the top
func stackBlips(blips []radarBlip) {
	assigned := make([]bool, len(blips))
	for i := range blips {
		if assigned[i] {
			continue
		}
		assigned[i] = true
		group := []int{i}
		for j := i + 1; j < len(blips); j++ {
			if !assigned[j] && blips[i].offset.Distance(blips[j].offset) < radarStackThreshold {
				group = append(group, j)
				assigned[j] = true
			}
		}
		if len(group) == 1 {
			continue
		}

		var c game.Vec2
		for _, idx := range group {
			c = c.Add(blips[idx].offset)
		}
		c = c.Scale(1 / float64(len(group)))
		sort.Slice(group, func(a, b int) bool { return blips[group[a]].dist < blips[group[b]].dist })

		top := c.Y - float64(len(group)-1)*radarStackSpacing*0.5
		for k, idx := range group {
			blips[idx].offset = game.V(c.X, top+float64(k)*radarStackSpacing)
		}
	}
}

// drawRadar renders the radar in the bottom right corner
func (g *Game) drawRadar(screen *ebiten.Image) {
	cam := g.world.Camera()
	center := game.V(cam.Width-radarRadius-radarMargin, cam.Height-radarRadius-radarMargin)
	cx, cy := float32(center.X), float32(center.Y)

	vector.DrawFilledCircle(screen, cx, cy, radarRadius+4, colorRadarBackdrop, true)
	vector.StrokeCircle(screen, cx, cy, radarRadius, 1, colorRadarRing, true)

	// viewport outline
	scale := radarRadius / radarRange
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	vw, vh := float32(cam.Width/zoom*scale), float32(cam.Height/zoom*scale)
	vector.StrokeRect(screen, cx-vw/2, cy-vh/2, vw, vh, 1, colorRadarView, false)

	blips := radarBlips(g.world.Ships(), cam.Position)
	stackBlips(blips)

	nearest := -1
	for i, b := range blips {
		p := center.Add(b.offset)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), radarBlipSize, b.clr, true)
		if b.clamped && (nearest < 0 || b.dist < blips[nearest].dist) {
			nearest = i
		}
	}
	if nearest >= 0 {
		b := blips[nearest]
		dir := b.offset.Normalize()
		p := center.Add(b.offset).Add(dir.Scale(6))
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f", b.dist), int(math.Round(p.X))-12, int(math.Round(p.Y))-6)
	}
}
