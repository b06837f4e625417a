package client

import (
	"fmt"
	"image/color"
	"math"

	"battleships/game"
	"battleships/sprites"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const spriteSize = 64

var (
	colorBackground = color.RGBA{8, 10, 22, 255}
	colorGrid       = color.RGBA{40, 60, 90, 120}
	colorSelection  = color.RGBA{120, 255, 140, 255}
	colorMoveTarget = color.RGBA{120, 255, 140, 120}
	colorLead       = color.RGBA{255, 255, 120, 200}
	colorHealthBG   = color.RGBA{100, 0, 0, 255}
	colorHealthFG   = color.RGBA{0, 220, 60, 255}
)

// renderer draws a world snapshot
type renderer struct {
	sprites map[game.SectionType]*ebiten.Image
	stars   *starfield
}

func newRenderer(seed int64, width, height float64) (*renderer, error) {
	imgs, err := sprites.All(spriteSize)
	if err != nil {
		return nil, err
	}
	r := &renderer{
		sprites: make(map[game.SectionType]*ebiten.Image, len(imgs)),
		stars:   newStarfield(seed, width, height),
	}
	for t, img := range imgs {
		r.sprites[t] = ebiten.NewImageFromImage(img)
	}
	return r, nil
}

func (r *renderer) draw(screen *ebiten.Image, w *game.World, showGrid bool) {
	snap := w.Snapshot()
	cam := snap.Camera

	screen.Fill(colorBackground)
	r.stars.draw(screen, cam)
	if showGrid {
		r.drawGrid(screen, cam, w.Config().CellSize)
	}

	for _, p := range snap.Particles {
		r.drawParticle(screen, cam, p)
	}
	for _, s := range snap.Ships {
		if !s.Alive {
			continue
		}
		r.drawShip(screen, cam, s, w.IsSelected(s.ID))
	}
	for _, s := range w.Selected() {
		r.drawOrders(screen, cam, s, w)
	}
	for _, p := range snap.Projectiles {
		r.drawProjectile(screen, cam, p)
	}
}

// visible reports whether a world point with radius lands on screen
func visible(cam game.Camera, pos game.Vec2, radius float64) bool {
	sp := cam.WorldToScreen(pos)
	margin := radius*cam.Zoom + 20
	return sp.X >= -margin && sp.X <= cam.Width+margin && sp.Y >= -margin && sp.Y <= cam.Height+margin
}

func (r *renderer) drawShip(screen *ebiten.Image, cam game.Camera, s *game.Ship, selected bool) {
	if !visible(cam, s.Position, s.Radius()) {
		return
	}

	for _, sec := range s.Sections {
		img, ok := r.sprites[sec.Type]
		if !ok {
			continue
		}
		pos := cam.WorldToScreen(sec.WorldPosition(s.Position, s.Angle))
		scale := sec.Radius * 2 * cam.Zoom / spriteSize

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-spriteSize/2, -spriteSize/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Rotate(s.Angle + sec.Rotation)
		op.GeoM.Translate(pos.X, pos.Y)

		// damaged sections darken towards 40% brightness
		health := 1.0
		if sec.MaxHealth > 0 {
			health = math.Max(0, sec.Health/sec.MaxHealth)
		}
		shade := float32(0.4 + 0.6*health)
		op.ColorScale.ScaleWithColor(sec.Color)
		op.ColorScale.Scale(shade, shade, shade, 1)
		screen.DrawImage(img, op)
	}

	center := cam.WorldToScreen(s.Position)
	radius := float32(s.Radius() * cam.Zoom)
	if selected {
		vector.StrokeCircle(screen, float32(center.X), float32(center.Y), radius+6, 1.5, colorSelection, true)
	}

	if s.Health < s.MaxHealth && s.MaxHealth > 0 {
		barW := radius * 2
		barX := float32(center.X) - radius
		barY := float32(center.Y) - radius - 10
		vector.DrawFilledRect(screen, barX, barY, barW, 3, colorHealthBG, false)
		vector.DrawFilledRect(screen, barX, barY, barW*float32(s.Health/s.MaxHealth), 3, colorHealthFG, false)
	}
}

// drawOrders marks the move target and the lead point of a selected ship
func (r *renderer) drawOrders(screen *ebiten.Image, cam game.Camera, s *game.Ship, w *game.World) {
	from := cam.WorldToScreen(s.Position)
	if s.MoveTarget != nil {
		to := cam.WorldToScreen(*s.MoveTarget)
		vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 1, colorMoveTarget, true)
		vector.StrokeCircle(screen, float32(to.X), float32(to.Y), 6, 1, colorMoveTarget, true)
	}
	if aim, ok := game.AimPoint(s, w); ok {
		p := cam.WorldToScreen(aim)
		vector.StrokeLine(screen, float32(p.X-5), float32(p.Y), float32(p.X+5), float32(p.Y), 1, colorLead, true)
		vector.StrokeLine(screen, float32(p.X), float32(p.Y-5), float32(p.X), float32(p.Y+5), 1, colorLead, true)
	}
}

func (r *renderer) drawProjectile(screen *ebiten.Image, cam game.Camera, p *game.Projectile) {
	if p.Dead || !visible(cam, p.Position, 4) {
		return
	}
	head := cam.WorldToScreen(p.Position)
	tail := cam.WorldToScreen(p.Position.Sub(p.Velocity.Normalize().Scale(tracerLength(p.Weapon))))
	clr := game.GetSectionProfile(p.Weapon, game.SizeMedium).Color
	width := float32(2)
	if p.Weapon == game.SectionRailgun {
		width = 3
	}
	vector.StrokeLine(screen, float32(tail.X), float32(tail.Y), float32(head.X), float32(head.Y), width, clr, true)
}

func tracerLength(t game.SectionType) float64 {
	switch t {
	case game.SectionLaser:
		return 18
	case game.SectionRailgun:
		return 30
	case game.SectionMissile:
		return 8
	default:
		return 6
	}
}

func (r *renderer) drawParticle(screen *ebiten.Image, cam game.Camera, p game.Particle) {
	if !visible(cam, p.Position, p.Size) {
		return
	}
	pos := cam.WorldToScreen(p.Position)
	clr := p.Color
	clr.A = uint8(float64(clr.A) * p.Alpha())
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(math.Max(p.Size*cam.Zoom, 0.5)), clr, false)
}

// drawGrid draws the spatial grid cells around the view with their coordinates
func (r *renderer) drawGrid(screen *ebiten.Image, cam game.Camera, cellSize float64) {
	topLeft := cam.ScreenToWorld(game.V(0, 0))
	bottomRight := cam.ScreenToWorld(game.V(cam.Width, cam.Height))

	x0 := math.Floor(topLeft.X/cellSize) * cellSize
	y0 := math.Floor(topLeft.Y/cellSize) * cellSize
	for x := x0; x <= bottomRight.X; x += cellSize {
		a := cam.WorldToScreen(game.V(x, topLeft.Y))
		vector.StrokeLine(screen, float32(a.X), 0, float32(a.X), float32(cam.Height), 1, colorGrid, false)
	}
	for y := y0; y <= bottomRight.Y; y += cellSize {
		a := cam.WorldToScreen(game.V(topLeft.X, y))
		vector.StrokeLine(screen, 0, float32(a.Y), float32(cam.Width), float32(a.Y), 1, colorGrid, false)
	}
	for x := x0; x <= bottomRight.X; x += cellSize {
		for y := y0; y <= bottomRight.Y; y += cellSize {
			a := cam.WorldToScreen(game.V(x, y))
			label := fmt.Sprintf("%d,%d", int(math.Floor(x/cellSize)), int(math.Floor(y/cellSize)))
			ebitenutil.DebugPrintAt(screen, label, int(a.X)+3, int(a.Y)+3)
		}
	}
}
