package client

import (
	"image/color"
	"math"
	"math/rand"

	"battleships/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	starCount = 220
	// starSpan is the side of the torus the stars wrap around, in screen diagonals
	starSpan = 1.5
)

type star struct {
	pos      game.Vec2
	parallax float64
	size     float32
}

// starfield is a parallax backdrop that wraps around the camera
type starfield struct {
	stars []star
}

func newStarfield(seed int64, width, height float64) *starfield {
	rng := rand.New(rand.NewSource(seed))
	span := math.Hypot(width, height) * starSpan
	sf := &starfield{stars: make([]star, starCount)}
	for i := range sf.stars {
		sf.stars[i] = star{
			pos:      game.V((rng.Float64()-0.5)*span, (rng.Float64()-0.5)*span),
			parallax: 0.1 + rng.Float64()*0.5,
			size:     float32(0.5 + rng.Float64()*1.2),
		}
	}
	return sf
}

// draw places each star by the camera position scaled by its parallax,
// wrapping it into the torus around the screen centre
func (sf *starfield) draw(screen *ebiten.Image, cam game.Camera) {
	span := math.Hypot(cam.Width, cam.Height) * starSpan
	half := span / 2
	for _, s := range sf.stars {
		x := wrap(s.pos.X-cam.Position.X*s.parallax, half, span)
		y := wrap(s.pos.Y-cam.Position.Y*s.parallax, half, span)
		sx := float32(x + cam.Width/2)
		sy := float32(y + cam.Height/2)
		shade := uint8(90 + 120*s.parallax)
		vector.DrawFilledCircle(screen, sx, sy, s.size, color.RGBA{shade, shade, shade + 20, 255}, false)
	}
}

func wrap(v, half, span float64) float64 {
	v = math.Mod(v+half, span)
	if v < 0 {
		v += span
	}
	return v - half
}
