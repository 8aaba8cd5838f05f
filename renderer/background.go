package renderer

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// star is one backdrop point. Positions are normalized to the screen so
// window resizes rescale the field for free.
type star struct {
	u, v   float32
	phase  float32
	radius float32
}

// Backdrop draws the static scene behind the field: a twinkling star
// layer in screen space and a central planet inside the 3D view.
type Backdrop struct {
	stars []star
}

// NewBackdrop scatters the given number of backdrop stars.
func NewBackdrop(rng *rand.Rand, count int) *Backdrop {
	stars := make([]star, count)
	for i := range stars {
		stars[i] = star{
			u:      rng.Float32(),
			v:      rng.Float32(),
			phase:  rng.Float32() * 2 * math.Pi,
			radius: 0.5 + rng.Float32()*1.2,
		}
	}
	return &Backdrop{stars: stars}
}

// Draw renders the star layer. Called before entering 3D mode.
func (b *Backdrop) Draw(t float64) {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())

	for i := range b.stars {
		s := &b.stars[i]
		twinkle := 0.55 + 0.45*float32(math.Sin(t*1.3+float64(s.phase)))
		a := uint8(40 + twinkle*130)
		rl.DrawCircleV(rl.Vector2{X: s.u * w, Y: s.v * h}, s.radius,
			rl.NewColor(200, 210, 235, a))
	}
}

// DrawPlanet renders the central body. Called inside 3D mode, before the
// particle field so the field's additive sprites glow over it.
func (b *Backdrop) DrawPlanet() {
	rl.DrawSphereEx(rl.Vector3{}, 0.8, 24, 24, rl.NewColor(30, 40, 70, 255))
	rl.DrawSphereWires(rl.Vector3{}, 0.82, 12, 12, rl.NewColor(70, 100, 160, 60))
}
