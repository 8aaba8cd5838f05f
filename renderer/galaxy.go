package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/nebula/config"
	"github.com/pthm-cable/nebula/gesture"
)

// billboardScale converts lifecycle point sizes into world-space
// billboard extents.
const billboardScale = 0.016

// GalaxyRenderer draws the evaluated particle field as camera-facing
// billboards with additive blending, one baked sprite texture per group.
type GalaxyRenderer struct {
	textures []rl.Texture2D
	colors   []rl.Color
	loaded   bool
}

// NewGalaxyRenderer bakes one sprite per particle group.
func NewGalaxyRenderer(groups []config.GroupConfig) *GalaxyRenderer {
	g := &GalaxyRenderer{
		textures: make([]rl.Texture2D, len(groups)),
		colors:   make([]rl.Color, len(groups)),
		loaded:   true,
	}
	for i, grp := range groups {
		g.textures[i] = BakeSprite(grp)
		g.colors[i] = rl.NewColor(grp.Color.R, grp.Color.G, grp.Color.B, 255)
	}
	return g
}

// Draw submits the frame's points inside an active 3D mode. The smoothed
// manipulation is applied to the whole field here: uniform scale, then a
// tilt around X, then a tilt around Y. Additive blending makes depth
// order irrelevant, so points are drawn in storage order.
func (g *GalaxyRenderer) Draw(points []Point, m gesture.Manipulation, cam rl.Camera3D) {
	scale := float32(m.Scale)
	sx, cx := float32(math.Sin(m.TiltX)), float32(math.Cos(m.TiltX))
	sy, cy := float32(math.Sin(m.TiltY)), float32(math.Cos(m.TiltY))

	rl.BeginBlendMode(rl.BlendAdditive)

	for i := range points {
		p := &points[i]

		alpha := p.Alpha * 255
		if alpha < 2 {
			continue
		}

		// Field transform: scale, tilt about X, tilt about Y
		x := p.Pos.X * scale
		y := p.Pos.Y * scale
		z := p.Pos.Z * scale

		y, z = y*cx-z*sx, y*sx+z*cx
		x, z = x*cy+z*sy, -x*sy+z*cy

		base := g.colors[p.Group]
		tint := rl.NewColor(base.R, base.G, base.B, uint8(alpha))

		rl.DrawBillboard(cam, g.textures[p.Group],
			rl.Vector3{X: x, Y: y, Z: z},
			p.Size*billboardScale*scale, tint)
	}

	rl.EndBlendMode()
}

// Unload releases the baked textures. Idempotent.
func (g *GalaxyRenderer) Unload() {
	if !g.loaded {
		return
	}
	for _, tex := range g.textures {
		rl.UnloadTexture(tex)
	}
	g.loaded = false
}
