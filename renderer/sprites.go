package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/nebula/config"
)

// spriteSize is the baked sprite texture edge in pixels.
const spriteSize = 64

// BakeSprite rasterizes a group's glyph or shape into a sprite texture
// with a radial glow halo. Called once per group at field initialization,
// never during the render loop.
func BakeSprite(group config.GroupConfig) rl.Texture2D {
	img := rl.GenImageColor(spriteSize, spriteSize, rl.Blank)
	defer rl.UnloadImage(img)

	const center = spriteSize / 2
	tint := rl.NewColor(group.Color.R, group.Color.G, group.Color.B, 255)

	drawGlow(img, center, tint)

	switch {
	case group.Glyph != "":
		drawGlyph(img, group.Glyph, tint)
	case group.Shape == "spark":
		drawSpark(img, center, tint)
	default:
		// Bright core disc
		rl.ImageDrawCircle(img, center, center, spriteSize/7, rl.NewColor(255, 255, 255, 230))
	}

	tex := rl.LoadTextureFromImage(img)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	return tex
}

// drawGlow layers concentric low-alpha discs from the rim inward,
// building a soft halo that brightens toward the center.
func drawGlow(img *rl.Image, center int32, tint rl.Color) {
	const layers = 10
	maxRadius := int32(spriteSize / 2)
	for i := 0; i < layers; i++ {
		f := float32(i) / float32(layers-1)
		radius := maxRadius - int32(f*float32(maxRadius)*0.8)
		alpha := uint8(8 + f*f*50)
		rl.ImageDrawCircle(img, center, center, radius, rl.NewColor(tint.R, tint.G, tint.B, alpha))
	}
}

// drawGlyph rasterizes a text glyph and blits it centered over the halo.
func drawGlyph(img *rl.Image, glyph string, tint rl.Color) {
	const fontSize = 40
	src := rl.ImageText(glyph, fontSize, rl.NewColor(255, 255, 255, 255))
	defer rl.UnloadImage(src)

	srcRec := rl.Rectangle{Width: float32(src.Width), Height: float32(src.Height)}
	dstRec := rl.Rectangle{
		X:      float32(spriteSize-src.Width) / 2,
		Y:      float32(spriteSize-src.Height) / 2,
		Width:  float32(src.Width),
		Height: float32(src.Height),
	}
	rl.ImageDraw(img, src, srcRec, dstRec, tint)
}

// drawSpark draws a four-pointed star: two thin crossed bars with a hot
// core.
func drawSpark(img *rl.Image, center int32, tint rl.Color) {
	const armLen = spriteSize * 3 / 8
	const armThick = 3
	bright := rl.NewColor(255, 255, 255, 220)

	rl.ImageDrawRectangle(img, center-armLen, center-armThick/2, armLen*2, armThick, tint)
	rl.ImageDrawRectangle(img, center-armThick/2, center-armLen, armThick, armLen*2, tint)
	rl.ImageDrawCircle(img, center, center, 4, bright)
}
