// Particle field preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/nebula/components"
	"github.com/pthm-cable/nebula/config"
	"github.com/pthm-cable/nebula/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
	previewCount = 1200
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	config.MustInit("")
	fc := config.Cfg().Field

	seed := int64(42)
	descriptors := respawn(seed, fc)

	var t float32
	animating := true
	needsRespawn := false

	for !rl.WindowShouldClose() {
		if animating {
			t += rl.GetFrameTime()
		}

		if needsRespawn {
			descriptors = respawn(seed, fc)
			needsRespawn = false
		}

		params := systems.ParamsFromConfig(fc)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(8, 9, 18, 255))

		drawField(&params, descriptors, t)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Time: %.1f  Particles: %d", t, len(descriptors)), 15, statsY, 16, rl.Gray)
		rl.DrawText("Top-down projection, brightness = alpha", 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Field Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		fc.MaxRadius = float64(slider(&panelY, panelX, "Max radius (cycle length)", float32(fc.MaxRadius), 2, 12, "%.1f"))
		fc.TravelRate = float64(slider(&panelY, panelX, "Travel rate (outward speed)", float32(fc.TravelRate), 0.1, 3, "%.2f"))
		fc.TwistStrength = float64(slider(&panelY, panelX, "Twist strength (spiral curvature)", float32(fc.TwistStrength), 0, 2, "%.2f"))
		fc.BobAmplitude = float64(slider(&panelY, panelX, "Bob amplitude (vertical float)", float32(fc.BobAmplitude), 0, 0.5, "%.2f"))
		fc.BobRate = float64(slider(&panelY, panelX, "Bob rate", float32(fc.BobRate), 0, 6, "%.1f"))
		fc.FadeInFrac = float64(slider(&panelY, panelX, "Fade-in fraction", float32(fc.FadeInFrac), 0.01, 0.5, "%.2f"))
		fc.FadeOutFrac = float64(slider(&panelY, panelX, "Fade-out fraction", float32(fc.FadeOutFrac), 0.01, 0.6, "%.2f"))

		newSpeedMin := slider(&panelY, panelX, "Speed min", float32(fc.SpeedMin), 0.05, 2, "%.2f")
		newSpeedMax := slider(&panelY, panelX, "Speed max", float32(fc.SpeedMax), 0.05, 2, "%.2f")
		if newSpeedMin != float32(fc.SpeedMin) || newSpeedMax != float32(fc.SpeedMax) {
			fc.SpeedMin = float64(newSpeedMin)
			if newSpeedMax < newSpeedMin {
				newSpeedMax = newSpeedMin
			}
			fc.SpeedMax = float64(newSpeedMax)
			needsRespawn = true
		}

		panelY += 10

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset Time") {
			t = 0
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			seed = int64(rl.GetRandomValue(0, 99999))
			needsRespawn = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			fc = config.Cfg().Field
			t = 0
			needsRespawn = true
		}
		panelY += 50

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.RayWhite)
		panelY += 22
		for _, line := range yamlLines(fc) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			yaml := ""
			for _, line := range yamlLines(fc) {
				yaml += line + "\n"
			}
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}

// slider draws one labeled SliderBar row and advances the panel cursor.
func slider(panelY *float32, panelX float32, label string, value, min, max float32, format string) float32 {
	rl.DrawText(label, int32(panelX), int32(*panelY), 14, rl.Gray)
	*panelY += 18
	v := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: *panelY, Width: float32(panelWidth - 80), Height: 20},
		"", "",
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, v), int32(panelX+float32(panelWidth-70)), int32(*panelY+2), 16, rl.RayWhite)
	*panelY += 32
	return v
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// respawn rebuilds the preview descriptor set with the given seed.
func respawn(seed int64, fc config.FieldConfig) []components.Descriptor {
	rng := rand.New(rand.NewSource(seed))
	descriptors := make([]components.Descriptor, previewCount)
	for i := range descriptors {
		descriptors[i] = systems.NewDescriptor(rng, fc)
	}
	return descriptors
}

// drawField renders the top-down (x/z) projection of the field into the
// preview square. Vertical bob shows up as brightness variation only.
func drawField(params *systems.LifecycleParams, descriptors []components.Descriptor, t float32) {
	center := float32(10 + previewSize/2)
	scale := float32(previewSize) / (2.2 * params.MaxRadius)

	for i := range descriptors {
		pos, size, alpha := params.Evaluate(t, &descriptors[i])

		a := alpha * 255
		if a < 2 {
			continue
		}

		px := center + pos.X*scale
		py := center + pos.Z*scale
		radius := size * 0.12
		if radius < 0.5 {
			radius = 0.5
		}

		rl.DrawCircleV(rl.Vector2{X: px, Y: py}, radius,
			rl.NewColor(190, 205, 255, uint8(a)))
	}
}

// yamlLines formats the field section for pasting into a config file.
func yamlLines(fc config.FieldConfig) []string {
	return []string{
		"field:",
		fmt.Sprintf("  max_radius: %.1f", fc.MaxRadius),
		fmt.Sprintf("  travel_rate: %.2f", fc.TravelRate),
		fmt.Sprintf("  speed_min: %.2f", fc.SpeedMin),
		fmt.Sprintf("  speed_max: %.2f", fc.SpeedMax),
		fmt.Sprintf("  twist_strength: %.2f", fc.TwistStrength),
		fmt.Sprintf("  bob_amplitude: %.2f", fc.BobAmplitude),
		fmt.Sprintf("  bob_rate: %.1f", fc.BobRate),
		fmt.Sprintf("  fade_in_frac: %.2f", fc.FadeInFrac),
		fmt.Sprintf("  fade_out_frac: %.2f", fc.FadeOutFrac),
	}
}
