package game

import rl "github.com/gen2brain/raylib-go/raylib"

// frameDelta returns the real frame time, clamped so a stall (window
// drag, debugger) does not teleport the field forward.
func frameDelta() float32 {
	dt := rl.GetFrameTime()
	if dt > 0.25 {
		dt = 0.25
	}
	return dt
}

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// HUD toggle
	if rl.IsKeyPressed(rl.KeyH) {
		g.showHUD = !g.showHUD
	}

	if rl.IsKeyPressed(rl.KeyF12) {
		rl.TakeScreenshot("nebula.png")
	}

	g.handleCameraInput()
}

// handleCameraInput processes orbit camera controls.
func (g *Game) handleCameraInput() {
	if g.orbit == nil {
		return
	}

	// Right-drag orbits around the field
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		g.orbit.Rotate(delta.X*0.005, delta.Y*0.005)
	}

	// Arrow keys orbit too, for trackpads
	if rl.IsKeyDown(rl.KeyRight) {
		g.orbit.Rotate(0.02, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.orbit.Rotate(-0.02, 0)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.orbit.Rotate(0, -0.02)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.orbit.Rotate(0, 0.02)
	}

	// Mouse wheel dollies in and out
	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		g.orbit.Dolly(1.0 - wheelMove*0.1)
	}

	// Keyboard dolly with +/- (= and - keys)
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.orbit.Dolly(0.8)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.orbit.Dolly(1.25)
	}

	// Home key to reset camera
	if rl.IsKeyPressed(rl.KeyHome) {
		g.orbit.Reset()
	}
}
