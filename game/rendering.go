package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/nebula/gesture"
	"github.com/pthm-cable/nebula/telemetry"
)

// Draw renders one frame and completes its telemetry.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(4, 5, 12, 255))

	// Screen-space star layer behind everything
	g.backdrop.Draw(g.elapsed)

	g.perf.StartPhase(telemetry.PhaseDraw)

	cam := g.camera3D()
	rl.BeginMode3D(cam)
	g.backdrop.DrawPlanet()
	g.galaxy.Draw(g.points, g.manip, cam)
	rl.EndMode3D()

	if g.showHUD {
		g.drawHUD()
	}

	rl.EndDrawing()

	g.finishFrame()
}

// camera3D converts the orbit camera into raylib's camera struct.
func (g *Game) camera3D() rl.Camera3D {
	x, y, z := g.orbit.Position()
	return rl.Camera3D{
		Position:   rl.Vector3{X: x, Y: y, Z: z},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Y: 1},
		Fovy:       g.orbit.FOV,
		Projection: rl.CameraPerspective,
	}
}

// drawHUD renders the status badge and field readout.
func (g *Game) drawHUD() {
	status := g.status.Current()
	label, color := statusBadge(status)

	rl.DrawRectangle(10, 10, int32(len(label)*12+20), 30, rl.NewColor(0, 0, 0, 160))
	rl.DrawText(label, 20, 16, 20, color)

	rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), 10, 50, 20, rl.Gray)
	rl.DrawText(fmt.Sprintf("Scale: %.2f  Tilt: %.2f / %.2f",
		g.manip.Scale, g.manip.TiltX, g.manip.TiltY), 10, 75, 20, rl.Gray)

	if g.paused {
		rl.DrawText("PAUSED", 10, 100, 20, rl.Yellow)
	}

	if status == gesture.StatusCameraError {
		rl.DrawText("camera unavailable - gestures disabled", 10, 125, 20, rl.Red)
	}
}

// statusBadge maps a pipeline status to its HUD label and color.
func statusBadge(s gesture.Status) (string, rl.Color) {
	switch s {
	case gesture.StatusInitializing:
		return "INITIALIZING", rl.Gray
	case gesture.StatusReady:
		return "READY", rl.SkyBlue
	case gesture.StatusScanning:
		return "SCANNING", rl.Orange
	case gesture.StatusHandLocked:
		return "HAND LOCKED", rl.Green
	case gesture.StatusCameraError:
		return "CAMERA ERROR", rl.Red
	default:
		return s.String(), rl.White
	}
}
