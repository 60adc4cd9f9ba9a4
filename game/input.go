package game

import rl "github.com/gen2brain/raylib-go/raylib"

// Camera control sensitivities.
const (
	orbitSpeed = 0.005 // radians per pixel dragged
	zoomSpeed  = 12.0  // world units per wheel notch
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyF) {
		g.items.Wireframe = !g.items.Wireframe
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.splash()
	}

	g.handleCameraInput()
}

// handleCameraInput applies orbit, zoom and pan controls.
func (g *Game) handleCameraInput() {
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		g.cam.Orbit(delta.X*orbitSpeed, delta.Y*orbitSpeed)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.cam.Zoom(wheel * zoomSpeed)
	}

	// Pan speed scales with distance so close-up moves stay fine-grained.
	pan := 0.4 * g.cam.Distance * rl.GetFrameTime()
	if rl.IsKeyDown(rl.KeyW) {
		g.cam.Pan(pan, 0)
	}
	if rl.IsKeyDown(rl.KeyS) {
		g.cam.Pan(-pan, 0)
	}
	if rl.IsKeyDown(rl.KeyA) {
		g.cam.Pan(0, -pan)
	}
	if rl.IsKeyDown(rl.KeyD) {
		g.cam.Pan(0, pan)
	}
}
