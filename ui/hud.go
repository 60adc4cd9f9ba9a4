// Package ui renders the heads-up display and the settings panel.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	Tick         int32
	SimTime      float64
	FPS          int32
	Paused       bool
	Wireframe    bool
	ItemCount    int
	Disturbances int
	MaxAbsHeight float64
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD. Must run outside BeginMode3D.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Sim: %.1fs | FPS: %d", data.Tick, data.SimTime, data.FPS),
		10, 35, 16, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("Scenery: %d | Ripples: %d | Max |h|: %.3f",
			data.ItemCount, data.Disturbances, data.MaxAbsHeight),
		10, 55, 16, rl.LightGray,
	)

	statusText := "Running"
	statusColor := rl.Yellow
	if data.Paused {
		statusText = "PAUSED"
		statusColor = rl.Orange
	}
	if data.Wireframe {
		statusText += " | wireframe"
	}
	rl.DrawText(statusText, 10, 75, 16, statusColor)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32) {
	controls := "Drag: orbit | Wheel: zoom | WASD: pan | Space: pause | F: wireframe | Tab: settings | R: splash"
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
