package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Tunables are the live simulation parameters the panel edits in place.
type Tunables struct {
	DisturbInterval float32 // seconds between random drops
	MinMagnitude    float32
	MaxMagnitude    float32
}

const (
	panelWidth  = 280
	panelMargin = 10
)

// Panel is the in-game settings panel for the ripple generator.
type Panel struct {
	Visible bool
}

// NewPanel creates a hidden settings panel.
func NewPanel() *Panel {
	return &Panel{}
}

// Toggle flips panel visibility.
func (p *Panel) Toggle() {
	p.Visible = !p.Visible
}

// Draw renders the panel on the right edge and applies slider edits to t.
// Returns true when the splash button was pressed this frame.
func (p *Panel) Draw(t *Tunables, screenWidth int32) bool {
	if !p.Visible {
		return false
	}

	panelX := float32(screenWidth - panelWidth - panelMargin)
	panelY := float32(panelMargin)

	rl.DrawRectangle(int32(panelX)-10, int32(panelY)-5, panelWidth+10, 215, rl.Fade(rl.Black, 0.6))

	rl.DrawText("Ripple Generator", int32(panelX), int32(panelY), 20, rl.White)
	panelY += 35

	rl.DrawText("Interval (seconds between drops)", int32(panelX), int32(panelY), 14, rl.LightGray)
	panelY += 18
	t.DisturbInterval = gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
		"0.05", "2.0",
		t.DisturbInterval, 0.05, 2.0,
	)
	rl.DrawText(fmt.Sprintf("%.2f", t.DisturbInterval), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.White)
	panelY += 35

	rl.DrawText("Min magnitude", int32(panelX), int32(panelY), 14, rl.LightGray)
	panelY += 18
	t.MinMagnitude = gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
		"0.0", "1.0",
		t.MinMagnitude, 0, 1,
	)
	rl.DrawText(fmt.Sprintf("%.2f", t.MinMagnitude), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.White)
	panelY += 35

	rl.DrawText("Max magnitude", int32(panelX), int32(panelY), 14, rl.LightGray)
	panelY += 18
	t.MaxMagnitude = gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
		"0.0", "2.0",
		t.MaxMagnitude, 0, 2,
	)
	rl.DrawText(fmt.Sprintf("%.2f", t.MaxMagnitude), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.White)
	panelY += 35

	// Sliders can cross; keep the range ordered.
	if t.MinMagnitude > t.MaxMagnitude {
		t.MinMagnitude = t.MaxMagnitude
	}

	return gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 24}, "Splash")
}
