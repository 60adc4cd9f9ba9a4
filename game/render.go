package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"bastion/telemetry"
	"bastion/ui"
)

var skyColor = rl.NewColor(120, 170, 230, 255)

// Draw renders the 3D scene and the HUD.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(skyColor)

	g.perfCollector.StartPhase(telemetry.PhaseVertexSync)
	g.water.Refill(g.field)
	g.perfCollector.StartPhase(telemetry.PhaseUpload)
	g.water.Upload()

	g.perfCollector.StartPhase(telemetry.PhaseDraw)
	x, y, z := g.cam.Position()
	cam3d := rl.Camera3D{
		Position:   rl.NewVector3(x, y, z),
		Target:     rl.NewVector3(g.cam.TargetX, g.cam.TargetY, g.cam.TargetZ),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       g.cam.FOV,
		Projection: rl.CameraPerspective,
	}

	rl.BeginMode3D(cam3d)
	g.items.Draw()
	// Water last so its translucency blends over the scenery behind it.
	g.water.Draw()
	rl.EndMode3D()
	g.perfCollector.EndTick()

	g.hud.Draw(ui.HUDData{
		Title:        "Bastion",
		Tick:         g.tick,
		SimTime:      g.simTime,
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
		Wireframe:    g.items.Wireframe,
		ItemCount:    g.itemCount,
		Disturbances: g.lastStats.Disturbances,
		MaxAbsHeight: g.lastStats.MaxAbsHeight,
		ScreenWidth:  int32(g.screenWidth),
		ScreenHeight: int32(g.screenHeight),
	})
	g.hud.DrawControls(int32(g.screenWidth), int32(g.screenHeight))

	if g.panel.Draw(&g.tunables, int32(g.screenWidth)) {
		g.splash()
	}

	rl.EndDrawing()
	g.perfCollector.RecordFrame()
}
