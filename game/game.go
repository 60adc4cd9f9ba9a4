// Package game wires the wave simulation, the castle scenery and the
// renderer into a running application.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"bastion/camera"
	"bastion/config"
	"bastion/renderer"
	"bastion/scene"
	"bastion/telemetry"
	"bastion/ui"
	"bastion/waves"
)

// Options configures game creation.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
}

// Game holds the complete application state.
type Game struct {
	world *ecs.World
	field *waves.Field
	rng   *rand.Rand

	cam   *camera.Camera
	items *renderer.ItemRenderer
	water *renderer.Water
	hud   *ui.HUD
	panel *ui.Panel

	// Live parameters editable from the settings panel
	tunables ui.Tunables

	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager

	tick     int32
	simTime  float64
	paused   bool
	logStats bool

	// Time until the next scheduled random drop
	disturbTimer float32

	itemCount int
	lastStats telemetry.WindowStats

	// Scratch buffer for sampling the surface at window ends
	heights []float64

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game with the given options. In graphical
// mode the raylib window must already exist.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	field, err := waves.New(
		cfg.Waves.Rows, cfg.Waves.Cols,
		float32(cfg.Waves.Width), float32(cfg.Waves.Depth),
		cfg.Derived.WavesDT32,
		float32(cfg.Waves.Speed), float32(cfg.Waves.Damping),
	)
	if err != nil {
		// Config validation already rejects these parameter sets.
		panic(fmt.Sprintf("game: building wave field: %v", err))
	}

	world := ecs.NewWorld()
	items := scene.Build(cfg.Scene.TreeCount, int64(cfg.Scene.TreeSeed), cfg.Scene.Maze)
	scene.Populate(world, items)

	g := &Game{
		world: world,
		field: field,
		rng:   rand.New(rand.NewSource(opts.Seed)),

		tunables: ui.Tunables{
			DisturbInterval: float32(cfg.Disturbance.Interval),
			MinMagnitude:    float32(cfg.Disturbance.MinMagnitude),
			MaxMagnitude:    float32(cfg.Disturbance.MaxMagnitude),
		},

		collector:     telemetry.NewCollector(opts.StatsWindowSec),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),

		logStats: opts.LogStats,

		itemCount: len(items),
		heights:   make([]float64, field.VertexCount()),

		screenWidth:  cfg.Derived.ScreenW32,
		screenHeight: cfg.Derived.ScreenH32,
	}
	g.disturbTimer = g.tunables.DisturbInterval

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else {
		g.outputManager = om
		if err := g.outputManager.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
	}

	if !opts.Headless {
		g.cam = camera.New(
			float32(cfg.Camera.Distance),
			float32(cfg.Camera.MinDistance), float32(cfg.Camera.MaxDistance),
			float32(cfg.Camera.Yaw), float32(cfg.Camera.Pitch),
			float32(cfg.Camera.FOV),
		)
		g.items = renderer.NewItemRenderer(g.world)
		g.water = renderer.NewWater(field, cfg.Derived.WaterLevel)
		g.hud = ui.NewHUD()
		g.panel = ui.NewPanel()
	}

	return g
}

// Tick returns the current tick number.
func (g *Game) Tick() int32 {
	return g.tick
}

// Unload releases GPU resources and closes output files.
func (g *Game) Unload() {
	if g.water != nil {
		g.water.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output files", "error", err)
	}
}
