package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"bastion/config"
	"bastion/telemetry"
)

// Update advances one graphical frame: input, then simulation driven by
// the real frame delta. Drawing happens separately in Draw.
func (g *Game) Update() {
	g.handleInput()

	g.perfCollector.StartTick()
	if !g.paused {
		g.stepSimulation(rl.GetFrameTime())
	}
}

// UpdateHeadless advances exactly one fixed solver step per call. No
// raylib calls are made on this path.
func (g *Game) UpdateHeadless() {
	g.perfCollector.StartTick()
	g.stepSimulation(g.field.StepSize())
	g.perfCollector.EndTick()
}

// stepSimulation runs the disturbance scheduler and the wave solver for
// dt seconds of elapsed time.
func (g *Game) stepSimulation(dt float32) {
	g.tick++
	g.simTime += float64(dt)

	g.perfCollector.StartPhase(telemetry.PhaseDisturb)
	g.scheduleDisturbances(dt)

	g.perfCollector.StartPhase(telemetry.PhaseSolver)
	steps := g.field.Update(dt)
	g.collector.RecordSolverSteps(steps)

	g.flushTelemetry()
}

// scheduleDisturbances drops random ripples on the configured interval.
// A long frame can owe more than one drop; all owed drops land this tick.
func (g *Game) scheduleDisturbances(dt float32) {
	g.disturbTimer -= dt
	for g.disturbTimer <= 0 {
		g.disturbTimer += g.tunables.DisturbInterval
		g.splash()
	}
}

// splash injects one ripple at a random safe cell with a random
// magnitude from the configured range.
func (g *Game) splash() {
	d := config.Cfg().Derived

	row := d.DisturbRows[0] + g.rng.Intn(d.DisturbRows[1]-d.DisturbRows[0]+1)
	col := d.DisturbCols[0] + g.rng.Intn(d.DisturbCols[1]-d.DisturbCols[0]+1)

	mag := g.tunables.MinMagnitude +
		g.rng.Float32()*(g.tunables.MaxMagnitude-g.tunables.MinMagnitude)

	g.field.Disturb(row, col, mag)
	g.collector.RecordDisturbance(float64(mag))
}
