package telemetry

// Collector accumulates simulation events within time windows and
// produces WindowStats snapshots.
type Collector struct {
	windowSec float64

	windowStartTick int32
	windowStartTime float64

	disturbances int
	magnitudeSum float64
	solverSteps  int
}

// NewCollector creates a collector emitting one WindowStats per
// windowSec seconds of simulated time.
func NewCollector(windowSec float64) *Collector {
	if windowSec <= 0 {
		windowSec = 5
	}
	return &Collector{windowSec: windowSec}
}

// RecordDisturbance counts one injected ripple.
func (c *Collector) RecordDisturbance(magnitude float64) {
	c.disturbances++
	if magnitude < 0 {
		magnitude = -magnitude
	}
	c.magnitudeSum += magnitude
}

// RecordSolverSteps counts fixed solver steps run this tick.
func (c *Collector) RecordSolverSteps(n int) {
	c.solverSteps += n
}

// ShouldEmit reports whether the current window is complete.
func (c *Collector) ShouldEmit(simTime float64) bool {
	return simTime-c.windowStartTime >= c.windowSec
}

// Emit closes the current window: it summarizes the given height sample,
// returns the stats record and starts the next window. heights may be
// reordered in place.
func (c *Collector) Emit(tick int32, simTime float64, heights []float64) WindowStats {
	maxAbs, meanAbs, rms, std, p50, p90 := SurfaceSummary(heights)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   tick,
		SimTimeSec:      simTime,
		Disturbances:    c.disturbances,
		MagnitudeSum:    c.magnitudeSum,
		SolverSteps:     c.solverSteps,
		MaxAbsHeight:    maxAbs,
		MeanAbsHeight:   meanAbs,
		RMSHeight:       rms,
		HeightStdDev:    std,
		HeightP50:       p50,
		HeightP90:       p90,
	}

	c.windowStartTick = tick
	c.windowStartTime = simTime
	c.disturbances = 0
	c.magnitudeSum = 0
	c.solverSteps = 0

	return stats
}
