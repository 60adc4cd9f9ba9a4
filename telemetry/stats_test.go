package telemetry

import (
	"math"
	"testing"
)

func TestSurfaceSummary_Empty(t *testing.T) {
	maxAbs, meanAbs, rms, std, p50, p90 := SurfaceSummary(nil)
	if maxAbs != 0 || meanAbs != 0 || rms != 0 || std != 0 || p50 != 0 || p90 != 0 {
		t.Error("expected all-zero summary for empty sample")
	}
}

func TestSurfaceSummary_KnownValues(t *testing.T) {
	heights := []float64{0.3, -0.1, 0, 0.1, -0.3}

	maxAbs, meanAbs, rms, _, _, _ := SurfaceSummary(heights)

	if maxAbs != 0.3 {
		t.Errorf("maxAbs = %g, want 0.3", maxAbs)
	}
	if math.Abs(meanAbs-0.16) > 1e-9 {
		t.Errorf("meanAbs = %g, want 0.16", meanAbs)
	}
	wantRMS := math.Sqrt((0.09 + 0.01 + 0 + 0.01 + 0.09) / 5)
	if math.Abs(rms-wantRMS) > 1e-9 {
		t.Errorf("rms = %g, want %g", rms, wantRMS)
	}
}

func TestSurfaceSummary_FlatField(t *testing.T) {
	heights := make([]float64, 64)

	maxAbs, meanAbs, rms, std, p50, p90 := SurfaceSummary(heights)
	if maxAbs != 0 || meanAbs != 0 || rms != 0 || std != 0 || p50 != 0 || p90 != 0 {
		t.Error("flat field must summarize to zero everywhere")
	}
}

func TestCollector_WindowLifecycle(t *testing.T) {
	c := NewCollector(5)

	c.RecordDisturbance(0.2)
	c.RecordDisturbance(-0.3)
	c.RecordSolverSteps(3)
	c.RecordSolverSteps(2)

	if c.ShouldEmit(4.9) {
		t.Error("window emitted before its duration elapsed")
	}
	if !c.ShouldEmit(5.0) {
		t.Error("window not emitted after its duration elapsed")
	}

	stats := c.Emit(300, 5.0, []float64{0.1, -0.2, 0})

	if stats.Disturbances != 2 {
		t.Errorf("disturbances = %d, want 2", stats.Disturbances)
	}
	if math.Abs(stats.MagnitudeSum-0.5) > 1e-9 {
		t.Errorf("magnitude_sum = %g, want 0.5 (magnitudes accumulate absolute)", stats.MagnitudeSum)
	}
	if stats.SolverSteps != 5 {
		t.Errorf("solver_steps = %d, want 5", stats.SolverSteps)
	}
	if stats.WindowStartTick != 0 || stats.WindowEndTick != 300 {
		t.Errorf("window ticks = [%d,%d], want [0,300]", stats.WindowStartTick, stats.WindowEndTick)
	}

	// Counters reset and the next window starts where this one ended.
	if c.ShouldEmit(9.9) {
		t.Error("second window emitted too early")
	}
	next := c.Emit(600, 10.0, nil)
	if next.Disturbances != 0 || next.SolverSteps != 0 {
		t.Error("counters leaked into the next window")
	}
	if next.WindowStartTick != 300 {
		t.Errorf("next window start = %d, want 300", next.WindowStartTick)
	}
}
