package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseSolver)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseVertexSync)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if len(stats.PhaseAvg) == 0 {
		t.Error("expected phase averages to be populated")
	}
	if _, ok := stats.PhaseAvg[PhaseSolver]; !ok {
		t.Error("expected solver phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseVertexSync]; !ok {
		t.Error("expected vertex_sync phase to be tracked")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseSolver)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase("fast")
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase("slow")
		time.Sleep(100 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.PhasePct["slow"] <= stats.PhasePct["fast"] {
		t.Errorf("expected slow phase (%v%%) > fast phase (%v%%)", stats.PhasePct["slow"], stats.PhasePct["fast"])
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()
	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfStats_CSVColumnsFollowPhases(t *testing.T) {
	pc := NewPerfCollector(4)

	pc.StartTick()
	pc.StartPhase(PhaseDisturb)
	time.Sleep(20 * time.Microsecond)
	pc.StartPhase(PhaseDraw)
	time.Sleep(20 * time.Microsecond)
	pc.EndTick()

	rec := pc.Stats().ToCSV(42)
	if rec.WindowEnd != 42 {
		t.Errorf("WindowEnd = %d, want 42", rec.WindowEnd)
	}
	if rec.DisturbPct <= 0 || rec.DrawPct <= 0 {
		t.Errorf("phase percentages not exported: disturb=%g draw=%g", rec.DisturbPct, rec.DrawPct)
	}
	if rec.SolverPct != 0 {
		t.Errorf("untouched solver phase exported as %g, want 0", rec.SolverPct)
	}
}
