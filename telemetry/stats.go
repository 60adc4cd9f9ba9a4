package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats aggregates the wave field over a time window: surface
// agitation at window end plus the disturbance activity during the
// window. Exported through CSV and slog.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Disturbances injected during the window
	Disturbances int     `csv:"disturbances"`
	MagnitudeSum float64 `csv:"magnitude_sum"`
	SolverSteps  int     `csv:"solver_steps"`

	// Surface shape sampled at window end
	MaxAbsHeight  float64 `csv:"max_abs_height"`
	MeanAbsHeight float64 `csv:"mean_abs_height"`
	RMSHeight     float64 `csv:"rms_height"`
	HeightStdDev  float64 `csv:"height_std"`
	HeightP50     float64 `csv:"height_p50"`
	HeightP90     float64 `csv:"height_p90"`
}

// SurfaceSummary condenses a height sample into the window stat fields.
// heights is consumed as scratch space and may be reordered.
func SurfaceSummary(heights []float64) (maxAbs, meanAbs, rms, std, p50, p90 float64) {
	n := len(heights)
	if n == 0 {
		return 0, 0, 0, 0, 0, 0
	}

	abs := make([]float64, n)
	var sq float64
	for i, h := range heights {
		a := h
		if a < 0 {
			a = -a
		}
		abs[i] = a
		if a > maxAbs {
			maxAbs = a
		}
		sq += h * h
	}

	meanAbs = stat.Mean(abs, nil)
	rms = math.Sqrt(sq / float64(n))
	std = stat.StdDev(heights, nil)

	sort.Float64s(abs)
	p50 = stat.Quantile(0.5, stat.Empirical, abs, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, abs, nil)
	return maxAbs, meanAbs, rms, std, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("disturbances", s.Disturbances),
		slog.Float64("magnitude_sum", s.MagnitudeSum),
		slog.Int("solver_steps", s.SolverSteps),
		slog.Float64("max_abs_height", s.MaxAbsHeight),
		slog.Float64("mean_abs_height", s.MeanAbsHeight),
		slog.Float64("rms_height", s.RMSHeight),
		slog.Float64("height_std", s.HeightStdDev),
		slog.Float64("height_p50", s.HeightP50),
		slog.Float64("height_p90", s.HeightP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"disturbances", s.Disturbances,
		"magnitude_sum", s.MagnitudeSum,
		"solver_steps", s.SolverSteps,
		"max_abs_height", s.MaxAbsHeight,
		"mean_abs_height", s.MeanAbsHeight,
		"rms_height", s.RMSHeight,
		"height_std", s.HeightStdDev,
		"height_p50", s.HeightP50,
		"height_p90", s.HeightP90,
	)
}
