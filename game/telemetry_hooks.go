package game

import "log/slog"

// flushTelemetry emits the stats window when due and writes CSV output.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldEmit(g.simTime) {
		return
	}

	g.sampleHeights()
	stats := g.collector.Emit(g.tick, g.simTime, g.heights)
	perfStats := g.perfCollector.Stats()
	g.lastStats = stats

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// sampleHeights copies the current surface into the float64 scratch
// buffer for the stats summary.
func (g *Game) sampleHeights() {
	cols := g.field.ColumnCount()
	for row := 0; row < g.field.RowCount(); row++ {
		for col := 0; col < cols; col++ {
			g.heights[row*cols+col] = float64(g.field.Height(row, col))
		}
	}
}
