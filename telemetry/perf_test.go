package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollectorEmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)
	stats := pc.Stats()

	if stats.AvgFrameDuration != 0 {
		t.Errorf("expected zero avg frame duration, got %v", stats.AvgFrameDuration)
	}
	if stats.FPS != 0 {
		t.Errorf("expected zero FPS, got %v", stats.FPS)
	}
	if len(stats.PhaseAvg) != 0 {
		t.Errorf("expected empty phase map, got %v", stats.PhaseAvg)
	}
}

func TestPerfCollectorRecordsFrames(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 3; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseEvaluate)
		time.Sleep(time.Millisecond)
		pc.StartPhase(PhaseDraw)
		time.Sleep(time.Millisecond)
		pc.EndFrame()
	}

	stats := pc.Stats()

	if stats.AvgFrameDuration < time.Millisecond {
		t.Errorf("avg frame duration too small: %v", stats.AvgFrameDuration)
	}
	if stats.PhaseAvg[PhaseEvaluate] == 0 {
		t.Error("evaluate phase not recorded")
	}
	if stats.PhaseAvg[PhaseDraw] == 0 {
		t.Error("draw phase not recorded")
	}
	if stats.MinFrameDuration > stats.MaxFrameDuration {
		t.Errorf("min %v exceeds max %v", stats.MinFrameDuration, stats.MaxFrameDuration)
	}
	if stats.FPS <= 0 {
		t.Errorf("expected positive FPS, got %v", stats.FPS)
	}
}

func TestPerfCollectorWindowWraps(t *testing.T) {
	pc := NewPerfCollector(4)

	for i := 0; i < 10; i++ {
		pc.StartFrame()
		pc.EndFrame()
	}

	if pc.sampleCount != 4 {
		t.Errorf("expected sample count capped at window size 4, got %d", pc.sampleCount)
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	stats := PerfStats{
		AvgFrameDuration: 2 * time.Millisecond,
		MinFrameDuration: time.Millisecond,
		MaxFrameDuration: 3 * time.Millisecond,
		FPS:              500,
		PhasePct: map[string]float64{
			PhaseEvaluate: 40,
			PhaseDraw:     50,
		},
	}

	row := stats.ToCSV(600)

	if row.WindowEnd != 600 {
		t.Errorf("expected window end 600, got %d", row.WindowEnd)
	}
	if row.AvgFrameUS != 2000 {
		t.Errorf("expected avg 2000us, got %d", row.AvgFrameUS)
	}
	if row.EvaluatePct != 40 || row.DrawPct != 50 {
		t.Errorf("phase percentages wrong: evaluate=%v draw=%v", row.EvaluatePct, row.DrawPct)
	}
	if row.SmoothingPct != 0 {
		t.Errorf("expected zero smoothing pct, got %v", row.SmoothingPct)
	}
}
