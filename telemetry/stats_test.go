package telemetry

import (
	"math"
	"testing"
	"time"
)

func TestComputeFrameStatsEmpty(t *testing.T) {
	mean, p50, p95 := ComputeFrameStats(nil)
	if mean != 0 || p50 != 0 || p95 != 0 {
		t.Errorf("expected zeros for empty input, got mean=%v p50=%v p95=%v", mean, p50, p95)
	}
}

func TestComputeFrameStats(t *testing.T) {
	frames := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	mean, p50, p95 := ComputeFrameStats(frames)

	if math.Abs(mean-5.5) > 1e-9 {
		t.Errorf("expected mean 5.5, got %v", mean)
	}
	if p50 < 5 || p50 > 6 {
		t.Errorf("expected p50 around the middle, got %v", p50)
	}
	if p95 < 9 {
		t.Errorf("expected p95 near the top, got %v", p95)
	}
	if p95 < p50 {
		t.Errorf("p95 %v below p50 %v", p95, p50)
	}
}

func TestComputeFrameStatsUnsortedInput(t *testing.T) {
	frames := []float64{9, 1, 5, 3, 7}

	_, p50, _ := ComputeFrameStats(frames)

	if p50 < 3 || p50 > 7 {
		t.Errorf("expected p50 in the middle of the distribution, got %v", p50)
	}
	// Input must not be mutated
	if frames[0] != 9 {
		t.Errorf("input slice reordered: %v", frames)
	}
}

func TestCollectorFlushDeltas(t *testing.T) {
	c := NewCollector(5)

	c.RecordFrame(2 * time.Millisecond)
	c.RecordFrame(4 * time.Millisecond)

	stats := c.Flush(120, 6000, 1.5, 0.1, -0.2, "HAND_LOCKED", 50, 3)

	if stats.WindowEndFrame != 120 {
		t.Errorf("expected window end frame 120, got %d", stats.WindowEndFrame)
	}
	if stats.Particles != 6000 {
		t.Errorf("expected 6000 particles, got %d", stats.Particles)
	}
	if stats.Detections != 50 {
		t.Errorf("expected 50 detections in first window, got %d", stats.Detections)
	}
	if stats.SkippedFrames != 3 {
		t.Errorf("expected 3 skipped frames in first window, got %d", stats.SkippedFrames)
	}
	if math.Abs(stats.FrameMsMean-3.0) > 0.01 {
		t.Errorf("expected mean frame time 3ms, got %v", stats.FrameMsMean)
	}
	if stats.Status != "HAND_LOCKED" {
		t.Errorf("expected status HAND_LOCKED, got %q", stats.Status)
	}

	// Second window sees only the increment
	c.RecordFrame(time.Millisecond)
	stats = c.Flush(240, 6000, 1.5, 0.1, -0.2, "SCANNING", 80, 3)

	if stats.Detections != 30 {
		t.Errorf("expected 30 detections in second window, got %d", stats.Detections)
	}
	if stats.SkippedFrames != 0 {
		t.Errorf("expected 0 skipped frames in second window, got %d", stats.SkippedFrames)
	}
}

func TestCollectorShouldFlush(t *testing.T) {
	c := NewCollector(0.01)

	if c.ShouldFlush() {
		t.Error("fresh collector should not need a flush")
	}

	time.Sleep(15 * time.Millisecond)

	if !c.ShouldFlush() {
		t.Error("expected flush after window elapsed")
	}
}
