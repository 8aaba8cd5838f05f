package telemetry

import "time"

// Collector accumulates per-frame samples and cuts them into fixed wall
// clock windows of WindowStats. Owned by the render loop; not safe for
// concurrent use.
type Collector struct {
	windowSec float64

	frameMs     []float64
	windowStart time.Time

	// Detection counters at the previous window cut, for deltas
	lastDetections int64
	lastSkipped    int64
}

// NewCollector creates a collector cutting windows of the given length.
func NewCollector(windowSec float64) *Collector {
	if windowSec <= 0 {
		windowSec = 5
	}
	return &Collector{
		windowSec:   windowSec,
		frameMs:     make([]float64, 0, 1024),
		windowStart: time.Now(),
	}
}

// RecordFrame adds one frame duration to the current window.
func (c *Collector) RecordFrame(d time.Duration) {
	c.frameMs = append(c.frameMs, float64(d.Microseconds())/1000.0)
}

// ShouldFlush reports whether the current window is complete.
func (c *Collector) ShouldFlush() bool {
	return time.Since(c.windowStart).Seconds() >= c.windowSec
}

// Flush closes the window and returns its stats. Cumulative detection
// counters are turned into per-window deltas here.
func (c *Collector) Flush(frame int64, particles int, scale, tiltX, tiltY float64, status string, detections, skipped int64) WindowStats {
	elapsed := time.Since(c.windowStart).Seconds()

	mean, p50, p95 := ComputeFrameStats(c.frameMs)

	var fps float64
	if elapsed > 0 {
		fps = float64(len(c.frameMs)) / elapsed
	}

	stats := WindowStats{
		WindowEndFrame: frame,
		WallTimeSec:    elapsed,
		FPS:            fps,
		FrameMsMean:    mean,
		FrameMsP50:     p50,
		FrameMsP95:     p95,
		Particles:      particles,
		Scale:          scale,
		TiltX:          tiltX,
		TiltY:          tiltY,
		Status:         status,
		Detections:     detections - c.lastDetections,
		SkippedFrames:  skipped - c.lastSkipped,
	}

	c.frameMs = c.frameMs[:0]
	c.windowStart = time.Now()
	c.lastDetections = detections
	c.lastSkipped = skipped

	return stats
}
