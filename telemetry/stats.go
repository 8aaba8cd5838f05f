package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowEndFrame int64   `csv:"window_end"`
	WallTimeSec    float64 `csv:"wall_time"`

	// Frame timing over the window
	FPS         float64 `csv:"fps"`
	FrameMsMean float64 `csv:"frame_ms_mean"`
	FrameMsP50  float64 `csv:"frame_ms_p50"`
	FrameMsP95  float64 `csv:"frame_ms_p95"`

	// Field state at window end
	Particles int     `csv:"particles"`
	Scale     float64 `csv:"scale"`
	TiltX     float64 `csv:"tilt_x"`
	TiltY     float64 `csv:"tilt_y"`
	Status    string  `csv:"status"`

	// Detection pipeline events during the window
	Detections    int64 `csv:"detections"`
	SkippedFrames int64 `csv:"skipped_frames"`
}

// ComputeFrameStats calculates mean and percentiles of per-frame
// durations in milliseconds.
func ComputeFrameStats(frameMs []float64) (mean, p50, p95 float64) {
	if len(frameMs) == 0 {
		return 0, 0, 0
	}

	mean = stat.Mean(frameMs, nil)

	sorted := make([]float64, len(frameMs))
	copy(sorted, frameMs)
	sort.Float64s(sorted)

	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	return mean, p50, p95
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_end", s.WindowEndFrame),
		slog.Float64("wall_time", s.WallTimeSec),
		slog.Float64("fps", s.FPS),
		slog.Float64("frame_ms_mean", s.FrameMsMean),
		slog.Float64("frame_ms_p50", s.FrameMsP50),
		slog.Float64("frame_ms_p95", s.FrameMsP95),
		slog.Int("particles", s.Particles),
		slog.Float64("scale", s.Scale),
		slog.Float64("tilt_x", s.TiltX),
		slog.Float64("tilt_y", s.TiltY),
		slog.String("status", s.Status),
		slog.Int64("detections", s.Detections),
		slog.Int64("skipped_frames", s.SkippedFrames),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"wall_time", s.WallTimeSec,
		"fps", s.FPS,
		"frame_ms_mean", s.FrameMsMean,
		"frame_ms_p50", s.FrameMsP50,
		"frame_ms_p95", s.FrameMsP95,
		"particles", s.Particles,
		"scale", s.Scale,
		"tilt_x", s.TiltX,
		"tilt_y", s.TiltY,
		"status", s.Status,
		"detections", s.Detections,
		"skipped_frames", s.SkippedFrames,
	)
}
