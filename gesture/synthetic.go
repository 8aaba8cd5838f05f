package gesture

import (
	"context"
	"math"
	"time"
)

// Synthetic generates a fake hand session for demos, headless soak runs
// and CI: the palm sweeps across the frame, the pinch opens and closes,
// and the hand periodically leaves the frame so the scanning/locked
// transitions get exercised. Implements both FrameSource and Detector.
type Synthetic struct {
	fps      float64
	start    time.Time
	acquired bool
}

// NewSynthetic creates a synthetic gesture rig at the given frame rate.
func NewSynthetic(fps float64) *Synthetic {
	if fps <= 0 {
		fps = 30
	}
	return &Synthetic{fps: fps}
}

// Acquire starts the synthetic clock.
func (s *Synthetic) Acquire(ctx context.Context) error {
	s.start = time.Now()
	s.acquired = true
	return nil
}

// Frame returns the current synthetic frame with a monotonic timestamp.
func (s *Synthetic) Frame() (Frame, bool) {
	if !s.acquired {
		return Frame{}, false
	}
	idx := int(time.Since(s.start).Seconds() * s.fps)
	return Frame{Timestamp: int64(float64(idx) * 1000.0 / s.fps)}, true
}

// Stop ends the session. Safe to call repeatedly.
func (s *Synthetic) Stop() error {
	s.acquired = false
	return nil
}

// Init implements Detector.
func (s *Synthetic) Init(ctx context.Context) error {
	return nil
}

// Detect synthesizes one hand. Every tenth second of each ten-second
// period the hand is absent.
func (s *Synthetic) Detect(frame Frame, timestampMillis int64) (DetectionResult, error) {
	t := float64(timestampMillis) / 1000.0

	if math.Mod(t, 10) > 9 {
		return DetectionResult{}, nil
	}

	// Palm sweeps a slow Lissajous path around the frame center
	palmX := 0.5 + 0.3*math.Sin(t*0.5)
	palmY := 0.5 + 0.22*math.Sin(t*0.31+1.2)

	// Pinch distance breathes through the full mapping band
	pinch := 0.16 + 0.14*math.Sin(t*0.8)

	lm := make([]Landmark, LandmarkCount)
	for i := range lm {
		lm[i] = Landmark{X: palmX, Y: palmY}
	}
	lm[PalmCenter] = Landmark{X: palmX, Y: palmY}
	lm[ThumbTip] = Landmark{X: palmX - pinch/2, Y: palmY - 0.05}
	lm[IndexTip] = Landmark{X: palmX + pinch/2, Y: palmY - 0.05}

	return DetectionResult{Landmarks: lm}, nil
}
