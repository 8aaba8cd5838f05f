package gesture

import (
	"math"
	"sync"

	"github.com/pthm-cable/nebula/config"
)

// Manipulation is the smoothed transform applied to the whole field:
// a uniform scale and two tilt angles in radians.
type Manipulation struct {
	Scale float64
	TiltX float64
	TiltY float64
}

// Smoother converts the latest detection into target manipulation values
// and chases them with exponential smoothing every render frame. Targets
// are written only by the detection task (Observe), currents only by the
// render loop (Step); the target handoff is mutex-guarded since the two
// run on different goroutines.
type Smoother struct {
	cfg config.GestureConfig

	mu      sync.Mutex
	targets Manipulation

	// Owned by the render loop, no lock needed
	current Manipulation
}

// NewSmoother creates a smoother with targets and currents at the neutral
// pose (scale 1, no tilt).
func NewSmoother(cfg config.GestureConfig) *Smoother {
	neutral := Manipulation{Scale: 1}
	return &Smoother{
		cfg:     cfg,
		targets: neutral,
		current: neutral,
	}
}

// Observe consumes a detection. With a landmark set present it recomputes
// the targets; without one the targets are left unchanged, so the field
// holds its last pose instead of snapping back. Returns whether a hand
// was present.
func (s *Smoother) Observe(res DetectionResult) bool {
	if !res.HasHand() {
		return false
	}

	thumb := res.Landmarks[ThumbTip]
	index := res.Landmarks[IndexTip]
	palm := res.Landmarks[PalmCenter]

	scale := s.ScaleForPinch(pinchDistance(thumb, index))

	// Palm offset from frame center drives the tilts. Y tilt is negated so
	// moving the hand right rotates the field the way a trackball would.
	tiltY := -(palm.X - 0.5) * s.cfg.TiltGain
	tiltX := (palm.Y - 0.5) * s.cfg.TiltGain

	s.mu.Lock()
	s.targets = Manipulation{Scale: scale, TiltX: tiltX, TiltY: tiltY}
	s.mu.Unlock()
	return true
}

// ScaleForPinch maps a raw pinch distance to the field scale: the
// distance is clamped to the configured band, then remapped linearly onto
// [ScaleMin, ScaleMax]. The tilt outputs are deliberately not clamped
// beyond the input normalization.
func (s *Smoother) ScaleForPinch(dist float64) float64 {
	d := math.Min(math.Max(dist, s.cfg.PinchMin), s.cfg.PinchMax)
	norm := (d - s.cfg.PinchMin) / (s.cfg.PinchMax - s.cfg.PinchMin)
	return s.cfg.ScaleMin + norm*(s.cfg.ScaleMax-s.cfg.ScaleMin)
}

// Step advances the currents one frame toward the targets. Called every
// render frame regardless of detection cadence, which decouples the slow,
// bursty detector from the steady display rate and damps outliers.
func (s *Smoother) Step() Manipulation {
	s.mu.Lock()
	t := s.targets
	s.mu.Unlock()

	k := s.cfg.LerpFactor
	s.current.Scale += (t.Scale - s.current.Scale) * k
	s.current.TiltX += (t.TiltX - s.current.TiltX) * k
	s.current.TiltY += (t.TiltY - s.current.TiltY) * k
	return s.current
}

// Current returns the most recently smoothed values without advancing.
func (s *Smoother) Current() Manipulation {
	return s.current
}

// Targets returns the current target values. Intended for HUD readouts
// and tests.
func (s *Smoother) Targets() Manipulation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.targets
}

// pinchDistance is the 2D distance between two landmarks in frame space.
// Depth is ignored: the detector's Z is too noisy to gate a scale on.
func pinchDistance(a, b Landmark) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
