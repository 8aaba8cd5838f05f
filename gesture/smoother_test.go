package gesture

import (
	"math"
	"testing"

	"github.com/pthm-cable/nebula/config"
)

func testGestureConfig() config.GestureConfig {
	return config.GestureConfig{
		PinchMin:   0.02,
		PinchMax:   0.30,
		ScaleMin:   0.5,
		ScaleMax:   5.0,
		TiltGain:   3.0,
		LerpFactor: 0.1,
	}
}

// handAt builds a full landmark set with the given palm center and pinch
// distance.
func handAt(palmX, palmY, pinch float64) DetectionResult {
	lm := make([]Landmark, LandmarkCount)
	for i := range lm {
		lm[i] = Landmark{X: palmX, Y: palmY}
	}
	lm[PalmCenter] = Landmark{X: palmX, Y: palmY}
	lm[ThumbTip] = Landmark{X: palmX - pinch/2, Y: palmY}
	lm[IndexTip] = Landmark{X: palmX + pinch/2, Y: palmY}
	return DetectionResult{Landmarks: lm}
}

func TestScaleForPinchEndpoints(t *testing.T) {
	s := NewSmoother(testGestureConfig())

	cases := []struct {
		dist, want float64
	}{
		{0.02, 0.5}, // closed pinch -> minimum scale
		{0.30, 5.0}, // open pinch -> maximum scale
		{0.16, 2.75},
	}
	for _, c := range cases {
		got := s.ScaleForPinch(c.dist)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("ScaleForPinch(%f) = %f, want %f", c.dist, got, c.want)
		}
	}
}

func TestScaleForPinchClampsInput(t *testing.T) {
	s := NewSmoother(testGestureConfig())

	// Values outside the band clamp before remapping
	if got, want := s.ScaleForPinch(0.5), s.ScaleForPinch(0.30); got != want {
		t.Errorf("over-range pinch not clamped: %f vs %f", got, want)
	}
	if got, want := s.ScaleForPinch(0.001), s.ScaleForPinch(0.02); got != want {
		t.Errorf("under-range pinch not clamped: %f vs %f", got, want)
	}
}

func TestObserveTiltMapping(t *testing.T) {
	s := NewSmoother(testGestureConfig())

	// Palm to the right of and below frame center
	if !s.Observe(handAt(0.75, 0.6, 0.16)) {
		t.Fatal("expected hand to be observed")
	}

	targets := s.Targets()
	if math.Abs(targets.TiltY-(-0.75)) > 1e-9 {
		t.Errorf("TiltY = %f, want -0.75", targets.TiltY)
	}
	if math.Abs(targets.TiltX-0.3) > 1e-9 {
		t.Errorf("TiltX = %f, want 0.3", targets.TiltX)
	}
	if math.Abs(targets.Scale-2.75) > 1e-9 {
		t.Errorf("Scale = %f, want 2.75", targets.Scale)
	}
}

func TestObserveEmptyHoldsTargets(t *testing.T) {
	s := NewSmoother(testGestureConfig())

	s.Observe(handAt(0.8, 0.5, 0.3))
	before := s.Targets()

	// No landmarks: the field holds its last pose rather than resetting
	if s.Observe(DetectionResult{}) {
		t.Error("empty detection reported as a hand")
	}
	if s.Targets() != before {
		t.Errorf("targets changed on empty detection: %+v -> %+v", before, s.Targets())
	}
}

func TestObservePartialLandmarkSetIgnored(t *testing.T) {
	s := NewSmoother(testGestureConfig())
	before := s.Targets()

	res := DetectionResult{Landmarks: make([]Landmark, 5)}
	if s.Observe(res) {
		t.Error("partial landmark set reported as a hand")
	}
	if s.Targets() != before {
		t.Error("targets changed on partial landmark set")
	}
}

func TestStepConvergesMonotonically(t *testing.T) {
	s := NewSmoother(testGestureConfig())
	s.Observe(handAt(0.5, 0.5, 0.0822)) // target scale ~1.5, unit-or-less gap
	target := s.Targets().Scale

	prevGap := math.Abs(s.Current().Scale - target)
	steps := 0
	for ; steps < 200; steps++ {
		cur := s.Step()
		gap := math.Abs(cur.Scale - target)
		if gap > prevGap {
			t.Fatalf("step %d: gap grew from %f to %f", steps, prevGap, gap)
		}
		prevGap = gap
		if gap < 1e-3 {
			break
		}
	}

	// 0.9^65 shrinks a sub-unit gap below 1e-3
	if steps > 65 {
		t.Errorf("expected convergence within 65 steps, took %d", steps)
	}
}

func TestStepWithoutDetections(t *testing.T) {
	s := NewSmoother(testGestureConfig())

	// With neutral targets the currents stay at the neutral pose
	for i := 0; i < 10; i++ {
		cur := s.Step()
		if cur.Scale != 1 || cur.TiltX != 0 || cur.TiltY != 0 {
			t.Fatalf("neutral pose drifted: %+v", cur)
		}
	}
}
