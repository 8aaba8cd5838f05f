// Package gesture converts noisy, variable-rate hand landmark detections
// into a smooth, bounded manipulation transform for the particle field.
package gesture

// Landmark indices within a detection. The detector contract fixes the
// ordering, so positions are addressed by index, not by name lookup.
const (
	ThumbTip   = 4
	IndexTip   = 8
	PalmCenter = 9

	// LandmarkCount is the size of a full hand landmark set.
	LandmarkCount = 21
)

// Landmark is a single detected hand point. X and Y are normalized to the
// camera frame ([0,1], origin top-left); Z is relative depth.
type Landmark struct {
	X, Y, Z float64
}

// DetectionResult is the transient output of one detector invocation:
// zero or one hand's landmark set. It is consumed once on arrival and
// never stored.
type DetectionResult struct {
	Landmarks []Landmark
}

// HasHand reports whether the detection carries a complete landmark set.
func (r DetectionResult) HasHand() bool {
	return len(r.Landmarks) >= LandmarkCount
}
