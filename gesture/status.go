package gesture

import "sync"

// Status is the coarse operating condition surfaced to the user. It is
// purely observational: the field animates regardless of status.
type Status uint8

const (
	StatusInitializing Status = iota
	StatusReady
	StatusCameraError
	StatusScanning
	StatusHandLocked
)

// String returns a short label for HUD display and logs.
func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusReady:
		return "ready"
	case StatusCameraError:
		return "camera error"
	case StatusScanning:
		return "scanning"
	case StatusHandLocked:
		return "hand locked"
	default:
		return "unknown"
	}
}

// StatusTracker holds the status state machine. The detection task is the
// only writer; the render loop reads it for the HUD.
type StatusTracker struct {
	mu sync.Mutex
	s  Status
}

// NewStatusTracker starts in the initializing state.
func NewStatusTracker() *StatusTracker {
	return &StatusTracker{s: StatusInitializing}
}

// Current returns the current status.
func (t *StatusTracker) Current() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.s
}

// StreamAcquired records that the camera stream produced its first frame.
// Only valid from the initializing state.
func (t *StatusTracker) StreamAcquired() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.s == StatusInitializing {
		t.s = StatusReady
	}
}

// StreamFailed records a terminal acquisition failure. Once entered, the
// camera error state accepts no further transitions.
func (t *StatusTracker) StreamFailed() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.s == StatusInitializing {
		t.s = StatusCameraError
	}
}

// Detection records the outcome of one detector invocation: landmarks
// present toggles to hand-locked, absence toggles to scanning. Ignored
// before the stream is up and after a terminal camera error.
func (t *StatusTracker) Detection(hasHand bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch t.s {
	case StatusReady, StatusScanning, StatusHandLocked:
		if hasHand {
			t.s = StatusHandLocked
		} else {
			t.s = StatusScanning
		}
	}
}
