package gesture

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// pollInterval is the adapter's idle sleep while waiting for the camera
// to produce a new frame.
const pollInterval = 2 * time.Millisecond

// Frame is one camera frame. Timestamps are milliseconds and monotonic
// within a source; the pixel payload is opaque to the adapter and owned
// by the detector contract.
type Frame struct {
	Timestamp     int64
	Width, Height int
	Pixels        []byte
}

// FrameSource delivers successive camera frames. Acquire may block while
// the stream is negotiated and fails terminally (permission denied, no
// device). Stop is best-effort and must tolerate repeated calls.
type FrameSource interface {
	Acquire(ctx context.Context) error
	Frame() (Frame, bool)
	Stop() error
}

// Detector is the external hand-landmark capability. Init loads the model
// and may fail terminally. Detect returns zero or one hand's landmark set
// for the given frame.
type Detector interface {
	Init(ctx context.Context) error
	Detect(frame Frame, timestampMillis int64) (DetectionResult, error)
}

// Adapter drives the detection cycle: it acquires the camera stream,
// initializes the detector, then polls frames on its own cadence,
// invoking the detector at most once per camera frame. Timestamp
// deduplication is the sole backpressure mechanism - if rendering or
// polling outpaces the camera, repeated frames are skipped, never
// re-submitted.
type Adapter struct {
	src      FrameSource
	det      Detector
	smoother *Smoother
	status   *StatusTracker

	// Last camera timestamp submitted to the detector
	lastTimestamp int64

	invocations atomic.Int64
	skipped     atomic.Int64

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// NewAdapter wires a frame source and detector to the smoother and
// status tracker.
func NewAdapter(src FrameSource, det Detector, smoother *Smoother, status *StatusTracker) *Adapter {
	return &Adapter{
		src:           src,
		det:           det,
		smoother:      smoother,
		status:        status,
		lastTimestamp: -1,
	}
}

// Start launches the detection task. The task owns stream acquisition and
// detector initialization; either failing is terminal for the session and
// leaves the field rendering without gesture control.
func (a *Adapter) Start(ctx context.Context) {
	ctx, a.cancel = context.WithCancel(ctx)
	a.done = make(chan struct{})
	go a.run(ctx)
}

func (a *Adapter) run(ctx context.Context) {
	defer close(a.done)

	if err := a.src.Acquire(ctx); err != nil {
		slog.Error("camera stream acquisition failed", "error", err)
		a.status.StreamFailed()
		return
	}

	if err := a.det.Init(ctx); err != nil {
		slog.Error("detector initialization failed", "error", err)
		a.status.StreamFailed()
		return
	}

	// Ready only once the stream produces its first frame
	for {
		if _, ok := a.src.Frame(); ok {
			a.status.StreamAcquired()
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(pollInterval):
		}
	}

	slog.Info("detection cycle running")

	// Self-scheduling poll loop: the next invocation starts only after
	// the current one completes
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		frame, ok := a.src.Frame()
		if !ok || !a.process(frame) {
			select {
			case <-ctx.Done():
				return
			case <-time.After(pollInterval):
			}
		}
	}
}

// process submits one frame to the detector unless its timestamp was
// already submitted. Returns whether the detector was invoked.
func (a *Adapter) process(frame Frame) bool {
	if frame.Timestamp == a.lastTimestamp {
		a.skipped.Add(1)
		return false
	}
	a.lastTimestamp = frame.Timestamp

	res, err := a.det.Detect(frame, frame.Timestamp)
	a.invocations.Add(1)
	if err != nil {
		// Transient detector errors are treated as an empty detection
		slog.Warn("detector error", "timestamp_ms", frame.Timestamp, "error", err)
		res = DetectionResult{}
	}

	hasHand := a.smoother.Observe(res)
	a.status.Detection(hasHand)
	return true
}

// Stop tears the detection task down: cancels the loop, waits for it to
// exit, and stops the stream. Idempotent and safe to call before Start or
// before initialization completed; teardown errors are tolerated.
func (a *Adapter) Stop() {
	a.stopOnce.Do(func() {
		if a.cancel != nil {
			a.cancel()
		}
		if a.done != nil {
			<-a.done
		}
		if a.src != nil {
			if err := a.src.Stop(); err != nil {
				slog.Debug("frame source stop", "error", err)
			}
		}
	})
}

// Invocations returns the number of detector calls made so far.
func (a *Adapter) Invocations() int64 {
	return a.invocations.Load()
}

// SkippedFrames returns the number of frames deduplicated by timestamp.
func (a *Adapter) SkippedFrames() int64 {
	return a.skipped.Load()
}
