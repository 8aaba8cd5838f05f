package gesture

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
)

// ReplayRecord is one landmark sample in a recorded hand session. A frame
// with no rows is simply absent; frames listed with fewer than a full
// landmark set replay as empty detections.
type ReplayRecord struct {
	FrameIndex int     `csv:"frame"`
	Landmark   int     `csv:"landmark"`
	X          float64 `csv:"x"`
	Y          float64 `csv:"y"`
	Z          float64 `csv:"z"`
}

// Replay plays a recorded landmark session through the real adapter path.
// It acts as both the frame source and the detector: frames advance at
// the configured rate against the wall clock, timestamps stay monotonic,
// and the landmark content loops over the recorded session.
type Replay struct {
	fps      float64
	frames   [][]Landmark
	maxFrame int
	start    time.Time
	acquired bool
}

// LoadReplay reads a recorded session from a CSV file.
func LoadReplay(path string, fps float64) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening replay file: %w", err)
	}
	defer f.Close()

	var records []ReplayRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parsing replay file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("replay session %s is empty", path)
	}

	maxFrame := 0
	for _, r := range records {
		if r.FrameIndex > maxFrame {
			maxFrame = r.FrameIndex
		}
	}

	frames := make([][]Landmark, maxFrame+1)
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].FrameIndex != records[j].FrameIndex {
			return records[i].FrameIndex < records[j].FrameIndex
		}
		return records[i].Landmark < records[j].Landmark
	})
	for _, r := range records {
		frames[r.FrameIndex] = append(frames[r.FrameIndex], Landmark{X: r.X, Y: r.Y, Z: r.Z})
	}

	if fps <= 0 {
		fps = 30
	}
	return &Replay{fps: fps, frames: frames, maxFrame: maxFrame}, nil
}

// Acquire starts the replay clock.
func (r *Replay) Acquire(ctx context.Context) error {
	r.start = time.Now()
	r.acquired = true
	return nil
}

// Frame returns the current replay frame with a synthetic monotonic
// timestamp derived from the frame rate.
func (r *Replay) Frame() (Frame, bool) {
	if !r.acquired {
		return Frame{}, false
	}
	idx := int(time.Since(r.start).Seconds() * r.fps)
	return Frame{Timestamp: int64(float64(idx) * 1000.0 / r.fps)}, true
}

// Stop ends the session. Safe to call repeatedly.
func (r *Replay) Stop() error {
	r.acquired = false
	return nil
}

// Init implements Detector; a replay needs no model load.
func (r *Replay) Init(ctx context.Context) error {
	return nil
}

// Detect returns the recorded landmarks for the frame the timestamp maps
// to, looping over the session.
func (r *Replay) Detect(frame Frame, timestampMillis int64) (DetectionResult, error) {
	idx := int(float64(timestampMillis) / 1000.0 * r.fps)
	lm := r.frames[idx%len(r.frames)]
	if len(lm) < LandmarkCount {
		return DetectionResult{}, nil
	}
	return DetectionResult{Landmarks: lm}, nil
}
