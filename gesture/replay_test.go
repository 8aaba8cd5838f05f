package gesture

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeSession builds a CSV session file. Frame 0 has a full landmark
// set, frame 1 a partial one, frame 2 none.
func writeSession(t *testing.T) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("frame,landmark,x,y,z\n")
	for lm := 0; lm < LandmarkCount; lm++ {
		fmt.Fprintf(&b, "0,%d,%.3f,%.3f,0\n", lm, 0.5+float64(lm)*0.001, 0.5)
	}
	b.WriteString("1,0,0.1,0.1,0\n")
	b.WriteString("1,1,0.2,0.2,0\n")
	// frame 2 intentionally absent from the file, but a later frame
	// extends the session length
	b.WriteString("2,0,0.3,0.3,0\n")

	path := filepath.Join(t.TempDir(), "session.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatalf("writing session: %v", err)
	}
	return path
}

func TestLoadReplaySession(t *testing.T) {
	r, err := LoadReplay(writeSession(t), 30)
	if err != nil {
		t.Fatalf("loading replay: %v", err)
	}

	if len(r.frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(r.frames))
	}
	if len(r.frames[0]) != LandmarkCount {
		t.Errorf("frame 0 should be a full hand, got %d landmarks", len(r.frames[0]))
	}
	if len(r.frames[1]) != 2 {
		t.Errorf("frame 1 should have 2 landmarks, got %d", len(r.frames[1]))
	}
}

func TestLoadReplayMissingFile(t *testing.T) {
	if _, err := LoadReplay(filepath.Join(t.TempDir(), "nope.csv"), 30); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadReplayEmptySession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("frame,landmark,x,y,z\n"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	if _, err := LoadReplay(path, 30); err == nil {
		t.Fatal("expected error for empty session")
	}
}

func TestReplayDetectMapsTimestamps(t *testing.T) {
	r, err := LoadReplay(writeSession(t), 30)
	if err != nil {
		t.Fatalf("loading replay: %v", err)
	}
	if err := r.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}

	// Timestamp 0 maps to frame 0: full hand
	res, err := r.Detect(Frame{}, 0)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if !res.HasHand() {
		t.Error("frame 0 should detect a hand")
	}

	// One frame later at 30fps: partial set replays as empty detection
	res, err = r.Detect(Frame{}, 34)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if res.HasHand() {
		t.Error("partial landmark set should not count as a hand")
	}

	// Past the end the session loops back to frame 0
	res, err = r.Detect(Frame{}, 100)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if !res.HasHand() {
		t.Error("session should loop back to the full-hand frame")
	}
}

func TestReplayFrameRequiresAcquire(t *testing.T) {
	r, err := LoadReplay(writeSession(t), 30)
	if err != nil {
		t.Fatalf("loading replay: %v", err)
	}

	if _, ok := r.Frame(); ok {
		t.Error("frames should not be available before Acquire")
	}

	if err := r.Acquire(context.Background()); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if _, ok := r.Frame(); !ok {
		t.Error("expected a frame after Acquire")
	}
}
