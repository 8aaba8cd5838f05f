package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager when output is disabled")
	}

	// Nil receiver must be a no-op everywhere
	if err := om.WriteWindow(WindowStats{}); err != nil {
		t.Errorf("nil WriteWindow returned error: %v", err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Errorf("nil WritePerf returned error: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close returned error: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("expected empty dir, got %q", om.Dir())
	}
}

func TestOutputManagerWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()

	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("creating output manager: %v", err)
	}

	if err := om.WriteWindow(WindowStats{WindowEndFrame: 100, FPS: 60}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := om.WriteWindow(WindowStats{WindowEndFrame: 200, FPS: 59}); err != nil {
		t.Fatalf("second write: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "frames.csv"))
	if err != nil {
		t.Fatalf("reading frames.csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "window_end") {
		t.Errorf("expected header line, got %q", lines[0])
	}
	if strings.HasPrefix(lines[2], "window_end") {
		t.Error("header repeated in data rows")
	}
}

func TestOutputManagerWritesPerf(t *testing.T) {
	dir := t.TempDir()

	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("creating output manager: %v", err)
	}

	stats := PerfStats{
		AvgFrameDuration: time.Millisecond,
		FPS:              1000,
		PhasePct:         map[string]float64{PhaseDraw: 70},
	}
	if err := om.WritePerf(stats, 300); err != nil {
		t.Fatalf("writing perf: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "perf.csv"))
	if err != nil {
		t.Fatalf("reading perf.csv: %v", err)
	}
	if !strings.Contains(string(data), "300") {
		t.Errorf("perf.csv missing window end marker: %s", data)
	}
}
