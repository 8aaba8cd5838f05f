package game

import (
	"os"
	"testing"
	"time"

	"github.com/pthm-cable/nebula/config"
	"github.com/pthm-cable/nebula/gesture"
)

func TestMain(m *testing.M) {
	config.MustInit("")
	os.Exit(m.Run())
}

func newHeadlessGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := NewGame(Options{Seed: seed, Headless: true})
	if err != nil {
		t.Fatalf("creating game: %v", err)
	}
	t.Cleanup(g.Unload)
	return g
}

func TestHeadlessFieldIsDeterministic(t *testing.T) {
	const dt = 1.0 / 60.0

	a := newHeadlessGame(t, 7)
	b := newHeadlessGame(t, 7)

	for i := 0; i < 10; i++ {
		a.UpdateHeadless(dt)
		b.UpdateHeadless(dt)
	}

	pa, pb := a.Points(), b.Points()
	if len(pa) == 0 || len(pa) != len(pb) {
		t.Fatalf("point buffers differ in length: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("point %d diverged: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}

func TestSpawnMatchesConfiguredCount(t *testing.T) {
	g := newHeadlessGame(t, 1)

	want := config.Cfg().Field.Count
	if g.particleCount != want {
		t.Errorf("expected %d particles, got %d", want, g.particleCount)
	}

	g.UpdateHeadless(1.0 / 60.0)
	if len(g.Points()) != want {
		t.Errorf("expected %d evaluated points, got %d", want, len(g.Points()))
	}
}

func TestPauseFreezesFieldTime(t *testing.T) {
	const dt = 1.0 / 60.0

	g := newHeadlessGame(t, 3)

	g.UpdateHeadless(dt)
	elapsed := g.Elapsed()

	g.paused = true
	g.UpdateHeadless(dt)
	g.UpdateHeadless(dt)

	if g.Elapsed() != elapsed {
		t.Errorf("field time advanced while paused: %v -> %v", elapsed, g.Elapsed())
	}
	if g.Frame() != 3 {
		t.Errorf("frames should still count while paused, got %d", g.Frame())
	}
}

func TestEvaluationMatchesLifecycle(t *testing.T) {
	const dt = 1.0 / 30.0

	g := newHeadlessGame(t, 11)

	for i := 0; i < 5; i++ {
		g.UpdateHeadless(dt)
	}

	tNow := float32(g.Elapsed())
	for i, snap := range g.parallel.snapshots {
		pos, size, alpha := g.params.Evaluate(tNow, &snap.Desc)
		p := g.points[i]
		if p.Pos != pos || p.Size != size || p.Alpha != alpha {
			t.Fatalf("point %d does not match direct evaluation", i)
		}
		if p.Group != snap.Group {
			t.Fatalf("point %d lost its group: %d vs %d", i, p.Group, snap.Group)
		}
	}
}

func TestNeutralManipulationWithoutDetector(t *testing.T) {
	g := newHeadlessGame(t, 5)

	g.UpdateHeadless(1.0 / 60.0)

	m := g.Manipulation()
	if m.Scale != 1 || m.TiltX != 0 || m.TiltY != 0 {
		t.Errorf("expected neutral manipulation, got %+v", m)
	}
}

func TestSyntheticGesturesDriveStatus(t *testing.T) {
	rig := gesture.NewSynthetic(60)
	g, err := NewGame(Options{Seed: 2, Headless: true, Source: rig, Detector: rig})
	if err != nil {
		t.Fatalf("creating game: %v", err)
	}
	t.Cleanup(g.Unload)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		g.UpdateHeadless(1.0 / 60.0)
		s := g.Status()
		if s == gesture.StatusScanning || s == gesture.StatusHandLocked {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("pipeline never left %v", g.Status())
}

func TestUnloadIsIdempotent(t *testing.T) {
	g, err := NewGame(Options{Seed: 1, Headless: true})
	if err != nil {
		t.Fatalf("creating game: %v", err)
	}

	g.UpdateHeadless(1.0 / 60.0)

	g.Unload()
	g.Unload() // must be a no-op
}
