// Package game wires the particle field, gesture pipeline, camera and
// telemetry into a runnable loop.
package game

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/nebula/camera"
	"github.com/pthm-cable/nebula/components"
	"github.com/pthm-cable/nebula/config"
	"github.com/pthm-cable/nebula/gesture"
	"github.com/pthm-cable/nebula/renderer"
	"github.com/pthm-cable/nebula/systems"
	"github.com/pthm-cable/nebula/telemetry"
)

// backdropStars is the size of the screen-space star layer.
const backdropStars = 220

// Options selects run-time behavior for a Game.
type Options struct {
	Seed      int64
	Headless  bool
	LogStats  bool
	OutputDir string

	// Gesture source. Both nil means no pipeline (field runs at neutral
	// manipulation, status stays INITIALIZING).
	Source   gesture.FrameSource
	Detector gesture.Detector
}

// Game holds the complete application state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	particleMapper *ecs.Map2[components.Descriptor, components.Style]
	particleFilter *ecs.Filter2[components.Descriptor, components.Style]

	params systems.LifecycleParams

	// Gesture pipeline
	smoother *gesture.Smoother
	status   *gesture.StatusTracker
	adapter  *gesture.Adapter

	// Rendering (nil in headless mode)
	orbit    *camera.Orbit
	galaxy   *renderer.GalaxyRenderer
	backdrop *renderer.Backdrop

	// Telemetry
	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	output    *telemetry.OutputManager

	parallel *parallelState
	points   []renderer.Point

	manip      gesture.Manipulation
	elapsed    float64
	frame      int64
	frameStart time.Time

	paused  bool
	showHUD bool

	headless bool
	logStats bool

	particleCount int
	unloaded      bool
}

// NewGame creates a game instance from the loaded config.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	world := ecs.NewWorld()

	g := &Game{
		world:          world,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		particleMapper: ecs.NewMap2[components.Descriptor, components.Style](world),
		particleFilter: ecs.NewFilter2[components.Descriptor, components.Style](world),
		params:         systems.ParamsFromConfig(cfg.Field),
		smoother:       gesture.NewSmoother(cfg.Gesture),
		status:         gesture.NewStatusTracker(),
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		parallel:       newParallelState(),
		headless:       opts.Headless,
		logStats:       opts.LogStats,
		showHUD:        true,
	}
	g.manip = g.smoother.Current()

	g.spawnField(cfg)

	if opts.Source != nil && opts.Detector != nil {
		g.adapter = gesture.NewAdapter(opts.Source, opts.Detector, g.smoother, g.status)
		g.adapter.Start(context.Background())
	}

	if !opts.Headless {
		g.orbit = camera.New(
			float32(cfg.Camera.Yaw), float32(cfg.Camera.Pitch),
			float32(cfg.Camera.Distance),
			float32(cfg.Camera.MinDistance), float32(cfg.Camera.MaxDistance),
			float32(cfg.Camera.FOV),
		)
		g.galaxy = renderer.NewGalaxyRenderer(cfg.Groups)
		g.backdrop = renderer.NewBackdrop(g.rng, backdropStars)
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = output
	if err := g.output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	return g, nil
}

// spawnField populates the world with particle descriptors, split evenly
// across the configured groups. Descriptors never change after spawn.
func (g *Game) spawnField(cfg *config.Config) {
	per := cfg.Derived.PerGroupCount
	for gi := range cfg.Groups {
		count := per
		if gi == 0 {
			// First group absorbs the division remainder
			count += cfg.Field.Count - per*cfg.Derived.GroupCount
		}
		for i := 0; i < count; i++ {
			desc := systems.NewDescriptor(g.rng, cfg.Field)
			style := components.Style{Group: uint8(gi)}
			g.particleMapper.NewEntity(&desc, &style)
			g.particleCount++
		}
	}
}

// Update advances one graphical frame using the real frame delta.
func (g *Game) Update() {
	g.handleInput()
	g.step(float64(frameDelta()))
}

// UpdateHeadless advances one frame with a fixed timestep and completes
// telemetry immediately since there is no draw phase.
func (g *Game) UpdateHeadless(dt float64) {
	g.step(dt)
	g.finishFrame()
}

// step runs the smoothing and evaluation phases of one frame.
func (g *Game) step(dt float64) {
	g.frameStart = time.Now()
	g.perf.StartFrame()

	g.perf.StartPhase(telemetry.PhaseSmoothing)
	g.manip = g.smoother.Step()

	if !g.paused {
		g.elapsed += dt
	}

	g.perf.StartPhase(telemetry.PhaseEvaluate)
	g.evaluateField()

	g.frame++
}

// finishFrame records telemetry and closes the perf sample. Called from
// Draw in graphical mode, directly in headless mode.
func (g *Game) finishFrame() {
	g.perf.StartPhase(telemetry.PhaseTelemetry)

	g.collector.RecordFrame(time.Since(g.frameStart))

	if g.collector.ShouldFlush() {
		stats := g.collector.Flush(
			g.frame, g.particleCount,
			g.manip.Scale, g.manip.TiltX, g.manip.TiltY,
			g.status.Current().String(),
			g.detectorInvocations(), g.detectorSkipped(),
		)
		perfStats := g.perf.Stats()

		if g.logStats {
			stats.LogStats()
			perfStats.LogStats()
		}
		g.output.WriteWindow(stats)
		g.output.WritePerf(perfStats, g.frame)
	}

	g.perf.EndFrame()
}

func (g *Game) detectorInvocations() int64 {
	if g.adapter == nil {
		return 0
	}
	return g.adapter.Invocations()
}

func (g *Game) detectorSkipped() int64 {
	if g.adapter == nil {
		return 0
	}
	return g.adapter.SkippedFrames()
}

// Points returns the evaluated particle buffer for the current frame.
func (g *Game) Points() []renderer.Point {
	return g.points
}

// Manipulation returns the smoothed field manipulation for the current frame.
func (g *Game) Manipulation() gesture.Manipulation {
	return g.manip
}

// Status returns the gesture pipeline status.
func (g *Game) Status() gesture.Status {
	return g.status.Current()
}

// Frame returns the number of frames advanced so far.
func (g *Game) Frame() int64 {
	return g.frame
}

// Elapsed returns the accumulated field time in seconds.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// Unload tears the game down. Safe to call more than once.
func (g *Game) Unload() {
	if g.unloaded {
		return
	}
	g.unloaded = true

	if g.adapter != nil {
		g.adapter.Stop()
	}
	g.parallel.stopWorkers()
	if g.galaxy != nil {
		g.galaxy.Unload()
	}
	if err := g.output.Close(); err != nil {
		slog.Debug("output close", "error", err)
	}
}
