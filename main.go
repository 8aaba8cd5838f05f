package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/nebula/config"
	"github.com/pthm-cable/nebula/game"
	"github.com/pthm-cable/nebula/gesture"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxFrames := flag.Int64("max-frames", 0, "Stop after N frames (0 = unlimited)")
	gestures := flag.String("gestures", "demo", "Gesture source: demo, replay or none")
	landmarks := flag.String("landmarks", "", "Landmark CSV for -gestures=replay")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// CLI override for the stats window
	if *statsWindow > 0 {
		cfg.Telemetry.StatsWindow = *statsWindow
	}

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		Seed:      rngSeed,
		Headless:  *headless,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	}

	// Pick the gesture source
	switch *gestures {
	case "demo":
		rig := gesture.NewSynthetic(float64(cfg.Screen.TargetFPS))
		opts.Source = rig
		opts.Detector = rig
	case "replay":
		rig, err := gesture.LoadReplay(*landmarks, cfg.Detector.ReplayFPS)
		if err != nil {
			slog.Error("failed to load landmark replay", "path", *landmarks, "error", err)
			os.Exit(1)
		}
		opts.Source = rig
		opts.Detector = rig
	case "none":
		// Field runs at neutral manipulation
	default:
		slog.Error("unknown gesture source", "gestures", *gestures)
		os.Exit(1)
	}

	if *headless {
		// Headless mode - fixed timestep, no raylib needed
		g, err := game.NewGame(opts)
		if err != nil {
			slog.Error("failed to create game", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		slog.Info("starting headless run",
			"seed", rngSeed,
			"gestures", *gestures,
			"max_frames", *maxFrames,
		)

		dt := 1.0 / float64(cfg.Screen.TargetFPS)
		for {
			g.UpdateHeadless(dt)

			if *maxFrames > 0 && g.Frame() >= *maxFrames {
				slog.Info("max frames reached", "frame", g.Frame())
				return
			}
		}
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Nebula")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxFrames > 0 && g.Frame() >= *maxFrames {
			break
		}
	}
}
