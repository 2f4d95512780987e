package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/fireworks/internal/audio"
	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/game"
	"github.com/iburimskiy/fireworks/internal/sim"
	"github.com/iburimskiy/fireworks/internal/telemetry"
	"github.com/iburimskiy/fireworks/internal/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "YAML file overriding the built-in tuning")
	termMode := flag.Bool("term", false, "Render in the terminal instead of a window")
	mute := flag.Bool("mute", false, "Start with sound muted")
	statsPath := flag.String("stats", "", "Write one CSV row of show stats per second to this file")
	seed := flag.Uint64("seed", 0, "Random seed (0 picks a fresh one)")
	logPath := flag.String("log", "", "Write logs to this file instead of stderr")
	flag.Parse()

	closeLog, err := setupLogging(*logPath, *termMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeLog()

	fatal := func(msg string, err error) int {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
		if !*termMode {
			_ = zenity.Error(fmt.Sprintf("%s:\n%v", msg, err), zenity.Title("Fireworks"), zenity.ErrorIcon)
		}
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fatal("failed to load config", err)
	}
	if *mute {
		cfg.Audio.Muted = true
	}

	player, err := audio.New(cfg)
	if err != nil {
		return fatal("failed to load sounds", err)
	}
	if err := player.Start(); err != nil {
		return fatal("failed to start audio", err)
	}
	defer player.Close()

	var stats *telemetry.Writer
	if *statsPath != "" {
		stats, err = telemetry.Create(*statsPath, cfg.Screen.TPS)
		if err != nil {
			return fatal("failed to open stats file", err)
		}
		defer stats.Close()
	}

	show := sim.NewShow(cfg, sim.NewRand(*seed), player)

	backend := "window"
	if *termMode {
		backend = "terminal"
	}
	slog.Info("starting show",
		"backend", backend,
		"size", fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height),
		"tps", cfg.Screen.TPS,
		"seed", *seed,
		"muted", cfg.Audio.Muted)

	if *termMode {
		err = term.Run(show, player, stats)
	} else {
		err = game.Run(game.New(show, player, stats))
	}
	if err != nil {
		return fatal("show stopped", err)
	}

	st := show.Stats()
	slog.Info("show finished", "ticks", st.Tick, "launched", st.Launched, "exploded", st.Exploded)
	return 0
}

// setupLogging installs the default slog logger. The terminal backend owns
// stdout and stderr while running, so without a log file it logs nowhere.
func setupLogging(path string, termMode bool) (func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case termMode:
		w = io.Discard
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, nil)))
	return closeFn, nil
}
