// cmd/tty/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/logging"
	"go-space-invaders/internal/loop"
	"go-space-invaders/internal/tty"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file")
	levelPath := flag.String("level", "", "YAML level file (built-in level if empty)")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 picks one from the clock")
	debug := flag.Bool("debug", false, "debug logging and formation outline")
	logPath := flag.String("log", "space-invaders.log", "log file, the terminal is taken by the game")
	flag.Parse()

	if err := run(*configPath, *levelPath, *logPath, *seed, *debug); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(configPath, levelPath, logPath string, seed int64, debug bool) error {
	settings := config.DefaultSettings()
	if configPath != "" {
		s, err := config.LoadSettings(configPath)
		if err != nil {
			return err
		}
		settings = s
	}
	if seed != 0 {
		settings.Seed = seed
	}
	settings.Debug = settings.Debug || debug
	if levelPath == "" {
		levelPath = settings.LevelPath
	}
	level, err := defs.LoadLevel(levelPath)
	if err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(logPath, "tty", settings.Debug)
	if err != nil {
		return err
	}
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	keys := input.NewKeySet()
	game := app.NewGame(settings, level, keys, logger)

	logger.Info("starting", "level", level.Name, "seed", settings.Seed, "debug", settings.Debug)
	runner := tty.NewRunner(
		screen,
		game,
		tty.NewKeyAdapter(keys),
		tty.NewSurface(screen, config.ScreenWidth, config.ScreenHeight),
		loop.NewStepper(settings.MaxSlice, config.MaxFrameTime),
		logger,
	)
	if err := runner.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	logger.Info("stopped", "frames", runner.Frames(), "round", game.Round())
	return nil
}
