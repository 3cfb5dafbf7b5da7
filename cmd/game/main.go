// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/logging"
	"go-space-invaders/internal/loop"
	"go-space-invaders/internal/state"
	"go-space-invaders/pkg/render"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type AppGame struct {
	stateMachine *state.StateMachine
	surface      *render.EbitenSurface
	clock        *loop.Clock
	debug        bool
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(a.clock.Tick())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.surface.Bind(screen)
	a.stateMachine.Draw(a.surface)
	if a.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "YAML settings file")
	levelPath := flag.String("level", "", "YAML level file (built-in level if empty)")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 picks one from the clock")
	debug := flag.Bool("debug", false, "debug overlay and logging")
	skipMenu := flag.Bool("play", false, "skip the title screen")
	flag.Parse()

	logger := logging.New(os.Stderr, "game", *debug)
	if err := run(logger, *configPath, *levelPath, *seed, *debug, *skipMenu); err != nil {
		logger.Error("game stopped", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, configPath, levelPath string, seed int64, debug, skipMenu bool) error {
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

	surface, err := render.NewEbitenSurface()
	if err != nil {
		return err
	}

	keys := input.NewKeySet()
	kb := state.NewEbitenKeyboard()
	stepper := loop.NewStepper(settings.MaxSlice, config.MaxFrameTime)
	newRound := func() state.State {
		g := app.NewGame(settings, level, keys, logger)
		return state.NewGameState(g, keys, kb, stepper)
	}

	sm := state.NewStateMachine()
	if skipMenu {
		sm.SetState(newRound())
	} else {
		sm.SetState(state.NewMenuState(sm, kb, newRound))
	}

	logger.Info("starting", "level", level.Name, "seed", settings.Seed, "debug", settings.Debug)
	a := &AppGame{
		stateMachine: sm,
		surface:      surface,
		clock:        loop.NewClock(),
		debug:        settings.Debug,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Space Invaders")
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
