// internal/app/game.go
package app

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/logging"
	"go-space-invaders/internal/mask"
	"go-space-invaders/internal/ui"
	"go-space-invaders/internal/utils"
	"go-space-invaders/pkg/render"
	"log/slog"
	"slices"

	"github.com/google/uuid"
)

// Game owns one running simulation: the entities, the round state and the
// key set it reads. It is not safe for concurrent use.
type Game struct {
	EventDispatcher *event.Dispatcher

	settings  config.Settings
	level     defs.Level
	keys      interfaces.KeyState
	rng       *utils.PRNGService
	world     *entity.World
	logger    *slog.Logger
	area      component.Rect
	player    *entity.PlayerShip
	formation *entity.Formation
	health    *ui.PlayerHealthIndicator
	overlay   *ui.Overlay

	// состояние раунда
	state         component.GameState
	terminalTicks int
	elapsed       float64
	round         int
	roundID       string
	kills         int
}

var (
	_ entity.Context        = (*Game)(nil)
	_ interfaces.Simulation = (*Game)(nil)
)

// NewGame builds a game and stages its first round. The round's entities
// go live on the first Update.
func NewGame(settings config.Settings, level defs.Level, keys interfaces.KeyState, logger *slog.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	g := &Game{
		EventDispatcher: event.NewDispatcher(),
		settings:        settings,
		level:           level,
		keys:            keys,
		rng:             utils.NewPRNGService(settings.Seed),
		world:           entity.NewWorld(),
		logger:          logger,
		area:            component.Rect{W: config.ScreenWidth, H: config.ScreenHeight},
		health:          ui.NewPlayerHealthIndicator(config.ScreenHeight),
		overlay:         ui.NewOverlay(),
	}

	logging.NewEventLogger(logger).Attach(g.EventDispatcher)
	g.EventDispatcher.Subscribe(event.ShipDestroyed, &GameEventListener{game: g})

	g.Start()
	return g
}

// GameEventListener keeps round statistics from simulation events.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	if d, ok := e.Data.(event.Destroyed); ok && d.Faction == component.Enemy {
		l.game.kills++
	}
}

// Start discards the current round and stages a fresh one.
func (g *Game) Start() {
	g.world.Reset()
	g.round++
	g.roundID = uuid.NewString()
	g.state = component.Play
	g.terminalTicks = 0
	g.elapsed = 0
	g.kills = 0

	w, h := g.area.W, g.area.H

	ship := mask.MustSprite(mask.SpritePlayer)
	g.player = entity.NewPlayerShip(
		component.Vector2D{X: w/2 - float64(ship.Width())/2, Y: h - config.PlayerBottomOffset},
		ship, g.settings.PlayerHitPoints, g.settings.PlayerSpeed,
	)
	g.world.Spawn(g.player)

	lf := g.level.Formation
	g.formation = entity.NewFormation(component.Vector2D{X: (w - lf.Width) / 2, Y: lf.Top}, lf.Width, entity.FormationParams{
		Direction:           g.rng.Sign(),
		Speed:               g.settings.FormationStartSpeed,
		SpeedStep:           g.settings.FormationSpeedStep,
		DropSpeed:           g.settings.FormationDropSpeed,
		ShotProbability:     g.settings.ShotProbability,
		ShotProbabilityStep: g.settings.ShotProbabilityStep,
		Debug:               g.settings.Debug,
	})
	for _, row := range g.level.Rows {
		g.formation.AddRow(row.Count, row.HitPoints, mask.MustSprite(row.Sprite), config.EnemyRowColors[row.Color])
	}
	g.world.Spawn(g.formation)

	bunkers := g.level.Bunkers
	if bunkers.Count > 0 {
		template := mask.MustSprite(bunkers.Sprite)
		for i := 1; i <= bunkers.Count; i++ {
			x := w/float64(bunkers.Count+1)*float64(i) - float64(template.Width())/2
			g.world.Spawn(entity.NewBunker(component.Vector2D{X: x, Y: h - bunkers.BottomOffset}, template))
		}
	}

	g.Dispatch(event.Event{Type: event.RoundStarted, Data: event.Round{ID: g.roundID, Number: g.round, Seed: g.rng.Seed()}})
}

// Update advances the simulation by dt seconds. Front-ends must keep dt
// bounded (see loop.Stepper).
func (g *Game) Update(dt float64) {
	g.world.Merge()

	if g.state == component.Play {
		g.elapsed += dt
		for _, e := range g.world.Live() {
			e.Update(g, dt)
		}
	}

	g.world.Prune()

	if g.keys.Contains(input.KeyPause) {
		switch g.state {
		case component.Play:
			g.setState(component.Pause)
		case component.Pause:
			g.setState(component.Play)
		}
	}
	g.keys.Remove(input.KeyPause)

	if !g.state.Terminal() {
		if !g.player.IsAlive() {
			g.setState(component.Lost)
		} else if !g.formation.IsAlive() {
			g.setState(component.Win)
		}
	}

	if g.state.Terminal() {
		g.terminalTicks++
		if g.RestartReady() && g.keys.Contains(input.KeyFire) {
			g.keys.Remove(input.KeyFire)
			g.Start()
			return
		}
	}
	g.keys.Remove(input.KeyFire)
}

func (g *Game) setState(to component.GameState) {
	from := g.state
	g.state = to
	g.Dispatch(event.Event{Type: event.StateChanged, Data: event.StateChange{From: from, To: to}})
	if to.Terminal() {
		g.logger.Info("round finished",
			"round", g.roundID,
			"result", to.String(),
			"elapsed", g.elapsed,
			"kills", g.kills,
			"hit_points", g.PlayerHitPoints(),
			"stars", g.Stars(),
		)
	}
}

// Draw paints the field, the HUD and the round overlay. It does not mutate
// the simulation.
func (g *Game) Draw(dst render.Surface) {
	dst.Clear(config.BackgroundColor)
	for _, e := range g.world.Live() {
		e.Draw(dst)
	}
	g.health.Draw(dst, g.PlayerHitPoints(), g.PlayerMaxHitPoints())
	g.overlay.Draw(dst, ui.RoundStatus{
		State:         g.state,
		TerminalTicks: g.terminalTicks,
		Elapsed:       g.elapsed,
		Stars:         g.Stars(),
		RestartReady:  g.RestartReady(),
	})
}

func (g *Game) State() component.GameState { return g.state }
func (g *Game) PlayerHitPoints() int       { return max(0, g.player.HitPoints()) }
func (g *Game) PlayerMaxHitPoints() int    { return g.player.MaxHitPoints() }

// ElapsedPlayTime is the simulated time spent in Play this round, in seconds.
func (g *Game) ElapsedPlayTime() float64 { return g.elapsed }

// Entities returns a snapshot of the live entities in update order.
func (g *Game) Entities() []entity.Entity { return slices.Clone(g.world.Live()) }

// Stars is the victory rating; zero unless the round was won.
func (g *Game) Stars() int {
	if g.state != component.Win {
		return 0
	}
	return ui.Rate(g.elapsed, g.PlayerHitPoints())
}

// RestartReady reports whether the restart key is accepted yet.
func (g *Game) RestartReady() bool {
	switch g.state {
	case component.Win:
		return g.terminalTicks > config.WinRestartDelay
	case component.Lost:
		return g.terminalTicks > config.LostRestartDelay
	}
	return false
}

func (g *Game) TerminalTicks() int           { return g.terminalTicks }
func (g *Game) Round() int                   { return g.round }
func (g *Game) RoundID() string              { return g.roundID }
func (g *Game) Kills() int                   { return g.kills }
func (g *Game) Formation() *entity.Formation { return g.formation }

// entity.Context

func (g *Game) Keys() interfaces.KeyState             { return g.keys }
func (g *Game) PlayArea() component.Rect              { return g.area }
func (g *Game) Settings() *config.Settings            { return &g.settings }
func (g *Game) Rng() *utils.PRNGService               { return g.rng }
func (g *Game) Player() *entity.PlayerShip            { return g.player }
func (g *Game) Live() []entity.Entity                 { return g.world.Live() }
func (g *Game) Spawn(e entity.Entity) entity.EntityID { return g.world.Spawn(e) }
func (g *Game) Dispatch(e event.Event)                { g.EventDispatcher.Dispatch(e) }
