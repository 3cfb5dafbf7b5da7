// internal/state/game_state.go
package state

import (
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/loop"
	"go-space-invaders/pkg/render"
)

// GameState: экран игры: клавиатура, нарезка времени и симуляция
type GameState struct {
	sim     interfaces.Simulation
	keys    *input.KeySet
	kb      Keyboard
	stepper *loop.Stepper
	ticks   int
}

var _ State = (*GameState)(nil)

func NewGameState(sim interfaces.Simulation, keys *input.KeySet, kb Keyboard, stepper *loop.Stepper) *GameState {
	return &GameState{sim: sim, keys: keys, kb: kb, stepper: stepper}
}

// Enter drops keys still held from the title screen.
func (g *GameState) Enter() {
	g.keys.Clear()
}

func (g *GameState) Update(deltaTime float64) {
	FeedKeys(g.kb, g.keys)
	g.ticks += g.stepper.Advance(g.sim, deltaTime)
}

func (g *GameState) Draw(dst render.Surface) {
	g.sim.Draw(dst)
}

func (g *GameState) Exit() {}

// Ticks returns the number of simulation slices run so far.
func (g *GameState) Ticks() int { return g.ticks }
