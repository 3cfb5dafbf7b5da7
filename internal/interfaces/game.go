// internal/interfaces/game.go
package interfaces

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/pkg/render"
)

// Simulation is what a front-end drives: bounded update slices and a draw
// per frame.
type Simulation interface {
	Update(dt float64)
	Draw(dst render.Surface)
	State() component.GameState
}
