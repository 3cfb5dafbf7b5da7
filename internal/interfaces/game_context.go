// internal/interfaces/game_context.go
package interfaces

import "go-space-invaders/internal/input"

// KeyState is the view of the held keys the simulation reads each tick.
type KeyState interface {
	Contains(k input.Key) bool
	Remove(k input.Key)
}
