// internal/entity/player.go
package entity

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/mask"
)

// PlayerShip is the ally ship steered by the key state.
type PlayerShip struct {
	Ship
	maxHitPoints int
	speed        float64
}

func NewPlayerShip(pos component.Vector2D, m mask.Mask, hitPoints int, speed float64) *PlayerShip {
	return &PlayerShip{
		Ship:         *NewShip(pos, m, hitPoints, component.Ally, config.PlayerColor),
		maxHitPoints: hitPoints,
		speed:        speed,
	}
}

func (p *PlayerShip) MaxHitPoints() int { return p.maxHitPoints }

func (p *PlayerShip) Update(ctx Context, dt float64) {
	if !p.IsAlive() {
		return
	}
	keys := ctx.Keys()
	dir := 0.0
	if keys.Contains(input.KeyLeft) {
		dir--
	}
	if keys.Contains(input.KeyRight) {
		dir++
	}
	area := ctx.PlayArea()
	p.pos.X += dir * p.speed * dt
	p.pos.X = max(area.X, min(p.pos.X, area.Right()-float64(p.mask.Width())))

	if keys.Contains(input.KeyFire) {
		p.Shoot(ctx)
	}
}
