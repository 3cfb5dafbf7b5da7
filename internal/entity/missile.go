// internal/entity/missile.go
package entity

import (
	"go-space-invaders/internal/collision"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/mask"
	"image"
)

var missileMask = mask.MustSprite(mask.SpriteMissile)

// Missile flies straight up (Ally) or down (Enemy) until it leaves the play
// area or spends its hit points.
type Missile struct {
	sprite
	speed float64
}

func NewMissile(pos component.Vector2D, faction component.Faction, hitPoints int, speed float64) *Missile {
	tint := config.EnemyMissileColor
	if faction == component.Ally {
		tint = config.AllyMissileColor
	}
	return &Missile{
		sprite: sprite{
			pos:       pos,
			mask:      missileMask,
			hitPoints: hitPoints,
			faction:   faction,
			tint:      tint,
		},
		speed: speed,
	}
}

// MissileSize returns the width and height of every missile.
func MissileSize() (int, int) {
	return missileMask.Width(), missileMask.Height()
}

func (m *Missile) Update(ctx Context, dt float64) {
	if !m.IsAlive() {
		return
	}
	m.pos.Y += m.faction.Heading() * m.speed * dt

	area := ctx.PlayArea()
	if m.pos.Y+float64(m.mask.Height()) < area.Y || m.pos.Y > area.Bottom() {
		m.hitPoints = 0
		return
	}
	for _, e := range ctx.Live() {
		if !m.IsAlive() {
			break
		}
		e.OnMissileOverlap(ctx, m)
	}
}

// OnMissileOverlap lets opposing missiles shoot each other down.
func (m *Missile) OnMissileOverlap(ctx Context, other *Missile) {
	if !m.IsAlive() {
		return
	}
	collision.Resolve(m, other)
}

func (m *Missile) Accepts(p collision.Projectile) bool {
	f := p.Faction()
	return f != component.Neutral && m.faction != component.Neutral && f != m.faction
}

func (m *Missile) OnPixelsHit(p collision.Projectile, _ []image.Point) {
	if other, ok := p.(*Missile); ok {
		trade(&m.sprite, &other.sprite)
	}
}
