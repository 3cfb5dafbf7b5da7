// internal/entity/ship.go
package entity

import (
	"go-space-invaders/internal/collision"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/mask"
	"image"
	"image/color"
)

// Ship can have a single missile in flight at a time.
type Ship struct {
	sprite
	missile *Missile
}

func NewShip(pos component.Vector2D, m mask.Mask, hitPoints int, faction component.Faction, tint color.Color) *Ship {
	return &Ship{sprite: sprite{
		pos:       pos,
		mask:      m,
		hitPoints: hitPoints,
		faction:   faction,
		tint:      tint,
	}}
}

// Update is a no-op: enemy ships are moved by their formation.
func (s *Ship) Update(Context, float64) {}

// Shoot stages a new missile unless the previous one is still alive.
func (s *Ship) Shoot(ctx Context) bool {
	if !s.IsAlive() || (s.missile != nil && s.missile.IsAlive()) {
		return false
	}
	st := ctx.Settings()
	mw, mh := MissileSize()
	pos := component.Vector2D{X: s.pos.X + float64(s.mask.Width())/2 - float64(mw)/2}
	hp := st.EnemyMissileHitPoints
	if s.faction == component.Ally {
		pos.Y = s.pos.Y - float64(mh)
		hp = st.MissileHitPoints
	} else {
		pos.Y = s.pos.Y + float64(s.mask.Height())
	}
	s.missile = NewMissile(pos, s.faction, hp, st.MissileSpeed)
	ctx.Spawn(s.missile)
	ctx.Dispatch(event.Event{Type: event.MissileFired, Data: event.Shot{Faction: s.faction, Position: pos}})
	return true
}

// Kill destroys the ship outright, as when the formation reaches the
// player's row.
func (s *Ship) Kill() { s.hitPoints = 0 }

// Missile returns the last missile fired, if any.
func (s *Ship) Missile() *Missile { return s.missile }

func (s *Ship) OnMissileOverlap(ctx Context, m *Missile) {
	if !s.IsAlive() {
		return
	}
	if collision.Resolve(s, m) && !s.IsAlive() {
		ctx.Dispatch(event.Event{Type: event.ShipDestroyed, Data: event.Destroyed{Faction: s.faction, Position: s.pos}})
	}
}

func (s *Ship) Accepts(p collision.Projectile) bool {
	return p.Faction() != s.faction
}

func (s *Ship) OnPixelsHit(p collision.Projectile, _ []image.Point) {
	if m, ok := p.(*Missile); ok {
		trade(&s.sprite, &m.sprite)
	}
}
