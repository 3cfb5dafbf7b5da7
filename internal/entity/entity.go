// internal/entity/entity.go
package entity

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/mask"
	"go-space-invaders/internal/utils"
	"go-space-invaders/pkg/render"
	"image/color"
)

type EntityID uint64

// Context is the part of the simulation an entity may touch during its
// update. Spawned entities only become live on the next tick.
type Context interface {
	Keys() interfaces.KeyState
	PlayArea() component.Rect
	Settings() *config.Settings
	Rng() *utils.PRNGService
	Player() *PlayerShip
	Live() []Entity
	Spawn(e Entity) EntityID
	Dispatch(e event.Event)
}

// Entity is anything the simulation updates, draws and sweeps.
type Entity interface {
	ID() EntityID
	Update(ctx Context, dt float64)
	Draw(dst render.Surface)
	IsAlive() bool
	// OnMissileOverlap runs the collision test against m and applies damage.
	OnMissileOverlap(ctx Context, m *Missile)
	assign(id EntityID)
}

type identity struct {
	id EntityID
}

func (i *identity) ID() EntityID       { return i.id }
func (i *identity) assign(id EntityID) { i.id = id }

// sprite is the state shared by every mask-backed entity.
type sprite struct {
	identity
	pos       component.Vector2D
	mask      mask.Mask
	hitPoints int
	faction   component.Faction
	tint      color.Color
}

func (s *sprite) Position() component.Vector2D { return s.pos }
func (s *sprite) Mask() mask.Mask              { return s.mask }
func (s *sprite) HitPoints() int               { return s.hitPoints }
func (s *sprite) IsAlive() bool                { return s.hitPoints > 0 }
func (s *sprite) Faction() component.Faction   { return s.faction }

func (s *sprite) Bounds() component.Rect {
	return component.RectAt(s.pos, s.mask.Width(), s.mask.Height())
}

func (s *sprite) Draw(dst render.Surface) {
	if !s.IsAlive() {
		return
	}
	dst.DrawMask(s.mask, s.pos.X, s.pos.Y, s.tint)
}

// trade subtracts the smaller hit-point pool from both sides.
func trade(a, b *sprite) {
	d := min(a.hitPoints, b.hitPoints)
	a.hitPoints -= d
	b.hitPoints -= d
}
