// internal/entity/bunker.go
package entity

import (
	"go-space-invaders/internal/collision"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/mask"
	"image"
)

// Bunker is a neutral barrier that loses the pixels missiles hit. It never
// dies; a fully eroded bunker simply has nothing left to hit.
type Bunker struct {
	sprite
	solid int
	last  int
}

// NewBunker erodes its own copy of template, so bunkers can share one.
func NewBunker(pos component.Vector2D, template *mask.Alpha) *Bunker {
	m := template.Clone()
	return &Bunker{
		sprite: sprite{
			pos:       pos,
			mask:      m,
			hitPoints: 1,
			faction:   component.Neutral,
			tint:      config.BunkerColor,
		},
		solid: m.OpaqueCount(),
	}
}

// Solid returns the number of opaque pixels left.
func (b *Bunker) Solid() int { return b.solid }

func (b *Bunker) Update(Context, float64) {}

func (b *Bunker) OnMissileOverlap(ctx Context, m *Missile) {
	if collision.Resolve(b, m) {
		ctx.Dispatch(event.Event{Type: event.BunkerEroded, Data: event.Erosion{Pixels: b.last, Remaining: b.solid}})
	}
}

func (b *Bunker) Accepts(p collision.Projectile) bool {
	return p.Faction() != component.Neutral
}

func (b *Bunker) OnPixelsHit(p collision.Projectile, pixels []image.Point) {
	for _, px := range pixels {
		b.mask.SetAlpha(px.X, px.Y, 0)
	}
	b.last = len(pixels)
	b.solid -= len(pixels)
	if m, ok := p.(*Missile); ok {
		m.hitPoints -= len(pixels)
	}
}
