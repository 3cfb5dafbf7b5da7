// internal/entity/formation.go
package entity

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/mask"
	"go-space-invaders/pkg/render"
	"image/color"
)

// Formation moves its ships as one block: sideways until a wall, then one
// step down, faster and more trigger-happy after every reversal.
type Formation struct {
	identity
	pos             component.Vector2D
	width, height   float64
	direction       int
	speed           float64
	speedStep       float64
	dropSpeed       float64
	shotProbability float64
	shotStep        float64
	members         []*Ship
	debug           bool
	breached        bool
}

// FormationParams are the motion knobs of a formation.
type FormationParams struct {
	Direction           int
	Speed               float64
	SpeedStep           float64
	DropSpeed           float64
	ShotProbability     float64
	ShotProbabilityStep float64
	Debug               bool
}

func NewFormation(pos component.Vector2D, width float64, p FormationParams) *Formation {
	dir := p.Direction
	if dir >= 0 {
		dir = 1
	} else {
		dir = -1
	}
	return &Formation{
		pos:             pos,
		width:           width,
		direction:       dir,
		speed:           p.Speed,
		speedStep:       p.SpeedStep,
		dropSpeed:       p.DropSpeed,
		shotProbability: p.ShotProbability,
		shotStep:        p.ShotProbabilityStep,
		debug:           p.Debug,
	}
}

// AddRow appends count ships centred in equal slots under the current rows.
func (f *Formation) AddRow(count, hitPoints int, m mask.Mask, tint color.Color) {
	if count <= 0 {
		return
	}
	slot := f.width / float64(count)
	y := f.pos.Y + f.height
	for i := 0; i < count; i++ {
		x := f.pos.X + slot*float64(i) + slot/2 - float64(m.Width())/2
		f.members = append(f.members, NewShip(component.Vector2D{X: x, Y: y}, m, hitPoints, component.Enemy, tint))
	}
	f.height += float64(m.Height())
}

func (f *Formation) Members() []*Ship { return f.members }

func (f *Formation) Bounds() component.Rect {
	return component.Rect{X: f.pos.X, Y: f.pos.Y, W: f.width, H: f.height}
}

func (f *Formation) Direction() int               { return f.direction }
func (f *Formation) Speed() float64               { return f.speed }
func (f *Formation) ShotProbability() float64     { return f.shotProbability }
func (f *Formation) Position() component.Vector2D { return f.pos }

// IsAlive is false as soon as the last ship dies, before the formation's
// own update gets to prune it.
func (f *Formation) IsAlive() bool {
	for _, s := range f.members {
		if s.IsAlive() {
			return true
		}
	}
	return false
}

func (f *Formation) Update(ctx Context, dt float64) {
	// корабли, сбитые на прошлом тике, убираем до движения
	f.prune()
	if len(f.members) == 0 {
		return
	}
	area := ctx.PlayArea()
	if (f.direction > 0 && f.pos.X+f.width >= area.Right()) || (f.direction < 0 && f.pos.X <= area.X) {
		f.reverse(ctx, dt)
	}

	dx := f.speed * dt * float64(f.direction)
	rng := ctx.Rng()
	for _, s := range f.members {
		if !s.IsAlive() {
			continue
		}
		s.pos.X += dx
		if rng.Chance(f.shotProbability * dt) {
			s.Shoot(ctx)
		}
	}
	f.pos.X += dx
	f.recompute()

	if player := ctx.Player(); player != nil && player.IsAlive() && f.pos.Y+f.height >= player.pos.Y {
		player.Kill()
		if !f.breached {
			f.breached = true
			ctx.Dispatch(event.Event{Type: event.FormationBreached, Data: f.Bounds()})
		}
	}
}

func (f *Formation) reverse(ctx Context, dt float64) {
	f.direction = -f.direction
	drop := f.dropSpeed * dt
	f.pos.Y += drop
	for _, s := range f.members {
		s.pos.Y += drop
	}
	f.speed += f.speedStep
	f.shotProbability += f.shotStep
	ctx.Dispatch(event.Event{Type: event.FormationReversed, Data: event.Reversal{
		Direction:       f.direction,
		Speed:           f.speed,
		ShotProbability: f.shotProbability,
	}})
}

func (f *Formation) prune() {
	alive := f.members[:0]
	for _, s := range f.members {
		if s.IsAlive() {
			alive = append(alive, s)
		}
	}
	for i := len(alive); i < len(f.members); i++ {
		f.members[i] = nil
	}
	f.members = alive
}

// recompute shrinks the box to the surviving ships; with none left the box
// keeps its last value.
func (f *Formation) recompute() {
	if len(f.members) == 0 {
		return
	}
	box := f.members[0].Bounds()
	for _, s := range f.members[1:] {
		box = box.Union(s.Bounds())
	}
	f.pos = component.Vector2D{X: box.X, Y: box.Y}
	f.width, f.height = box.W, box.H
}

func (f *Formation) OnMissileOverlap(ctx Context, m *Missile) {
	if !f.Bounds().Intersects(m.Bounds()) {
		return
	}
	for _, s := range f.members {
		if !m.IsAlive() {
			return
		}
		s.OnMissileOverlap(ctx, m)
	}
}

func (f *Formation) Draw(dst render.Surface) {
	for _, s := range f.members {
		s.Draw(dst)
	}
	if f.debug && len(f.members) > 0 {
		dst.StrokeRect(f.Bounds(), config.FormationOutlineWidth, config.FormationBoxColor)
	}
}
