package entity

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/mask"
	"image/color"
	"testing"
)

func TestShipMissileMutualDamage(t *testing.T) {
	tests := []struct {
		name              string
		shipHP, missileHP int
		wantShip, wantMis int
	}{
		{"missile stronger", 10, 15, 0, 5},
		{"ship stronger", 15, 10, 5, 0},
		{"even", 20, 20, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext()
			ship := NewShip(component.Vector2D{}, solidMask(10, 10), tt.shipHP, component.Enemy, color.White)
			m := NewMissile(component.Vector2D{X: 4, Y: 4}, component.Ally, tt.missileHP, 200)

			ship.OnMissileOverlap(ctx, m)

			if ship.HitPoints() != tt.wantShip {
				t.Errorf("Expected ship HP %d, got %d", tt.wantShip, ship.HitPoints())
			}
			if m.HitPoints() != tt.wantMis {
				t.Errorf("Expected missile HP %d, got %d", tt.wantMis, m.HitPoints())
			}
			wantKills := 0
			if tt.wantShip == 0 {
				wantKills = 1
			}
			if got := ctx.count(event.ShipDestroyed); got != wantKills {
				t.Errorf("Expected %d ShipDestroyed events, got %d", wantKills, got)
			}
		})
	}
}

func TestShipIgnoresOwnFaction(t *testing.T) {
	ctx := newTestContext()
	ship := NewShip(component.Vector2D{}, solidMask(10, 10), 10, component.Ally, color.White)
	m := NewMissile(component.Vector2D{X: 4, Y: 4}, component.Ally, 15, 200)

	ship.OnMissileOverlap(ctx, m)

	if ship.HitPoints() != 10 || m.HitPoints() != 15 {
		t.Errorf("Expected no damage, got ship %d missile %d", ship.HitPoints(), m.HitPoints())
	}
}

func TestDeadShipAbsorbsNothing(t *testing.T) {
	ctx := newTestContext()
	ship := NewShip(component.Vector2D{}, solidMask(10, 10), 10, component.Enemy, color.White)
	first := NewMissile(component.Vector2D{X: 4, Y: 4}, component.Ally, 20, 200)
	second := NewMissile(component.Vector2D{X: 4, Y: 4}, component.Ally, 20, 200)

	ship.OnMissileOverlap(ctx, first)
	ship.OnMissileOverlap(ctx, second)

	if second.HitPoints() != 20 {
		t.Errorf("Expected second missile untouched, got %d", second.HitPoints())
	}
}

func TestBunkerErasesSinglePixel(t *testing.T) {
	ctx := newTestContext()
	m := mask.New(10, 10)
	m.Fill(5, 5, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	b := NewBunker(component.Vector2D{}, m)
	missile := NewMissile(component.Vector2D{X: 4, Y: 4}, component.Enemy, 20, 200)

	b.OnMissileOverlap(ctx, missile)

	if got := b.Mask().AlphaAt(5, 5); got != 0 {
		t.Errorf("Expected pixel erased, got alpha %d", got)
	}
	if missile.HitPoints() != 19 {
		t.Errorf("Expected missile HP 19, got %d", missile.HitPoints())
	}
	if b.Solid() != 0 {
		t.Errorf("Expected no solid pixels left, got %d", b.Solid())
	}
	if !b.IsAlive() {
		t.Error("Expected bunker to stay alive")
	}
	if got := ctx.count(event.BunkerEroded); got != 1 {
		t.Errorf("Expected 1 BunkerEroded event, got %d", got)
	}
}

func TestBunkersErodeIndependently(t *testing.T) {
	ctx := newTestContext()
	template := solidMask(10, 10)
	hit := NewBunker(component.Vector2D{}, template)
	spare := NewBunker(component.Vector2D{}, template)
	missile := NewMissile(component.Vector2D{X: 4, Y: 4}, component.Enemy, 20, 200)

	hit.OnMissileOverlap(ctx, missile)

	if hit.Solid() >= 100 {
		t.Fatalf("Expected the hit bunker to lose pixels, still %d", hit.Solid())
	}
	if spare.Solid() != 100 || spare.Mask().AlphaAt(5, 5) != mask.Opaque {
		t.Errorf("Expected the other bunker untouched, got %d solid", spare.Solid())
	}
	if template.AlphaAt(5, 5) != mask.Opaque {
		t.Error("Expected the shared template untouched")
	}
}

func TestBunkerTransparentOverlap(t *testing.T) {
	ctx := newTestContext()
	m := mask.New(10, 10)
	m.Fill(0, 0, color.NRGBA{A: 255})
	b := NewBunker(component.Vector2D{}, m)
	missile := NewMissile(component.Vector2D{X: 4, Y: 4}, component.Ally, 20, 200)

	b.OnMissileOverlap(ctx, missile)

	if missile.HitPoints() != 20 {
		t.Errorf("Expected missile HP 20, got %d", missile.HitPoints())
	}
	if len(ctx.events) != 0 {
		t.Errorf("Expected no events, got %d", len(ctx.events))
	}
}

func TestMissileLeavesPlayArea(t *testing.T) {
	ctx := newTestContext()
	m := NewMissile(component.Vector2D{X: 100, Y: -5}, component.Ally, 20, 200)

	m.Update(ctx, 0.05)
	if m.IsAlive() {
		t.Fatalf("Expected missile to die above the play area, at y=%v", m.Position().Y)
	}

	down := NewMissile(component.Vector2D{X: 100, Y: ctx.area.Bottom() - 1}, component.Enemy, 20, 200)
	down.Update(ctx, 0.05)
	if down.IsAlive() {
		t.Error("Expected missile to die below the play area")
	}
}

func TestMissileHitsTargetsAfterMoving(t *testing.T) {
	ctx := newTestContext()
	ship := NewShip(component.Vector2D{X: 100, Y: 100}, solidMask(20, 20), 10, component.Enemy, color.White)
	ctx.Spawn(ship)
	m := NewMissile(component.Vector2D{X: 105, Y: 125}, component.Ally, 20, 200)
	ctx.Spawn(m)
	ctx.world.Merge()

	// 200 px/s * 0.05 s = 10 px up, into the ship
	m.Update(ctx, 0.05)

	if ship.IsAlive() {
		t.Error("Expected ship to be destroyed")
	}
	if m.HitPoints() != 10 {
		t.Errorf("Expected missile HP 10, got %d", m.HitPoints())
	}
}

func TestOpposingMissilesCancel(t *testing.T) {
	ctx := newTestContext()
	up := NewMissile(component.Vector2D{X: 100, Y: 100}, component.Ally, 20, 200)
	down := NewMissile(component.Vector2D{X: 100, Y: 95}, component.Enemy, 20, 200)
	ctx.Spawn(up)
	ctx.Spawn(down)
	ctx.world.Merge()

	up.Update(ctx, 0.001)

	if up.IsAlive() || down.IsAlive() {
		t.Errorf("Expected both missiles destroyed, got %d and %d", up.HitPoints(), down.HitPoints())
	}
}

func TestShipSingleOutstandingMissile(t *testing.T) {
	ctx := newTestContext()
	ship := NewShip(component.Vector2D{X: 50, Y: 50}, solidMask(10, 10), 10, component.Enemy, color.White)

	if !ship.Shoot(ctx) {
		t.Fatal("Expected first shot to be fired")
	}
	if ship.Shoot(ctx) {
		t.Error("Expected second shot to be refused")
	}
	if ctx.world.Pending() != 1 {
		t.Errorf("Expected 1 pending missile, got %d", ctx.world.Pending())
	}
	m := ship.Missile()
	if m.Position().Y != 60 {
		t.Errorf("Expected enemy missile below the ship at y=60, got %v", m.Position().Y)
	}

	m.hitPoints = 0
	if !ship.Shoot(ctx) {
		t.Error("Expected a new shot once the previous missile died")
	}
}

func TestPlayerShipMovesAndClamps(t *testing.T) {
	ctx := newTestContext()
	p := NewPlayerShip(component.Vector2D{X: 100, Y: 500}, solidMask(39, 24), 120, 300)

	ctx.keys.Press(input.KeyRight)
	p.Update(ctx, 0.125)
	if p.Position().X != 137.5 {
		t.Errorf("Expected x=137.5, got %v", p.Position().X)
	}

	ctx.keys.Release(input.KeyRight)
	ctx.keys.Press(input.KeyLeft)
	p.Update(ctx, 10)
	if p.Position().X != 0 {
		t.Errorf("Expected x clamped to 0, got %v", p.Position().X)
	}

	ctx.keys.Release(input.KeyLeft)
	ctx.keys.Press(input.KeyRight)
	p.Update(ctx, 10)
	if want := ctx.area.Right() - 39; p.Position().X != want {
		t.Errorf("Expected x clamped to %v, got %v", want, p.Position().X)
	}
}

func TestPlayerShipFires(t *testing.T) {
	ctx := newTestContext()
	p := NewPlayerShip(component.Vector2D{X: 100, Y: 500}, solidMask(39, 24), 120, 300)
	ctx.keys.Press(input.KeyFire)

	p.Update(ctx, 0.005)

	m := p.Missile()
	if m == nil {
		t.Fatal("Expected a missile")
	}
	if m.Faction() != component.Ally || m.HitPoints() != ctx.settings.MissileHitPoints {
		t.Errorf("Expected ally missile with %d HP, got %v with %d", ctx.settings.MissileHitPoints, m.Faction(), m.HitPoints())
	}
	_, h := MissileSize()
	if m.Position().Y != 500-float64(h) {
		t.Errorf("Expected missile above the ship, got y=%v", m.Position().Y)
	}
	if ctx.count(event.MissileFired) != 1 {
		t.Errorf("Expected 1 MissileFired event, got %d", ctx.count(event.MissileFired))
	}
}

func TestPlayerKill(t *testing.T) {
	p := NewPlayerShip(component.Vector2D{}, solidMask(3, 3), 120, 300)
	p.Kill()
	if p.IsAlive() {
		t.Error("Expected player to be dead")
	}
	if p.MaxHitPoints() != 120 {
		t.Errorf("Expected max HP 120, got %d", p.MaxHitPoints())
	}
}
