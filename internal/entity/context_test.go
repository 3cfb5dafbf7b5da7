package entity

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/mask"
	"go-space-invaders/internal/utils"
	"image/color"
)

type testContext struct {
	keys     *input.KeySet
	area     component.Rect
	settings config.Settings
	rng      *utils.PRNGService
	player   *PlayerShip
	world    *World
	events   []event.Event
}

func newTestContext() *testContext {
	return &testContext{
		keys:     input.NewKeySet(),
		area:     component.Rect{W: config.ScreenWidth, H: config.ScreenHeight},
		settings: config.DefaultSettings(),
		rng:      utils.NewPRNGService(1),
		world:    NewWorld(),
	}
}

func (c *testContext) Keys() interfaces.KeyState  { return c.keys }
func (c *testContext) PlayArea() component.Rect   { return c.area }
func (c *testContext) Settings() *config.Settings { return &c.settings }
func (c *testContext) Rng() *utils.PRNGService    { return c.rng }
func (c *testContext) Player() *PlayerShip        { return c.player }
func (c *testContext) Live() []Entity             { return c.world.Live() }
func (c *testContext) Spawn(e Entity) EntityID    { return c.world.Spawn(e) }
func (c *testContext) Dispatch(e event.Event)     { c.events = append(c.events, e) }

func (c *testContext) count(t event.EventType) int {
	n := 0
	for _, e := range c.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// solidMask returns a fully opaque w×h mask.
func solidMask(w, h int) *mask.Alpha {
	m := mask.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Fill(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return m
}
