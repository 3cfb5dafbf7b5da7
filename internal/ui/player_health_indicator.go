// internal/ui/player_health_indicator.go
package ui

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/pkg/render"
	"image/color"
)

// PixelsPerHitPoint is the length of the health bar per hit point.
const PixelsPerHitPoint = 2.0

// PlayerHealthIndicator отображает здоровье игрока полосой под полем.
type PlayerHealthIndicator struct {
	Label     component.Vector2D
	Bar       component.Vector2D
	Thickness float64
}

func NewPlayerHealthIndicator(screenHeight int) *PlayerHealthIndicator {
	h := float64(screenHeight)
	return &PlayerHealthIndicator{
		Label:     component.Vector2D{X: config.HealthLabelX, Y: h - config.HealthLabelOffsetY},
		Bar:       component.Vector2D{X: config.HealthBarX, Y: h - config.HealthBarOffsetY},
		Thickness: config.HealthBarThickness,
	}
}

// Draw рисует подпись и полосу; пустая полоса не рисуется.
func (i *PlayerHealthIndicator) Draw(dst render.Surface, health, maxHealth int) {
	dst.DrawText("LIFE", i.Label.X, i.Label.Y, render.TextSmall, config.TextColor)
	if health <= 0 {
		return
	}
	bar := component.Rect{
		X: i.Bar.X,
		Y: i.Bar.Y,
		W: float64(health) * PixelsPerHitPoint,
		H: i.Thickness,
	}
	dst.FillRect(bar, HealthColor(health, maxHealth))
}

// HealthColor is green above 40% of maxHealth, yellow above 15%, red below.
func HealthColor(health, maxHealth int) color.RGBA {
	if maxHealth <= 0 {
		return config.HealthLowColor
	}
	ratio := float64(health) / float64(maxHealth)
	switch {
	case ratio > 0.4:
		return config.HealthHighColor
	case ratio > 0.15:
		return config.HealthMediumColor
	}
	return config.HealthLowColor
}
