// internal/ui/star_rating.go
package ui

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/pkg/render"
)

// StarRating draws the victory score as a row of stars.
type StarRating struct {
	Origin  component.Vector2D
	Spacing float64
	Count   int
}

func NewStarRating() *StarRating {
	return &StarRating{
		Origin:  component.Vector2D{X: config.StarOriginX, Y: config.StarOriginY},
		Spacing: config.StarSpacing,
		Count:   config.StarCount,
	}
}

// Draw fills the first earned stars and outlines the rest.
func (s *StarRating) Draw(dst render.Surface, earned int) {
	for i := 0; i < s.Count; i++ {
		center := component.Vector2D{X: s.Origin.X + s.Spacing*float64(i), Y: s.Origin.Y}
		fill := config.StarEmptyColor
		if i < earned {
			fill = config.StarFilledColor
		}
		dst.FillPolygon(render.StarPoints(center, config.StarOuterRadius, config.StarInnerRadius), fill, config.StarStrokeColor)
	}
}

// Rate returns the stars earned for finishing in elapsed seconds with hp left.
func Rate(elapsed float64, hp int) int {
	for _, rule := range config.StarRules {
		if elapsed < rule.UnderSeconds && hp >= rule.MinHitPoints {
			return rule.Stars
		}
	}
	return 0
}
