// pkg/render/star.go
package render

import (
	"go-space-invaders/internal/component"
	"math"
)

// StarPoints returns the ten vertices of a five-pointed star, starting at the
// top point and going clockwise.
func StarPoints(origin component.Vector2D, outer, inner float64) []component.Vector2D {
	const ang36 = math.Pi / 5
	const ang72 = 2 * ang36
	sin36, cos36 := math.Sin(ang36), math.Cos(ang36)
	sin72, cos72 := math.Sin(ang72), math.Cos(ang72)

	pts := make([]component.Vector2D, 10)
	pts[0] = component.Vector2D{X: origin.X, Y: origin.Y - outer}
	pts[1] = component.Vector2D{X: origin.X + inner*sin36, Y: origin.Y - inner*cos36}
	pts[2] = component.Vector2D{X: origin.X + outer*sin72, Y: origin.Y - outer*cos72}
	pts[3] = component.Vector2D{X: origin.X + inner*sin72, Y: origin.Y + inner*cos72}
	pts[4] = component.Vector2D{X: origin.X + outer*sin36, Y: origin.Y + outer*cos36}
	pts[5] = component.Vector2D{X: origin.X, Y: origin.Y + inner}
	// левая половина: зеркало правой
	for i := 6; i < 10; i++ {
		m := pts[10-i]
		pts[i] = component.Vector2D{X: 2*origin.X - m.X, Y: m.Y}
	}
	return pts
}
