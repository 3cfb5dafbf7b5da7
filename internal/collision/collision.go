// internal/collision/collision.go
package collision

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/mask"
	"image"
	"math"
)

// Projectile is the moving side of a collision. Only its bounding box takes
// part in the overlap test; its own alpha is never sampled.
type Projectile interface {
	Bounds() component.Rect
	IsAlive() bool
	Faction() component.Faction
}

// Target is the stationary side: its mask decides which pixels are solid.
type Target interface {
	Bounds() component.Rect
	Mask() mask.Mask
	// Accepts applies the faction rule of the target.
	Accepts(p Projectile) bool
	// OnPixelsHit receives every solid pixel (mask coordinates) inside the projectile box.
	OnPixelsHit(p Projectile, pixels []image.Point)
}

// Resolve runs the full test for one (target, projectile) pair and calls
// OnPixelsHit at most once. It reports whether the handler ran.
func Resolve(t Target, p Projectile) bool {
	if t == nil || p == nil || !p.IsAlive() {
		return false
	}
	if tp, ok := t.(Projectile); ok && tp == p {
		return false
	}
	if !t.Accepts(p) {
		return false
	}
	// дешёвая проверка прямоугольников обязательна до попиксельной
	if !t.Bounds().Intersects(p.Bounds()) {
		return false
	}
	pixels := Overlap(t.Mask(), t.Bounds(), p.Bounds())
	if len(pixels) == 0 {
		return false
	}
	t.OnPixelsHit(p, pixels)
	return true
}

// Overlap returns the opaque pixels of m (placed with its top-left at at)
// whose world coordinate lies strictly inside box.
func Overlap(m mask.Mask, at, box component.Rect) []image.Point {
	if m == nil {
		return nil
	}
	// Clip the scan to the columns and rows that can possibly be inside box.
	x0 := max(0, int(math.Floor(box.X-at.X)))
	y0 := max(0, int(math.Floor(box.Y-at.Y)))
	x1 := min(m.Width(), int(math.Ceil(box.Right()-at.X))+1)
	y1 := min(m.Height(), int(math.Ceil(box.Bottom()-at.Y))+1)

	var pixels []image.Point
	for x := x0; x < x1; x++ {
		px := at.X + float64(x)
		if !(box.X < px && box.Right() > px) {
			continue
		}
		for y := y0; y < y1; y++ {
			py := at.Y + float64(y)
			if !(box.Y < py && box.Bottom() > py) {
				continue
			}
			if m.AlphaAt(x, y) == mask.Opaque {
				pixels = append(pixels, image.Point{X: x, Y: y})
			}
		}
	}
	return pixels
}
