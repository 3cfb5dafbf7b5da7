// internal/component/movement.go
package component

// Vector2D: точка или смещение на плоскости. Сущности двигаются, меняя поля на месте.
type Vector2D struct {
	X, Y float64
}

// Add сдвигает вектор на dx, dy.
func (v *Vector2D) Add(dx, dy float64) {
	v.X += dx
	v.Y += dy
}

// Rect is an axis-aligned box in play-area pixels.
type Rect struct {
	X, Y, W, H float64
}

// RectAt builds the box of a w×h sprite whose top-left corner is at pos.
func RectAt(pos Vector2D, w, h int) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: float64(w), H: float64(h)}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Intersects reports whether the two boxes share any area. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Union returns the smallest box containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x0 := min(r.X, o.X)
	y0 := min(r.Y, o.Y)
	x1 := max(r.Right(), o.Right())
	y1 := max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
