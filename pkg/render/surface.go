// pkg/render/surface.go
package render

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/mask"
	"image/color"
)

// TextSize selects one of the three font sizes the game uses.
type TextSize int

const (
	TextSmall  TextSize = iota // HUD labels
	TextMedium                 // stats and prompts
	TextLarge                  // banners
)

// Points returns the nominal font size in points.
func (s TextSize) Points() float64 {
	switch s {
	case TextMedium:
		return 24
	case TextLarge:
		return 32
	}
	return 16
}

// Surface is everything the simulation needs from a renderer. Coordinates are
// play-area pixels with the origin at the top-left corner; text is positioned
// by the top-left of its bounding box.
type Surface interface {
	Size() (w, h int)
	Clear(c color.Color)
	DrawMask(m mask.Mask, x, y float64, tint color.Color)
	FillRect(r component.Rect, c color.Color)
	StrokeRect(r component.Rect, width float64, c color.Color)
	DrawText(s string, x, y float64, size TextSize, c color.Color)
	MeasureText(s string, size TextSize) float64
	FillPolygon(points []component.Vector2D, fill, stroke color.Color)
}

// DrawTextCentered draws s horizontally centred on cx.
func DrawTextCentered(dst Surface, s string, cx, y float64, size TextSize, c color.Color) {
	w := dst.MeasureText(s, size)
	dst.DrawText(s, cx-w/2, y, size, c)
}
