// pkg/render/recorder.go
package render

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/mask"
	"image/color"
)

// Op is one call captured by Recorder.
type Op struct {
	Kind   string // clear, mask, fill, stroke, text, polygon
	Mask   mask.Mask
	Rect   component.Rect
	Text   string
	Size   TextSize
	Points int
	Color  color.Color
}

// Recorder is a headless Surface that remembers every call in order.
// Text is measured as a fixed number of pixels per rune.
type Recorder struct {
	W, H int
	Ops  []Op
}

var _ Surface = (*Recorder)(nil)

func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "clear", Color: c})
}

func (r *Recorder) DrawMask(m mask.Mask, x, y float64, tint color.Color) {
	r.Ops = append(r.Ops, Op{
		Kind:  "mask",
		Mask:  m,
		Rect:  component.Rect{X: x, Y: y, W: float64(m.Width()), H: float64(m.Height())},
		Color: tint,
	})
}

func (r *Recorder) FillRect(rect component.Rect, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill", Rect: rect, Color: c})
}

func (r *Recorder) StrokeRect(rect component.Rect, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke", Rect: rect, Color: c})
}

func (r *Recorder) DrawText(s string, x, y float64, size TextSize, c color.Color) {
	r.Ops = append(r.Ops, Op{
		Kind:  "text",
		Text:  s,
		Size:  size,
		Rect:  component.Rect{X: x, Y: y, W: r.MeasureText(s, size), H: size.Points()},
		Color: c,
	})
}

func (r *Recorder) MeasureText(s string, size TextSize) float64 {
	return float64(len([]rune(s))) * size.Points() * 0.6
}

func (r *Recorder) FillPolygon(points []component.Vector2D, fill, stroke color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "polygon", Points: len(points), Color: fill})
}

// Texts returns the strings drawn so far, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops the recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
