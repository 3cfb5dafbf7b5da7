// internal/tty/surface.go
package tty

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/mask"
	"go-space-invaders/pkg/render"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// upper half block: foreground paints the top pixel, background the bottom
const halfBlock = '▀'

type textRun struct {
	col, row int
	text     string
	c        color.NRGBA
}

// Surface renders the play area into terminal cells. Every cell holds two
// vertically stacked pixels of a downscaled framebuffer.
type Surface struct {
	screen        tcell.Screen
	width, height int
	cols, rows    int
	sx, sy        float64 // play-area pixels per framebuffer pixel
	fb            []color.NRGBA
	texts         []textRun
}

var _ render.Surface = (*Surface)(nil)

// NewSurface maps a width×height play area onto the whole screen.
func NewSurface(screen tcell.Screen, width, height int) *Surface {
	s := &Surface{screen: screen, width: width, height: height}
	s.Resize()
	return s
}

// Resize re-reads the terminal size; call it on tcell resize events.
func (s *Surface) Resize() {
	cols, rows := s.screen.Size()
	s.cols, s.rows = max(cols, 1), max(rows, 1)
	s.sx = float64(s.width) / float64(s.cols)
	s.sy = float64(s.height) / float64(s.rows*2)
	s.fb = make([]color.NRGBA, s.cols*s.rows*2)
	s.texts = s.texts[:0]
}

func (s *Surface) Size() (int, int) { return s.width, s.height }

// Pixel returns the framebuffer colour at framebuffer coordinates.
func (s *Surface) Pixel(fx, fy int) color.NRGBA {
	if fx < 0 || fy < 0 || fx >= s.cols || fy >= s.rows*2 {
		return color.NRGBA{}
	}
	return s.fb[fy*s.cols+fx]
}

func (s *Surface) blend(fx, fy int, src color.NRGBA) {
	if fx < 0 || fy < 0 || fx >= s.cols || fy >= s.rows*2 || src.A == 0 {
		return
	}
	i := fy*s.cols + fx
	if src.A == 255 {
		s.fb[i] = src
		return
	}
	dst := s.fb[i]
	a := uint32(src.A)
	mix := func(d, c uint8) uint8 { return uint8((uint32(c)*a + uint32(d)*(255-a)) / 255) }
	s.fb[i] = color.NRGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}

func (s *Surface) Clear(c color.Color) {
	n := render.ToNRGBA(c)
	n.A = 255
	for i := range s.fb {
		s.fb[i] = n
	}
	s.texts = s.texts[:0]
}

func (s *Surface) DrawMask(m mask.Mask, x, y float64, tint color.Color) {
	t := render.ToNRGBA(tint)
	for py := 0; py < m.Height(); py++ {
		for px := 0; px < m.Width(); px++ {
			a := m.AlphaAt(px, py)
			if a < 128 {
				continue
			}
			c := render.Tint(color.NRGBA{R: 255, G: 255, B: 255, A: a}, t)
			s.blend(int((x+float64(px))/s.sx), int((y+float64(py))/s.sy), c)
		}
	}
}

// cells returns the framebuffer span covered by r.
func (s *Surface) cells(r component.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X / s.sx))
	y0 = int(math.Floor(r.Y / s.sy))
	x1 = max(x0+1, int(math.Ceil(r.Right()/s.sx)))
	y1 = max(y0+1, int(math.Ceil(r.Bottom()/s.sy)))
	return
}

func (s *Surface) FillRect(r component.Rect, c color.Color) {
	n := render.ToNRGBA(c)
	x0, y0, x1, y1 := s.cells(r)
	for fy := y0; fy < y1; fy++ {
		for fx := x0; fx < x1; fx++ {
			s.blend(fx, fy, n)
		}
	}
}

func (s *Surface) StrokeRect(r component.Rect, _ float64, c color.Color) {
	n := render.ToNRGBA(c)
	x0, y0, x1, y1 := s.cells(r)
	for fx := x0; fx < x1; fx++ {
		s.blend(fx, y0, n)
		s.blend(fx, y1-1, n)
	}
	for fy := y0 + 1; fy < y1-1; fy++ {
		s.blend(x0, fy, n)
		s.blend(x1-1, fy, n)
	}
}

func (s *Surface) DrawText(str string, x, y float64, _ render.TextSize, c color.Color) {
	s.texts = append(s.texts, textRun{
		col:  int(math.Round(x / s.sx)),
		row:  int(y / (s.sy * 2)),
		text: str,
		c:    render.ToNRGBA(c),
	})
}

// MeasureText returns the width of str in play-area pixels: one cell per rune.
func (s *Surface) MeasureText(str string, _ render.TextSize) float64 {
	return float64(len([]rune(str))) * s.sx
}

func (s *Surface) FillPolygon(points []component.Vector2D, fill, stroke color.Color) {
	if len(points) < 3 {
		return
	}
	box := component.Rect{X: points[0].X, Y: points[0].Y}
	for _, p := range points[1:] {
		box = box.Union(component.Rect{X: p.X, Y: p.Y})
	}
	c := fill
	if c == nil {
		c = stroke
	}
	n := render.ToNRGBA(c)
	x0, y0, x1, y1 := s.cells(box)
	for fy := y0; fy < y1; fy++ {
		for fx := x0; fx < x1; fx++ {
			cx := (float64(fx) + 0.5) * s.sx
			cy := (float64(fy) + 0.5) * s.sy
			if inside(points, cx, cy) {
				s.blend(fx, fy, n)
			}
		}
	}
}

// inside is the even-odd rule.
func inside(points []component.Vector2D, x, y float64) bool {
	in := false
	j := len(points) - 1
	for i := range points {
		pi, pj := points[i], points[j]
		if (pi.Y > y) != (pj.Y > y) && x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
		j = i
	}
	return in
}

func rgb(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Show copies the framebuffer and text to the screen.
func (s *Surface) Show() {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := s.fb[(2*row)*s.cols+col]
			bottom := s.fb[(2*row+1)*s.cols+col]
			s.screen.SetContent(col, row, halfBlock, nil, tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom)))
		}
	}
	for _, t := range s.texts {
		if t.row < 0 || t.row >= s.rows {
			continue
		}
		for i, r := range []rune(t.text) {
			col := t.col + i
			if col < 0 || col >= s.cols {
				continue
			}
			bg := s.fb[(2*t.row)*s.cols+col]
			s.screen.SetContent(col, t.row, r, nil, tcell.StyleDefault.Foreground(rgb(t.c)).Background(rgb(bg)))
		}
	}
	s.screen.Show()
}
