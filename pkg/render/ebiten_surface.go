// pkg/render/ebiten_surface.go
package render

import (
	"fmt"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/mask"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

type maskImage struct {
	img     *ebiten.Image
	version uint64
	pix     []byte
}

// EbitenSurface draws onto an ebiten screen image. Bind must be called with
// the frame's screen before any drawing.
type EbitenSurface struct {
	screen   *ebiten.Image
	fillImg  *ebiten.Image
	faces    map[TextSize]font.Face
	masks    *frameCache[*maskImage]
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
}

var _ Surface = (*EbitenSurface)(nil)

func NewEbitenSurface() (*EbitenSurface, error) {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	tt, err := opentype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	faces := make(map[TextSize]font.Face, 3)
	for _, size := range []TextSize{TextSmall, TextMedium, TextLarge} {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size.Points(),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("font face %v: %w", size.Points(), err)
		}
		faces[size] = face
	}

	return &EbitenSurface{
		fillImg:  fillImg,
		faces:    faces,
		masks:    newFrameCache[*maskImage](),
		fillVs:   make([]ebiten.Vertex, 0, 32),
		fillIs:   make([]uint16, 0, 32),
		strokeVs: make([]ebiten.Vertex, 0, 64),
		strokeIs: make([]uint16, 0, 64),
	}, nil
}

// Bind sets the target image for the current frame and frees the textures
// of masks the previous frame did not draw.
func (s *EbitenSurface) Bind(screen *ebiten.Image) {
	s.screen = screen
	s.masks.nextFrame(func(cached *maskImage) { cached.img.Deallocate() })
}

func (s *EbitenSurface) Size() (int, int) {
	b := s.screen.Bounds()
	return b.Dx(), b.Dy()
}

func (s *EbitenSurface) Clear(c color.Color) {
	s.screen.Fill(c)
}

func (s *EbitenSurface) DrawMask(m mask.Mask, x, y float64, tint color.Color) {
	img := s.imageFor(m)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(tint)
	s.screen.DrawImage(img, op)
}

// imageFor returns the texture of a mask, re-uploading pixels whenever the
// mask has been modified since the last upload.
func (s *EbitenSurface) imageFor(m mask.Mask) *ebiten.Image {
	cached, ok := s.masks.get(m)
	if !ok {
		cached = &maskImage{
			img:     ebiten.NewImage(m.Width(), m.Height()),
			version: ^uint64(0),
			pix:     make([]byte, 4*m.Width()*m.Height()),
		}
		s.masks.put(m, cached)
	}
	if cached.version == m.Version() {
		return cached.img
	}
	// белые пиксели с премультиплицированной альфой
	i := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			a := m.AlphaAt(x, y)
			cached.pix[i], cached.pix[i+1], cached.pix[i+2], cached.pix[i+3] = a, a, a, a
			i += 4
		}
	}
	cached.img.WritePixels(cached.pix)
	cached.version = m.Version()
	return cached.img
}

func (s *EbitenSurface) FillRect(r component.Rect, c color.Color) {
	vector.DrawFilledRect(s.screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s *EbitenSurface) StrokeRect(r component.Rect, width float64, c color.Color) {
	vector.StrokeRect(s.screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), c, false)
}

func (s *EbitenSurface) DrawText(str string, x, y float64, size TextSize, c color.Color) {
	face := s.faces[size]
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(s.screen, str, face, int(x), int(y)+ascent, c)
}

func (s *EbitenSurface) MeasureText(str string, size TextSize) float64 {
	return float64(font.MeasureString(s.faces[size], str).Ceil())
}

func (s *EbitenSurface) FillPolygon(points []component.Vector2D, fill, stroke color.Color) {
	if len(points) < 3 {
		return
	}
	path := vector.Path{}
	for i, p := range points {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()

	if fill != nil {
		s.fillVs, s.fillIs = path.AppendVerticesAndIndicesForFilling(s.fillVs[:0], s.fillIs[:0])
		paint(s.fillVs, fill)
		s.screen.DrawTriangles(s.fillVs, s.fillIs, s.fillImg, &ebiten.DrawTrianglesOptions{
			FillRule:  ebiten.EvenOdd,
			AntiAlias: true,
		})
	}
	if stroke != nil {
		s.strokeVs, s.strokeIs = path.AppendVerticesAndIndicesForStroke(s.strokeVs[:0], s.strokeIs[:0], &vector.StrokeOptions{
			Width:    2,
			LineJoin: vector.LineJoinMiter,
		})
		paint(s.strokeVs, stroke)
		s.screen.DrawTriangles(s.strokeVs, s.strokeIs, s.fillImg, &ebiten.DrawTrianglesOptions{
			AntiAlias: true,
		})
	}
}

func paint(vs []ebiten.Vertex, c color.Color) {
	n := ToNRGBA(c)
	for i := range vs {
		vs[i].ColorR = float32(n.R) / 255
		vs[i].ColorG = float32(n.G) / 255
		vs[i].ColorB = float32(n.B) / 255
		vs[i].ColorA = float32(n.A) / 255
	}
}
