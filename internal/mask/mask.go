// internal/mask/mask.go
package mask

import (
	"image"
	"image/color"
)

// Opaque is the only alpha value that counts as solid for collisions.
const Opaque = 255

// Mask gives the simulation read access to a sprite's alpha channel.
// SetAlpha is only used by destructible surfaces; Version changes on every
// write so renderers know when to re-upload the pixels.
type Mask interface {
	Width() int
	Height() int
	AlphaAt(x, y int) uint8
	SetAlpha(x, y int, a uint8)
	Version() uint64
}

// Alpha is a Mask backed by an in-memory NRGBA image.
type Alpha struct {
	img     *image.NRGBA
	version uint64
}

var _ Mask = (*Alpha)(nil)

// New allocates a fully transparent w×h mask.
func New(w, h int) *Alpha {
	return &Alpha{img: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

// FromImage copies any image into a mask, keeping its colours.
func FromImage(src image.Image) *Alpha {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(x, y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return &Alpha{img: dst}
}

func (a *Alpha) Width() int  { return a.img.Rect.Dx() }
func (a *Alpha) Height() int { return a.img.Rect.Dy() }

// AlphaAt returns 0 for coordinates outside the mask.
func (a *Alpha) AlphaAt(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}).In(a.img.Rect) {
		return 0
	}
	return a.img.Pix[a.img.PixOffset(x, y)+3]
}

func (a *Alpha) SetAlpha(x, y int, alpha uint8) {
	if !(image.Point{X: x, Y: y}).In(a.img.Rect) {
		return
	}
	i := a.img.PixOffset(x, y)
	if alpha == 0 {
		// прозрачный пиксель целиком обнуляем
		a.img.Pix[i], a.img.Pix[i+1], a.img.Pix[i+2] = 0, 0, 0
	}
	a.img.Pix[i+3] = alpha
	a.version++
}

func (a *Alpha) Version() uint64 { return a.version }

// Fill paints a pixel with c.
func (a *Alpha) Fill(x, y int, c color.NRGBA) {
	a.img.SetNRGBA(x, y, c)
	a.version++
}

// Image exposes the pixels for renderers. Callers must not modify it.
func (a *Alpha) Image() *image.NRGBA { return a.img }

// Clone returns an independent copy, used by every destructible instance.
func (a *Alpha) Clone() *Alpha {
	img := image.NewNRGBA(a.img.Rect)
	copy(img.Pix, a.img.Pix)
	return &Alpha{img: img}
}

// OpaqueCount counts the solid pixels.
func (a *Alpha) OpaqueCount() int {
	n := 0
	for i := 3; i < len(a.img.Pix); i += 4 {
		if a.img.Pix[i] == Opaque {
			n++
		}
	}
	return n
}
