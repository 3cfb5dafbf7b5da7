// pkg/render/color.go
package render

import "image/color"

// ToNRGBA converts any color to straight-alpha 8-bit components.
func ToNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Tint multiplies a straight-alpha pixel by a tint colour.
func Tint(px, tint color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(uint16(px.R) * uint16(tint.R) / 255),
		G: uint8(uint16(px.G) * uint16(tint.G) / 255),
		B: uint8(uint16(px.B) * uint16(tint.B) / 255),
		A: uint8(uint16(px.A) * uint16(tint.A) / 255),
	}
}
