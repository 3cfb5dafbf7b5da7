// internal/ui/banner.go
package ui

import (
	"go-space-invaders/pkg/render"
	"image/color"
)

// Banner is a line of text centred horizontally, placed relative to the
// vertical middle of the screen.
type Banner struct {
	Text    string
	OffsetY float64
	Size    render.TextSize
}

func (b Banner) Draw(dst render.Surface, c color.Color) {
	w, h := dst.Size()
	render.DrawTextCentered(dst, b.Text, float64(w)/2, float64(h)/2+b.OffsetY, b.Size, c)
}

var (
	PauseBanner       = Banner{Text: "PAUSE", OffsetY: -50, Size: render.TextLarge}
	VictoryBanner     = Banner{Text: "VICTORY!", OffsetY: -150, Size: render.TextLarge}
	DefeatBanner      = Banner{Text: "DEFEAT..", OffsetY: -150, Size: render.TextLarge}
	WinRestartPrompt  = Banner{Text: "Press SPACE to play again.", OffsetY: 50, Size: render.TextMedium}
	LostRestartPrompt = Banner{Text: "Press SPACE to play again.", OffsetY: -60, Size: render.TextMedium}
	TitleBanner       = Banner{Text: "SPACE INVADERS", OffsetY: -120, Size: render.TextLarge}
	StartPrompt       = Banner{Text: "Press SPACE to start", OffsetY: 0, Size: render.TextMedium}
	ControlsHint      = Banner{Text: "arrows move, space fires, P pauses", OffsetY: 60, Size: render.TextSmall}
)
