// internal/ui/overlay.go
package ui

import (
	"fmt"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/pkg/render"
)

// RoundStatus is what the overlay needs to know about the round.
type RoundStatus struct {
	State         component.GameState
	TerminalTicks int
	Elapsed       float64
	Stars         int
	RestartReady  bool
}

// Overlay draws the pause and end-of-round screens on top of the field.
type Overlay struct {
	stars *StarRating
}

func NewOverlay() *Overlay {
	return &Overlay{stars: NewStarRating()}
}

func (o *Overlay) Draw(dst render.Surface, st RoundStatus) {
	switch st.State {
	case component.Pause:
		w, h := dst.Size()
		dst.FillRect(component.Rect{W: float64(w), H: float64(h)}, config.PauseOverlayColor)
		PauseBanner.Draw(dst, config.TextColor)
	case component.Win:
		VictoryBanner.Draw(dst, config.TextColor)
		if st.TerminalTicks > config.WinStatsDelay {
			stat := Banner{Text: "Game finished in: " + FormatElapsed(st.Elapsed), OffsetY: -80, Size: render.TextMedium}
			stat.Draw(dst, config.TextColor)
			o.stars.Draw(dst, st.Stars)
		}
		if st.RestartReady {
			WinRestartPrompt.Draw(dst, config.TextColor)
		}
	case component.Lost:
		DefeatBanner.Draw(dst, config.TextColor)
		if st.RestartReady {
			LostRestartPrompt.Draw(dst, config.TextColor)
		}
	}
}

// FormatElapsed renders seconds as "m min s sec".
func FormatElapsed(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d min %d sec", total/60, total%60)
}
