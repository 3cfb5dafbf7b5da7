package ui

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/pkg/render"
	"slices"
	"testing"
)

func TestHealthColor(t *testing.T) {
	tests := []struct {
		hp   int
		want any
	}{
		{120, config.HealthHighColor},
		{49, config.HealthHighColor},
		{48, config.HealthMediumColor},
		{19, config.HealthMediumColor},
		{18, config.HealthLowColor},
		{0, config.HealthLowColor},
	}
	for _, tt := range tests {
		if got := HealthColor(tt.hp, 120); got != tt.want {
			t.Errorf("HealthColor(%d, 120): expected %v, got %v", tt.hp, tt.want, got)
		}
	}
}

func TestHealthIndicatorBarLength(t *testing.T) {
	r := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	NewPlayerHealthIndicator(config.ScreenHeight).Draw(r, 60, 120)

	if r.Count("fill") != 1 {
		t.Fatalf("Expected one bar, got %d", r.Count("fill"))
	}
	for _, op := range r.Ops {
		if op.Kind != "fill" {
			continue
		}
		want := component.Rect{X: config.HealthBarX, Y: config.ScreenHeight - config.HealthBarOffsetY, W: 120, H: config.HealthBarThickness}
		if op.Rect != want {
			t.Errorf("Expected bar %+v, got %+v", want, op.Rect)
		}
	}
	if !slices.Contains(r.Texts(), "LIFE") {
		t.Errorf("Expected LIFE label, got %v", r.Texts())
	}

	r.Reset()
	NewPlayerHealthIndicator(config.ScreenHeight).Draw(r, 0, 120)
	if r.Count("fill") != 0 {
		t.Error("Expected no bar for a dead player")
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		elapsed float64
		hp      int
		want    int
	}{
		{30, 120, 3},
		{41.9, 96, 3},
		{42, 120, 2},
		{30, 95, 2},
		{49, 72, 2},
		{55, 48, 1},
		{59, 100, 1},
		{60, 120, 0},
		{10, 47, 0},
	}
	for _, tt := range tests {
		if got := Rate(tt.elapsed, tt.hp); got != tt.want {
			t.Errorf("Rate(%v, %d): expected %d, got %d", tt.elapsed, tt.hp, tt.want, got)
		}
	}
}

func TestStarRatingFillsEarned(t *testing.T) {
	r := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	NewStarRating().Draw(r, 2)

	if r.Count("polygon") != 3 {
		t.Fatalf("Expected 3 stars, got %d", r.Count("polygon"))
	}
	var fills []any
	for _, op := range r.Ops {
		fills = append(fills, op.Color)
	}
	if fills[0] != any(config.StarFilledColor) || fills[1] != any(config.StarFilledColor) || fills[2] != any(config.StarEmptyColor) {
		t.Errorf("Expected two filled stars and one empty, got %v", fills)
	}
}

func TestOverlayWinSchedule(t *testing.T) {
	o := NewOverlay()
	r := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)

	o.Draw(r, RoundStatus{State: component.Win, TerminalTicks: 10})
	if got := r.Texts(); !slices.Equal(got, []string{"VICTORY!"}) {
		t.Errorf("Expected only the banner early on, got %v", got)
	}

	r.Reset()
	o.Draw(r, RoundStatus{State: component.Win, TerminalTicks: 200, Elapsed: 75, Stars: 1})
	if got := r.Texts(); len(got) != 2 || got[1] != "Game finished in: 1 min 15 sec" {
		t.Errorf("Expected the elapsed-time stat, got %v", got)
	}
	if r.Count("polygon") != 3 {
		t.Errorf("Expected stars after the stats delay, got %d", r.Count("polygon"))
	}

	r.Reset()
	o.Draw(r, RoundStatus{State: component.Win, TerminalTicks: 301, RestartReady: true})
	if !slices.Contains(r.Texts(), WinRestartPrompt.Text) {
		t.Errorf("Expected the restart prompt, got %v", r.Texts())
	}
}

func TestOverlayPauseAndLost(t *testing.T) {
	o := NewOverlay()
	r := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)

	o.Draw(r, RoundStatus{State: component.Pause})
	if !slices.Equal(r.Texts(), []string{"PAUSE"}) || r.Count("fill") != 1 {
		t.Errorf("Expected dimmed PAUSE banner, got %v", r.Ops)
	}

	r.Reset()
	o.Draw(r, RoundStatus{State: component.Lost, TerminalTicks: 241, RestartReady: true})
	if !slices.Equal(r.Texts(), []string{"DEFEAT..", LostRestartPrompt.Text}) {
		t.Errorf("Expected defeat banner and prompt, got %v", r.Texts())
	}

	r.Reset()
	o.Draw(r, RoundStatus{State: component.Play})
	if len(r.Ops) != 0 {
		t.Errorf("Expected nothing while playing, got %d ops", len(r.Ops))
	}
}

func TestBannerCentred(t *testing.T) {
	r := render.NewRecorder(700, 600)
	PauseBanner.Draw(r, config.TextColor)
	op := r.Ops[0]
	if c := op.Rect.X + op.Rect.W/2; c != 350 {
		t.Errorf("Expected banner centred at 350, got %v", c)
	}
	if op.Rect.Y != 250 {
		t.Errorf("Expected banner at y=250, got %v", op.Rect.Y)
	}
}

func TestFormatElapsed(t *testing.T) {
	if got := FormatElapsed(42.7); got != "0 min 42 sec" {
		t.Errorf("Expected 0 min 42 sec, got %q", got)
	}
	if got := FormatElapsed(125); got != "2 min 5 sec" {
		t.Errorf("Expected 2 min 5 sec, got %q", got)
	}
}
