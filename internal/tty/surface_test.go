package tty

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/mask"
	"go-space-invaders/pkg/render"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	black = color.RGBA{A: 255}
)

func TestSurfaceScale(t *testing.T) {
	s := NewSurface(newTestScreen(t, 80, 40), 160, 160)
	if s.sx != 2 || s.sy != 2 {
		t.Errorf("Expected 2x2 pixels per framebuffer pixel, got %vx%v", s.sx, s.sy)
	}
	if w, h := s.Size(); w != 160 || h != 160 {
		t.Errorf("Expected play area 160x160, got %dx%d", w, h)
	}
}

func TestSurfaceFillAndShow(t *testing.T) {
	screen := newTestScreen(t, 80, 40)
	s := NewSurface(screen, 160, 160)
	s.Clear(black)
	s.FillRect(component.Rect{W: 4, H: 4}, red)

	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if got := s.Pixel(p[0], p[1]); got != render.ToNRGBA(red) {
			t.Errorf("Expected pixel %v red, got %v", p, got)
		}
	}
	if got := s.Pixel(2, 2); got != render.ToNRGBA(black) {
		t.Errorf("Expected pixel (2,2) untouched, got %v", got)
	}

	s.Show()
	mainc, _, style, _ := screen.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	if mainc != halfBlock {
		t.Errorf("Expected half block, got %q", mainc)
	}
	if fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Expected red cell, got fg %v bg %v", fg, bg)
	}
}

func TestSurfaceDrawMaskTint(t *testing.T) {
	s := NewSurface(newTestScreen(t, 80, 40), 160, 160)
	s.Clear(black)
	m := mask.New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			m.Fill(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	m.SetAlpha(3, 3, 0)

	s.DrawMask(m, 10, 10, green)

	if got := s.Pixel(5, 5); got != render.ToNRGBA(green) {
		t.Errorf("Expected tinted pixel, got %v", got)
	}
	if got := s.Pixel(7, 7); got != render.ToNRGBA(black) {
		t.Errorf("Expected nothing outside the mask, got %v", got)
	}
}

func TestSurfaceText(t *testing.T) {
	screen := newTestScreen(t, 80, 40)
	s := NewSurface(screen, 160, 160)
	s.Clear(black)
	s.DrawText("HI", 20, 40, render.TextSmall, red)
	s.Show()

	for i, want := range "HI" {
		got, _, _, _ := screen.GetContent(10+i, 10)
		if got != want {
			t.Errorf("Expected %q at column %d, got %q", want, 10+i, got)
		}
	}
	if w := s.MeasureText("HI", render.TextLarge); w != 4 {
		t.Errorf("Expected 2 cells of 2px, got %v", w)
	}

	s.Clear(black)
	s.Show()
	if got, _, _, _ := screen.GetContent(10, 10); got != halfBlock {
		t.Errorf("Expected text cleared with the frame, got %q", got)
	}
}

func TestSurfaceStar(t *testing.T) {
	s := NewSurface(newTestScreen(t, 80, 40), 160, 160)
	s.Clear(black)
	s.FillPolygon(render.StarPoints(component.Vector2D{X: 80, Y: 80}, 25, 12.5), green, red)

	if got := s.Pixel(40, 40); got != render.ToNRGBA(green) {
		t.Errorf("Expected star centre filled, got %v", got)
	}
	if got := s.Pixel(0, 0); got != render.ToNRGBA(black) {
		t.Errorf("Expected corner empty, got %v", got)
	}
}

func TestSurfaceTranslucentOverlay(t *testing.T) {
	s := NewSurface(newTestScreen(t, 80, 40), 160, 160)
	s.Clear(color.RGBA{R: 200, G: 200, B: 200, A: 255})
	s.FillRect(component.Rect{W: 160, H: 160}, color.NRGBA{A: 128})

	got := s.Pixel(3, 3)
	if got.R >= 200 || got.R == 0 {
		t.Errorf("Expected a dimmed pixel, got %v", got)
	}
}

func TestSurfaceResize(t *testing.T) {
	screen := newTestScreen(t, 80, 40)
	s := NewSurface(screen, 160, 160)
	screen.SetSize(40, 20)
	s.Resize()
	if s.sx != 4 || s.sy != 4 {
		t.Errorf("Expected 4x4 after resize, got %vx%v", s.sx, s.sy)
	}
}
