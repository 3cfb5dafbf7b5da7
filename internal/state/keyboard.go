// internal/state/keyboard.go
package state

import (
	"go-space-invaders/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard is the physical key source polled once per frame.
type Keyboard interface {
	Pressed(k input.Key) bool
	JustPressed(k input.Key) bool
}

// FeedKeys copies the keyboard into the key set: held keys follow the
// physical state, edge keys are pressed once per physical press.
func FeedKeys(kb Keyboard, keys *input.KeySet) {
	for _, k := range input.AllKeys {
		if k.Edge() {
			if kb.JustPressed(k) {
				keys.Press(k)
			}
			continue
		}
		if kb.Pressed(k) {
			keys.Press(k)
		} else {
			keys.Release(k)
		}
	}
}

// EbitenKeyboard maps logical keys onto ebiten keys.
type EbitenKeyboard struct {
	Bindings map[input.Key][]ebiten.Key
}

func NewEbitenKeyboard() *EbitenKeyboard {
	return &EbitenKeyboard{Bindings: map[input.Key][]ebiten.Key{
		input.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
		input.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
		input.KeyFire:  {ebiten.KeySpace},
		input.KeyPause: {ebiten.KeyP, ebiten.KeyEscape},
	}}
}

func (kb *EbitenKeyboard) Pressed(k input.Key) bool {
	for _, key := range kb.Bindings[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func (kb *EbitenKeyboard) JustPressed(k input.Key) bool {
	for _, key := range kb.Bindings[k] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
