// internal/tty/keys.go
package tty

import (
	"go-space-invaders/internal/input"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Terminals report key presses and auto-repeats but never releases, so a
// held key is released once no repeat arrived within the hold window.
const (
	FirstHold  = 500 * time.Millisecond // covers the terminal's repeat delay
	RepeatHold = 120 * time.Millisecond
)

// KeyAdapter turns tcell key events into KeySet presses and releases.
type KeyAdapter struct {
	keys      *input.KeySet
	deadlines map[input.Key]time.Time
}

func NewKeyAdapter(keys *input.KeySet) *KeyAdapter {
	return &KeyAdapter{keys: keys, deadlines: make(map[input.Key]time.Time)}
}

// MapKey maps a tcell key event to a game key.
func MapKey(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return input.KeyFire, true
		case 'p', 'P':
			return input.KeyPause, true
		case 'a', 'A', 'h':
			return input.KeyLeft, true
		case 'd', 'D', 'l':
			return input.KeyRight, true
		}
	}
	return 0, false
}

// IsQuit reports whether the event asks to leave the game.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Handle applies one key event received at now.
func (a *KeyAdapter) Handle(ev *tcell.EventKey, now time.Time) {
	k, ok := MapKey(ev)
	if !ok {
		return
	}
	if k.Edge() {
		a.keys.Press(k)
		return
	}
	// противоположное направление отпускаем сразу
	opposite := input.KeyLeft
	if k == input.KeyLeft {
		opposite = input.KeyRight
	}
	a.release(opposite)

	hold := RepeatHold
	if _, held := a.deadlines[k]; !held {
		hold = FirstHold
	}
	a.deadlines[k] = now.Add(hold)
	a.keys.Press(k)
}

// Expire releases held keys whose window has passed.
func (a *KeyAdapter) Expire(now time.Time) {
	for k, deadline := range a.deadlines {
		if now.After(deadline) {
			a.release(k)
		}
	}
}

func (a *KeyAdapter) release(k input.Key) {
	delete(a.deadlines, k)
	a.keys.Release(k)
}
