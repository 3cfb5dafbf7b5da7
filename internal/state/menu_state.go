// internal/state/menu_state.go
package state

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/ui"
	"go-space-invaders/pkg/render"
)

// MenuState: титульный экран, ждёт пробел
type MenuState struct {
	sm    *StateMachine
	kb    Keyboard
	start func() State
}

var _ State = (*MenuState)(nil)

// NewMenuState shows the title until fire is pressed, then switches to the
// state built by start.
func NewMenuState(sm *StateMachine, kb Keyboard, start func() State) *MenuState {
	return &MenuState{sm: sm, kb: kb, start: start}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if m.kb.JustPressed(input.KeyFire) {
		m.sm.SetState(m.start())
	}
}

func (m *MenuState) Draw(dst render.Surface) {
	dst.Clear(config.BackgroundColor)
	ui.TitleBanner.Draw(dst, config.TextColor)
	ui.StartPrompt.Draw(dst, config.TextColor)
	ui.ControlsHint.Draw(dst, config.TextColor)
}

func (m *MenuState) Exit() {}
