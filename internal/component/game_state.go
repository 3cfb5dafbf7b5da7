// internal/component/game_state.go
package component

// GameState: состояние раунда
type GameState int

const (
	Play GameState = iota
	Pause
	Win
	Lost
)

func (s GameState) String() string {
	switch s {
	case Play:
		return "play"
	case Pause:
		return "pause"
	case Win:
		return "win"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Terminal reports whether the round is over.
func (s GameState) Terminal() bool {
	return s == Win || s == Lost
}
