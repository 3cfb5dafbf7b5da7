// internal/logging/events.go
package logging

import (
	"go-space-invaders/internal/event"
	"log/slog"
)

// EventLogger writes simulation events to a logger. Every record after a
// RoundStarted event carries that round's ID.
type EventLogger struct {
	base   *slog.Logger
	logger *slog.Logger
}

func NewEventLogger(l *slog.Logger) *EventLogger {
	return &EventLogger{base: l, logger: l}
}

// Attach subscribes to every event type.
func (e *EventLogger) Attach(d *event.Dispatcher) {
	d.Subscribe(event.All, e)
}

func (e *EventLogger) OnEvent(ev event.Event) {
	switch data := ev.Data.(type) {
	case event.Round:
		e.logger = e.base.With("round", data.ID)
		e.logger.Info("round started", "number", data.Number, "seed", data.Seed)
	case event.StateChange:
		e.logger.Info("state changed", "from", data.From.String(), "to", data.To.String())
	case event.Destroyed:
		e.logger.Info("ship destroyed", "faction", data.Faction.String(), "x", data.Position.X, "y", data.Position.Y)
	case event.Reversal:
		e.logger.Debug("formation reversed", "direction", data.Direction, "speed", data.Speed, "shot_probability", data.ShotProbability)
	case event.Shot:
		e.logger.Debug("missile fired", "faction", data.Faction.String(), "x", data.Position.X, "y", data.Position.Y)
	case event.Erosion:
		e.logger.Debug("bunker eroded", "pixels", data.Pixels, "remaining", data.Remaining)
	default:
		if ev.Type == event.FormationBreached {
			e.logger.Warn("formation reached the player row")
			return
		}
		e.logger.Debug("event", "type", string(ev.Type))
	}
}
