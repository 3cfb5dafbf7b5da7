// internal/tty/runner.go
package tty

import (
	"context"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/loop"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
)

// FrameInterval is the redraw period, about 60 frames per second.
const FrameInterval = 16 * time.Millisecond

// Runner drives a simulation from a terminal. Only the goroutine in Run
// touches the simulation and the key set; the poller just forwards events.
type Runner struct {
	screen  tcell.Screen
	sim     interfaces.Simulation
	adapter *KeyAdapter
	surface *Surface
	stepper *loop.Stepper
	clock   *loop.Clock
	logger  *slog.Logger
	frames  int
}

func NewRunner(screen tcell.Screen, sim interfaces.Simulation, adapter *KeyAdapter, surface *Surface, stepper *loop.Stepper, logger *slog.Logger) *Runner {
	return &Runner{
		screen:  screen,
		sim:     sim,
		adapter: adapter,
		surface: surface,
		stepper: stepper,
		clock:   loop.NewClock(),
		logger:  logger,
	}
}

// Run loops until ctx is cancelled, a quit key is pressed or the screen
// is finalized.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	r.clock.Reset()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !r.handle(ev) {
				r.logger.Info("quit requested", "frames", r.frames)
				return nil
			}

		case <-ticker.C:
			r.Frame(time.Now(), r.clock.Tick())
		}
	}
}

func (r *Runner) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			return false
		}
		r.adapter.Handle(ev, ev.When())
	case *tcell.EventResize:
		r.surface.Resize()
		r.screen.Sync()
	}
	return true
}

// Frame advances the simulation by elapsed seconds and redraws.
func (r *Runner) Frame(now time.Time, elapsed float64) {
	r.adapter.Expire(now)
	r.stepper.Advance(r.sim, elapsed)
	r.sim.Draw(r.surface)
	r.surface.Show()
	r.frames++
}

func (r *Runner) Frames() int { return r.frames }
