// internal/loop/stepper.go
package loop

import (
	"math"
	"time"
)

// остатки меньше этого считаются ошибкой округления
const sliceEpsilon = 1e-12

// Ticker is anything advanced in bounded time steps.
type Ticker interface {
	Update(dt float64)
}

// Stepper splits the wall time of a frame into slices no longer than
// MaxSlice. Frame time beyond MaxFrame is dropped so a stalled window does
// not turn into a long catch-up burst.
type Stepper struct {
	MaxSlice float64
	MaxFrame float64
}

func NewStepper(maxSlice, maxFrame float64) *Stepper {
	return &Stepper{MaxSlice: maxSlice, MaxFrame: maxFrame}
}

// Advance runs t over elapsed seconds and returns the number of slices.
func (s *Stepper) Advance(t Ticker, elapsed float64) int {
	slices := s.Slices(elapsed)
	for _, dt := range slices {
		t.Update(dt)
	}
	return len(slices)
}

// Slices returns the full-size slices followed by the remainder, if any.
func (s *Stepper) Slices(elapsed float64) []float64 {
	if elapsed <= 0 || s.MaxSlice <= 0 {
		return nil
	}
	if s.MaxFrame > 0 {
		elapsed = min(elapsed, s.MaxFrame)
	}
	n := int(math.Floor(elapsed / s.MaxSlice))
	rest := elapsed - float64(n)*s.MaxSlice
	out := make([]float64, n, n+1)
	for i := range out {
		out[i] = s.MaxSlice
	}
	if rest > sliceEpsilon {
		out = append(out, rest)
	}
	return out
}

// Clock measures wall time between calls to Tick.
type Clock struct {
	Now  func() time.Time
	last time.Time
}

func NewClock() *Clock {
	c := &Clock{Now: time.Now}
	c.last = c.Now()
	return c
}

// Tick returns the seconds since the previous Tick (or NewClock).
func (c *Clock) Tick() float64 {
	now := c.Now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}

// Reset restarts the measurement, e.g. after the window was hidden.
func (c *Clock) Reset() {
	c.last = c.Now()
}
