package core

import "time"

// FixedStepper converts variable frame times into whole fixed-length steps.
// The remainder carries over to the next frame so the fixed clock never
// drifts from wall time.
type FixedStepper struct {
	step     time.Duration
	acc      time.Duration
	maxSteps int
}

// NewFixedStepper creates a stepper emitting rate steps per second. At most
// maxSteps are emitted per Advance; the excess backlog is dropped so a stalled
// frame does not trigger a burst of catch-up physics.
func NewFixedStepper(rate, maxSteps int) *FixedStepper {
	if rate <= 0 {
		rate = 50
	}
	if maxSteps <= 0 {
		maxSteps = 5
	}
	return &FixedStepper{
		step:     time.Second / time.Duration(rate),
		maxSteps: maxSteps,
	}
}

// Step returns the fixed step length.
func (s *FixedStepper) Step() time.Duration {
	return s.step
}

// Advance adds elapsed frame time and returns how many fixed steps are due.
func (s *FixedStepper) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	s.acc += elapsed

	n := int(s.acc / s.step)
	s.acc -= time.Duration(n) * s.step
	if n > s.maxSteps {
		n = s.maxSteps
		s.acc = 0
	}
	return n
}

// Reset discards any accumulated time.
func (s *FixedStepper) Reset() {
	s.acc = 0
}
