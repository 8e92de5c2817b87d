package core

import (
	"testing"
	"time"
)

func TestFixedStepperAccumulates(t *testing.T) {
	s := NewFixedStepper(50, 5) // 20ms steps

	tests := []struct {
		elapsed  time.Duration
		expected int
	}{
		{10 * time.Millisecond, 0},
		{10 * time.Millisecond, 1},
		{45 * time.Millisecond, 2},
		{15 * time.Millisecond, 1},
	}

	for i, tc := range tests {
		if got := s.Advance(tc.elapsed); got != tc.expected {
			t.Errorf("step %d: Advance(%v) = %d, expected %d", i, tc.elapsed, got, tc.expected)
		}
	}
}

func TestFixedStepperCapsBacklog(t *testing.T) {
	s := NewFixedStepper(50, 3)

	if got := s.Advance(time.Second); got != 3 {
		t.Errorf("Advance(1s) = %d, expected cap of 3", got)
	}
	// Backlog was dropped, so a short frame yields nothing
	if got := s.Advance(5 * time.Millisecond); got != 0 {
		t.Errorf("Advance after cap = %d, expected 0", got)
	}
}

func TestFixedStepperReset(t *testing.T) {
	s := NewFixedStepper(50, 5)
	s.Advance(15 * time.Millisecond)
	s.Reset()

	if got := s.Advance(10 * time.Millisecond); got != 0 {
		t.Errorf("Advance after Reset = %d, expected 0", got)
	}
	if s.Step() != 20*time.Millisecond {
		t.Errorf("Step() = %v, expected 20ms", s.Step())
	}
}

func TestRuntimeConfigFixedDelta(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FixedDelta() != 0.02 {
		t.Errorf("FixedDelta() = %f, expected 0.02", cfg.FixedDelta())
	}

	cfg.FixedRate = 0
	if cfg.FixedDelta() != 0.02 {
		t.Errorf("FixedDelta() with zero rate = %f, expected fallback 0.02", cfg.FixedDelta())
	}
}
