package config

import "github.com/vovakirdan/hopper/internal/core"

// Ramp is a value that grows with lane index: From at lane 0, To at lane
// Span and beyond. Lanes further along are harder.
type Ramp struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
	Span float64 `yaml:"span"`
}

// At returns the ramp value for the given lane index.
func (r Ramp) At(index int) float64 {
	span := r.Span
	if span <= 0 {
		span = 1 // Prevent division by zero
	}
	return core.Lerp(r.From, r.To, float64(index)/span)
}

// Scaled returns a copy with both endpoints multiplied by k.
func (r Ramp) Scaled(k float64) Ramp {
	return Ramp{From: r.From * k, To: r.To * k, Span: r.Span}
}

// Flat returns a ramp that stays at its starting value.
func (r Ramp) Flat() Ramp {
	return Ramp{From: r.From, To: r.From, Span: r.Span}
}
