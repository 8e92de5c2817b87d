package config

import (
	_ "embed"
)

//go:embed defaults/hopper.yaml
var defaultHopperYAML []byte

// DefaultHopperConfig returns the built-in configuration. It mirrors the
// embedded defaults/hopper.yaml and is used when that fails to parse.
func DefaultHopperConfig() HopperConfig {
	return HopperConfig{
		Lanes: LanesConfig{
			SpawnDistance:   20,
			MaxRoads:        5,
			LeftBoundary:    -6,
			RightBoundary:   6,
			GrassHeight:     0.2,
			RoadHeight:      0.1,
			MinTrees:        1,
			MaxTrees:        4,
			RoadProbability: Ramp{From: 0.5, To: 0.9, Span: 250},
		},
		Traffic: TrafficConfig{
			MinSpeed:    Ramp{From: 1, To: 5, Span: 500},
			MaxSpeed:    Ramp{From: 5, To: 10, Span: 500},
			MinVehicles: 1,
			MaxVehicles: 4,
			MinGap:      2,
			MaxGap:      6,
			WrapBound:   12,
		},
		Movement: MovementConfig{
			MoveDuration:   0.2,
			HopHeight:      0.5,
			FallBehind:     10,
			StartDepth:     5,
			StartHalfWidth: 6,
			StartHeight:    0.2,
		},
		Vehicles: []VehicleConfig{
			{Name: "car", Length: 1.0, Glyph: "▆"},
			{Name: "truck", Length: 2.0, Glyph: "█"},
			{Name: "bus", Length: 3.0, Glyph: "▇"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHopperYAML
}
