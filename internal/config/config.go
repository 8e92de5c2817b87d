// Package config provides YAML-based game configuration loading and
// difficulty presets for hopper.
package config

import (
	"errors"
	"fmt"
)

// HopperConfig contains all configuration for the lane runner.
type HopperConfig struct {
	Lanes    LanesConfig     `yaml:"lanes"`
	Traffic  TrafficConfig   `yaml:"traffic"`
	Movement MovementConfig  `yaml:"movement"`
	Vehicles []VehicleConfig `yaml:"vehicles"`
}

// LanesConfig defines terrain generation and the lane window.
type LanesConfig struct {
	SpawnDistance   int     `yaml:"spawn_distance"` // Lanes kept generated ahead of the actor
	MaxRoads        int     `yaml:"max_roads"`      // Road cap per level; negative = unlimited
	LeftBoundary    int     `yaml:"left_boundary"`  // Leftmost (blocked) column
	RightBoundary   int     `yaml:"right_boundary"` // Rightmost (blocked) column
	GrassHeight     float64 `yaml:"grass_height"`
	RoadHeight      float64 `yaml:"road_height"`
	MinTrees        int     `yaml:"min_trees"`
	MaxTrees        int     `yaml:"max_trees"`
	RoadProbability Ramp    `yaml:"road_probability"`
}

// TrafficConfig defines how road convoys are built and moved.
type TrafficConfig struct {
	MinSpeed    Ramp    `yaml:"min_speed"`
	MaxSpeed    Ramp    `yaml:"max_speed"`
	MinVehicles int     `yaml:"min_vehicles"`
	MaxVehicles int     `yaml:"max_vehicles"`
	MinGap      float64 `yaml:"min_gap"`
	MaxGap      float64 `yaml:"max_gap"`
	WrapBound   float64 `yaml:"wrap_bound"` // Vehicles past +/- this X wrap to the other side
}

// MovementConfig defines the actor's hop and failure rules.
type MovementConfig struct {
	MoveDuration   float64 `yaml:"move_duration"`    // Seconds per hop
	HopHeight      float64 `yaml:"hop_height"`       // Peak of the hop arc above the target height
	FallBehind     int     `yaml:"fall_behind"`      // Lanes behind the best lane before death
	StartDepth     int     `yaml:"start_depth"`      // Lanes of safe start area behind lane 0
	StartHalfWidth int     `yaml:"start_half_width"` // Start area spans columns (-w, w) exclusive
	StartHeight    float64 `yaml:"start_height"`     // Terrain height of the start area
}

// VehicleConfig describes one vehicle archetype.
type VehicleConfig struct {
	Name   string  `yaml:"name"`
	Length float64 `yaml:"length"` // Length along the lane in world units
	Glyph  string  `yaml:"glyph"`
}

// Validate checks that the configuration describes a playable game.
func (c HopperConfig) Validate() error {
	var errs []error

	l := c.Lanes
	if l.LeftBoundary+1 > l.RightBoundary-1 {
		errs = append(errs, fmt.Errorf("lanes: boundaries [%d, %d] leave no playable column", l.LeftBoundary, l.RightBoundary))
	}
	if l.MinTrees < 0 || l.MaxTrees < l.MinTrees {
		errs = append(errs, fmt.Errorf("lanes: tree range [%d, %d] is invalid", l.MinTrees, l.MaxTrees))
	}
	if l.SpawnDistance <= c.Movement.FallBehind {
		errs = append(errs, fmt.Errorf("lanes: spawn_distance %d must exceed movement.fall_behind %d", l.SpawnDistance, c.Movement.FallBehind))
	}

	t := c.Traffic
	if t.MinVehicles < 1 || t.MaxVehicles < t.MinVehicles {
		errs = append(errs, fmt.Errorf("traffic: vehicle range [%d, %d] is invalid", t.MinVehicles, t.MaxVehicles))
	}
	if t.MinGap <= 0 || t.MaxGap < t.MinGap {
		errs = append(errs, fmt.Errorf("traffic: gap range [%g, %g] is invalid", t.MinGap, t.MaxGap))
	}
	if t.WrapBound <= 0 {
		errs = append(errs, errors.New("traffic: wrap_bound must be positive"))
	}

	m := c.Movement
	if m.MoveDuration <= 0 {
		errs = append(errs, errors.New("movement: move_duration must be positive"))
	}
	if m.FallBehind < 1 {
		errs = append(errs, errors.New("movement: fall_behind must be at least 1"))
	}
	if m.StartDepth < 1 || m.StartHalfWidth < 1 {
		errs = append(errs, errors.New("movement: start area must be at least one cell"))
	}

	if len(c.Vehicles) == 0 {
		errs = append(errs, errors.New("vehicles: at least one archetype is required"))
	}
	for i, v := range c.Vehicles {
		if v.Length <= 0 {
			errs = append(errs, fmt.Errorf("vehicles[%d] %q: length must be positive", i, v.Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
