package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHopper loads the game configuration.
// Search order: customPath -> ~/.hopper/configs/hopper.yaml -> ./configs/hopper.yaml -> embedded default
func LoadHopper(customPath string) (HopperConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HopperConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return HopperConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("hopper.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "hopper.yaml")); err == nil {
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultHopperYAML)
	if err != nil {
		return DefaultHopperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the built-in defaults, so a partial file
// only overrides the keys it names.
func parse(data []byte) (HopperConfig, error) {
	cfg := DefaultHopperConfig()
	// A vehicles list in the file replaces the default list wholesale.
	cfg.Vehicles = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HopperConfig{}, err
	}
	if len(cfg.Vehicles) == 0 {
		cfg.Vehicles = DefaultHopperConfig().Vehicles
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hopper", "configs", filename)
}

// ApplyHopperPreset modifies the config based on a difficulty preset.
func ApplyHopperPreset(cfg *HopperConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Lanes.RoadProbability = cfg.Lanes.RoadProbability.Scaled(0.75)
		cfg.Traffic.MinSpeed = cfg.Traffic.MinSpeed.Scaled(0.75)
		cfg.Traffic.MaxSpeed = cfg.Traffic.MaxSpeed.Scaled(0.75)
		cfg.Traffic.MaxVehicles = max(cfg.Traffic.MinVehicles, cfg.Traffic.MaxVehicles-1)
	case DifficultyHard:
		cfg.Lanes.RoadProbability = Ramp{From: 0.65, To: 0.95, Span: cfg.Lanes.RoadProbability.Span}
		cfg.Traffic.MinSpeed = cfg.Traffic.MinSpeed.Scaled(1.25)
		cfg.Traffic.MaxSpeed = cfg.Traffic.MaxSpeed.Scaled(1.25)
		cfg.Movement.FallBehind = max(1, cfg.Movement.FallBehind-3)
	case DifficultyFixed:
		// No progression: every lane plays like lane 0
		cfg.Lanes.RoadProbability = cfg.Lanes.RoadProbability.Flat()
		cfg.Traffic.MinSpeed = cfg.Traffic.MinSpeed.Flat()
		cfg.Traffic.MaxSpeed = cfg.Traffic.MaxSpeed.Flat()
	}
}
