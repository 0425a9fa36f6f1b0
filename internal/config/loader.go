package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCatch loads the catch game configuration.
// Search order: customPath -> ~/.catch/configs/catch.yaml -> ./configs/catch.yaml -> embedded default.
// Files are decoded over the defaults, so partial files only override what they name.
func LoadCatch(customPath string) (CatchConfig, error) {
	cfg := DefaultCatchConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("catch.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultCatchConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "catch.yaml")); err == nil {
		candidate := DefaultCatchConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCatchYAML, &cfg); err != nil {
		return DefaultCatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catch", "configs", filename)
}

// ApplyCatchPreset modifies the config based on a difficulty preset.
func ApplyCatchPreset(cfg *CatchConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Bigger catcher and slower fall on easy, the reverse on hard
	switch preset {
	case DifficultyEasy:
		cfg.Beatmap.CircleSize = clampF(cfg.Beatmap.CircleSize-1, 0, 10)
		cfg.Beatmap.ApproachRate = clampF(cfg.Beatmap.ApproachRate-1, 0, 10)
	case DifficultyHard:
		cfg.Beatmap.CircleSize = clampF(cfg.Beatmap.CircleSize+1, 0, 10)
		cfg.Beatmap.ApproachRate = clampF(cfg.Beatmap.ApproachRate+1, 0, 10)
	}
}

// ApplyRain switches the beatmap parameters to the rain overrides.
func ApplyRain(cfg *CatchConfig) {
	cfg.Beatmap.StreamChance = cfg.Rain.StreamChance
	cfg.Beatmap.DropletsPerStream = cfg.Rain.DropletsPerStream
	cfg.Beatmap.BananaEvery = cfg.Rain.BananaEvery
	cfg.Beatmap.BananaCount = cfg.Rain.BananaCount
}

// Validate reports settings that would make a map unplayable.
func (c CatchConfig) Validate() error {
	var errs []error
	if c.Beatmap.BPM <= 0 {
		errs = append(errs, fmt.Errorf("beatmap.bpm must be positive, got %v", c.Beatmap.BPM))
	}
	if c.Beatmap.Fruits < 0 {
		errs = append(errs, fmt.Errorf("beatmap.fruits must not be negative, got %d", c.Beatmap.Fruits))
	}
	if c.Beatmap.ApproachRate < 0 || c.Beatmap.ApproachRate > 10 {
		errs = append(errs, fmt.Errorf("beatmap.approach_rate must be within 0-10, got %v", c.Beatmap.ApproachRate))
	}
	if c.Beatmap.CircleSize < 0 || c.Beatmap.CircleSize > 10 {
		errs = append(errs, fmt.Errorf("beatmap.circle_size must be within 0-10, got %v", c.Beatmap.CircleSize))
	}
	if c.Catcher.WalkSpeed <= 0 || c.Catcher.DashSpeed <= 0 {
		errs = append(errs, errors.New("catcher speeds must be positive"))
	}
	if c.Scoring.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("scoring.max_health must be positive, got %v", c.Scoring.MaxHealth))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
