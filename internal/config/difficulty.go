package config

import "math"

// DifficultyManager calculates map parameters from a difficulty level.
// The level grows with score or map time depending on the progression type.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a score and map time in ms.
func (d *DifficultyManager) Level(score int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// ApproachRate raises the base approach rate with the level, capped at 10.
func (d *DifficultyManager) ApproachRate(base float64, score int, elapsed float64) float64 {
	level := d.Level(score, elapsed)
	return clampF(base+level*d.cfg.Scaling.ApproachRateBonus, 0, 10)
}

// BeatLength shortens the gap between fruits as the level rises.
func (d *DifficultyManager) BeatLength(base float64, score int, elapsed float64) float64 {
	level := d.Level(score, elapsed)
	return base / (1.0 + level*d.cfg.Scaling.DensityMultiplier)
}

// JumpAllowance widens jumps between fruits, capped at the full walking reach.
func (d *DifficultyManager) JumpAllowance(base float64, score int, elapsed float64) float64 {
	level := d.Level(score, elapsed)
	return clampF(base*(1.0+level*d.cfg.Scaling.JumpMultiplier), 0, 1)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
