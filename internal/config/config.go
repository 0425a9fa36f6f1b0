// Package config provides YAML-based game configuration loading and
// difficulty management for the catch game.
package config

// CatchConfig contains all configuration for the catch game.
type CatchConfig struct {
	Beatmap    CatchBeatmap     `yaml:"beatmap"`
	Rain       CatchRain        `yaml:"rain"`
	Catcher    CatchCatcher     `yaml:"catcher"`
	Animation  CatchAnimation   `yaml:"animation"`
	Scoring    CatchScoring     `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CatchBeatmap defines how generated maps are laid out.
type CatchBeatmap struct {
	ApproachRate      float64 `yaml:"approach_rate"` // 0-10, higher falls faster
	CircleSize        float64 `yaml:"circle_size"`   // 0-10, higher is smaller
	BPM               float64 `yaml:"bpm"`
	LeadIn            float64 `yaml:"lead_in"` // ms before the first object
	Fruits            int     `yaml:"fruits"`
	StreamChance      float64 `yaml:"stream_chance"` // Chance a gap is filled with droplets
	DropletsPerStream int     `yaml:"droplets_per_stream"`
	TinyPerDroplet    int     `yaml:"tiny_per_droplet"`
	BananaEvery       int     `yaml:"banana_every"` // Fruits between banana showers, 0 disables
	BananaCount       int     `yaml:"banana_count"`
	JumpAllowance     float64 `yaml:"jump_allowance"` // Fraction of walking reach used for jumps
}

// CatchRain overrides map parameters for the rain mode.
type CatchRain struct {
	StreamChance      float64 `yaml:"stream_chance"`
	DropletsPerStream int     `yaml:"droplets_per_stream"`
	BananaEvery       int     `yaml:"banana_every"`
	BananaCount       int     `yaml:"banana_count"`
}

// CatchCatcher defines catcher movement and plate size.
type CatchCatcher struct {
	WalkSpeed float64 `yaml:"walk_speed"` // Playfield units per ms
	DashSpeed float64 `yaml:"dash_speed"` // Playfield units per ms
	PlateSize int     `yaml:"plate_size"`
}

// CatchAnimation defines exit transition timings.
type CatchAnimation struct {
	HitFadeMs float64 `yaml:"hit_fade_ms"`
}

// CatchScoring defines points and health.
type CatchScoring struct {
	FruitPoints   int     `yaml:"fruit_points"`
	DropletPoints int     `yaml:"droplet_points"`
	TinyPoints    int     `yaml:"tiny_points"`
	BananaPoints  int     `yaml:"banana_points"`
	MaxHealth     float64 `yaml:"max_health"`
	MissPenalty   float64 `yaml:"miss_penalty"`
	HitRecovery   float64 `yaml:"hit_recovery"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a map.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or map time (ms) at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ApproachRateBonus float64 `yaml:"approach_rate_bonus"` // AR added at max difficulty
	DensityMultiplier float64 `yaml:"density_multiplier"`  // Beat length divisor added at max difficulty
	JumpMultiplier    float64 `yaml:"jump_multiplier"`     // Jump allowance multiplier added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
