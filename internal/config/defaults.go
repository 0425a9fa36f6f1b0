package config

import (
	_ "embed"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the default catch configuration.
// It mirrors defaults/catch.yaml and is used if the embedded file cannot be parsed.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Beatmap: CatchBeatmap{
			ApproachRate:      7,
			CircleSize:        4,
			BPM:               150,
			LeadIn:            2000,
			Fruits:            96,
			StreamChance:      0.3,
			DropletsPerStream: 3,
			TinyPerDroplet:    1,
			BananaEvery:       32,
			BananaCount:       8,
			JumpAllowance:     0.85,
		},
		Rain: CatchRain{
			StreamChance:      0.8,
			DropletsPerStream: 5,
			BananaEvery:       12,
			BananaCount:       12,
		},
		Catcher: CatchCatcher{
			WalkSpeed: 0.5,
			DashSpeed: 1.0,
			PlateSize: 8,
		},
		Animation: CatchAnimation{
			HitFadeMs: 0,
		},
		Scoring: CatchScoring{
			FruitPoints:   300,
			DropletPoints: 100,
			TinyPoints:    10,
			BananaPoints:  1000,
			MaxHealth:     100,
			MissPenalty:   12,
			HitRecovery:   2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 90000,
			},
			Scaling: ScalingConfig{
				ApproachRateBonus: 2,
				DensityMultiplier: 0.5,
				JumpMultiplier:    0.15,
			},
		},
	}
}
