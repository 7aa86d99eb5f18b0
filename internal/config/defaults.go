package config

import (
	_ "embed"
)

//go:embed defaults/pipes.yaml
var defaultPipesYAML []byte

// DefaultPipesConfig returns the default pipes configuration.
// Used when the embedded YAML cannot be parsed.
func DefaultPipesConfig() PipesConfig {
	return PipesConfig{
		Gameplay: PipesGameplay{
			BasePoints:       100,
			ParBonus:         10,
			MovePenalty:      5,
			ClearBannerTicks: 45,
			Scramble:         false,
		},
		Blitz: PipesBlitz{
			SecondsPerLevel: 60,
			MinSeconds:      15,
			TimeBonus:       2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				PointsMultiplier: 1.0,
				TimeReduction:    30,
			},
		},
	}
}
