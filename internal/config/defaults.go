package config

import (
	_ "embed"
)

//go:embed defaults/sprint.yaml
var defaultSprintYAML []byte

// DefaultSprintConfig returns the default SprintSolve configuration.
// Constants mirror defaults/sprint.yaml; the hardcoded copy is the fallback
// if the embedded YAML fails to parse.
func DefaultSprintConfig() SprintConfig {
	return SprintConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 800,
		},
		Physics: PhysicsConfig{
			Gravity:     0.5,
			JumpImpulse: -10.0,
		},
		Character: CharacterConfig{
			X:    120,
			Size: 40,
		},
		Wall: WallConfig{
			Width:           80,
			MinTunnelHeight: 120,
			HeightFactor:    2.0,
			ShieldPushback:  160,
		},
		Gameplay: GameplayConfig{
			BaseSpeed:       4.0,
			SpeedIncrement:  0.5,
			MaxSpeed:        12.0,
			Lives:           3,
			RoundDelayTicks: 45,
			PowerupChance:   0.25,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:       0.5,
				TunnelHeightReduction: 30,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML config.
func GetDefaultYAML() []byte {
	return defaultSprintYAML
}
