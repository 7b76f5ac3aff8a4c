// Package config provides YAML-based game configuration loading and
// difficulty management for SprintSolve.
package config

// SprintConfig contains all tunable parameters for the trivia runner.
type SprintConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Character  CharacterConfig  `yaml:"character"`
	Wall       WallConfig       `yaml:"wall"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CanvasConfig defines the virtual world the simulation runs on.
// The terminal renderer scales world coordinates down to cells, so physics
// behaves identically regardless of window size.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines vertical motion parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration per tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set on jump (negative = up)
}

// CharacterConfig defines the player projectile.
type CharacterConfig struct {
	X    float64 `yaml:"x"`    // Fixed horizontal position (center)
	Size float64 `yaml:"size"` // Side length of the square collision box
}

// WallConfig defines wall band geometry.
type WallConfig struct {
	Width           float64 `yaml:"width"`             // Horizontal thickness of the band
	MinTunnelHeight float64 `yaml:"min_tunnel_height"` // Lower bound for tunnel height
	HeightFactor    float64 `yaml:"height_factor"`     // Tunnel height = max(min, size*factor)
	ShieldPushback  float64 `yaml:"shield_pushback"`   // How far a shield hit pushes the band back
}

// GameplayConfig defines scoring, pacing, and the lives/shield model.
type GameplayConfig struct {
	BaseSpeed       float64 `yaml:"base_speed"`        // Scroll speed at round one
	SpeedIncrement  float64 `yaml:"speed_increment"`   // Added per correct answer
	MaxSpeed        float64 `yaml:"max_speed"`         // Scroll speed cap
	Lives           int     `yaml:"lives"`             // Wrong answers allowed before game over
	RoundDelayTicks int     `yaml:"round_delay_ticks"` // Ticks between resolution and next round
	PowerupChance   float64 `yaml:"powerup_chance"`    // Shield spawn probability on correct
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier       float64 `yaml:"speed_multiplier"`        // Extra speed fraction at max difficulty
	TunnelHeightReduction float64 `yaml:"tunnel_height_reduction"` // World units removed from tunnels at max
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

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

// ApplySprintPreset modifies the config based on a difficulty preset.
func ApplySprintPreset(cfg *SprintConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
