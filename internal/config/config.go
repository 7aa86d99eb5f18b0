// Package config provides YAML-based game configuration loading and
// difficulty management for pipeflow.
package config

// PipesConfig contains all configuration for the pipes game.
type PipesConfig struct {
	Gameplay   PipesGameplay    `yaml:"gameplay"`
	Blitz      PipesBlitz       `yaml:"blitz"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PipesGameplay defines scoring and presentation parameters.
type PipesGameplay struct {
	BasePoints       int  `yaml:"base_points"`        // Points for clearing any level
	ParBonus         int  `yaml:"par_bonus"`          // Points per rotation saved under par
	MovePenalty      int  `yaml:"move_penalty"`       // Points lost per rotation over par
	ClearBannerTicks int  `yaml:"clear_banner_ticks"` // How long the "cleared" banner stays up
	Scramble         bool `yaml:"scramble"`           // Randomly turn tiles when a level starts
}

// PipesBlitz defines the countdown used by the blitz mode.
type PipesBlitz struct {
	SecondsPerLevel int `yaml:"seconds_per_level"`
	MinSeconds      int `yaml:"min_seconds"`
	TimeBonus       int `yaml:"time_bonus"` // Points per whole second left on the clock
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Levels cleared or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	PointsMultiplier float64 `yaml:"points_multiplier"` // Added to the points multiplier at max difficulty
	TimeReduction    int     `yaml:"time_reduction"`    // Blitz seconds removed at max difficulty
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

// ParsePreset validates a preset name. Empty input yields DifficultyNormal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), true
	}
	return "", false
}
