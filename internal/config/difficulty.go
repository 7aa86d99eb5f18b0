package config

import "math"

// DifficultyManager calculates dynamic game parameters from run progress.
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

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) from the number
// of levels cleared and the ticks played so far.
func (d *DifficultyManager) Level(cleared int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(cleared) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Points scales base points by the current difficulty.
func (d *DifficultyManager) Points(base, cleared, ticks int) int {
	level := d.Level(cleared, ticks)
	return int(math.Round(float64(base) * (1.0 + level*d.cfg.Scaling.PointsMultiplier)))
}

// BlitzSeconds returns the countdown length for the next level.
// The result never drops below minSeconds.
func (d *DifficultyManager) BlitzSeconds(base, minSeconds, cleared, ticks int) int {
	level := d.Level(cleared, ticks)
	result := base - int(level*float64(d.cfg.Scaling.TimeReduction))
	if result < minSeconds {
		result = minSeconds
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
