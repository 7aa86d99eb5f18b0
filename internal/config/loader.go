package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory name under $HOME.
const AppDir = ".pipeflow"

// LoadPipes loads the pipes configuration.
// Search order: customPath -> ~/.pipeflow/configs/pipes.yaml -> ./configs/pipes.yaml -> embedded default
func LoadPipes(customPath string) (PipesConfig, error) {
	var cfg PipesConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg = DefaultPipesConfig()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("pipes.yaml"), filepath.Join("configs", "pipes.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			cfg = DefaultPipesConfig()
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	cfg = PipesConfig{}
	if err := yaml.Unmarshal(defaultPipesYAML, &cfg); err != nil {
		return DefaultPipesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// ApplyPipesPreset modifies the config based on a difficulty preset.
func ApplyPipesPreset(cfg *PipesConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Scramble = false
		cfg.Blitz.SecondsPerLevel = 90
		cfg.Gameplay.MovePenalty = 0
	case DifficultyHard:
		cfg.Gameplay.Scramble = true
		cfg.Blitz.SecondsPerLevel = 40
		cfg.Blitz.MinSeconds = 10
	}
}
