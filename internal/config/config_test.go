package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg PipesConfig
	if err := yaml.Unmarshal(defaultPipesYAML, &cfg); err != nil {
		t.Fatalf("embedded pipes.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPipesConfig()) {
		t.Errorf("embedded defaults drifted from DefaultPipesConfig:\n%+v\n%+v", cfg, DefaultPipesConfig())
	}
}

func TestLoadPipesFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadPipes("")
	if err != nil {
		t.Fatalf("LoadPipes failed: %v", err)
	}
	if cfg.Gameplay.BasePoints != 100 {
		t.Errorf("expected embedded base_points 100, got %d", cfg.Gameplay.BasePoints)
	}
}

func TestLoadPipesSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	writeConfig(t, filepath.Join(work, "configs", "pipes.yaml"), "gameplay:\n  base_points: 7\n")
	cfg, err := LoadPipes("")
	if err != nil {
		t.Fatalf("LoadPipes failed: %v", err)
	}
	if cfg.Gameplay.BasePoints != 7 {
		t.Errorf("expected ./configs override 7, got %d", cfg.Gameplay.BasePoints)
	}

	// The user directory wins over ./configs
	writeConfig(t, filepath.Join(home, AppDir, "configs", "pipes.yaml"), "gameplay:\n  base_points: 9\n")
	cfg, err = LoadPipes("")
	if err != nil {
		t.Fatalf("LoadPipes failed: %v", err)
	}
	if cfg.Gameplay.BasePoints != 9 {
		t.Errorf("expected user override 9, got %d", cfg.Gameplay.BasePoints)
	}
}

func TestLoadPipesCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeConfig(t, path, "blitz:\n  seconds_per_level: 20\n")

	cfg, err := LoadPipes(path)
	if err != nil {
		t.Fatalf("LoadPipes failed: %v", err)
	}
	if cfg.Blitz.SecondsPerLevel != 20 {
		t.Errorf("expected seconds_per_level 20, got %d", cfg.Blitz.SecondsPerLevel)
	}
	// Keys not present in the file keep their defaults
	if cfg.Gameplay.BasePoints != DefaultPipesConfig().Gameplay.BasePoints {
		t.Errorf("expected default base_points, got %d", cfg.Gameplay.BasePoints)
	}
}

func TestLoadPipesCustomPathErrors(t *testing.T) {
	if _, err := LoadPipes(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeConfig(t, bad, "gameplay: [not, a, map\n")
	if _, err := LoadPipes(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestApplyPipesPreset(t *testing.T) {
	cfg := DefaultPipesConfig()
	ApplyPipesPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultPipesConfig()
	ApplyPipesPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v initial=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}
	if !cfg.Gameplay.Scramble || cfg.Blitz.SecondsPerLevel != 40 {
		t.Errorf("hard preset should scramble with a short clock, got %+v %+v", cfg.Gameplay, cfg.Blitz)
	}

	cfg = DefaultPipesConfig()
	ApplyPipesPreset(&cfg, DifficultyEasy)
	if cfg.Gameplay.MovePenalty != 0 || cfg.Blitz.SecondsPerLevel != 90 {
		t.Errorf("easy preset: %+v %+v", cfg.Gameplay, cfg.Blitz)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		ok       bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"fixed", DifficultyFixed, true},
		{"insane", "", false},
	}
	for _, tc := range tests {
		got, ok := ParsePreset(tc.in)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParsePreset(%q) = %q, %v; expected %q, %v", tc.in, got, ok, tc.expected, tc.ok)
		}
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}
