package pipes

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pipeflow/internal/config"
	"github.com/vovakirdan/pipeflow/internal/games/pipes/levels"
)

// Package-level variables for configuration, set by the CLI or menu
// before a game is created.
var (
	optMu              sync.RWMutex
	selectedStartLevel int
	configPath         string
	difficultyPreset   = config.DifficultyNormal
	levelsDir          string
	logger             = log.New(io.Discard)
)

// Options are per-game selections made in a menu.
type Options struct {
	StartLevel int // 1-indexed, 0 starts from the first level
	Difficulty config.DifficultyPreset
}

// SetStartLevel sets the starting level (1-indexed). 0 means start from beginning.
func SetStartLevel(level int) {
	optMu.Lock()
	defer optMu.Unlock()
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	optMu.RLock()
	defer optMu.RUnlock()
	return selectedStartLevel
}

// takeStartLevel returns the selected start level and clears it.
func takeStartLevel() int {
	optMu.Lock()
	defer optMu.Unlock()
	lvl := selectedStartLevel
	selectedStartLevel = 0
	return lvl
}

// SetConfigPath sets a custom config file. Empty uses the search path.
func SetConfigPath(path string) {
	optMu.Lock()
	defer optMu.Unlock()
	configPath = path
}

// SetDifficultyPreset selects the difficulty preset applied on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	optMu.Lock()
	defer optMu.Unlock()
	difficultyPreset = preset
}

func currentPreset() config.DifficultyPreset {
	optMu.RLock()
	defer optMu.RUnlock()
	return difficultyPreset
}

// SetLevelsDir loads levels from dir instead of the built-in pack.
// Empty restores the built-in pack.
func SetLevelsDir(dir string) {
	optMu.Lock()
	defer optMu.Unlock()
	levelsDir = dir
}

// SetLogger sets the logger used while loading levels.
func SetLogger(l *log.Logger) {
	optMu.Lock()
	defer optMu.Unlock()
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func getLogger() *log.Logger {
	optMu.RLock()
	defer optMu.RUnlock()
	return logger
}

// LevelLoader returns the loader for the configured level source.
func LevelLoader() *levels.Loader {
	optMu.RLock()
	defer optMu.RUnlock()

	var l *levels.Loader
	if levelsDir != "" {
		l = levels.NewDirLoader(levelsDir)
	} else {
		l = levels.Builtin()
	}
	l.Logger = logger.WithPrefix("levels")
	return l
}

// loadConfig resolves the config file and applies the difficulty preset.
func loadConfig(preset config.DifficultyPreset) config.PipesConfig {
	optMu.RLock()
	path := configPath
	optMu.RUnlock()

	cfg, err := config.LoadPipes(path)
	if err != nil {
		getLogger().Warn("using default pipes config", "path", path, "err", err)
		cfg = config.DefaultPipesConfig()
	}
	config.ApplyPipesPreset(&cfg, preset)
	return cfg
}

// LevelNames returns the names of all levels in play order.
func LevelNames() []string {
	lvls, err := LevelLoader().LoadAll()
	if err != nil {
		return nil
	}
	names := make([]string, len(lvls))
	for i, lvl := range lvls {
		names[i] = lvl.Name
	}
	return names
}

// LevelIDs returns the IDs of all levels in play order.
func LevelIDs() []string {
	ids, err := LevelLoader().ListIDs()
	if err != nil {
		return nil
	}
	return ids
}
