// pipeflow is a terminal pipe puzzle: rotate tiles until water flows from
// the source to every drain.
//
// Usage:
//
//	pipeflow list              - List available games
//	pipeflow play <game>       - Play a game
//	pipeflow menu              - Start menu to pick games interactively
//	pipeflow serve             - Start SSH server for remote play
//	pipeflow scores [game]     - Show high scores
//	pipeflow levels ...        - Inspect and check level files
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.pipeflow/scores.db)
//	--levels <dir>       - Load levels from a directory instead of the built-in pack
//	--config <path>      - Custom pipes config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--theme <name>       - Menu theme: default, mono
//	--verbose            - Debug logging
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipeflow/internal/config"
	"github.com/vovakirdan/pipeflow/internal/games/pipes"
	"github.com/vovakirdan/pipeflow/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLevelsDir  string
	flagConfig     string
	flagDifficulty string
	flagTheme      string
	flagVerbose    bool

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipeflow",
	Short: "Pipeflow - rotate pipes until the water flows",
	Long: `Pipeflow is a terminal pipe puzzle. Each level is a grid of pipe
pieces; rotate them until water runs from the source to every drain.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - List, show and check level files

Examples:
  pipeflow play pipes
  pipeflow play pipes_blitz --difficulty hard
  pipeflow menu
  pipeflow serve --ssh :2222
  pipeflow levels check ./my-levels`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in pack)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pipes config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Menu theme: "+strings.Join(tui.ThemeNames(), ", "))
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setup validates global flags and hands the shared options to the
// game and UI packages.
func setup(_ *cobra.Command, _ []string) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pipeflow",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	theme, ok := tui.ThemeByName(flagTheme)
	if !ok {
		return fmt.Errorf("unknown theme %q (want %s)", flagTheme, strings.Join(tui.ThemeNames(), ", "))
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	pipes.SetLogger(logger)
	pipes.SetConfigPath(flagConfig)
	pipes.SetDifficultyPreset(preset)
	pipes.SetLevelsDir(flagLevelsDir)
	tui.SetLogger(logger)
	tui.SetTheme(theme)

	logger.Debug("options",
		"fps", flagFPS,
		"seed", flagSeed,
		"db", flagDBPath,
		"levels", flagLevelsDir,
		"config", flagConfig,
		"difficulty", preset,
	)
	return nil
}

// difficulty returns the validated --difficulty preset.
func difficulty() config.DifficultyPreset {
	preset, _ := config.ParsePreset(flagDifficulty)
	return preset
}
