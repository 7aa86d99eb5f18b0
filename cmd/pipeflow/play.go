package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pipeflow/internal/core"
	"github.com/vovakirdan/pipeflow/internal/games/pipes"
	"github.com/vovakirdan/pipeflow/internal/platform/tui"
	"github.com/vovakirdan/pipeflow/internal/registry"
	"github.com/vovakirdan/pipeflow/internal/storage"
)

var (
	flagLevel      int
	flagSkipPicker bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game. A level picker is shown first
unless --level or --no-picker is given.

Controls:
  Arrows/WASD/hjkl  - Move cursor
  Space/Enter       - Rotate the tile under the cursor
  Mouse click       - Rotate the clicked tile
  R                 - Reset level (restart after game over)
  P                 - Pause
  Esc               - Leave (while paused or after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - No scrambling, no move penalty, long blitz timer
  normal - Default scoring, blitz timer shrinks as you clear levels
  hard   - Tiles are scrambled, short blitz timer
  fixed  - No progression, stays at config's initial level

Examples:
  pipeflow play pipes
  pipeflow play pipes --level 4
  pipeflow play pipes_blitz --difficulty hard
  pipeflow play pipes --levels ./my-levels --no-picker`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at level N (1-indexed), skipping the picker")
	playCmd.Flags().BoolVar(&flagSkipPicker, "no-picker", false, "Start from the first level without the picker")
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "error", err)
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'pipeflow list' to see available games", gameID)
	}

	cfg := runtimeConfig()
	store := openStore()
	defer closeStore(store)

	switch {
	case flagLevel > 0:
		pipes.SetStartLevel(flagLevel)
	case !flagSkipPicker:
		selection, updatedCfg, err := tui.RunLevelSelector(store, gameID, cfg)
		if err != nil {
			return err
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return nil
		}
		pipes.SetStartLevel(selection.Level)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Debug("starting game", "game", gameID, "level", pipes.GetStartLevel())
	if err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if pg, ok := game.(*pipes.Game); ok && pg.Err() != nil {
		return pg.Err()
	}
	return nil
}
