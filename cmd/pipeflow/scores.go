package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipeflow/internal/games/pipes"
	"github.com/vovakirdan/pipeflow/internal/platform/tui"
	"github.com/vovakirdan/pipeflow/internal/registry"
	"github.com/vovakirdan/pipeflow/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Without a game, opens the interactive scoreboard.
With a game, prints its top 10 scores and the best result per level.

Examples:
  pipeflow scores
  pipeflow scores pipes
  pipeflow scores pipes_blitz --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores and level results for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer closeStore(store)

	if len(args) == 0 {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, "", cfg.ScreenW, cfg.ScreenH)
		return err
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'pipeflow list' to see available games", gameID)
	}

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", gameID)
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pipeflow play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	return printLevelResults(store, gameID)
}

// printLevelResults lists the best result for each level in play order.
func printLevelResults(store *storage.Store, gameID string) error {
	best, err := store.LevelResults(gameID)
	if err != nil {
		return fmt.Errorf("retrieving level results: %w", err)
	}
	if len(best) == 0 {
		return nil
	}

	ids := pipes.LevelIDs()
	names := pipes.LevelNames()

	fmt.Println()
	fmt.Printf("Best levels (%d/%d cleared)\n", len(best), len(ids))
	fmt.Printf("  %-8s  %-16s  %5s  %6s\n", "Level", "Name", "Moves", "Time")
	for i, id := range ids {
		rec, ok := best[id]
		if !ok {
			continue
		}
		name := id
		if i < len(names) {
			name = names[i]
		}
		fmt.Printf("  %-8s  %-16s  %5d  %5ds\n", id, name, rec.Moves, rec.Ticks/flagFPS)
	}
	return nil
}
