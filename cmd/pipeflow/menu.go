package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipeflow/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start pipeflow in interactive menu mode.

Use arrow keys or j/k to pick a game, left/right to change difficulty and
Enter to continue to the level picker. After a run ends, Esc returns to
the menu. Tab opens the scoreboard.

Examples:
  pipeflow menu
  pipeflow menu --difficulty easy
  pipeflow menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	defer closeStore(store)

	return tui.RunSession(store, runtimeConfig(), difficulty())
}
