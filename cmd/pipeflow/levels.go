package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipeflow/internal/games/pipes"
	"github.com/vovakirdan/pipeflow/internal/games/pipes/core"
	"github.com/vovakirdan/pipeflow/internal/games/pipes/levels"
)

// errCheckFailed makes `levels check` exit non-zero without repeating the report.
var errCheckFailed = errors.New("level check failed")

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List, show and check level files",
	Long: `Inspect the level pack. The built-in pack is used unless --levels
points at a directory of YAML level files.`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List levels in play order",
	RunE:  runLevelsList,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Draw a level as shipped and evaluate its flow",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsShow,
}

var levelsCheckCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Validate level files",
	Long: `Parse and validate every level file. Reports malformed rows, bad
rotations, missing or repeated start tiles, missing ends, duplicate IDs and
levels that are already solved as shipped.

Examples:
  pipeflow levels check
  pipeflow levels check ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevelsCheck,
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsShowCmd)
	levelsCmd.AddCommand(levelsCheckCmd)
}

func runLevelsList(_ *cobra.Command, _ []string) error {
	lvls, err := pipes.LevelLoader().LoadAll()
	if err != nil {
		return err
	}
	if len(lvls) == 0 {
		fmt.Println("No levels found.")
		return nil
	}

	fmt.Printf("  %-3s  %-8s  %-16s  %-5s  %-3s  %s\n", "#", "ID", "Name", "Size", "Par", "Difficulty")
	for i, lvl := range lvls {
		par := "-"
		if lvl.Par > 0 {
			par = fmt.Sprintf("%d", lvl.Par)
		}
		size := fmt.Sprintf("%dx%d", lvl.Columns, lvl.Rows)
		fmt.Printf("  %-3d  %-8s  %-16s  %-5s  %-3s  %s\n", i+1, lvl.ID, lvl.Name, size, par, lvl.Metadata["difficulty"])
	}
	return nil
}

func runLevelsShow(_ *cobra.Command, args []string) error {
	lvl, err := pipes.LevelLoader().LoadByID(args[0])
	if err != nil {
		return err
	}

	board, err := lvl.NewBoard()
	if err != nil {
		return err
	}
	result := board.Evaluate()
	stats := core.ComputeBoardStats(board)

	fmt.Printf("%s - %s (%s)\n", lvl.ID, lvl.Name, lvl.FilePath)
	if lvl.Par > 0 {
		fmt.Printf("Par: %d rotations\n", lvl.Par)
	}
	fmt.Println()
	fmt.Print(core.RenderASCII(board))
	fmt.Println()

	kinds := make([]string, 0, len(stats.ByKind))
	for kind, n := range stats.ByKind {
		kinds = append(kinds, fmt.Sprintf("%s=%d", kind, n))
	}
	sort.Strings(kinds)
	fmt.Printf("Tiles: %s\n", strings.Join(kinds, " "))
	fmt.Printf("Flowing: %d/%d  Ends reached: %d/%d  Solved: %v\n",
		stats.Flowing, stats.TotalCells, result.EndsReached, stats.Ends, result.Solved)

	if len(lvl.Metadata) > 0 {
		keys := make([]string, 0, len(lvl.Metadata))
		for k := range lvl.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s: %s\n", k, lvl.Metadata[k])
		}
	}
	return nil
}

func runLevelsCheck(_ *cobra.Command, args []string) error {
	loader := pipes.LevelLoader()
	if len(args) == 1 {
		loader = levels.NewDirLoader(args[0])
		loader.Logger = logger
	}

	reports, err := loader.CheckAll()
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Println("No level files found.")
		return nil
	}

	failed := 0
	for _, r := range reports {
		if r.OK() {
			fmt.Printf("ok    %s (%s)\n", r.Path, r.ID)
			continue
		}
		failed++
		fmt.Printf("FAIL  %s\n", r.Path)
		for _, e := range r.Errors {
			fmt.Printf("      %v\n", e)
		}
	}

	fmt.Printf("\n%d files, %d failed\n", len(reports), failed)
	if failed > 0 {
		fmt.Fprintln(os.Stderr, "some level files have problems")
		return errCheckFailed
	}
	return nil
}
