// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/pipeflow/internal/games/pipes/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Par      int               `yaml:"par,omitempty"`
	Rows     []string          `yaml:"rows"` // Top row first
	Start    *YAMLPos          `yaml:"start,omitempty"`
	Ends     []YAMLPos         `yaml:"ends,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLPos is a cell position; y counts rows from the bottom.
type YAMLPos struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Level represents a parsed level ready for use.
// Cells is column-major: Cells[x][y], with y=0 the bottom row.
type Level struct {
	ID       string
	Name     string
	Par      int
	Columns  int
	Rows     int
	Cells    [][]core.CellSpec
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}

	grid, err := parseRows(yl.Rows)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Par:      yl.Par,
		Columns:  len(grid),
		Rows:     len(grid[0]),
		Cells:    grid,
		Metadata: yl.Metadata,
	}
	if level.Name == "" {
		level.Name = level.ID
	}

	// Explicit role flags
	if yl.Start != nil {
		if err := level.flag(*yl.Start, true); err != nil {
			return Level{}, fmt.Errorf("level %s start: %w", yl.ID, err)
		}
	}
	for _, p := range yl.Ends {
		if err := level.flag(p, false); err != nil {
			return Level{}, fmt.Errorf("level %s end: %w", yl.ID, err)
		}
	}

	return level, nil
}

// flag sets the start or end role on the cell at p.
func (l *Level) flag(p YAMLPos, start bool) error {
	if p.X < 0 || p.X >= l.Columns || p.Y < 0 || p.Y >= l.Rows {
		return fmt.Errorf("position (%d,%d) outside %dx%d board: %w",
			p.X, p.Y, l.Columns, l.Rows, core.ErrOutOfBounds)
	}
	if start {
		l.Cells[p.X][p.Y].Start = true
	} else {
		l.Cells[p.X][p.Y].End = true
	}
	return nil
}

// parseRows converts top-first row strings into a column-major table.
func parseRows(rows []string) ([][]core.CellSpec, error) {
	if len(rows) == 0 {
		return nil, core.ValidationError{Code: core.CodeBadSize, Message: "no rows"}
	}

	height := len(rows)
	var grid [][]core.CellSpec

	for i, line := range rows {
		tokens := strings.Fields(line)
		if i == 0 {
			if len(tokens) == 0 {
				return nil, core.ValidationError{Code: core.CodeBadSize, Message: "first row is empty"}
			}
			grid = make([][]core.CellSpec, len(tokens))
			for x := range grid {
				grid[x] = make([]core.CellSpec, height)
			}
		}
		if len(tokens) != len(grid) {
			return nil, core.ValidationError{
				Code:    core.CodeBadShape,
				Message: fmt.Sprintf("row %d has %d cells, expected %d", i+1, len(tokens), len(grid)),
			}
		}

		y := height - 1 - i
		for x, tok := range tokens {
			spec, err := ParseToken(tok)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i+1, x+1, err)
			}
			grid[x][y] = spec
		}
	}

	return grid, nil
}

// ParseToken parses a cell token: kind letter followed by an optional
// rotation digit, e.g. "L2", "X", "S1".
func ParseToken(tok string) (core.CellSpec, error) {
	if tok == "" {
		return core.CellSpec{}, core.ValidationError{Code: core.CodeUnknownKind, Message: "empty token"}
	}

	kind, err := core.ParseKind(tok[:1])
	if err != nil {
		return core.CellSpec{}, err
	}

	rot := 0
	switch len(tok) {
	case 1:
	case 2:
		if tok[1] < '0' || tok[1] > '3' {
			return core.CellSpec{}, core.ValidationError{
				Code:    core.CodeBadRotation,
				Message: fmt.Sprintf("token %q: rotation must be 0-3", tok),
			}
		}
		rot = int(tok[1] - '0')
	default:
		return core.CellSpec{}, core.ValidationError{
			Code:    core.CodeBadRotation,
			Message: fmt.Sprintf("token %q: expected kind letter and one rotation digit", tok),
		}
	}

	return core.CellSpec{Kind: kind, Rotation: rot}, nil
}

// FormatToken is the inverse of ParseToken.
func FormatToken(kind core.Kind, rotation int) string {
	return fmt.Sprintf("%c%d", kind.Letter(), rotation)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// NewBoard creates a Board from the level data.
func (l *Level) NewBoard() (*core.Board, error) {
	return core.NewBoard(l.Columns, l.Rows, l.Cells)
}
