// Package levels provides level loading functionality for the pipes game.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/pipeflow/internal/games/pipes/core"
	"github.com/vovakirdan/pipeflow/internal/games/pipes/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Level represents a complete level definition.
type Level struct {
	formats.Level
	FilePath string
}

// Loader handles loading levels from a file system.
type Loader struct {
	FS     fs.FS
	Root   string
	Logger *log.Logger
}

// Builtin returns a loader over the level pack compiled into the binary.
func Builtin() *Loader {
	return &Loader{FS: builtinFS, Root: "builtin"}
}

// NewDirLoader creates a loader for level files under dir on disk.
func NewDirLoader(dir string) *Loader {
	return &Loader{FS: os.DirFS(dir), Root: "."}
}

func (l *Loader) logger() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.New(io.Discard)
}

// Files lists every supported level file under the loader's root.
func (l *Loader) Files() ([]string, error) {
	var files []string
	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isSupportedExtension(strings.ToLower(path.Ext(p))) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", l.Root, err)
	}
	return files, nil
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	files, err := l.Files()
	if err != nil {
		return nil, err
	}

	levels := make([]Level, 0, len(files))
	for _, p := range files {
		level, err := l.LoadFile(p)
		if err != nil {
			l.logger().Warn("skipping level file", "path", p, "err", err)
			continue
		}
		levels = append(levels, level)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	l.logger().Debug("levels loaded", "root", l.Root, "count", len(levels))
	return levels, nil
}

// LoadFile loads a single level file relative to the loader's file system.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(path.Ext(p)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	return Level{Level: parsed, FilePath: p}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Check builds the level's board and reports structural problems.
// A level that is already solved as shipped is reported too.
func Check(level Level) []error {
	board, err := level.NewBoard()
	if err != nil {
		return []error{err}
	}

	errs := core.ValidateBoard(board)
	if len(errs) > 0 {
		return errs
	}

	if board.Evaluate().Solved {
		errs = append(errs, core.ValidationError{
			Code:    core.CodeAlreadySolved,
			Message: fmt.Sprintf("level %s is solved without any rotation", level.ID),
		})
	}
	return errs
}

// FileReport is the outcome of checking one level file.
type FileReport struct {
	Path   string
	ID     string // Empty when the file did not parse
	Errors []error
}

// OK reports whether the file passed every check.
func (r FileReport) OK() bool {
	return len(r.Errors) == 0
}

// CheckAll loads and checks every level file, including the ones LoadAll
// would skip. A second file reusing an ID is reported as a duplicate.
func (l *Loader) CheckAll() ([]FileReport, error) {
	files, err := l.Files()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]string)
	reports := make([]FileReport, 0, len(files))
	for _, p := range files {
		report := FileReport{Path: p}

		level, err := l.LoadFile(p)
		if err != nil {
			report.Errors = []error{err}
			reports = append(reports, report)
			continue
		}

		report.ID = level.ID
		report.Errors = Check(level)
		if first, dup := seen[level.ID]; dup {
			report.Errors = append(report.Errors, fmt.Errorf("duplicate level id %q, first defined in %s", level.ID, first))
		} else {
			seen[level.ID] = p
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
