package levels_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/pipeflow/internal/games/pipes/core"
	"github.com/vovakirdan/pipeflow/internal/games/pipes/levels"
)

func TestBuiltinLoadAll(t *testing.T) {
	lvls, err := levels.Builtin().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(lvls) < 8 {
		t.Errorf("expected at least 8 builtin levels, got %d", len(lvls))
	}

	// Should be sorted by ID
	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}
}

func TestBuiltinLevelsPassCheck(t *testing.T) {
	lvls, err := levels.Builtin().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	for _, lvl := range lvls {
		if errs := levels.Check(lvl); len(errs) > 0 {
			t.Errorf("level %s: %v", lvl.ID, errs)
		}
	}
}

func TestLoadLevel01(t *testing.T) {
	lvl, err := levels.Builtin().LoadByID("lvl01")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if lvl.Name != "First Flow" {
		t.Errorf("expected Name 'First Flow', got %q", lvl.Name)
	}
	if lvl.Columns != 3 || lvl.Rows != 1 {
		t.Errorf("expected 3x1, got %dx%d", lvl.Columns, lvl.Rows)
	}
	if lvl.Par != 1 {
		t.Errorf("expected par 1, got %d", lvl.Par)
	}
	if lvl.Metadata["difficulty"] != "tutorial" {
		t.Errorf("expected tutorial metadata, got %v", lvl.Metadata)
	}

	board, err := lvl.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	if board.Evaluate().Solved {
		t.Fatal("level should not ship solved")
	}
	if err := board.RotateAt(1, 0); err != nil {
		t.Fatalf("RotateAt failed: %v", err)
	}
	if !board.Evaluate().Solved {
		t.Error("one turn of the middle straight should solve lvl01")
	}
}

func TestLoadLevel02RowsFlipped(t *testing.T) {
	lvl, err := levels.Builtin().LoadByID("lvl02")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	board, err := lvl.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	// The last listed row is row 0.
	if board.TileAt(0, 0).Kind != core.KindStart {
		t.Errorf("expected start at (0,0), got %v", board.TileAt(0, 0).Kind)
	}
	if board.TileAt(1, 0).Kind != core.KindEnd {
		t.Errorf("expected end at (1,0), got %v", board.TileAt(1, 0).Kind)
	}
	if board.TileAt(0, 1).Kind != core.KindCorner {
		t.Errorf("expected corner at (0,1), got %v", board.TileAt(0, 1).Kind)
	}

	// Corner at (0,1) needs one turn, corner at (1,1) needs two.
	for _, r := range []struct{ x, y int }{{0, 1}, {1, 1}, {1, 1}} {
		if err := board.RotateAt(r.x, r.y); err != nil {
			t.Fatalf("RotateAt failed: %v", err)
		}
	}
	if !board.Evaluate().Solved {
		t.Errorf("expected solved after par rotations\n%s", core.RenderASCII(board))
	}
}

func TestLoadByIDMissing(t *testing.T) {
	if _, err := levels.Builtin().LoadByID("nope"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestListIDs(t *testing.T) {
	ids, err := levels.Builtin().ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) == 0 || ids[0] != "lvl01" {
		t.Errorf("expected lvl01 first, got %v", ids)
	}
}

func TestLoaderSkipsInvalidFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"good.yaml":    {Data: []byte("id: a\nrows:\n  - \"S1 E3\"\n")},
		"ragged.yaml":  {Data: []byte("id: b\nrows:\n  - \"S1 E3\"\n  - \"I0\"\n")},
		"nested/c.yml": {Data: []byte("id: c\nrows:\n  - \"S1 I0 E3\"\n")},
		"readme.txt":   {Data: []byte("not a level")},
	}

	loader := &levels.Loader{FS: fsys, Root: "."}
	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(lvls) != 2 {
		t.Fatalf("expected 2 valid levels, got %d", len(lvls))
	}
	if lvls[0].ID != "a" || lvls[1].ID != "c" {
		t.Errorf("unexpected ids %s, %s", lvls[0].ID, lvls[1].ID)
	}
	if lvls[1].FilePath != "nested/c.yml" {
		t.Errorf("expected FilePath nested/c.yml, got %q", lvls[1].FilePath)
	}
}

func TestNewDirLoader(t *testing.T) {
	dir := t.TempDir()
	data := []byte("id: disk\nname: On Disk\nrows:\n  - \"S0\"\n  - \"E0\"\n")
	if err := os.WriteFile(filepath.Join(dir, "disk.yaml"), data, 0o644); err != nil {
		t.Fatalf("writing level: %v", err)
	}

	lvl, err := levels.NewDirLoader(dir).LoadByID("disk")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "On Disk" || lvl.Columns != 1 || lvl.Rows != 2 {
		t.Errorf("unexpected level %+v", lvl.Level)
	}
}

func TestCheck(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
		code string
	}{
		{
			name: "no start",
			yaml: "id: x\nrows:\n  - \"I0 E3\"\n",
			code: core.CodeNoStart,
		},
		{
			name: "no end",
			yaml: "id: x\nrows:\n  - \"S1 I0\"\n",
			code: core.CodeNoEnd,
		},
		{
			name: "already solved",
			yaml: "id: x\nrows:\n  - \"S1 I0 E3\"\n",
			code: core.CodeAlreadySolved,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			loader := &levels.Loader{FS: fstest.MapFS{"x.yaml": {Data: []byte(tc.yaml)}}, Root: "."}
			lvl, err := loader.LoadFile("x.yaml")
			if err != nil {
				t.Fatalf("LoadFile failed: %v", err)
			}

			errs := levels.Check(lvl)
			if len(errs) == 0 {
				t.Fatal("expected problems, got none")
			}
			var verr core.ValidationError
			if !errors.As(errs[0], &verr) || verr.Code != tc.code {
				t.Errorf("expected code %s, got %v", tc.code, errs)
			}
		})
	}
}

func TestCheckAll(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml":      {Data: []byte("id: a\nrows:\n  - \"S1 I1 E3\"\n")},
		"bad.yaml":    {Data: []byte("id: b\nrows:\n  - \"S1 E3\"\n  - \"I0\"\n")},
		"dup.yaml":    {Data: []byte("id: a\nrows:\n  - \"S1 I1 E3\"\n")},
		"solved.yaml": {Data: []byte("id: s\nrows:\n  - \"S1 I0 E3\"\n")},
	}

	reports, err := (&levels.Loader{FS: fsys, Root: "."}).CheckAll()
	if err != nil {
		t.Fatalf("CheckAll failed: %v", err)
	}
	if len(reports) != 4 {
		t.Fatalf("expected 4 reports, got %d", len(reports))
	}

	byPath := make(map[string]levels.FileReport)
	for _, r := range reports {
		byPath[r.Path] = r
	}

	if r := byPath["a.yaml"]; !r.OK() || r.ID != "a" {
		t.Errorf("a.yaml should pass, got %+v", r)
	}
	if r := byPath["bad.yaml"]; r.OK() || r.ID != "" {
		t.Errorf("bad.yaml should fail to parse, got %+v", r)
	}
	if r := byPath["dup.yaml"]; r.OK() || len(r.Errors) != 1 {
		t.Errorf("dup.yaml should report the duplicate id, got %+v", r)
	}

	r := byPath["solved.yaml"]
	var verr core.ValidationError
	if r.OK() || !errors.As(r.Errors[0], &verr) || verr.Code != core.CodeAlreadySolved {
		t.Errorf("solved.yaml should be reported as already solved, got %+v", r)
	}
}

func TestBuiltinCheckAllClean(t *testing.T) {
	reports, err := levels.Builtin().CheckAll()
	if err != nil {
		t.Fatalf("CheckAll failed: %v", err)
	}
	for _, r := range reports {
		if !r.OK() {
			t.Errorf("%s: %v", r.Path, r.Errors)
		}
	}
}
