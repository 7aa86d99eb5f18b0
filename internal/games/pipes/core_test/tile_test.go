package core_test

import (
	"testing"

	"github.com/vovakirdan/pipeflow/internal/games/pipes/core"
)

var allKinds = []core.Kind{
	core.KindStraight,
	core.KindCorner,
	core.KindTJunction,
	core.KindCross,
	core.KindEnd,
	core.KindStart,
}

func TestDirOpposite(t *testing.T) {
	testCases := []struct {
		d, expected core.Dir
	}{
		{core.DirUp, core.DirDown},
		{core.DirRight, core.DirLeft},
		{core.DirDown, core.DirUp},
		{core.DirLeft, core.DirRight},
	}

	for _, tc := range testCases {
		if got := tc.d.Opposite(); got != tc.expected {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.d, got, tc.expected)
		}
	}
}

func TestDirDelta(t *testing.T) {
	testCases := []struct {
		d      core.Dir
		dx, dy int
	}{
		{core.DirUp, 0, 1},
		{core.DirRight, 1, 0},
		{core.DirDown, 0, -1},
		{core.DirLeft, -1, 0},
	}

	for _, tc := range testCases {
		dx, dy := tc.d.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%v.Delta() = (%d,%d), expected (%d,%d)", tc.d, dx, dy, tc.dx, tc.dy)
		}
	}

	if got := core.C(2, 2).Step(core.DirUp); got != core.C(2, 3) {
		t.Errorf("Step(Up) from (2,2) = %v, expected (2,3)", got)
	}
}

// TestOpenDirectionsTable checks every kind and rotation against a hand-written table.
func TestOpenDirectionsTable(t *testing.T) {
	U, R, D, L := core.DirUp, core.DirRight, core.DirDown, core.DirLeft

	expected := map[core.Kind][4]core.Sides{
		core.KindStraight: {
			core.SidesOf(R, L), core.SidesOf(U, D), core.SidesOf(R, L), core.SidesOf(U, D),
		},
		core.KindCorner: {
			core.SidesOf(U, R), core.SidesOf(R, D), core.SidesOf(D, L), core.SidesOf(L, U),
		},
		core.KindTJunction: {
			core.SidesOf(U, R, L), core.SidesOf(U, R, D), core.SidesOf(R, D, L), core.SidesOf(D, L, U),
		},
		core.KindCross: {
			core.SidesOf(U, R, D, L), core.SidesOf(U, R, D, L), core.SidesOf(U, R, D, L), core.SidesOf(U, R, D, L),
		},
		core.KindEnd: {
			core.SidesOf(U), core.SidesOf(R), core.SidesOf(D), core.SidesOf(L),
		},
		core.KindStart: {
			core.SidesOf(U), core.SidesOf(R), core.SidesOf(D), core.SidesOf(L),
		},
	}

	for kind, byRot := range expected {
		for rot, want := range byRot {
			tile := core.NewTile(kind, rot, core.C(0, 0))
			if got := tile.Open(); got != want {
				t.Errorf("%v rot %d: open = %v, expected %v", kind, rot, got, want)
			}
		}
	}
}

func TestRotationPeriodicity(t *testing.T) {
	for _, kind := range allKinds {
		for rot := 0; rot < 4; rot++ {
			tile := core.NewTile(kind, rot, core.C(0, 0))
			before := tile.Open()

			for i := 0; i < 4; i++ {
				tile.Rotate()
			}

			if tile.Rotation() != rot {
				t.Errorf("%v rot %d: rotation after 4 turns = %d", kind, rot, tile.Rotation())
			}
			if tile.Open() != before {
				t.Errorf("%v rot %d: open after 4 turns = %v, expected %v", kind, rot, tile.Open(), before)
			}
		}
	}
}

func TestRotationStaysReduced(t *testing.T) {
	tile := core.NewTile(core.KindCorner, 7, core.C(0, 0))
	if tile.Rotation() != 3 {
		t.Errorf("NewTile rotation 7 stored as %d, expected 3", tile.Rotation())
	}

	tile.SetRotation(-1)
	if tile.Rotation() != 3 {
		t.Errorf("SetRotation(-1) stored %d, expected 3", tile.Rotation())
	}

	tile.Rotate()
	if tile.Rotation() != 0 {
		t.Errorf("Rotate from 3 gave %d, expected 0", tile.Rotation())
	}
}

func TestStraightAndCrossPeriods(t *testing.T) {
	straight := core.NewTile(core.KindStraight, 0, core.C(0, 0))
	first := straight.Open()
	straight.Rotate()
	straight.Rotate()
	if straight.Open() != first {
		t.Errorf("straight should repeat after 2 turns: %v vs %v", straight.Open(), first)
	}

	cross := core.NewTile(core.KindCross, 0, core.C(0, 0))
	first = cross.Open()
	cross.Rotate()
	if cross.Open() != first {
		t.Errorf("cross should repeat after 1 turn: %v vs %v", cross.Open(), first)
	}
}

func TestRoleFlagsFromKind(t *testing.T) {
	start := core.NewTile(core.KindStart, 0, core.C(0, 0))
	if !start.IsStart || start.IsEnd {
		t.Errorf("start tile flags: start=%v end=%v", start.IsStart, start.IsEnd)
	}

	end := core.NewTile(core.KindEnd, 0, core.C(0, 0))
	if end.IsStart || !end.IsEnd {
		t.Errorf("end tile flags: start=%v end=%v", end.IsStart, end.IsEnd)
	}
}

// TestOpensTowardSymmetry checks the predicate against its definition for
// every pair of kinds, rotations and directions.
func TestOpensTowardSymmetry(t *testing.T) {
	for _, ka := range allKinds {
		for _, kb := range allKinds {
			for ra := 0; ra < 4; ra++ {
				for rb := 0; rb < 4; rb++ {
					a := core.NewTile(ka, ra, core.C(0, 0))
					b := core.NewTile(kb, rb, core.C(1, 0))
					for _, d := range core.AllDirs {
						want := a.Open().Has(d) && b.Open().Has(d.Opposite())
						if got := core.OpensToward(a, b, d); got != want {
							t.Errorf("OpensToward(%v r%d, %v r%d, %v) = %v, expected %v",
								ka, ra, kb, rb, d, got, want)
						}
					}
				}
			}
		}
	}
}

func TestOpensTowardFixtures(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     *core.Tile
		d        core.Dir
		expected bool
	}{
		{
			name:     "straight to straight horizontally",
			a:        core.NewTile(core.KindStraight, 0, core.C(0, 0)),
			b:        core.NewTile(core.KindStraight, 0, core.C(1, 0)),
			d:        core.DirRight,
			expected: true,
		},
		{
			name:     "horizontal straight to vertical straight",
			a:        core.NewTile(core.KindStraight, 0, core.C(0, 0)),
			b:        core.NewTile(core.KindStraight, 1, core.C(1, 0)),
			d:        core.DirRight,
			expected: false,
		},
		{
			name:     "corner up into T facing down",
			a:        core.NewTile(core.KindCorner, 0, core.C(0, 0)),
			b:        core.NewTile(core.KindTJunction, 2, core.C(0, 1)),
			d:        core.DirUp,
			expected: true,
		},
		{
			name:     "start right into end left",
			a:        core.NewTile(core.KindStart, 1, core.C(0, 0)),
			b:        core.NewTile(core.KindEnd, 3, core.C(1, 0)),
			d:        core.DirRight,
			expected: true,
		},
		{
			name:     "start right into end up",
			a:        core.NewTile(core.KindStart, 1, core.C(0, 0)),
			b:        core.NewTile(core.KindEnd, 0, core.C(1, 0)),
			d:        core.DirRight,
			expected: false,
		},
		{
			name:     "cross left into corner right",
			a:        core.NewTile(core.KindCross, 0, core.C(1, 0)),
			b:        core.NewTile(core.KindCorner, 0, core.C(0, 0)),
			d:        core.DirLeft,
			expected: true,
		},
		{
			name:     "side not open on source",
			a:        core.NewTile(core.KindCorner, 0, core.C(0, 0)),
			b:        core.NewTile(core.KindCross, 0, core.C(0, 1)),
			d:        core.DirDown,
			expected: false,
		},
		{
			name:     "missing neighbour",
			a:        core.NewTile(core.KindCross, 0, core.C(0, 0)),
			b:        nil,
			d:        core.DirUp,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := core.OpensToward(tc.a, tc.b, tc.d); got != tc.expected {
				t.Errorf("OpensToward() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	testCases := []struct {
		input    string
		expected core.Kind
	}{
		{"I", core.KindStraight},
		{"straight", core.KindStraight},
		{"l", core.KindCorner},
		{"T_Junction", core.KindTJunction},
		{"X", core.KindCross},
		{"end", core.KindEnd},
		{"S", core.KindStart},
	}

	for _, tc := range testCases {
		got, err := core.ParseKind(tc.input)
		if err != nil {
			t.Errorf("ParseKind(%q) failed: %v", tc.input, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseKind(%q) = %v, expected %v", tc.input, got, tc.expected)
		}
	}

	if _, err := core.ParseKind("Q"); err == nil {
		t.Error("ParseKind(\"Q\") should fail")
	}
}

func TestKindLetterRoundTrip(t *testing.T) {
	for _, kind := range allKinds {
		got, err := core.ParseKind(string(kind.Letter()))
		if err != nil || got != kind {
			t.Errorf("letter %c did not parse back to %v (got %v, err %v)", kind.Letter(), kind, got, err)
		}
	}
}
