package core_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/pipeflow/internal/games/pipes/core"
)

// cell is shorthand for a CellSpec in test fixtures.
func cell(k core.Kind, rot int) core.CellSpec {
	return core.CellSpec{Kind: k, Rotation: rot}
}

// mustBoard builds a board from cells[x][y] or fails the test.
func mustBoard(t *testing.T, cells [][]core.CellSpec) *core.Board {
	t.Helper()
	rows := 0
	if len(cells) > 0 {
		rows = len(cells[0])
	}
	b, err := core.NewBoard(len(cells), rows, cells)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	return b
}

// randomBoard builds a deterministic pseudo-random board with one start and one end.
func randomBoard(t *testing.T, seed int64, cols, rows int) *core.Board {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	kinds := []core.Kind{core.KindStraight, core.KindCorner, core.KindTJunction, core.KindCross}

	cells := make([][]core.CellSpec, cols)
	for x := range cells {
		cells[x] = make([]core.CellSpec, rows)
		for y := range cells[x] {
			cells[x][y] = cell(kinds[rng.Intn(len(kinds))], rng.Intn(4))
		}
	}
	cells[0][0] = cell(core.KindStart, rng.Intn(4))
	cells[cols-1][rows-1] = cell(core.KindEnd, rng.Intn(4))

	return mustBoard(t, cells)
}

// referenceFlow computes reachability with a depth-first walk that visits
// directions in reverse order, independent of Board.Evaluate.
func referenceFlow(b *core.Board) ([]bool, bool) {
	flow := make([]bool, b.Size())
	start := b.Start()
	if start == nil {
		return flow, false
	}

	idx := func(c core.Coord) int { return c.X*b.Rows + c.Y }
	solved := false
	stack := []*core.Tile{start}
	flow[idx(start.Pos)] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.IsEnd {
			solved = true
		}
		dirs := cur.OpenDirections()
		for i := len(dirs) - 1; i >= 0; i-- {
			d := dirs[i]
			next := b.Tile(cur.Pos.Step(d))
			if next == nil || flow[idx(next.Pos)] {
				continue
			}
			if core.OpensToward(cur, next, d) {
				flow[idx(next.Pos)] = true
				stack = append(stack, next)
			}
		}
	}
	return flow, solved
}
