package core

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned for positions outside the board.
var ErrOutOfBounds = errors.New("position out of bounds")

// CellSpec describes one cell of level data.
// Start and End set the role flag explicitly; Start/End kinds imply it.
type CellSpec struct {
	Kind     Kind
	Rotation int
	Start    bool
	End      bool
}

// Board is a rectangular grid of tiles.
// Tiles are stored in column-major order: index = x*Rows + y.
type Board struct {
	Columns int
	Rows    int
	tiles   []*Tile
}

// NewBoard builds a board from a column-major table where cells[x][y]
// describes the tile at column x, row y.
func NewBoard(columns, rows int, cells [][]CellSpec) (*Board, error) {
	if columns <= 0 || rows <= 0 {
		return nil, ValidationError{
			Code:    CodeBadSize,
			Message: fmt.Sprintf("board must be at least 1x1, got %dx%d", columns, rows),
		}
	}
	if len(cells) != columns {
		return nil, ValidationError{
			Code:    CodeBadShape,
			Message: fmt.Sprintf("expected %d columns, got %d", columns, len(cells)),
		}
	}

	b := &Board{
		Columns: columns,
		Rows:    rows,
		tiles:   make([]*Tile, columns*rows),
	}

	for x, col := range cells {
		if len(col) != rows {
			return nil, ValidationError{
				Code:    CodeBadShape,
				Message: fmt.Sprintf("column %d has %d rows, expected %d", x, len(col), rows),
			}
		}
		for y, spec := range col {
			if !spec.Kind.Valid() {
				return nil, ValidationError{
					Code:    CodeUnknownKind,
					Message: fmt.Sprintf("cell %v has unknown kind %d", C(x, y), spec.Kind),
				}
			}
			t := NewTile(spec.Kind, spec.Rotation, C(x, y))
			t.IsStart = t.IsStart || spec.Start
			t.IsEnd = t.IsEnd || spec.End
			b.tiles[b.index(C(x, y))] = t
		}
	}

	return b, nil
}

// index converts a coordinate to a flat array index.
func (b *Board) index(c Coord) int {
	return c.X*b.Rows + c.Y
}

// Size returns the number of cells.
func (b *Board) Size() int {
	return b.Columns * b.Rows
}

// InBounds returns true if the coordinate is within the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.Columns && c.Y >= 0 && c.Y < b.Rows
}

// TileAt returns the tile at (x, y), or nil if out of bounds.
func (b *Board) TileAt(x, y int) *Tile {
	return b.Tile(C(x, y))
}

// Tile returns the tile at c, or nil if out of bounds.
func (b *Board) Tile(c Coord) *Tile {
	if !b.InBounds(c) {
		return nil
	}
	return b.tiles[b.index(c)]
}

// RotateAt rotates the tile at (x, y) a quarter turn clockwise.
// Callers re-run Evaluate afterwards.
func (b *Board) RotateAt(x, y int) error {
	t := b.TileAt(x, y)
	if t == nil {
		return fmt.Errorf("rotate %v: %w", C(x, y), ErrOutOfBounds)
	}
	t.Rotate()
	return nil
}

// Tiles returns all tiles in column-major order.
// The slice is shared; callers must not reorder it.
func (b *Board) Tiles() []*Tile {
	return b.tiles
}

// Start returns the first tile flagged as start in column-major scan order.
func (b *Board) Start() *Tile {
	for _, t := range b.tiles {
		if t.IsStart {
			return t
		}
	}
	return nil
}

// Ends returns every tile flagged as end, in column-major order.
func (b *Board) Ends() []*Tile {
	var ends []*Tile
	for _, t := range b.tiles {
		if t.IsEnd {
			ends = append(ends, t)
		}
	}
	return ends
}

// FlowMap returns a copy of the CarriesFlow flags in column-major order.
func (b *Board) FlowMap() []bool {
	flow := make([]bool, len(b.tiles))
	for i, t := range b.tiles {
		flow[i] = t.CarriesFlow
	}
	return flow
}

// Rotations returns a copy of every tile's rotation in column-major order.
func (b *Board) Rotations() []int {
	rots := make([]int, len(b.tiles))
	for i, t := range b.tiles {
		rots[i] = t.rotation
	}
	return rots
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	tiles := make([]*Tile, len(b.tiles))
	for i, t := range b.tiles {
		cp := *t
		tiles[i] = &cp
	}
	return &Board{
		Columns: b.Columns,
		Rows:    b.Rows,
		tiles:   tiles,
	}
}
