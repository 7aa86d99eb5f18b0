package core

// Tile is a single pipe piece on the board.
// Kind, Pos and the role flags are fixed once the tile is placed; only the
// rotation changes during play, and CarriesFlow is owned by Evaluate.
type Tile struct {
	Kind        Kind
	Pos         Coord
	IsStart     bool
	IsEnd       bool
	CarriesFlow bool

	rotation int // always in [0,3]
}

// NewTile creates a tile of the given kind and rotation at pos.
// Start and End kinds set their role flag.
func NewTile(kind Kind, rotation int, pos Coord) *Tile {
	return &Tile{
		Kind:     kind,
		Pos:      pos,
		IsStart:  kind == KindStart,
		IsEnd:    kind == KindEnd,
		rotation: normRotation(rotation),
	}
}

// Rotation returns the number of clockwise quarter turns from canonical.
func (t *Tile) Rotation() int {
	return t.rotation
}

// SetRotation sets the rotation, reduced modulo 4.
func (t *Tile) SetRotation(r int) {
	t.rotation = normRotation(r)
}

// Rotate turns the tile 90 degrees clockwise.
// It does not re-run evaluation.
func (t *Tile) Rotate() {
	t.rotation = (t.rotation + 1) % 4
}

// Open returns the sides that are open at the current rotation.
func (t *Tile) Open() Sides {
	return t.Kind.Canonical().Rotate(t.rotation)
}

// OpenDirections returns the open sides in clockwise order from Up.
func (t *Tile) OpenDirections() []Dir {
	return t.Open().Directions()
}

// OpensToward reports whether a connects to b across a's side d:
// d must be open on a and the opposite side must be open on b.
// A nil neighbour (board edge) never connects.
func OpensToward(a, b *Tile, d Dir) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Open().Has(d) && b.Open().Has(d.Opposite())
}
