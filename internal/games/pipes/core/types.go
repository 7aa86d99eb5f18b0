// Package core provides the connectivity engine for the pipes puzzle.
// This package is UI-agnostic and deterministic.
package core

import (
	"fmt"
	"strings"
)

// Dir is one of the four sides of a tile, numbered clockwise from Up.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// AllDirs lists the directions in clockwise order.
var AllDirs = [4]Dir{DirUp, DirRight, DirDown, DirLeft}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one cell in this direction.
// Rows grow upward: Up is row+1, Down is row-1.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

// Rotate returns the direction turned clockwise by r quarter turns.
func (d Dir) Rotate(r int) Dir {
	return Dir((int(d) + normRotation(r)) % 4)
}

// Sides is a set of open directions stored as a bitmask (bit n = Dir n).
type Sides uint8

// SidesOf builds a set from the given directions.
func SidesOf(dirs ...Dir) Sides {
	var s Sides
	for _, d := range dirs {
		s |= 1 << (d % 4)
	}
	return s
}

// Has returns true if d is in the set.
func (s Sides) Has(d Dir) bool {
	return s&(1<<(d%4)) != 0
}

// Count returns the number of open sides.
func (s Sides) Count() int {
	n := 0
	for _, d := range AllDirs {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Rotate returns the set with every direction turned clockwise by r quarter turns.
func (s Sides) Rotate(r int) Sides {
	var out Sides
	for _, d := range AllDirs {
		if s.Has(d) {
			out |= 1 << d.Rotate(r)
		}
	}
	return out
}

// Directions returns the members in clockwise order starting from Up.
func (s Sides) Directions() []Dir {
	dirs := make([]Dir, 0, 4)
	for _, d := range AllDirs {
		if s.Has(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// String returns e.g. "{Up,Right}".
func (s Sides) String() string {
	names := make([]string, 0, 4)
	for _, d := range s.Directions() {
		names = append(names, d.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Kind is the fixed connector shape of a tile.
type Kind uint8

const (
	KindStraight Kind = iota
	KindCorner
	KindTJunction
	KindCross
	KindEnd
	KindStart
)

// canonical holds the open sides of each kind at rotation 0.
var canonical = [...]Sides{
	KindStraight:  SidesOf(DirRight, DirLeft),
	KindCorner:    SidesOf(DirUp, DirRight),
	KindTJunction: SidesOf(DirUp, DirRight, DirLeft),
	KindCross:     SidesOf(DirUp, DirRight, DirDown, DirLeft),
	KindEnd:       SidesOf(DirUp),
	KindStart:     SidesOf(DirUp),
}

// Canonical returns the open sides of the kind at rotation 0.
func (k Kind) Canonical() Sides {
	if int(k) >= len(canonical) {
		return 0
	}
	return canonical[k]
}

// Valid returns true for a known kind.
func (k Kind) Valid() bool {
	return int(k) < len(canonical)
}

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindStraight:
		return "Straight"
	case KindCorner:
		return "Corner"
	case KindTJunction:
		return "TJunction"
	case KindCross:
		return "Cross"
	case KindEnd:
		return "End"
	case KindStart:
		return "Start"
	default:
		return "Unknown"
	}
}

// Letter returns the one-letter token used in level files.
func (k Kind) Letter() byte {
	switch k {
	case KindStraight:
		return 'I'
	case KindCorner:
		return 'L'
	case KindTJunction:
		return 'T'
	case KindCross:
		return 'X'
	case KindEnd:
		return 'E'
	case KindStart:
		return 'S'
	default:
		return '?'
	}
}

// ParseKind parses a kind from its name or level-file letter (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "i", "straight":
		return KindStraight, nil
	case "l", "corner":
		return KindCorner, nil
	case "t", "tjunction", "t_junction":
		return KindTJunction, nil
	case "x", "cross":
		return KindCross, nil
	case "e", "end":
		return KindEnd, nil
	case "s", "start":
		return KindStart, nil
	default:
		return 0, ValidationError{
			Code:    CodeUnknownKind,
			Message: fmt.Sprintf("unknown tile kind %q", s),
		}
	}
}

// normRotation reduces r into [0,3], including negative values.
func normRotation(r int) int {
	r %= 4
	if r < 0 {
		r += 4
	}
	return r
}
