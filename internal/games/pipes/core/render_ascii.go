package core

import (
	"fmt"
	"strings"
)

// glyphs maps an open-side set to its box-drawing character.
var glyphs = map[Sides]rune{
	0:                                          '·',
	SidesOf(DirUp):                             '╵',
	SidesOf(DirRight):                          '╶',
	SidesOf(DirDown):                           '╷',
	SidesOf(DirLeft):                           '╴',
	SidesOf(DirUp, DirDown):                    '│',
	SidesOf(DirRight, DirLeft):                 '─',
	SidesOf(DirUp, DirRight):                   '└',
	SidesOf(DirRight, DirDown):                 '┌',
	SidesOf(DirDown, DirLeft):                  '┐',
	SidesOf(DirLeft, DirUp):                    '┘',
	SidesOf(DirUp, DirRight, DirDown):          '├',
	SidesOf(DirRight, DirDown, DirLeft):        '┬',
	SidesOf(DirDown, DirLeft, DirUp):           '┤',
	SidesOf(DirLeft, DirUp, DirRight):          '┴',
	SidesOf(DirUp, DirRight, DirDown, DirLeft): '┼',
}

// Glyph returns the box-drawing character for an open-side set.
func Glyph(s Sides) rune {
	if r, ok := glyphs[s&0x0F]; ok {
		return r
	}
	return '?'
}

// RenderASCII creates a text picture of the board for debugging, tests and
// the levels command. The highest row is printed first so Up points up.
//
// Format per cell (3 chars): role marker, glyph, flow marker
//   - role marker: 'S' start, 'E' end, ' ' otherwise
//   - flow marker: '~' when the tile carries flow
func RenderASCII(b *Board) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%dx%d\n", b.Columns, b.Rows))
	for y := b.Rows - 1; y >= 0; y-- {
		for x := 0; x < b.Columns; x++ {
			t := b.TileAt(x, y)
			switch {
			case t.IsStart:
				sb.WriteByte('S')
			case t.IsEnd:
				sb.WriteByte('E')
			default:
				sb.WriteByte(' ')
			}
			sb.WriteRune(Glyph(t.Open()))
			if t.CarriesFlow {
				sb.WriteByte('~')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
