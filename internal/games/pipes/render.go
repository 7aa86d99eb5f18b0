package pipes

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/pipeflow/internal/core"
	"github.com/vovakirdan/pipeflow/internal/games/pipes/core"
)

const (
	cellStride   = 4 // Columns per board cell: arm, glyph, arm, gap
	rowStride    = 2 // Lines per board row: tile line, gap line
	hudHeight    = 3
	footerHeight = 2
)

// Board colours.
const (
	colorIdle   = platformcore.ColorGray
	colorFlow   = platformcore.ColorBrightBlue
	colorStart  = platformcore.ColorBrightGreen
	colorEnd    = platformcore.ColorBrightRed
	colorCursor = platformcore.ColorBrightYellow
	colorFrame  = platformcore.ColorDarkGray
)

// layout positions the board frame on screen.
type layout struct {
	frame platformcore.Rect
}

func computeLayout(columns, rows, screenW int) layout {
	w := columns*cellStride + 3
	h := rows*rowStride + 1
	x := (screenW - w) / 2
	if x < 0 {
		x = 0
	}
	return layout{frame: platformcore.NewRect(x, hudHeight+1, w, h)}
}

// center returns the screen column and line of cell (x, y).
// Row 0 is drawn at the bottom of the frame.
func (l layout) center(x, y, rows int) (int, int) {
	cx := l.frame.X + 3 + x*cellStride
	cy := l.frame.Y + 1 + (rows-1-y)*rowStride
	return cx, cy
}

// cellAt maps a screen position to the board cell drawn there. Only a
// tile's glyph and its two arms count; gap columns, gap lines and the frame
// do not.
func (l layout) cellAt(px, py, rows int) (core.Coord, bool) {
	dx := px - (l.frame.X + 1)
	dy := py - (l.frame.Y + 1)
	columns := (l.frame.W - 3) / cellStride
	if dx <= 0 || dx >= columns*cellStride || dx%cellStride == 0 {
		return core.Coord{}, false
	}
	if dy < 0 || dy >= rows*rowStride || dy%rowStride != 0 {
		return core.Coord{}, false
	}
	return core.C((dx-1)/cellStride, rows-1-dy/rowStride), true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.board == nil {
		g.renderNoLevels(dst)
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

func (g *Game) renderNoLevels(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCenteredColored(y, "No levels to play", platformcore.ColorRed)
	if g.loadErr != nil {
		dst.DrawTextCentered(y+1, g.loadErr.Error())
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	need := fmt.Sprintf("Need %dx%d", g.layout.frame.W+2, g.layout.frame.Bottom()+footerHeight)
	dst.DrawTextCentered(y+1, need)
}

// renderHUD draws the title, level, score, moves and timer.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	title := "PIPES"
	if g.mode == ModeBlitz {
		title = "PIPES BLITZ"
	}
	dst.DrawTextCenteredColored(0, title, platformcore.ColorBrightCyan)

	left := g.layout.frame.X
	right := g.layout.frame.Right()
	if g.screenW >= 40 {
		left = 1
		right = g.screenW - 1
	}

	levelStr := fmt.Sprintf("Level %d/%d: %s", g.levelIndex+1, len(g.allLevels), g.level.Name)
	dst.DrawText(left, 1, levelStr)
	scoreStr := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(right-len(scoreStr), 1, scoreStr)

	movesStr := fmt.Sprintf("Moves: %d", g.moves)
	if g.level.Par > 0 {
		movesStr += fmt.Sprintf("  Par: %d", g.level.Par)
	}
	dst.DrawText(left, 2, movesStr)

	if g.mode == ModeBlitz {
		secs := (g.timeLeft + g.tickRate - 1) / g.tickRate
		timeStr := fmt.Sprintf("Time: %ds", secs)
		color := platformcore.ColorDefault
		if secs <= 10 {
			color = platformcore.ColorBrightRed
		}
		dst.DrawTextColored(right-len(timeStr), 2, timeStr, color)
	}
}

// tileColor picks the colour for a tile; roles win over flow.
func tileColor(t *core.Tile) platformcore.Color {
	switch {
	case t.IsStart:
		return colorStart
	case t.IsEnd:
		return colorEnd
	case t.CarriesFlow:
		return colorFlow
	default:
		return colorIdle
	}
}

// linkColor colours the connector drawn between two joined tiles.
func linkColor(a, b *core.Tile) platformcore.Color {
	if a.CarriesFlow && b.CarriesFlow {
		return colorFlow
	}
	return colorIdle
}

// renderBoard draws the frame, tiles, links and cursor.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	dst.DrawBoxColored(g.layout.frame, colorFrame)
	rows := g.board.Rows

	for _, t := range g.board.Tiles() {
		cx, cy := g.layout.center(t.Pos.X, t.Pos.Y, rows)
		open := t.Open()
		color := tileColor(t)

		dst.SetColored(cx, cy, core.Glyph(open), color)
		if open.Has(core.DirLeft) {
			dst.SetColored(cx-1, cy, '─', color)
		}
		if open.Has(core.DirRight) {
			dst.SetColored(cx+1, cy, '─', color)
		}

		if right := g.board.Tile(t.Pos.Step(core.DirRight)); core.OpensToward(t, right, core.DirRight) {
			dst.SetColored(cx+2, cy, '─', linkColor(t, right))
		}
		if below := g.board.Tile(t.Pos.Step(core.DirDown)); core.OpensToward(t, below, core.DirDown) {
			dst.SetColored(cx, cy+1, '│', linkColor(t, below))
		}
	}

	if !g.gameOver {
		cx, cy := g.layout.center(g.cursor.X, g.cursor.Y, rows)
		dst.SetColored(cx-2, cy, '[', colorCursor)
		dst.SetColored(cx+2, cy, ']', colorCursor)
	}
}

// renderFooter draws control hints at the bottom.
func (g *Game) renderFooter(dst *platformcore.Screen) {
	dst.DrawTextCenteredColored(g.screenH-1, g.Controls(), platformcore.ColorGray)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *platformcore.Screen) {
	centerX, centerY := g.layout.frame.Center()

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.won:
		g.drawOverlay(dst, centerX, centerY, "ALL LEVELS CLEARED!", fmt.Sprintf("Final score: %d", g.score), "Press R to play again")
	case g.gameOver:
		g.drawOverlay(dst, centerX, centerY, "TIME UP", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	case g.levelCleared:
		next := "Final level complete!"
		if g.levelIndex < len(g.allLevels)-1 {
			next = fmt.Sprintf("Next: %s", g.allLevels[g.levelIndex+1].Name)
		}
		g.drawOverlay(dst, centerX, centerY, "FLOWING!", fmt.Sprintf("+%d points in %d moves", g.lastPoints, g.moves), next)
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = platformcore.Max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := platformcore.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, platformcore.ColorBrightWhite)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		color := platformcore.ColorDefault
		if i == 0 {
			color = platformcore.ColorBrightYellow
		}
		dst.DrawTextColored(x, box.Y+1+i, line, color)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Rotate | Click: Rotate | R: Reset level | P: Pause | Q: Quit"
}
