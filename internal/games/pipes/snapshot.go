package pipes

import "github.com/vovakirdan/pipeflow/internal/games/pipes/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "campaign" or "blitz"
	Level     int    // Current level (1-indexed for display)
	LevelID   string
	Score     int
	Moves     int
	TimeLeft  int // Blitz ticks remaining
	Cursor    core.Coord
	Rotations []int  // Column-major
	Flow      []bool // Column-major
	Solved    bool
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.levelCleared:
		state = StateLevelCleared
	}

	snap := Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Level:    g.levelIndex + 1,
		LevelID:  g.level.ID,
		Score:    g.score,
		Moves:    g.moves,
		TimeLeft: g.timeLeft,
		Cursor:   g.cursor,
		Solved:   g.result.Solved,
		State:    state,
	}
	if g.board != nil {
		snap.Rotations = g.board.Rotations()
		snap.Flow = g.board.FlowMap()
	}
	return snap
}
