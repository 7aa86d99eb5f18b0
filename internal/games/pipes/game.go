// Package pipes implements the pipe rotation puzzle with campaign and blitz modes.
package pipes

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/pipeflow/internal/config"
	platformcore "github.com/vovakirdan/pipeflow/internal/core"
	"github.com/vovakirdan/pipeflow/internal/games/pipes/core"
	"github.com/vovakirdan/pipeflow/internal/games/pipes/levels"
	"github.com/vovakirdan/pipeflow/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeBlitz    Mode = "blitz"
)

// ErrNoLevels is reported when the level source yields nothing playable.
var ErrNoLevels = errors.New("pipes: no levels available")

// Game implements the pipes puzzle.
type Game struct {
	mode       Mode
	cfg        config.PipesConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tick       uint64
	tickRate   int
	opts       *Options

	allLevels  []levels.Level
	levelIndex int
	level      levels.Level
	board      *core.Board
	result     core.Result
	active     bool // tiles accept input once the first evaluation ran

	cursor     core.Coord
	moves      int
	levelTicks int
	timeLeft   int // blitz countdown in ticks

	score      int
	cleared    int // levels cleared this run
	lastPoints int
	results    []platformcore.LevelResult

	// Screen dimensions
	screenW int
	screenH int
	layout  layout

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
	loadErr         error
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewBlitz creates a new blitz mode game with a per-level countdown.
func NewBlitz() *Game {
	return &Game{mode: ModeBlitz}
}

func init() {
	registry.Register("pipes", func() registry.Game {
		return New()
	})
	registry.Register("pipes_blitz", func() registry.Game {
		return NewBlitz()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeBlitz {
		return "pipes_blitz"
	}
	return "pipes"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeBlitz {
		return "Pipes (Blitz)"
	}
	return "Pipes"
}

// SetOptions replaces the package-level selections for this instance.
// The SSH server uses it so sessions do not share a start level.
func (g *Game) SetOptions(o Options) {
	g.opts = &o
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.score = 0
	g.cleared = 0
	g.lastPoints = 0
	g.results = nil
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0
	g.loadErr = nil

	preset, start := currentPreset(), 0
	if g.opts != nil {
		preset, start = g.opts.Difficulty, g.opts.StartLevel
		g.opts.StartLevel = 0
	} else {
		start = takeStartLevel()
	}

	g.cfg = loadConfig(preset)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	lvls, err := LevelLoader().LoadAll()
	if err == nil && len(lvls) == 0 {
		err = ErrNoLevels
	}
	if err != nil {
		getLogger().Error("cannot load levels", "err", err)
		g.allLevels = nil
		g.board = nil
		g.loadErr = err
		g.gameOver = true
		return
	}
	g.allLevels = lvls

	g.levelIndex = 0
	if start > 0 && start <= len(lvls) {
		g.levelIndex = start - 1
	}

	g.loadCurrentLevel()
}

// loadCurrentLevel builds the board for levelIndex.
func (g *Game) loadCurrentLevel() {
	if g.levelIndex >= len(g.allLevels) {
		g.won = true
		g.gameOver = true
		return
	}

	g.level = g.allLevels[g.levelIndex]
	board, err := g.level.NewBoard()
	if err != nil {
		getLogger().Error("cannot build level", "level", g.level.ID, "err", err)
		g.loadErr = err
		g.gameOver = true
		return
	}
	g.board = board

	if g.cfg.Gameplay.Scramble {
		g.scramble()
	}

	g.cursor = core.C(0, 0)
	if start := g.board.Start(); start != nil {
		g.cursor = start.Pos
	}
	g.moves = 0
	g.levelTicks = 0
	g.result = core.Result{}
	g.active = false

	if g.mode == ModeBlitz {
		secs := g.difficulty.BlitzSeconds(g.cfg.Blitz.SecondsPerLevel, g.cfg.Blitz.MinSeconds, g.cleared, int(g.tick))
		g.timeLeft = secs * g.tickRate
	}

	g.checkScreenSize()
}

// scramble turns tiles at random, retrying a few times if the result is
// already solved.
func (g *Game) scramble() {
	for attempt := 0; attempt < 8; attempt++ {
		core.Scramble(g.board, g.rng)
		if !g.board.Evaluate().Solved {
			return
		}
	}
}

// Resize follows a terminal resize and keeps the level in progress.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the current board.
func (g *Game) checkScreenSize() {
	if g.board == nil {
		g.tooSmall = false
		return
	}
	g.layout = computeLayout(g.board.Columns, g.board.Rows, g.screenW)
	minW := g.layout.frame.W + 2
	minH := g.layout.frame.Bottom() + footerHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	// Restart after game over is handled by the platform
	if g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= g.cfg.Gameplay.ClearBannerTicks {
			g.advanceLevel()
		}
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionRestart) {
		g.loadCurrentLevel()
		return platformcore.StepResult{State: g.State()}
	}

	// Tiles become interactive after the board is evaluated once.
	if !g.active {
		g.active = true
		if g.evaluate() {
			return platformcore.StepResult{State: g.State(), LevelCleared: true}
		}
		return platformcore.StepResult{State: g.State()}
	}

	g.levelTicks++
	if g.mode == ModeBlitz {
		g.timeLeft--
		if g.timeLeft <= 0 {
			g.timeLeft = 0
			g.gameOver = true
			return platformcore.StepResult{State: g.State()}
		}
	}

	g.moveCursor(in)

	solved := false
	if in.Click != nil {
		if c, ok := g.layout.cellAt(in.Click.X, in.Click.Y, g.board.Rows); ok && g.board.InBounds(c) {
			g.cursor = c
			solved = g.rotateAt(c)
		}
	} else if in.Has(platformcore.ActionRotate) {
		solved = g.rotateAt(g.cursor)
	}

	return platformcore.StepResult{State: g.State(), LevelCleared: solved}
}

// moveCursor applies arrow actions. Up moves toward higher rows.
func (g *Game) moveCursor(in platformcore.InputFrame) {
	x, y := g.cursor.X, g.cursor.Y
	switch {
	case in.Has(platformcore.ActionUp):
		y++
	case in.Has(platformcore.ActionDown):
		y--
	case in.Has(platformcore.ActionLeft):
		x--
	case in.Has(platformcore.ActionRight):
		x++
	}
	g.cursor = core.C(
		platformcore.Clamp(x, 0, g.board.Columns-1),
		platformcore.Clamp(y, 0, g.board.Rows-1),
	)
}

// rotateAt turns one tile and re-evaluates. Reports whether the level was cleared.
func (g *Game) rotateAt(c core.Coord) bool {
	if err := g.board.RotateAt(c.X, c.Y); err != nil {
		return false
	}
	g.moves++
	return g.evaluate()
}

// evaluate recomputes flow and handles a solved board.
func (g *Game) evaluate() bool {
	g.result = g.board.Evaluate()
	if !g.result.Solved {
		return false
	}

	points := g.levelPoints()
	g.score += points
	g.lastPoints = points
	g.cleared++
	g.results = append(g.results, platformcore.LevelResult{
		LevelID: g.level.ID,
		Moves:   g.moves,
		Ticks:   g.levelTicks,
		Points:  points,
	})
	g.levelCleared = true
	g.levelClearTicks = 0
	return true
}

// levelPoints scores the level just solved.
func (g *Game) levelPoints() int {
	gp := g.cfg.Gameplay
	points := g.difficulty.Points(gp.BasePoints, g.cleared, int(g.tick))

	if par := g.level.Par; par > 0 {
		if g.moves < par {
			points += (par - g.moves) * gp.ParBonus
		} else {
			points -= (g.moves - par) * gp.MovePenalty
		}
	}
	if g.mode == ModeBlitz {
		points += g.timeLeft / g.tickRate * g.cfg.Blitz.TimeBonus
	}

	return platformcore.Max(points, 0)
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0
	g.levelIndex++
	g.loadCurrentLevel()
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
		Won:      g.won,
	}
}

// LevelResults returns levels cleared since the previous call.
func (g *Game) LevelResults() []platformcore.LevelResult {
	out := g.results
	g.results = nil
	return out
}

// Err reports why the game could not start, if it could not.
func (g *Game) Err() error {
	return g.loadErr
}

var (
	_ registry.LevelReporter = (*Game)(nil)
	_ registry.Resizer       = (*Game)(nil)
)
