package t2048

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// Outcome values reported through core.GameState when a game ends.
const (
	// OutcomeFull means the engine reported GameOver.
	OutcomeFull = "full"
	// OutcomeStuck means the board has tiles but no direction changes it.
	OutcomeStuck = "stuck"
	// OutcomeQuit is set by the platform when the player leaves early.
	OutcomeQuit = "quit"
)

var logger = log.New(io.Discard)

// SetLogger sets the logger used by every game instance.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game plays one board preset.
type Game struct {
	preset Preset
	board  *engine.Board
	seed   int64
	tick   uint64

	moves   int
	fusions int
	outcome string

	anim animator

	// Screen dimensions
	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a game for the given preset.
func New(p Preset) *Game {
	return &Game{preset: p}
}

// ID returns the preset identifier.
func (g *Game) ID() string {
	return g.preset.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.preset.Title
}

// Dimensions returns the board size.
func (g *Game) Dimensions() (rows, cols int) {
	return g.preset.Rows, g.preset.Cols
}

// Reset builds a fresh board seeded from cfg and starts the opening spawns.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	board, err := engine.NewSeeded(g.preset.Rows, g.preset.Cols, cfg.Seed)
	if err != nil {
		// Presets are validated at registration; fall back to the classic size.
		logger.Error("invalid preset size", "preset", g.preset.ID, "error", err)
		board, _ = engine.NewSeeded(engine.DefaultRows, engine.DefaultCols, cfg.Seed)
	}

	g.board = board
	g.seed = cfg.Seed
	g.tick = 0
	g.moves = 0
	g.fusions = 0
	g.outcome = ""
	g.gameOver = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.apply(g.board.Reset())
	g.checkScreenSize()

	logger.Debug("game reset", "preset", g.preset.ID, "seed", cfg.Seed, "board", g.board.String())
}

// Resize follows a terminal resize, keeping the board.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for board and HUD.
func (g *Game) checkScreenSize() {
	w, h := g.boardSize()
	g.tooSmall = g.screenW < w+2 || g.screenH < h+hudHeight+2
}

// Step advances the game by one tick.
// Direction input is dropped while the previous move is still animating.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if g.anim.update() || g.gameOver {
		return g.result()
	}

	if action, ok := in.FirstDirection(); ok {
		g.move(toDirection(action))
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Settled: !g.anim.active()}
}

// move plays one direction and checks whether the game can continue.
func (g *Game) move(dir engine.Direction) {
	batch, err := g.board.Move(dir)
	if err != nil {
		logger.Error("move rejected", "dir", dir, "error", err)
		return
	}

	g.apply(batch)
	if !batch.Moved() {
		return
	}

	g.moves++
	logger.Debug("move",
		"dir", dir,
		"fusions", len(batch.Fusions()),
		"max", g.board.MaxTile(),
		"tiles", g.board.Count(),
	)

	if !g.gameOver && !g.board.HasMoves() {
		g.endGame(OutcomeStuck)
	}
}

// apply feeds a notification batch into counters, flags and animations.
func (g *Game) apply(batch engine.Batch) {
	for _, n := range batch {
		switch n := n.(type) {
		case engine.Reset:
			g.anim.reset()
		case engine.Move:
			g.anim.slide(n.SrcRow, n.SrcCol, n.DstRow, n.DstCol, n.Tile.Value(), false)
		case engine.Fusion:
			g.fusions++
			g.anim.slide(n.SrcRow, n.SrcCol, n.DstRow, n.DstCol, n.Tile.Value()/2, true)
		case engine.Spawn:
			g.anim.spawn(n.Tile)
		case engine.GameOver:
			g.endGame(OutcomeFull)
		}
	}
	g.anim.start()
}

func (g *Game) endGame(outcome string) {
	g.gameOver = true
	g.outcome = outcome
	logger.Info("game over",
		"preset", g.preset.ID,
		"outcome", outcome,
		"moves", g.moves,
		"max", g.board.MaxTile(),
	)
}

// toDirection maps a platform action to an engine direction.
func toDirection(a core.Action) engine.Direction {
	switch a {
	case core.ActionUp:
		return engine.DirUp
	case core.ActionRight:
		return engine.DirRight
	case core.ActionDown:
		return engine.DirDown
	default:
		return engine.DirLeft
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := core.GameState{
		Moves:    g.moves,
		Fusions:  g.fusions,
		Outcome:  g.outcome,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
	if g.board != nil {
		s.MaxTile = g.board.MaxTile()
		s.TileSum = g.board.Sum()
	}
	return s
}

// Board returns the engine board, or nil before the first Reset.
func (g *Game) Board() *engine.Board {
	return g.board
}
