package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Preset  string
	Seed    int64
	Board   [][]int
	Moves   int
	Fusions int
	MaxTile int
	Outcome string
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.anim.active():
		state = StateAnimating
	}

	return Snapshot{
		Tick:    g.tick,
		Preset:  g.preset.ID,
		Seed:    g.seed,
		Board:   g.board.Values(),
		Moves:   g.moves,
		Fusions: g.fusions,
		MaxTile: g.board.MaxTile(),
		Outcome: g.outcome,
		State:   state,
	}
}
