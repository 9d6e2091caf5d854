package merge

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Size    int
	Board   []int // Exponents in index order (y*size + x)
	Score   int
	Moves   int
	Pending int // Queued animation snapshots not yet applied
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.animating():
		state = StateAnimating
	case g.gameOver:
		state = StateGameOver
	}

	return Snapshot{
		Tick:    g.tick,
		Size:    g.board.Size(),
		Board:   g.board.Values(),
		Score:   g.score,
		Moves:   g.moves,
		Pending: len(g.queue),
		State:   state,
	}
}
