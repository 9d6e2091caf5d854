package merge

import (
	"math/rand"

	"github.com/vovakirdan/mergetile/internal/core"
	"github.com/vovakirdan/mergetile/internal/engine"
	"github.com/vovakirdan/mergetile/internal/registry"
)

// Defaults applied when no configuration overrides are set.
const (
	DefaultBoardSize = 8
	DefaultBeatTicks = 8
)

// Game implements the tile-merging puzzle. All board mechanics live in the
// engine package; this type owns the cursor, the animation queue and the
// session state the platform reads.
type Game struct {
	rng     *rand.Rand
	spawner *engine.Spawner
	tick    uint64

	board engine.Board
	score int
	moves int

	// Configured parameters, applied on Reset.
	boardSize int
	spawnMin  int
	spawnMax  int
	beatTicks int

	// Per-instance overrides set via SetConfig; they take precedence over
	// the package-level configuration so concurrent sessions stay isolated.
	cfgSize  int
	cfgMin   int
	cfgMax   int
	cfgBeats int

	cursor       engine.Position
	selected     engine.Position
	hasSelection bool

	hintFrom  engine.Position
	hintTo    engine.Position
	hintShown bool

	// Pending resolution snapshots; one is applied per beat.
	queue       []engine.Snapshot
	beatCounter int
	lastSeqLen  int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level variables for config. Set by the cmd layer before the
// platform calls Reset; consumed-once values clear themselves.
var (
	configuredSize    int
	configuredMin     int
	configuredMax     int
	configuredBeats   int
	pendingRestore    []int
	pendingSize       int
	pendingScore      int
	pendingMoves      int
	hasPendingRestore bool
)

// Configure sets the board size, spawn exponent range and animation beat
// length for subsequently reset games. Zero values keep the defaults.
func Configure(size, spawnMin, spawnMax, beatTicks int) {
	configuredSize = size
	configuredMin = spawnMin
	configuredMax = spawnMax
	configuredBeats = beatTicks
}

// SetConfig sets this instance's board size, spawn exponent range and beat
// length, overriding the package-level configuration. The SSH server runs
// sessions on separate goroutines, so per-session settings must not go
// through Configure's shared variables.
func (g *Game) SetConfig(size, spawnMin, spawnMax, beatTicks int) {
	g.cfgSize = size
	g.cfgMin = spawnMin
	g.cfgMax = spawnMax
	g.cfgBeats = beatTicks
}

// Restore queues a saved game to be applied by the next Reset instead of a
// freshly generated board. Consumed once.
func Restore(size int, board []int, score, moves int) {
	pendingSize = size
	pendingRestore = board
	pendingScore = score
	pendingMoves = moves
	hasPendingRestore = true
}

// New creates a new merge game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("mergetile", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "mergetile"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Merge Tile"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.moves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false
	g.hasSelection = false
	g.hintShown = false
	g.queue = nil
	g.beatCounter = 0
	g.lastSeqLen = 0

	g.boardSize = DefaultBoardSize
	switch {
	case g.cfgSize > 0:
		g.boardSize = g.cfgSize
	case configuredSize > 0:
		g.boardSize = configuredSize
	}
	g.spawnMin, g.spawnMax = engine.SpawnMinValue, engine.SpawnMaxValue
	switch {
	case g.cfgMin > 0 && g.cfgMax >= g.cfgMin:
		g.spawnMin, g.spawnMax = g.cfgMin, g.cfgMax
	case configuredMin > 0 && configuredMax >= configuredMin:
		g.spawnMin, g.spawnMax = configuredMin, configuredMax
	}
	g.beatTicks = DefaultBeatTicks
	switch {
	case g.cfgBeats > 0:
		g.beatTicks = g.cfgBeats
	case configuredBeats > 0:
		g.beatTicks = configuredBeats
	}

	g.spawner = engine.NewSpawnerRange(g.rng, g.spawnMin, g.spawnMax)

	if hasPendingRestore {
		g.applyRestore()
	} else {
		g.board = engine.NewBoard(g.boardSize, g.spawner)
	}

	g.cursor = engine.P(g.boardSize/2, g.boardSize/2)
	g.gameOver = engine.IsTerminal(g.board)

	g.checkScreenSize()
}

// applyRestore loads the queued saved game, falling back to a fresh board
// if the payload is malformed.
func (g *Game) applyRestore() {
	hasPendingRestore = false
	b, err := engine.BoardFromValues(pendingSize, pendingRestore, g.spawner)
	if err != nil {
		g.board = engine.NewBoard(g.boardSize, g.spawner)
		return
	}
	g.board = b
	g.boardSize = pendingSize
	g.score = pendingScore
	g.moves = pendingMoves
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := g.boardSize*cellWidth + 1
	minH := g.boardSize*cellHeight + 1 + hudHeight + 1
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) && !g.animating() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Animation playback owns the tick; player input is ignored until the
	// queued snapshots are drained.
	if g.animating() {
		g.stepPlayback()
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		// Restart is handled by the platform via Reset.
		return core.StepResult{State: g.State()}
	}

	g.handleCursor(in)

	if in.Has(core.ActionHint) {
		g.showHint()
	}
	if in.Has(core.ActionBack) {
		g.hasSelection = false
		g.hintShown = false
	}
	if in.Has(core.ActionSelect) {
		g.handleSelect()
	}

	return core.StepResult{State: g.State()}
}

// handleCursor moves the cursor, clamped to the board.
func (g *Game) handleCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y = core.Clamp(g.cursor.Y-1, 0, g.boardSize-1)
	case in.Has(core.ActionDown):
		g.cursor.Y = core.Clamp(g.cursor.Y+1, 0, g.boardSize-1)
	case in.Has(core.ActionLeft):
		g.cursor.X = core.Clamp(g.cursor.X-1, 0, g.boardSize-1)
	case in.Has(core.ActionRight):
		g.cursor.X = core.Clamp(g.cursor.X+1, 0, g.boardSize-1)
	}
}

// handleSelect picks up the tile under the cursor, or commits a swap with
// the previously selected tile.
func (g *Game) handleSelect() {
	if !g.hasSelection {
		g.selected = g.cursor
		g.hasSelection = true
		return
	}
	if g.selected == g.cursor {
		g.hasSelection = false
		return
	}
	g.commitSwap(g.selected, g.cursor)
}

// commitSwap resolves a swap and starts snapshot playback. Rejected swaps
// still animate there-and-back; only sequences with merge steps count as
// moves.
func (g *Game) commitSwap(from, to engine.Position) {
	snaps := engine.ResolveSwap(g.board, from, to, g.spawner)
	g.hasSelection = false
	g.hintShown = false
	g.lastSeqLen = len(snaps)

	// Apply the swapped board immediately; the rest plays on beats.
	g.applySnapshot(snaps[0])
	g.queue = snaps[1:]
	g.beatCounter = 0

	if len(g.queue) == 0 {
		g.finishMove()
	}
}

// showHint finds a playable swap and highlights it.
func (g *Game) showHint() {
	from, to, ok := engine.FindAlmostMatch(g.board)
	if !ok {
		g.hintShown = false
		return
	}
	g.hintFrom, g.hintTo = from, to
	g.hintShown = true
}

// animating reports whether snapshot playback is in progress.
func (g *Game) animating() bool {
	return len(g.queue) > 0
}

// stepPlayback advances the animation queue by one tick, applying the next
// snapshot when the beat elapses.
func (g *Game) stepPlayback() {
	g.beatCounter++
	if g.beatCounter < g.beatTicks {
		return
	}
	g.beatCounter = 0
	g.applySnapshot(g.queue[0])
	g.queue = g.queue[1:]
	if len(g.queue) == 0 {
		g.finishMove()
	}
}

// applySnapshot installs a snapshot board and banks its points.
func (g *Game) applySnapshot(s engine.Snapshot) {
	g.board = s.Board
	g.score += s.Points
}

// finishMove runs after the last snapshot of a sequence: counts the move if
// the swap merged anything, then checks for game over. A rejected swap is
// the two-snapshot there-and-back sequence.
func (g *Game) finishMove() {
	if g.lastSeqLen > 2 {
		g.moves++
	}
	g.lastSeqLen = 0
	if engine.IsTerminal(g.board) {
		g.gameOver = true
	}
}

// SetScreenSize updates the screen dimensions without resetting the board.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// SaveState exposes the board for persistence. Not meaningful once the
// game is over or mid-animation.
func (g *Game) SaveState() (size int, board []int, score, moves int, ok bool) {
	if g.gameOver || g.animating() || g.board.Size() == 0 {
		return 0, nil, 0, 0, false
	}
	return g.board.Size(), g.board.Values(), g.score, g.moves, true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Moves:    g.moves,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
