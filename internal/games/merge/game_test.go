package merge

import (
	"testing"

	"github.com/vovakirdan/mergetile/internal/core"
	"github.com/vovakirdan/mergetile/internal/engine"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  100,
		ScreenH:  40,
		TickRate: 60,
		Seed:     seed,
	}
}

// press feeds one input frame, advancing the game by one tick.
func press(g *Game, actions ...core.Action) {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	g.Step(in)
}

// setBoard installs a crafted board built from row-major exponent rows.
func setBoard(t *testing.T, g *Game, rows [][]int) {
	t.Helper()
	size := len(rows)
	values := make([]int, 0, size*size)
	for y, row := range rows {
		if len(row) != size {
			t.Fatalf("row %d has %d values, want %d", y, len(row), size)
		}
		values = append(values, row...)
	}
	b, err := engine.BoardFromValues(size, values, g.spawner)
	if err != nil {
		t.Fatalf("BoardFromValues: %v", err)
	}
	g.board = b
	g.boardSize = size
	g.gameOver = engine.IsTerminal(b)
	g.cursor = engine.P(size/2, size/2)
}

func TestDeterministicBoard(t *testing.T) {
	Configure(8, 0, 0, 0)

	g1 := New()
	g1.Reset(testConfig(12345))
	g2 := New()
	g2.Reset(testConfig(12345))

	b1, b2 := g1.Snapshot().Board, g2.Snapshot().Board
	for i := range b1 {
		if b1[i] != b2[i] {
			t.Fatalf("same seed produced different boards at index %d: %d vs %d", i, b1[i], b2[i])
		}
	}

	if got := engine.IsTerminal(g1.board); got {
		t.Error("freshly generated board should not be terminal")
	}
}

func TestCursorClampedToBoard(t *testing.T) {
	Configure(4, 0, 0, 2)
	g := New()
	g.Reset(testConfig(1))

	for i := 0; i < 10; i++ {
		press(g, core.ActionLeft)
	}
	for i := 0; i < 10; i++ {
		press(g, core.ActionUp)
	}
	if g.cursor != engine.P(0, 0) {
		t.Errorf("cursor = %s, want (0,0)", g.cursor)
	}

	for i := 0; i < 10; i++ {
		press(g, core.ActionRight)
	}
	for i := 0; i < 10; i++ {
		press(g, core.ActionDown)
	}
	if g.cursor != engine.P(3, 3) {
		t.Errorf("cursor = %s, want (3,3)", g.cursor)
	}
}

func TestSwapMergePlayback(t *testing.T) {
	// Spawn range pinned to exponent 1 so refills never cascade here.
	Configure(4, 1, 1, 2)
	g := New()
	g.Reset(testConfig(7))
	setBoard(t, g, [][]int{
		{3, 8, 3, 4},
		{9, 3, 10, 11},
		{12, 13, 14, 15},
		{16, 17, 18, 19},
	})

	// Walk the cursor from (2,2) onto the 8 at (1,0), pick it up, move
	// down onto the 3 and commit the swap.
	press(g, core.ActionUp)
	press(g, core.ActionUp)
	press(g, core.ActionLeft)
	press(g, core.ActionSelect)
	if !g.hasSelection || g.selected != engine.P(1, 0) {
		t.Fatalf("selection = %v %s, want (1,0)", g.hasSelection, g.selected)
	}
	press(g, core.ActionDown)
	press(g, core.ActionSelect)

	// The swapped board applied immediately; three snapshots remain.
	if !g.animating() {
		t.Fatal("expected playback after a committed swap")
	}
	if got := g.Snapshot(); got.State != StateAnimating || got.Pending != 3 {
		t.Fatalf("snapshot = %s pending %d, want animating pending 3", got.State, got.Pending)
	}

	// Input is ignored while snapshots play back.
	press(g, core.ActionSelect)
	if g.hasSelection {
		t.Error("selection accepted during playback")
	}

	// Drain the queue: one snapshot per 2-tick beat.
	for i := 0; i < 5 && g.animating(); i++ {
		press(g)
	}
	if g.animating() {
		t.Fatal("playback did not finish")
	}

	if g.score != 16 {
		t.Errorf("score = %d, want 16 (three 3-tiles merge into one 4)", g.score)
	}
	if g.moves != 1 {
		t.Errorf("moves = %d, want 1", g.moves)
	}

	// The settled board has no triple left anywhere, so the game ends.
	if !g.gameOver {
		t.Error("expected game over on the settled board")
	}
}

func TestRejectedSwapNotCounted(t *testing.T) {
	Configure(4, 1, 3, 2)
	g := New()
	g.Reset(testConfig(7))
	setBoard(t, g, [][]int{
		{3, 9, 3, 4},
		{10, 3, 12, 13},
		{20, 21, 22, 23},
		{6, 6, 41, 6},
	})
	want := g.board.Values()

	// Swap (0,2) and (0,3): adjacent but produces nothing.
	press(g, core.ActionLeft)
	press(g, core.ActionLeft)
	press(g, core.ActionSelect)
	press(g, core.ActionDown)
	press(g, core.ActionSelect)

	for i := 0; i < 4 && g.animating(); i++ {
		press(g)
	}

	if g.moves != 0 {
		t.Errorf("moves = %d, want 0 for a rejected swap", g.moves)
	}
	if g.score != 0 {
		t.Errorf("score = %d, want 0", g.score)
	}
	got := g.board.Values()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("board not restored after rejection at index %d", i)
		}
	}
	if g.gameOver {
		t.Error("playable board flagged game over")
	}
}

func TestHintHighlightsPlayableSwap(t *testing.T) {
	Configure(4, 1, 3, 2)
	g := New()
	g.Reset(testConfig(7))
	setBoard(t, g, [][]int{
		{3, 9, 3, 4},
		{10, 3, 12, 13},
		{20, 21, 22, 23},
		{6, 6, 41, 6},
	})

	press(g, core.ActionHint)
	if !g.hintShown {
		t.Fatal("hint not shown on a playable board")
	}
	if g.hintFrom != engine.P(1, 0) || g.hintTo != engine.P(1, 1) {
		t.Errorf("hint = %s -> %s, want (1,0) -> (1,1)", g.hintFrom, g.hintTo)
	}

	press(g, core.ActionBack)
	if g.hintShown {
		t.Error("Back should clear the hint")
	}
}

func TestSelectToggle(t *testing.T) {
	Configure(4, 1, 3, 2)
	g := New()
	g.Reset(testConfig(7))

	press(g, core.ActionSelect)
	if !g.hasSelection {
		t.Fatal("first Select should pick up the cursor tile")
	}
	press(g, core.ActionSelect)
	if g.hasSelection {
		t.Error("Select on the same cell should cancel the selection")
	}
}

func TestPauseBlocksInput(t *testing.T) {
	Configure(4, 1, 3, 2)
	g := New()
	g.Reset(testConfig(7))
	start := g.cursor

	press(g, core.ActionPause)
	if !g.paused {
		t.Fatal("expected paused")
	}
	press(g, core.ActionLeft)
	if g.cursor != start {
		t.Error("cursor moved while paused")
	}
	press(g, core.ActionPause)
	if g.paused {
		t.Error("expected unpaused")
	}
}

func TestRestoreAndSaveState(t *testing.T) {
	Configure(8, 0, 0, 0)
	values := []int{
		3, 9, 3,
		8, 3, 10,
		11, 12, 13,
	}
	Restore(3, values, 100, 5)

	g := New()
	g.Reset(testConfig(99))

	snap := g.Snapshot()
	if snap.Size != 3 {
		t.Fatalf("restored size = %d, want 3", snap.Size)
	}
	for i := range values {
		if snap.Board[i] != values[i] {
			t.Fatalf("restored board differs at index %d: %d vs %d", i, snap.Board[i], values[i])
		}
	}
	if snap.Score != 100 || snap.Moves != 5 {
		t.Errorf("restored score/moves = %d/%d, want 100/5", snap.Score, snap.Moves)
	}

	size, board, score, moves, ok := g.SaveState()
	if !ok {
		t.Fatal("SaveState not available on a live game")
	}
	if size != 3 || score != 100 || moves != 5 {
		t.Errorf("SaveState = %d/%d/%d, want 3/100/5", size, score, moves)
	}
	for i := range values {
		if board[i] != values[i] {
			t.Fatalf("SaveState board differs at index %d", i)
		}
	}

	// The restore payload is consumed: a second Reset regenerates.
	g.Reset(testConfig(99))
	if g.Snapshot().Size != 8 {
		t.Errorf("second Reset size = %d, want configured 8", g.Snapshot().Size)
	}
}

func TestPerInstanceConfigIsolated(t *testing.T) {
	Configure(8, 0, 0, 0)

	// Two games configured independently, the way concurrent SSH sessions
	// are: neither may see the other's settings.
	a := New()
	a.SetConfig(5, 1, 3, 4)
	b := New()
	b.SetConfig(9, 1, 3, 4)

	a.Reset(testConfig(1))
	b.Reset(testConfig(2))

	if got := a.Snapshot().Size; got != 5 {
		t.Errorf("first instance size = %d, want 5", got)
	}
	if got := b.Snapshot().Size; got != 9 {
		t.Errorf("second instance size = %d, want 9", got)
	}
	if a.beatTicks != 4 || b.beatTicks != 4 {
		t.Errorf("beat ticks = %d/%d, want 4/4", a.beatTicks, b.beatTicks)
	}

	// An instance without overrides still follows the package configuration.
	c := New()
	c.Reset(testConfig(3))
	if got := c.Snapshot().Size; got != 8 {
		t.Errorf("unconfigured instance size = %d, want package-configured 8", got)
	}
}

func TestRenderSmokeAndMarkers(t *testing.T) {
	Configure(4, 1, 3, 2)
	g := New()
	g.Reset(testConfig(7))
	setBoard(t, g, [][]int{
		{3, 8, 3, 4},
		{9, 3, 10, 11},
		{12, 13, 14, 15},
		{16, 17, 18, 19},
	})

	screen := core.NewScreen(100, 40)
	g.Render(screen)

	out := screen.String()
	if len(out) == 0 {
		t.Fatal("empty render")
	}

	// The 3-exponent tile displays as 8 and uses the value color.
	found := false
	for y := 0; y < screen.Height() && !found; y++ {
		for x := 0; x < screen.Width(); x++ {
			cell := screen.GetCell(x, y)
			if cell.Rune == '8' && cell.Color == valueColor(3) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no colored tile glyph found in render output")
	}
}
