package merge

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/mergetile/internal/core"
	"github.com/vovakirdan/mergetile/internal/engine"
)

const (
	cellWidth  = 8 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// valuePalette assigns colors by exponent so each merge level reads
// distinctly; values past the palette wrap around.
var valuePalette = []core.Color{
	core.ColorWhite,
	core.ColorCyan,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorOrange,
	core.ColorRed,
	core.ColorMagenta,
	core.ColorBlue,
	core.ColorBrightCyan,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorBrightRed,
	core.ColorBrightMagenta,
	core.ColorBrightBlue,
	core.ColorBrightWhite,
}

func valueColor(value int) core.Color {
	if value < 1 {
		return core.ColorDefault
	}
	return valuePalette[(value-1)%len(valuePalette)]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.boardSize*cellWidth + 1
	boardH := g.boardSize*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the score and move info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "Merge Tile"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(boardX, 1, scoreStr)

	movesStr := fmt.Sprintf("Moves: %d", g.moves)
	movesX := boardX + boardW - len(movesStr)
	if movesX < boardX {
		movesX = boardX
	}
	dst.DrawText(movesX, 1, movesStr)

	status := "Select a tile, then an adjacent one to swap"
	switch {
	case g.animating():
		status = "Resolving..."
	case g.hasSelection:
		status = "Pick a neighbor to swap with (Esc cancels)"
	}
	statusX := boardX + (boardW-len(status))/2
	if statusX < 0 {
		statusX = 0
	}
	dst.DrawText(statusX, 2, status)
}

// renderBoard draws the grid, the tiles and the cursor markers.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.boardSize

	// Grid borders
	for y := 0; y <= size; y++ {
		for x := 0; x <= size; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Tiles
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g.renderTile(dst, boardX, boardY, engine.P(x, y))
		}
	}
}

// renderTile draws one cell's number plus any cursor/selection/hint marker.
func (g *Game) renderTile(dst *core.Screen, boardX, boardY int, p engine.Position) {
	tile, err := g.board.TileAt(p)
	if err != nil {
		return
	}

	cellX := boardX + p.X*cellWidth + 1
	cellY := boardY + p.Y*cellHeight + 1
	interior := cellWidth - 1

	valStr := strconv.Itoa(tile.Display())
	color := valueColor(tile.Value)

	if tile.Consumed {
		// Fading into its merge origin: dim and show the direction.
		color = core.ColorGray
		valStr = valStr + string(mergeArrow(p, tile.MergedTo))
	}

	padLeft := (interior - len(valStr)) / 2
	if padLeft < 0 {
		padLeft = 0
	}
	dst.DrawTextColored(cellX+padLeft, cellY, valStr, color)

	// Markers occupy the first and last interior columns.
	switch {
	case g.hasSelection && p == g.selected:
		dst.SetCell(cellX, cellY, '(', core.ColorBrightYellow)
		dst.SetCell(cellX+interior-1, cellY, ')', core.ColorBrightYellow)
	case !g.animating() && p == g.cursor:
		dst.SetCell(cellX, cellY, '[', core.ColorBrightWhite)
		dst.SetCell(cellX+interior-1, cellY, ']', core.ColorBrightWhite)
	case g.hintShown && (p == g.hintFrom || p == g.hintTo):
		dst.SetCell(cellX, cellY, '<', core.ColorBrightGreen)
		dst.SetCell(cellX+interior-1, cellY, '>', core.ColorBrightGreen)
	}
}

// mergeArrow points from a consumed tile toward the origin absorbing it.
func mergeArrow(from, to engine.Position) rune {
	switch {
	case to.Y < from.Y:
		return '↑'
	case to.Y > from.Y:
		return '↓'
	case to.X < from.X:
		return '←'
	default:
		return '→'
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		scoreStr := fmt.Sprintf("Final score: %d in %d moves", g.score, g.moves)
		g.drawOverlay(dst, centerX, centerY, "NO MOVES LEFT", scoreStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Cursor | Space: Select/Swap | H: Hint | P: Pause | R: Restart | Q: Quit"
}
