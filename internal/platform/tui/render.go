package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mergetile/internal/core"
)

// colorStyles is indexed by core.Color and built once from the palette's
// ANSI codes, so the color definitions live in core only.
var colorStyles = buildColorStyles()

func buildColorStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, int(core.ColorGray)+1)
	for c := range styles {
		code := core.Color(c).ANSI()
		if code == "" {
			styles[c] = lipgloss.NewStyle()
			continue
		}
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color render as one styled run; runs in the
// default color (most of a board screen is blank padding and grid lines)
// are written unstyled to keep frames small.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault || int(startColor) >= len(colorStyles) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(colorStyles[startColor].Render(run.String()))
		}
	}
	return sb.String()
}
