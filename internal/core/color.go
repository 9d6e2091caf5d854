package core

import "strconv"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ANSI returns the terminal color code for the color, or the empty string
// for ColorDefault (unstyled). The platform layer feeds these to its
// styling library so the palette is defined in one place.
func (c Color) ANSI() string {
	switch {
	case c >= ColorRed && c <= ColorWhite:
		return strconv.Itoa(int(c))
	case c >= ColorBrightRed && c <= ColorBrightWhite:
		// Bright variants occupy ANSI codes 9-15.
		return strconv.Itoa(int(c) + 1)
	case c == ColorOrange:
		return "208"
	case c == ColorGray:
		return "245"
	}
	return ""
}
