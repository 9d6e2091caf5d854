// Package engine implements the board resolution core for the tile-merge
// puzzle: match detection, gravity, cascading swap resolution and the
// supporting board queries. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package engine

import "fmt"

// Position identifies a cell on the board. X is the column, Y the row;
// both increase right/down and are valid in [0, size).
type Position struct {
	X int
	Y int
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Index converts the position to a flat index: index = y*size + x.
// The inverse is PositionFromIndex.
func (p Position) Index(size int) int {
	return p.Y*size + p.X
}

// PositionFromIndex converts a flat index back to a position.
func PositionFromIndex(index, size int) Position {
	return Position{X: index % size, Y: index / size}
}

// InBounds returns true if both coordinates are within [0, size).
func (p Position) InBounds(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// Adjacent returns true if exactly one coordinate differs by exactly 1
// and the other is equal (cardinal neighbors, no diagonals).
func Adjacent(a, b Position) bool {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	return dx+dy == 1
}

// cardinals is the fixed neighbor order used by scans: up, down, left, right.
var cardinals = [4]Position{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
