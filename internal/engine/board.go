package engine

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports a position outside [0, size) in either axis.
// Accessors fail loudly on it; only the top-level ResolveSwap tolerates
// out-of-range caller input (see resolve.go).
var ErrOutOfBounds = errors.New("engine: position out of bounds")

// Board is a fixed-size square grid of tiles, indexed column-major:
// cells[x][y]. Every cell always holds exactly one tile; consumed tiles
// remain present as placeholders until gravity compacts them away.
//
// Engine operations never mutate a caller's board: every transformation
// copies first, so callers may retain and replay past boards.
type Board struct {
	size  int
	cells [][]Tile
}

// Size returns the board dimension.
func (b Board) Size() int {
	return b.size
}

// TileAt returns the tile at the given position, or ErrOutOfBounds.
func (b Board) TileAt(p Position) (Tile, error) {
	if !p.InBounds(b.size) {
		return Tile{}, fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, p, b.size, b.size)
	}
	return b.cells[p.X][p.Y], nil
}

// at is the unchecked accessor for internal use after bounds validation.
func (b Board) at(p Position) Tile {
	return b.cells[p.X][p.Y]
}

// setTile writes a cell in place. Internal use only, and only on private
// copies; caller-owned boards are never written.
func (b *Board) setTile(p Position, t Tile) {
	b.cells[p.X][p.Y] = t
}

// Copy returns a board with fresh column and row storage. Tiles are value
// types, so sharing them needs no further copying.
func (b Board) Copy() Board {
	cells := make([][]Tile, b.size)
	for x := range cells {
		cells[x] = make([]Tile, b.size)
		copy(cells[x], b.cells[x])
	}
	return Board{size: b.size, cells: cells}
}

// Values returns the per-cell exponents in index order (index = y*size+x).
// This is the persistence projection: tile identity and consumed-state are
// not part of the wire contract.
func (b Board) Values() []int {
	out := make([]int, b.size*b.size)
	for i := range out {
		out[i] = b.at(PositionFromIndex(i, b.size)).Value
	}
	return out
}

// BoardFromValues reconstructs a board from a Values projection, minting
// fresh tile ids from the spawner. Returns an error if the slice length
// does not match size*size.
func BoardFromValues(size int, values []int, sp *Spawner) (Board, error) {
	if size < 1 || len(values) != size*size {
		return Board{}, fmt.Errorf("engine: want %d values for size %d, got %d", size*size, size, len(values))
	}
	b := emptyBoard(size)
	for i, v := range values {
		t := sp.Tile()
		t.Value = v
		b.setTile(PositionFromIndex(i, size), t)
	}
	return b, nil
}

// emptyBoard allocates cell storage; every cell is the zero Tile until
// the caller fills it.
func emptyBoard(size int) Board {
	cells := make([][]Tile, size)
	for x := range cells {
		cells[x] = make([]Tile, size)
	}
	return Board{size: size, cells: cells}
}
