package engine

// MarkConsumed returns a copy of the board where every consumed position
// of the given matches is replaced by its consumed variant pointing at the
// match origin. Values are unchanged; this is the "about to disappear"
// board the animation layer shows before gravity.
func MarkConsumed(b Board, matches []Match) Board {
	out := b.Copy()
	for _, m := range matches {
		for _, p := range m.Consumed {
			out.setTile(p, out.at(p).consume(m.Origin))
		}
	}
	return out
}

// ApplyGravity compacts each column of a consumed-marked board: surviving
// tiles fall to the bottom preserving their relative order, and vacated
// top cells are filled with fresh tiles from the spawner. Columns are
// independent; gravity never moves a tile across columns.
func ApplyGravity(b Board, sp *Spawner) Board {
	out := b.Copy()
	for x := 0; x < out.size; x++ {
		write := out.size - 1
		for y := out.size - 1; y >= 0; y-- {
			t := out.cells[x][y]
			if t.Consumed {
				continue
			}
			out.cells[x][write] = t
			write--
		}
		for ; write >= 0; write-- {
			out.cells[x][write] = sp.Tile()
		}
	}
	return out
}
