package engine

// FindAlmostMatch returns the first adjacent pair whose swap would produce
// a match, or ok=false when no such pair exists. The scan order is fixed
// so hints and game-over answers are deterministic: cells by ascending
// index (y*size + x), neighbors in up, down, left, right order.
func FindAlmostMatch(b Board) (from, to Position, ok bool) {
	scratch := b.Copy()
	for i := 0; i < b.size*b.size; i++ {
		p := PositionFromIndex(i, b.size)
		for _, delta := range cardinals {
			n := Position{X: p.X + delta.X, Y: p.Y + delta.Y}
			if !n.InBounds(b.size) {
				continue
			}

			pt, nt := scratch.at(p), scratch.at(n)
			scratch.setTile(p, nt)
			scratch.setTile(n, pt)

			_, matchP := DetectMatch(scratch, p)
			_, matchN := DetectMatch(scratch, n)

			// undo the tentative swap
			scratch.setTile(p, pt)
			scratch.setTile(n, nt)

			if matchP || matchN {
				return p, n, true
			}
		}
	}
	return Position{}, Position{}, false
}

// IsTerminal returns true when no single adjacent swap can produce a
// match, i.e. the game is over.
func IsTerminal(b Board) bool {
	_, _, ok := FindAlmostMatch(b)
	return !ok
}
