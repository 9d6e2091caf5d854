package engine

// NewBoard generates a size×size board guaranteed free of pre-existing
// matches: fill with random tiles, then reroll only the origin tile of
// each unique match found, rescanning until a pass reports none. The value
// space is small so this converges in a handful of passes; the cap only
// guards against a pathological injected Rand.
func NewBoard(size int, sp *Spawner) Board {
	b := emptyBoard(size)
	for i := 0; i < size*size; i++ {
		b.setTile(PositionFromIndex(i, size), sp.Tile())
	}
	for attempts := 0; attempts < 10000; attempts++ {
		matches := UniqueMatches(b)
		if len(matches) == 0 {
			break
		}
		for _, m := range matches {
			b.setTile(m.Origin, sp.Tile())
		}
	}
	return b
}
