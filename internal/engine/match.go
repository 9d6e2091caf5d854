package engine

// Match is a detected run: Origin is the position that survives and
// receives the upgraded value, Consumed holds every other position merged
// into it (origin excluded), and NewValue is the upgraded exponent:
// origin value + len(Consumed) - 1. A minimal 3-in-a-line therefore gains
// one merge level; every extra tile beyond three gains one more.
type Match struct {
	Origin   Position
	NewValue int
	Consumed []Position
}

// Points returns the score awarded when the match upgrades: the resulting
// tile's display value, 2^NewValue.
func (m Match) Points() int {
	return 1 << m.NewValue
}

// DetectMatch reports whether the tile at p participates in a run of three
// or more equal values through p, horizontally, vertically, or both.
//
// Each axis qualifies independently when p has at least two same-valued
// tiles along it (three total including p). When both axes qualify (an L,
// T, + or cross shape), all tiles from both runs are consumed together in
// one match.
func DetectMatch(b Board, p Position) (Match, bool) {
	if !p.InBounds(b.size) {
		return Match{}, false
	}
	value := b.at(p).Value

	// Walk outward in each cardinal direction collecting contiguous
	// equal-valued positions. cardinals order is up, down, left, right.
	var runs [4][]Position
	for d, delta := range cardinals {
		for q := (Position{X: p.X + delta.X, Y: p.Y + delta.Y}); q.InBounds(b.size); q = (Position{X: q.X + delta.X, Y: q.Y + delta.Y}) {
			if b.at(q).Value != value {
				break
			}
			runs[d] = append(runs[d], q)
		}
	}

	vertical := len(runs[0]) + len(runs[1])
	horizontal := len(runs[2]) + len(runs[3])

	var consumed []Position
	if vertical >= 2 {
		consumed = append(consumed, runs[0]...)
		consumed = append(consumed, runs[1]...)
	}
	if horizontal >= 2 {
		consumed = append(consumed, runs[2]...)
		consumed = append(consumed, runs[3]...)
	}
	if consumed == nil {
		return Match{}, false
	}

	return Match{
		Origin:   p,
		NewValue: value + len(consumed) - 1,
		Consumed: consumed,
	}, true
}
