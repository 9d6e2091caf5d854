package engine

// Snapshot is one board state plus the points awarded at that step. The
// resolver's output is an ordered snapshot sequence; consumers apply it in
// order and may treat each transition as one animation beat. Only
// value-upgrade snapshots carry nonzero points.
type Snapshot struct {
	Board  Board
	Points int
}

// ResolveSwap resolves the swap of two positions into the full ordered
// snapshot sequence: swapped board, then for the initial merge and every
// cascade step a consumed-marked board, a value-upgraded board (with the
// step's points) and a post-gravity board, until the board settles with no
// matches left.
//
// Degenerate inputs follow the boundary policy: an out-of-bounds position
// yields the single-element identity sequence, and a legal-bounds swap
// that is non-adjacent or produces no match yields the there-and-back pair
// [swapped, original] so the caller can animate the rejection. The input
// board is never mutated.
func ResolveSwap(b Board, from, to Position, sp *Spawner) []Snapshot {
	if !from.InBounds(b.size) || !to.InBounds(b.size) {
		return []Snapshot{{Board: b}}
	}

	swapped := b.Copy()
	ft := swapped.at(from)
	swapped.setTile(from, swapped.at(to))
	swapped.setTile(to, ft)

	// Legality: adjacency plus at least one match at an endpoint.
	matches := swapMatches(swapped, from, to)
	if !Adjacent(from, to) || len(matches) == 0 {
		return []Snapshot{{Board: swapped}, {Board: b}}
	}

	snaps := []Snapshot{{Board: swapped}}
	cur := swapped
	for {
		marked := MarkConsumed(cur, matches)
		upgraded, points := upgradeOrigins(marked, matches)
		settled := ApplyGravity(upgraded, sp)
		snaps = append(snaps,
			Snapshot{Board: marked},
			Snapshot{Board: upgraded, Points: points},
			Snapshot{Board: settled},
		)

		cur = settled
		matches = UniqueMatches(cur)
		if len(matches) == 0 {
			return snaps
		}
	}
}

// swapMatches detects matches at both swap endpoints and drops the lower
// one if the two overlap (only possible when equal tiles were swapped, in
// which case both report the same run).
func swapMatches(b Board, from, to Position) []Match {
	var out []Match
	if m, ok := DetectMatch(b, from); ok {
		out = append(out, m)
	}
	if m, ok := DetectMatch(b, to); ok {
		out = append(out, m)
	}
	if len(out) == 2 && matchesOverlap(out[0], out[1], b.size) {
		if out[1].NewValue > out[0].NewValue {
			return out[1:]
		}
		return out[:1]
	}
	return out
}

func matchesOverlap(a, b Match, size int) bool {
	seen := make(map[int]bool, len(a.Consumed)+1)
	seen[a.Origin.Index(size)] = true
	for _, p := range a.Consumed {
		seen[p.Index(size)] = true
	}
	if seen[b.Origin.Index(size)] {
		return true
	}
	for _, p := range b.Consumed {
		if seen[p.Index(size)] {
			return true
		}
	}
	return false
}

// upgradeOrigins sets each match origin to its upgraded value and sums the
// step's points. Consumed marks stay in place; gravity removes them next.
func upgradeOrigins(b Board, matches []Match) (Board, int) {
	out := b.Copy()
	points := 0
	for _, m := range matches {
		out.setTile(m.Origin, out.at(m.Origin).withValue(m.NewValue))
		points += m.Points()
	}
	return out, points
}
