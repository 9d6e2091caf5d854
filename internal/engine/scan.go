package engine

import "sort"

// ScanMatches runs DetectMatch at every position and collects all
// successful matches. Every member of a run reports its own match, so the
// result contains overlapping duplicates; UniqueMatches reduces them.
func ScanMatches(b Board) []Match {
	var out []Match
	for i := 0; i < b.size*b.size; i++ {
		if m, ok := DetectMatch(b, PositionFromIndex(i, b.size)); ok {
			out = append(out, m)
		}
	}
	return out
}

// UniqueMatches reduces ScanMatches output to a non-overlapping set.
// Candidates are ordered by NewValue descending (bigger merges claim
// contested tiles first), then origin index ascending as the fixed
// tie-break. A candidate is skipped if its origin or any consumed position
// was already claimed, so each board position is consumed by at most one
// match per resolution step.
func UniqueMatches(b Board) []Match {
	candidates := ScanMatches(b)
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].NewValue != candidates[j].NewValue {
			return candidates[i].NewValue > candidates[j].NewValue
		}
		return candidates[i].Origin.Index(b.size) < candidates[j].Origin.Index(b.size)
	})

	claimed := make([]bool, b.size*b.size)
	var out []Match
	for _, m := range candidates {
		if overlapsClaimed(m, claimed, b.size) {
			continue
		}
		claimed[m.Origin.Index(b.size)] = true
		for _, p := range m.Consumed {
			claimed[p.Index(b.size)] = true
		}
		out = append(out, m)
	}
	return out
}

func overlapsClaimed(m Match, claimed []bool, size int) bool {
	if claimed[m.Origin.Index(size)] {
		return true
	}
	for _, p := range m.Consumed {
		if claimed[p.Index(size)] {
			return true
		}
	}
	return false
}
