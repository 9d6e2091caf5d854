package engine

import "testing"

func TestScanMatchesReportsEveryRunMember(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 2, 2, 5},
		{6, 7, 8, 9},
		{10, 11, 12, 13},
		{14, 15, 16, 17},
	})

	all := ScanMatches(b)
	if len(all) != 3 {
		t.Fatalf("ScanMatches = %d matches, want 3 (one per run member)", len(all))
	}
}

func TestUniqueMatchesTieBreakByOriginIndex(t *testing.T) {
	// All three members of the run report equal NewValue; the accepted
	// origin is the earliest by index (y*size + x).
	b := mustBoard(t, [][]int{
		{9, 10, 11, 12},
		{2, 2, 2, 13},
		{14, 15, 16, 17},
		{18, 19, 20, 21},
	})

	unique := UniqueMatches(b)
	if len(unique) != 1 {
		t.Fatalf("UniqueMatches = %d matches, want 1", len(unique))
	}
	if unique[0].Origin != P(0, 1) {
		t.Errorf("origin = %s, want (0,1)", unique[0].Origin)
	}
}

func TestUniqueMatchesBiggerMergeClaimsFirst(t *testing.T) {
	// An L of 5s: the corner's union match (5 tiles, NewValue 8)
	// outranks the pure-axis matches of its members, so one match
	// claims everything.
	b := mustBoard(t, [][]int{
		{5, 5, 5, 9},
		{5, 10, 11, 12},
		{5, 13, 14, 15},
		{16, 17, 18, 19},
	})

	unique := UniqueMatches(b)
	if len(unique) != 1 {
		t.Fatalf("UniqueMatches = %d matches, want 1", len(unique))
	}
	m := unique[0]
	if m.Origin != P(0, 0) {
		t.Errorf("origin = %s, want (0,0)", m.Origin)
	}
	if m.NewValue != 8 {
		t.Errorf("NewValue = %d, want 8", m.NewValue)
	}
	if len(m.Consumed) != 4 {
		t.Errorf("consumed = %d positions, want 4", len(m.Consumed))
	}
}

func TestUniqueMatchesDisjointRuns(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 2, 2, 9},
		{10, 11, 12, 13},
		{14, 15, 16, 17},
		{3, 3, 3, 18},
	})

	unique := UniqueMatches(b)
	if len(unique) != 2 {
		t.Fatalf("UniqueMatches = %d matches, want 2", len(unique))
	}

	// Equal merge sizes: value-3 run yields NewValue 4, value-2 run
	// NewValue 3, so the 3s run sorts first.
	if unique[0].Origin != P(0, 3) {
		t.Errorf("first origin = %s, want (0,3)", unique[0].Origin)
	}
	if unique[1].Origin != P(0, 0) {
		t.Errorf("second origin = %s, want (0,0)", unique[1].Origin)
	}
}

func TestUniqueMatchesEmptyOnStableBoard(t *testing.T) {
	b := NewBoard(8, testSpawner(42))
	if got := UniqueMatches(b); len(got) != 0 {
		t.Errorf("UniqueMatches on generated board = %d matches, want 0", len(got))
	}
}
