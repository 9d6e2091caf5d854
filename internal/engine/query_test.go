package engine

import "testing"

func TestFindAlmostMatchReturnsFirstPairInScanOrder(t *testing.T) {
	// Two swaps would work on this board; the scan walks cells by index
	// and neighbors up, down, left, right, so the (1,0)/(1,1) swap that
	// completes the top row of 3s wins over the 6s on the bottom row.
	b := mustBoard(t, [][]int{
		{3, 9, 3, 4},
		{10, 3, 12, 13},
		{20, 21, 22, 23},
		{6, 6, 41, 6},
	})

	from, to, ok := FindAlmostMatch(b)
	if !ok {
		t.Fatal("FindAlmostMatch: want a hint")
	}
	if from != P(1, 0) || to != P(1, 1) {
		t.Fatalf("hint = %s -> %s, want (1,0) -> (1,1)", from, to)
	}

	// The hint must be honest: playing it produces a merge.
	snaps := ResolveSwap(b, from, to, fixedSpawner(99))
	if len(snaps) < 4 {
		t.Errorf("hinted swap resolved to %d snapshots, want a merge sequence", len(snaps))
	}
}

func TestFindAlmostMatchDeterministic(t *testing.T) {
	b := NewBoard(8, testSpawner(44))

	f1, t1, ok1 := FindAlmostMatch(b)
	f2, t2, ok2 := FindAlmostMatch(b)
	if ok1 != ok2 || f1 != f2 || t1 != t2 {
		t.Errorf("repeated scans disagree: (%s,%s,%v) vs (%s,%s,%v)", f1, t1, ok1, f2, t2, ok2)
	}
}

func TestFindAlmostMatchDoesNotMutate(t *testing.T) {
	b := mustBoard(t, [][]int{
		{3, 9, 3, 4},
		{10, 3, 12, 13},
		{20, 21, 22, 23},
		{6, 6, 41, 6},
	})
	want := b.Values()

	FindAlmostMatch(b)

	got := b.Values()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FindAlmostMatch mutated the board at index %d", i)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	// Every value distinct: no swap can line anything up.
	dead := mustBoard(t, [][]int{
		{2, 3, 4, 5},
		{6, 7, 8, 9},
		{10, 11, 12, 13},
		{14, 15, 16, 17},
	})
	if !IsTerminal(dead) {
		t.Error("all-distinct board: want terminal")
	}

	alive := mustBoard(t, [][]int{
		{3, 9, 3, 4},
		{10, 3, 12, 13},
		{20, 21, 22, 23},
		{6, 6, 41, 6},
	})
	if IsTerminal(alive) {
		t.Error("board with a playable swap: want not terminal")
	}
}
