package engine

import "testing"

func TestNewBoardHasNoMatches(t *testing.T) {
	for size := 3; size <= 10; size++ {
		for seed := int64(0); seed < 5; seed++ {
			b := NewBoard(size, testSpawner(seed))
			if got := UniqueMatches(b); len(got) != 0 {
				t.Errorf("size %d seed %d: generated board has %d matches", size, seed, len(got))
			}
		}
	}
}

func TestNewBoardValuesInSpawnRange(t *testing.T) {
	b := NewBoard(8, testSpawner(17))
	for i, v := range b.Values() {
		if v < SpawnMinValue || v > SpawnMaxValue {
			t.Errorf("value %d at index %d outside spawn range", v, i)
		}
	}
}

func TestNewBoardUniqueTileIDs(t *testing.T) {
	b := NewBoard(6, testSpawner(29))
	seen := make(map[int]bool)
	for i := 0; i < 36; i++ {
		tile := b.at(PositionFromIndex(i, 6))
		if tile.ID == 0 {
			t.Fatalf("tile at index %d has zero id", i)
		}
		if seen[tile.ID] {
			t.Fatalf("duplicate tile id %d", tile.ID)
		}
		seen[tile.ID] = true
	}
}

func TestNewBoardSeedDeterminism(t *testing.T) {
	a := NewBoard(8, testSpawner(1234)).Values()
	b := NewBoard(8, testSpawner(1234)).Values()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at index %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestNewBoardCustomSpawnRange(t *testing.T) {
	sp := NewSpawnerRange(testSpawner(3).rng, 1, 5)
	b := NewBoard(7, sp)
	for i, v := range b.Values() {
		if v < 1 || v > 5 {
			t.Errorf("value %d at index %d outside [1,5]", v, i)
		}
	}
}
