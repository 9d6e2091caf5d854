package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("mergetile", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different game
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("mergetile", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	otherScores, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(otherScores) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(otherScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("mergetile", (i+1)*100)
	}

	scores, err := store.TopScores("mergetile", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("mergetile")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("mergetile", 100)
	store.SaveScore("mergetile", 300)
	store.SaveScore("mergetile", 200)

	high, err = store.HighScore("mergetile")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("mergetile", 100)
	store.SaveScore("mergetile", 200)
	store.SaveScore("other", 300)

	if err := store.ClearScores("mergetile"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores("mergetile", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(cleared))
	}

	kept, _ := store.TopScores("other", 10)
	if len(kept) != 1 {
		t.Errorf("Other game's scores should not be affected by clear")
	}
}

func TestSaveGameRoundTrip(t *testing.T) {
	store := openTestStore(t)

	board := []int{
		3, 9, 3,
		8, 3, 10,
		11, 12, 13,
	}
	if _, err := store.SaveGame("mergetile", 3, board, 160, 4); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	save, err := store.LatestSave("mergetile")
	if err != nil {
		t.Fatalf("LatestSave() failed: %v", err)
	}
	if save == nil {
		t.Fatal("LatestSave() returned nil for an existing save")
	}

	if save.Size != 3 || save.Score != 160 || save.Moves != 4 {
		t.Errorf("save = size %d score %d moves %d, want 3/160/4", save.Size, save.Score, save.Moves)
	}
	for i := range board {
		if save.Board[i] != board[i] {
			t.Fatalf("board differs at index %d: %d vs %d", i, save.Board[i], board[i])
		}
	}
}

func TestSaveGameReplacesPrevious(t *testing.T) {
	store := openTestStore(t)

	first := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	second := []int{9, 8, 7, 6, 5, 4, 3, 2, 1}

	if _, err := store.SaveGame("mergetile", 3, first, 10, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveGame("mergetile", 3, second, 20, 2); err != nil {
		t.Fatal(err)
	}

	save, err := store.LatestSave("mergetile")
	if err != nil {
		t.Fatal(err)
	}
	if save.Score != 20 || save.Board[0] != 9 {
		t.Errorf("latest save not the replacement: %+v", save)
	}
}

func TestSaveGameValidation(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveGame("mergetile", 3, []int{1, 2, 3}, 0, 0); err == nil {
		t.Error("SaveGame with short board should fail")
	}
	if _, err := store.SaveGame("mergetile", 0, nil, 0, 0); err == nil {
		t.Error("SaveGame with zero size should fail")
	}
}

func TestLatestSaveMissing(t *testing.T) {
	store := openTestStore(t)

	save, err := store.LatestSave("mergetile")
	if err != nil {
		t.Fatalf("LatestSave() failed: %v", err)
	}
	if save != nil {
		t.Errorf("Expected nil save, got %+v", save)
	}
}

func TestDeleteSave(t *testing.T) {
	store := openTestStore(t)

	board := []int{1, 2, 3, 4}
	if _, err := store.SaveGame("mergetile", 2, board, 5, 1); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteSave("mergetile"); err != nil {
		t.Fatalf("DeleteSave() failed: %v", err)
	}

	save, err := store.LatestSave("mergetile")
	if err != nil {
		t.Fatal(err)
	}
	if save != nil {
		t.Error("save still present after DeleteSave")
	}
}

func TestDecodeBoardCorrupt(t *testing.T) {
	if _, err := decodeBoard("1,2,x,4", 2); err == nil {
		t.Error("corrupt board should fail to decode")
	}
	if _, err := decodeBoard("1,2,3", 2); err == nil {
		t.Error("wrong-length board should fail to decode")
	}
}
