package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("catch", 42); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("catch"); high != 42 {
		t.Errorf("HighScore() after reopen = %d, expected 42", high)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200, 150} {
		if _, err := store.SaveScore("catch", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("catch_rain", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("catch", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	expected := []int{200, 150, 100}
	if len(scores) != len(expected) {
		t.Fatalf("TopScores() returned %d entries, expected %d", len(scores), len(expected))
	}
	for i, e := range scores {
		if e.Score != expected[i] || e.GameID != "catch" {
			t.Errorf("entry %d = %+v, expected score %d", i, e, expected[i])
		}
		if e.CreatedAt.IsZero() {
			t.Errorf("entry %d has no timestamp", i)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("catch")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() with no scores = %d, expected 0", high)
	}

	store.SaveScore("catch", 300)
	store.SaveScore("catch", 900)
	if high, _ := store.HighScore("catch"); high != 900 {
		t.Errorf("HighScore() = %d, expected 900", high)
	}
}

func TestStorePlays(t *testing.T) {
	store := openTestStore(t)

	first := Play{GameID: "catch", Seed: 7, Score: 12000, MaxCombo: 40, Accuracy: 0.95, Fruits: 38, FruitMisses: 2, Digest: "abc"}
	second := first
	second.Autopilot = true
	second.MaxCombo = 64
	other := Play{GameID: "catch", Seed: 8, Score: 1, Digest: "zzz"}

	for _, p := range []Play{first, second, other} {
		if _, err := store.SavePlay(p); err != nil {
			t.Fatalf("SavePlay() failed: %v", err)
		}
	}

	plays, err := store.PlaysBySeed("catch", 7)
	if err != nil {
		t.Fatalf("PlaysBySeed() failed: %v", err)
	}
	if len(plays) != 2 {
		t.Fatalf("PlaysBySeed() returned %d plays, expected 2", len(plays))
	}
	if plays[0].Autopilot || !plays[1].Autopilot {
		t.Error("plays should be ordered oldest first with autopilot flag preserved")
	}
	if plays[0].Digest != "abc" || plays[0].Accuracy != 0.95 || plays[0].FruitMisses != 2 {
		t.Errorf("play fields not preserved: %+v", plays[0])
	}

	recent, err := store.RecentPlays("catch", 1)
	if err != nil {
		t.Fatalf("RecentPlays() failed: %v", err)
	}
	if len(recent) != 1 || recent[0].Seed != 8 {
		t.Errorf("RecentPlays() = %+v, expected the seed 8 run", recent)
	}

	top, err := store.TopPlays("catch", 2)
	if err != nil {
		t.Fatalf("TopPlays() failed: %v", err)
	}
	if len(top) != 2 || top[0].Score != 12000 || top[0].Autopilot || !top[1].Autopilot {
		t.Errorf("TopPlays() should order by score then age, got %+v", top)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("catch")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("catch", 100)
	store.SaveScore("catch", 300)
	store.SavePlay(Play{GameID: "catch", Seed: 1, MaxCombo: 25, Digest: "d"})

	stats, err = store.GetGameStats("catch")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.BestCombo != 25 {
		t.Errorf("BestCombo = %d, expected 25", stats.BestCombo)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("catch", 100)
	store.SaveScore("catch_rain", 200)
	store.SavePlay(Play{GameID: "catch", Seed: 1, Digest: "d"})

	if err := store.ClearScores("catch"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("catch", 10); len(scores) != 0 {
		t.Errorf("catch scores should be cleared, got %d", len(scores))
	}
	if plays, _ := store.PlaysBySeed("catch", 1); len(plays) != 0 {
		t.Errorf("catch plays should be cleared, got %d", len(plays))
	}
	if scores, _ := store.TopScores("catch_rain", 10); len(scores) != 1 {
		t.Error("other games should be untouched")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.catch/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".catch", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}
