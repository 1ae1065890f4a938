package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("highscore", "ann", 42); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("highscore")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	testutil.AssertEqual(t, "high score after reopen", high, 42)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		game  string
		name  string
		score int
	}{
		{"highscore", "ann", 100},
		{"highscore", "bob", 50},
		{"highscore", "cy", 200},
		{"highscore_fresh", "ann", 500},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.game, s.name, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("highscore", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []struct {
		name  string
		score int
	}{{"cy", 200}, {"ann", 100}, {"bob", 50}}
	for i, w := range want {
		if scores[i].Score != w.score || scores[i].PlayerName != w.name {
			t.Errorf("score %d = %s/%d, expected %s/%d", i, scores[i].PlayerName, scores[i].Score, w.name, w.score)
		}
		if scores[i].GameID != "highscore" {
			t.Errorf("score %d game = %q", i, scores[i].GameID)
		}
	}

	freshScores, err := store.TopScores("highscore_fresh", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(freshScores) != 1 {
		t.Errorf("Expected 1 fresh score, got %d", len(freshScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("test", "ann", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresTiesKeepOrder(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"first", "second", "third"} {
		store.SaveScore("highscore", name, 10)
	}

	scores, err := store.TopScores("highscore", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	testutil.AssertEqual(t, "count", len(scores), 3)
	testutil.AssertEqual(t, "earliest tie first", scores[0].PlayerName, "first")
	testutil.AssertEqual(t, "latest tie last", scores[2].PlayerName, "third")
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("highscore")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("highscore", "ann", 100)
	store.SaveScore("highscore", "ann", 300)
	store.SaveScore("highscore", "ann", 200)

	high, err = store.HighScore("highscore")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("highscore", "ann", 100)
	store.SaveScore("highscore", "ann", 200)
	store.SaveScore("highscore_fresh", "ann", 300)

	// Clear only resumed-game scores
	if err := store.ClearScores("highscore"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	resumed, _ := store.TopScores("highscore", 10)
	if len(resumed) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(resumed))
	}

	fresh, _ := store.TopScores("highscore_fresh", 10)
	if len(fresh) != 1 {
		t.Errorf("Fresh-board scores should not be affected by clearing highscore")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		store.SaveScore("test", "ann", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("highscore")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	testutil.AssertEqual(t, "empty count", empty.GamesCount, 0)

	store.SaveScore("highscore", "ann", 10)
	store.SaveScore("highscore", "bob", 30)
	store.SaveScore("highscore_fresh", "cy", 7)

	stats, err := store.GetGameStats("highscore")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	testutil.AssertEqual(t, "count", stats.GamesCount, 2)
	testutil.AssertEqual(t, "high", stats.HighScore, 30)
	testutil.AssertEqual(t, "avg", stats.AvgScore, 20.0)
	testutil.AssertEqual(t, "total", stats.TotalScore, int64(40))
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	testutil.AssertEqual(t, "games", len(all), 2)
	testutil.AssertEqual(t, "fresh high", all["highscore_fresh"].HighScore, 7)
}

func TestStoreExpandHomePath(t *testing.T) {
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

	t.Setenv("HOME", tmpDir)
	homeStore, err := Open("~/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer homeStore.Close()

	if _, err := os.Stat(filepath.Join(tmpDir, "scores.db")); err != nil {
		t.Errorf("~ was not expanded to home: %v", err)
	}
}
