package storage

import (
	"os"
	"path/filepath"
	"strings"
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{Player: "alice", Score: 100, Coins: 30, Enemies: 2, Obstacles: 5, DurationTicks: 3600, Seed: 7},
		{Player: "bob", Score: 50, Coins: 12},
		{Player: "alice", Score: 200, Coins: 61, Enemies: 4, Obstacles: 9, DurationTicks: 7200, Seed: 7},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(got))
	}

	// Should be sorted by score descending
	if got[0].Score != 200 || got[1].Score != 100 || got[2].Score != 50 {
		t.Errorf("Runs not sorted by score: %d, %d, %d", got[0].Score, got[1].Score, got[2].Score)
	}
	if got[0].Player != "alice" || got[0].Coins != 61 {
		t.Errorf("Best run fields lost: %+v", got[0])
	}
	if got[0].DurationTicks != 7200 || got[0].Seed != 7 {
		t.Errorf("Duration/seed lost: %+v", got[0])
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreEmptyPlayerBecomesLocal(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunRecord{Score: 10}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.TopRuns(1)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(got) != 1 || got[0].Player != "local" {
		t.Errorf("Empty player should be stored as local, got %+v", got)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{Player: "p", Score: (i + 1) * 100})
	}

	got, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(got))
	}
	if got[0].Score != 500 || got[1].Score != 400 || got[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", got)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	store.SaveRun(RunRecord{Player: "p", Score: 100})
	store.SaveRun(RunRecord{Player: "p", Score: 300})
	store.SaveRun(RunRecord{Player: "p", Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Player: "p", Score: 100})
	store.SaveRun(RunRecord{Player: "p", Score: 200})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	got, _ := store.TopRuns(10)
	if len(got) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(got))
	}
}

func TestStoreAllRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveRun(RunRecord{Player: "p", Score: i * 10})
	}

	got, err := store.AllRuns()
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}

	if len(got) != 20 {
		t.Errorf("Expected 20 runs, got %d", len(got))
	}
}

func TestStoreGetStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.HighScore != 0 {
		t.Errorf("Empty table stats should be zero, got %+v", stats)
	}

	store.SaveRun(RunRecord{Player: "p", Score: 100, Coins: 40})
	store.SaveRun(RunRecord{Player: "p", Score: 300, Coins: 80})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.Runs)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", stats.AvgScore)
	}
	if stats.TotalCoins != 120 {
		t.Errorf("Expected 120 total coins, got %d", stats.TotalCoins)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be populated")
	}
}

func TestStoreNestedPath(t *testing.T) {
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

func TestExportCSV(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Player: "alice", Score: 150, Coins: 42, Enemies: 3})
	store.SaveRun(RunRecord{Player: "bob", Score: 90})

	runs, err := store.AllRuns()
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}

	var buf strings.Builder
	if err := ExportCSV(&buf, runs); err != nil {
		t.Fatalf("ExportCSV() failed: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "player") || !strings.Contains(lines[0], "duration_ticks") {
		t.Errorf("Header missing expected columns: %s", lines[0])
	}
	if !strings.Contains(out, "alice") || !strings.Contains(out, "42") {
		t.Errorf("Rows missing expected fields:\n%s", out)
	}
}
