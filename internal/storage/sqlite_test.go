package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func TestSaveMatchAndByID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveMatch(MatchRecord{
		P1Char:   2,
		P2Char:   3,
		P1Rounds: 2,
		P2Rounds: 1,
		Winner:   0,
		Rounds:   3,
		Ticks:    1800,
	})
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("generated match ID %q is not a UUID: %v", id, err)
	}

	rec, err := store.MatchByID(id)
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if rec == nil {
		t.Fatal("MatchByID() returned nil for a saved match")
	}
	if rec.P1Char != 2 || rec.P2Char != 3 || rec.P1Rounds != 2 || rec.P2Rounds != 1 {
		t.Errorf("record = %+v", rec)
	}
	if rec.Rounds != 3 || rec.Ticks != 1800 || rec.Source != "local" {
		t.Errorf("record = %+v", rec)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	missing, err := store.MatchByID("nope")
	if err != nil || missing != nil {
		t.Errorf("MatchByID(missing) = %v, %v", missing, err)
	}
}

func TestSaveMatchKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveMatch(MatchRecord{MatchID: "fixed", Source: "sim"})
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if id != "fixed" {
		t.Errorf("id = %q, expected fixed", id)
	}

	// Match IDs are unique
	if _, err := store.SaveMatch(MatchRecord{MatchID: "fixed"}); err == nil {
		t.Error("expected error for duplicate match ID")
	}
}

func TestRecentMatchesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 25 {
		if _, err := store.SaveMatch(MatchRecord{Ticks: i}); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	recs, err := store.RecentMatches(5)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recs) != 5 {
		t.Fatalf("Expected 5 matches, got %d", len(recs))
	}
	// Newest first
	if recs[0].Ticks != 24 || recs[4].Ticks != 20 {
		t.Errorf("order = %d..%d, expected 24..20", recs[0].Ticks, recs[4].Ticks)
	}

	// Default limit
	recs, err = store.RecentMatches(0)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recs) != 20 {
		t.Errorf("Expected 20 matches, got %d", len(recs))
	}
}

func TestCharacterRecords(t *testing.T) {
	store := openTestStore(t)

	matches := []MatchRecord{
		{P1Char: 0, P2Char: 1, Winner: 0},
		{P1Char: 0, P2Char: 1, Winner: 1},
		{P1Char: 2, P2Char: 0, Winner: 1},
		{P1Char: 3, P2Char: 3, Winner: 0},
	}
	for _, m := range matches {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	recs, err := store.CharacterRecords()
	if err != nil {
		t.Fatalf("CharacterRecords() failed: %v", err)
	}

	expected := []CharacterRecord{
		{CharID: 0, Played: 3, Wins: 2},
		{CharID: 1, Played: 2, Wins: 1},
		{CharID: 2, Played: 1, Wins: 0},
		{CharID: 3, Played: 2, Wins: 1},
	}
	if len(recs) != len(expected) {
		t.Fatalf("got %d records, expected %d: %+v", len(recs), len(expected), recs)
	}
	for i, want := range expected {
		if recs[i] != want {
			t.Errorf("record[%d] = %+v, expected %+v", i, recs[i], want)
		}
	}
	if recs[0].Losses() != 1 {
		t.Errorf("Losses() = %d, expected 1", recs[0].Losses())
	}
}

func TestClearMatches(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(MatchRecord{}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}
	recs, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("Expected no matches after clear, got %d", len(recs))
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
