package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-spawner/internal/core"
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	sessions := []Session{
		{PresetID: "rain", Spawned: 100, Blocked: 4, PeakLive: 60, Duration: 12.5},
		{PresetID: "rain", Spawned: 50, Removed: 3, Cleared: 1, PeakLive: 40, Duration: 6},
		{PresetID: "turret", Spawned: 20, PeakLive: 10, Duration: 3},
	}
	for _, sess := range sessions {
		if _, err := store.SaveSession(sess); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	rain, err := store.RecentSessions("rain", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(rain) != 2 {
		t.Fatalf("Expected 2 rain sessions, got %d", len(rain))
	}

	// Newest first
	got := rain[0]
	if got.Spawned != 50 || got.Removed != 3 || got.Cleared != 1 || got.PeakLive != 40 || got.Duration != 6 {
		t.Errorf("Unexpected newest session: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	all, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 sessions overall, got %d", len(all))
	}
}

func TestStoreSaveRequiresPreset(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveSession(Session{Spawned: 1}); err == nil {
		t.Error("Expected error for session without preset id")
	}
}

func TestStoreRecentSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveSession(Session{PresetID: "test", Spawned: i})
	}

	sessions, err := store.RecentSessions("test", 3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(sessions))
	}
	if sessions[0].Spawned != 4 || sessions[1].Spawned != 3 || sessions[2].Spawned != 2 {
		t.Errorf("Sessions not in expected order: %+v", sessions)
	}
}

func TestStorePresetStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.PresetStats("rain")
	if err != nil {
		t.Fatalf("PresetStats() failed: %v", err)
	}
	if empty.Sessions != 0 || empty.BestPeak != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats for unplayed preset, got %+v", empty)
	}

	store.SaveSession(Session{PresetID: "rain", Spawned: 10, Blocked: 1, PeakLive: 5, Duration: 2})
	store.SaveSession(Session{PresetID: "rain", Spawned: 30, Blocked: 2, PeakLive: 9, Duration: 4})
	store.SaveSession(Session{PresetID: "turret", Spawned: 99, PeakLive: 50})

	stats, err := store.PresetStats("rain")
	if err != nil {
		t.Fatalf("PresetStats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.TotalSpawned != 40 || stats.TotalBlocked != 3 ||
		stats.BestPeak != 9 || stats.TotalTime != 6 {
		t.Errorf("Unexpected rain stats: %+v", stats)
	}

	all, err := store.AllPresetStats()
	if err != nil {
		t.Fatalf("AllPresetStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 presets, got %d", len(all))
	}
	if all["turret"].BestPeak != 50 {
		t.Errorf("Unexpected turret stats: %+v", all["turret"])
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{PresetID: "rain"})
	store.SaveSession(Session{PresetID: "rain"})
	store.SaveSession(Session{PresetID: "turret"})

	if err := store.ClearSessions("rain"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	rain, _ := store.RecentSessions("rain", 10)
	if len(rain) != 0 {
		t.Errorf("Expected 0 rain sessions after clear, got %d", len(rain))
	}
	turret, _ := store.RecentSessions("turret", 10)
	if len(turret) != 1 {
		t.Error("Turret sessions should not be affected by clearing rain")
	}

	if err := store.ClearSessions(""); err != nil {
		t.Fatalf("ClearSessions(\"\") failed: %v", err)
	}
	all, _ := store.RecentSessions("", 10)
	if len(all) != 0 {
		t.Errorf("Expected empty history, got %d", len(all))
	}
}

func TestSessionFromState(t *testing.T) {
	st := core.SimState{Live: 3, Spawned: 12, Blocked: 2, Removed: 1, Cleared: 4, Peak: 7, Elapsed: 9.5}
	got := SessionFromState("fountain", st)
	want := Session{PresetID: "fountain", Spawned: 12, Blocked: 2, Removed: 1, Cleared: 4, PeakLive: 7, Duration: 9.5}
	if got != want {
		t.Errorf("SessionFromState() = %+v, want %+v", got, want)
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
