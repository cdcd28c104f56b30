package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func openTemp(t *testing.T) *Store {
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveSession(SessionRecord{Scene: "beach"})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	rec, err := store.SessionByID(id)
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if rec == nil || rec.Scene != "beach" {
		t.Errorf("SessionByID() = %+v, expected beach session", rec)
	}
}

func TestSaveSessionRoundTrip(t *testing.T) {
	store := openTemp(t)

	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := SessionRecord{
		Scene:     "bonfire",
		Seed:      42,
		Boundary:  "TB--",
		StartedAt: start,
		EndedAt:   start.Add(90 * time.Second),
		Ticks:     2700,
		Peak:      310,
		Spawned:   420,
		Reactions: 17,
		Tallies: []ReactionTally{
			{A: "water", B: "fire", Product: "steam", Count: 12},
			{A: "oil", B: "fire", Product: "fire", Count: 5},
		},
		Samples: []PopulationSample{
			{Tick: 0, Counts: map[string]int{"water": 100, "fire": 20}},
			{Tick: 30, Counts: map[string]int{"water": 90, "fire": 10, "steam": 10}},
		},
	}

	id, err := store.SaveSession(rec)
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveSession() returned empty id")
	}

	got, err := store.SessionByID(id)
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("SessionByID() = nil, expected session")
	}
	if got.Scene != "bonfire" || got.Seed != 42 || got.Boundary != "TB--" {
		t.Errorf("SessionByID() = %+v, expected bonfire/42/TB--", got)
	}
	if got.Ticks != 2700 || got.Peak != 310 || got.Spawned != 420 || got.Reactions != 17 {
		t.Errorf("SessionByID() counters = %d/%d/%d/%d", got.Ticks, got.Peak, got.Spawned, got.Reactions)
	}
	if !got.StartedAt.Equal(start) {
		t.Errorf("StartedAt = %v, expected %v", got.StartedAt, start)
	}
	if got.Duration() != 90*time.Second {
		t.Errorf("Duration() = %v, expected 90s", got.Duration())
	}

	tallies, err := store.ReactionTallies(id)
	if err != nil {
		t.Fatalf("ReactionTallies() failed: %v", err)
	}
	if diff := cmp.Diff(rec.Tallies, tallies); diff != "" {
		t.Errorf("ReactionTallies() mismatch (-want +got):\n%s", diff)
	}

	samples, err := store.PopulationSamples(id)
	if err != nil {
		t.Fatalf("PopulationSamples() failed: %v", err)
	}
	if diff := cmp.Diff(rec.Samples, samples); diff != "" {
		t.Errorf("PopulationSamples() mismatch (-want +got):\n%s", diff)
	}
	if samples[1].Total() != 110 {
		t.Errorf("Total() = %d, expected 110", samples[1].Total())
	}
}

func TestSaveSessionKeepsID(t *testing.T) {
	store := openTemp(t)

	id, err := store.SaveSession(SessionRecord{ID: "fixed", Scene: "lab"})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if id != "fixed" {
		t.Errorf("SaveSession() = %q, expected %q", id, "fixed")
	}

	if _, err := store.SaveSession(SessionRecord{ID: "fixed", Scene: "lab"}); err == nil {
		t.Error("SaveSession() with duplicate id should fail")
	}
}

func TestSaveSessionRequiresScene(t *testing.T) {
	store := openTemp(t)

	if _, err := store.SaveSession(SessionRecord{}); err == nil {
		t.Error("SaveSession() without scene should fail")
	}
}

func TestRecentSessions(t *testing.T) {
	store := openTemp(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, scene := range []string{"empty", "beach", "bonfire"} {
		start := base.Add(time.Duration(i) * time.Hour)
		if _, err := store.SaveSession(SessionRecord{Scene: scene, StartedAt: start, EndedAt: start}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("RecentSessions(2) returned %d sessions", len(recent))
	}
	if recent[0].Scene != "bonfire" || recent[1].Scene != "beach" {
		t.Errorf("RecentSessions() = %s, %s, expected bonfire, beach", recent[0].Scene, recent[1].Scene)
	}
}

func TestSessionByIDMissing(t *testing.T) {
	store := openTemp(t)

	rec, err := store.SessionByID("nope")
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if rec != nil {
		t.Errorf("SessionByID() = %+v, expected nil", rec)
	}
}

func TestTotalsByProduct(t *testing.T) {
	store := openTemp(t)

	sessions := [][]ReactionTally{
		{{A: "water", B: "fire", Product: "steam", Count: 4}, {A: "oil", B: "fire", Product: "fire", Count: 1}},
		{{A: "water", B: "fire", Product: "steam", Count: 6}},
	}
	for _, tallies := range sessions {
		if _, err := store.SaveSession(SessionRecord{Scene: "bonfire", Tallies: tallies}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	totals, err := store.TotalsByProduct()
	if err != nil {
		t.Fatalf("TotalsByProduct() failed: %v", err)
	}
	expected := []ProductTotal{
		{Product: "steam", Count: 10, Sessions: 2},
		{Product: "fire", Count: 1, Sessions: 1},
	}
	if diff := cmp.Diff(expected, totals); diff != "" {
		t.Errorf("TotalsByProduct() mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteSession(t *testing.T) {
	store := openTemp(t)

	id, err := store.SaveSession(SessionRecord{
		Scene:   "rainstorm",
		Tallies: []ReactionTally{{A: "water", B: "fire", Product: "steam", Count: 1}},
		Samples: []PopulationSample{{Tick: 0, Counts: map[string]int{"water": 3}}},
	})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	if err := store.DeleteSession(id); err != nil {
		t.Fatalf("DeleteSession() failed: %v", err)
	}

	rec, _ := store.SessionByID(id)
	if rec != nil {
		t.Error("session still present after DeleteSession()")
	}
	tallies, _ := store.ReactionTallies(id)
	if len(tallies) != 0 {
		t.Errorf("ReactionTallies() = %v, expected none", tallies)
	}
	samples, _ := store.PopulationSamples(id)
	if len(samples) != 0 {
		t.Errorf("PopulationSamples() = %v, expected none", samples)
	}
}

func TestPopulationSamplesKeepsEmpty(t *testing.T) {
	store := openTemp(t)

	samples := []PopulationSample{
		{Tick: 0, Counts: map[string]int{}},
		{Tick: 30, Counts: map[string]int{"sand": 4}},
		{Tick: 60, Counts: map[string]int{}},
	}
	id, err := store.SaveSession(SessionRecord{Scene: "empty", Samples: samples})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	got, err := store.PopulationSamples(id)
	if err != nil {
		t.Fatalf("PopulationSamples() failed: %v", err)
	}
	if diff := cmp.Diff(samples, got); diff != "" {
		t.Errorf("PopulationSamples() mismatch (-want +got):\n%s", diff)
	}
	if got[2].Total() != 0 {
		t.Errorf("Total() = %d, expected 0", got[2].Total())
	}
}
