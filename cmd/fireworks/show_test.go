package main

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-fireworks/internal/config"
	"github.com/vovakirdan/tui-fireworks/internal/fireworks"
	"github.com/vovakirdan/tui-fireworks/internal/storage"
)

var clock = func() time.Time { return time.Unix(0, 987654321) }

func historyConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.History.DBPath = filepath.Join(t.TempDir(), "history.db")
	return cfg
}

func seedHistory(t *testing.T, dbPath string, rec storage.ShowRecord) int64 {
	t.Helper()
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	id, err := store.SaveShow(rec)
	if err != nil {
		t.Fatalf("SaveShow() failed: %v", err)
	}
	return id
}

func TestResolveRunSeed(t *testing.T) {
	cfg := historyConfig(t)

	rc, err := resolveRun(cfg, 0, 42, clock)
	if err != nil {
		t.Fatalf("resolveRun() failed: %v", err)
	}
	if rc.Seed != 42 {
		t.Errorf("expected seed 42, got %d", rc.Seed)
	}
	if rc.ScreenW != 160 || rc.ScreenH != 60 || rc.TickRate != 20 {
		t.Errorf("unexpected runtime config %+v", rc)
	}

	rc, err = resolveRun(cfg, 0, 0, clock)
	if err != nil {
		t.Fatalf("resolveRun() failed: %v", err)
	}
	if rc.Seed != 987654321 {
		t.Errorf("expected clock seed, got %d", rc.Seed)
	}
}

func TestResolveRunReplay(t *testing.T) {
	cfg := historyConfig(t)
	id := seedHistory(t, cfg.History.DBPath, storage.ShowRecord{
		Seed:      777,
		Backend:   "tcell",
		GridW:     100,
		GridH:     40,
		StartedAt: time.Now(),
		Stats:     fireworks.Stats{Launched: 3},
	})

	rc, err := resolveRun(cfg, id, 0, clock)
	if err != nil {
		t.Fatalf("resolveRun() failed: %v", err)
	}
	if rc.Seed != 777 {
		t.Errorf("replay should reuse seed 777, got %d", rc.Seed)
	}
	if rc.ScreenW != 100 || rc.ScreenH != 40 {
		t.Errorf("replay should reuse the 100x40 grid, got %dx%d", rc.ScreenW, rc.ScreenH)
	}

	// Same seed, same grid: the opening of the show matches the recorded run
	a, b := rc.NewRand(), rc.NewRand()
	for i := 0; i < 20; i++ {
		if a.IntRange(0, 1000) != b.IntRange(0, 1000) {
			t.Fatal("replayed randomness diverged")
		}
	}
}

func TestResolveRunReplayErrors(t *testing.T) {
	cfg := historyConfig(t)

	_, err := resolveRun(cfg, 5, 0, clock)
	if err == nil || !strings.Contains(err.Error(), "no show #5") {
		t.Errorf("expected missing show error, got %v", err)
	}

	_, err = resolveRun(cfg, 5, 42, clock)
	if err == nil || !strings.Contains(err.Error(), "cannot be combined") {
		t.Errorf("expected conflict error, got %v", err)
	}
}

func TestHistoryClearCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	seedHistory(t, dbPath, storage.ShowRecord{Seed: 1, Backend: "tea", StartedAt: time.Now()})
	t.Cleanup(func() {
		flagDBPath = ""
		flagClear = false
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"history", "--db", dbPath, "--clear"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("history --clear failed: %v", err)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	shows, err := store.RecentShows(10)
	if err != nil {
		t.Fatalf("RecentShows() failed: %v", err)
	}
	if len(shows) != 0 {
		t.Errorf("expected empty history, got %d shows", len(shows))
	}
}
