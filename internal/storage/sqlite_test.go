//go:build sqlite

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"sapientino/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "episodes.db"))
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestSQLiteStoreEpisodeRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	if err := store.SaveEpisode(ctx, testEpisode("ep-1", "2026-01-01T00:00:00Z")); err != nil {
		t.Fatalf("save episode: %v", err)
	}
	episode, ok, err := store.GetEpisode(ctx, "ep-1")
	if err != nil {
		t.Fatalf("get episode: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted episode")
	}
	if episode.TotalReward != -1.05 || episode.BeepCounts["red"] != 2 {
		t.Fatalf("unexpected episode: %+v", episode)
	}
}

func TestSQLiteStoreUpsertAndList(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	if err := store.SaveEpisode(ctx, testEpisode("ep-1", "2026-01-01T00:00:00Z")); err != nil {
		t.Fatalf("save episode: %v", err)
	}
	updated := testEpisode("ep-1", "2026-01-01T00:00:00Z")
	updated.Steps = 10
	if err := store.SaveEpisode(ctx, updated); err != nil {
		t.Fatalf("upsert episode: %v", err)
	}
	if err := store.SaveEpisode(ctx, testEpisode("ep-2", "2026-02-01T00:00:00Z")); err != nil {
		t.Fatalf("save episode: %v", err)
	}

	episodes, err := store.ListEpisodes(ctx, 0)
	if err != nil {
		t.Fatalf("list episodes: %v", err)
	}
	if len(episodes) != 2 {
		t.Fatalf("got %d episodes, want 2", len(episodes))
	}
	if episodes[0].ID != "ep-2" {
		t.Fatalf("newest first: got %s", episodes[0].ID)
	}
	if episodes[1].Steps != 10 {
		t.Fatalf("upsert lost: steps %d", episodes[1].Steps)
	}
}

func TestSQLiteStoreListOrdersMixedFractionalTimestamps(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	// Fractional and whole-second timestamps must order by instant, not
	// by their textual form.
	for _, ep := range []model.EpisodeRecord{
		testEpisode("ep-later", "2026-01-01T00:00:00.5Z"),
		testEpisode("ep-earlier", "2026-01-01T00:00:00Z"),
	} {
		if err := store.SaveEpisode(ctx, ep); err != nil {
			t.Fatalf("save episode: %v", err)
		}
	}

	episodes, err := store.ListEpisodes(ctx, 0)
	if err != nil {
		t.Fatalf("list episodes: %v", err)
	}
	if len(episodes) != 2 || episodes[0].ID != "ep-later" || episodes[1].ID != "ep-earlier" {
		t.Fatalf("unexpected order: %+v", episodes)
	}
}

func TestSQLiteStoreTraceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	input := []model.StepTrace{
		{Tick: 0, Commands: []string{">", "o"}, Reward: -0.01},
		{Tick: 1, Commands: []string{"v", "_"}, Reward: -1.01},
	}
	if err := store.SaveTrace(ctx, "ep-1", input); err != nil {
		t.Fatalf("save trace: %v", err)
	}
	trace, ok, err := store.GetTrace(ctx, "ep-1")
	if err != nil {
		t.Fatalf("get trace: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted trace")
	}
	if len(trace) != 2 || trace[1].Commands[1] != "_" {
		t.Fatalf("unexpected trace: %+v", trace)
	}
}
