package storage

import (
	"context"
	"testing"

	"sapientino/internal/model"
)

func testEpisode(id, createdAt string) model.EpisodeRecord {
	return model.EpisodeRecord{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		ID:              id,
		MapName:         "default",
		Agents:          1,
		Steps:           5,
		TotalReward:     -1.05,
		BeepCounts:      map[string]int{"red": 2},
		CreatedAtUTC:    createdAt,
	}
}

func TestMemoryStoreEpisodeRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

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
	if episode.Steps != 5 || episode.BeepCounts["red"] != 2 {
		t.Fatalf("unexpected episode: %+v", episode)
	}

	if _, ok, err := store.GetEpisode(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing episode: ok=%v err=%v", ok, err)
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	for _, ep := range []model.EpisodeRecord{
		testEpisode("ep-old", "2026-01-01T00:00:00Z"),
		testEpisode("ep-new", "2026-02-01T00:00:00Z"),
		testEpisode("ep-mid", "2026-01-15T00:00:00Z"),
	} {
		if err := store.SaveEpisode(ctx, ep); err != nil {
			t.Fatalf("save episode: %v", err)
		}
	}

	episodes, err := store.ListEpisodes(ctx, 2)
	if err != nil {
		t.Fatalf("list episodes: %v", err)
	}
	if len(episodes) != 2 {
		t.Fatalf("got %d episodes, want 2", len(episodes))
	}
	if episodes[0].ID != "ep-new" || episodes[1].ID != "ep-mid" {
		t.Fatalf("unexpected order: %s, %s", episodes[0].ID, episodes[1].ID)
	}
}

func TestMemoryStoreListOrdersMixedFractionalTimestamps(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	// RFC 3339 timestamps with and without fractional seconds do not
	// compare correctly as strings ('.' sorts before 'Z'), so the later
	// half-second tick must still list first.
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

func TestMemoryStoreTraceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := []model.StepTrace{{
		Tick:     0,
		Commands: []string{">"},
		Reward:   -0.01,
		Agents:   []model.AgentPose{{X: 3, Y: 2, Theta: 90}},
	}}
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
	if len(trace) != 1 || trace[0].Commands[0] != ">" {
		t.Fatalf("unexpected trace: %+v", trace)
	}
}

func TestCodecVersionMismatch(t *testing.T) {
	episode := testEpisode("ep-1", "2026-01-01T00:00:00Z")
	episode.CodecVersion = 99
	payload, err := EncodeEpisode(episode)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeEpisode(payload); err != ErrVersionMismatch {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}
