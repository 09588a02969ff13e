package storage

import (
	"context"
	"sort"
	"sync"

	"sapientino/internal/model"
)

type MemoryStore struct {
	mu       sync.RWMutex
	episodes map[string]model.EpisodeRecord
	order    []string
	traces   map[string][]model.StepTrace
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.episodes = make(map[string]model.EpisodeRecord)
	s.order = nil
	s.traces = make(map[string][]model.StepTrace)
	return nil
}

func (s *MemoryStore) SaveEpisode(_ context.Context, episode model.EpisodeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.episodes[episode.ID]; !ok {
		s.order = append(s.order, episode.ID)
	}
	s.episodes[episode.ID] = cloneEpisode(episode)
	return nil
}

func (s *MemoryStore) GetEpisode(_ context.Context, id string) (model.EpisodeRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	episode, ok := s.episodes[id]
	if !ok {
		return model.EpisodeRecord{}, false, nil
	}
	return cloneEpisode(episode), true, nil
}

func (s *MemoryStore) ListEpisodes(_ context.Context, limit int) ([]model.EpisodeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := append([]string(nil), s.order...)
	// Newest first, matching the sqlite backend's ordering.
	sort.SliceStable(ids, func(i, j int) bool {
		return episodeSortKey(s.episodes[ids[i]].CreatedAtUTC) > episodeSortKey(s.episodes[ids[j]].CreatedAtUTC)
	})
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	episodes := make([]model.EpisodeRecord, 0, len(ids))
	for _, id := range ids {
		episodes = append(episodes, cloneEpisode(s.episodes[id]))
	}
	return episodes, nil
}

func (s *MemoryStore) SaveTrace(_ context.Context, episodeID string, trace []model.StepTrace) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]model.StepTrace, len(trace))
	copy(copied, trace)
	s.traces[episodeID] = copied
	return nil
}

func (s *MemoryStore) GetTrace(_ context.Context, episodeID string) ([]model.StepTrace, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trace, ok := s.traces[episodeID]
	if !ok {
		return nil, false, nil
	}
	copied := make([]model.StepTrace, len(trace))
	copy(copied, trace)
	return copied, true, nil
}

func cloneEpisode(e model.EpisodeRecord) model.EpisodeRecord {
	counts := make(map[string]int, len(e.BeepCounts))
	for color, n := range e.BeepCounts {
		counts[color] = n
	}
	e.BeepCounts = counts
	return e
}
