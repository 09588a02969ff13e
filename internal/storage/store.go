package storage

import (
	"context"

	"sapientino/internal/model"
)

// Store defines persistence operations for recorded episodes.
type Store interface {
	Init(ctx context.Context) error
	SaveEpisode(ctx context.Context, episode model.EpisodeRecord) error
	GetEpisode(ctx context.Context, id string) (model.EpisodeRecord, bool, error)
	ListEpisodes(ctx context.Context, limit int) ([]model.EpisodeRecord, error)
	SaveTrace(ctx context.Context, episodeID string, trace []model.StepTrace) error
	GetTrace(ctx context.Context, episodeID string) ([]model.StepTrace, bool, error)
}
