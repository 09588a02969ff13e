package storage

import (
	"encoding/json"
	"errors"
	"time"

	"sapientino/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeEpisode(e model.EpisodeRecord) ([]byte, error) {
	return json.Marshal(e)
}

func DecodeEpisode(data []byte) (model.EpisodeRecord, error) {
	var episode model.EpisodeRecord
	if err := json.Unmarshal(data, &episode); err != nil {
		return model.EpisodeRecord{}, err
	}
	if err := checkVersion(episode.VersionedRecord); err != nil {
		return model.EpisodeRecord{}, err
	}
	return episode, nil
}

func EncodeTrace(trace []model.StepTrace) ([]byte, error) {
	return json.Marshal(trace)
}

func DecodeTrace(data []byte) ([]model.StepTrace, error) {
	var trace []model.StepTrace
	if err := json.Unmarshal(data, &trace); err != nil {
		return nil, err
	}
	return trace, nil
}

// episodeSortKey converts a record timestamp into a comparable integer.
// RFC 3339 timestamps with differing fractional widths do not order
// correctly as strings, so both backends sort on this key instead.
// Unparseable timestamps sort oldest.
func episodeSortKey(createdAt string) int64 {
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return 0
	}
	return ts.UnixNano()
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
