package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// EpisodeRecord summarizes one finished episode.
type EpisodeRecord struct {
	VersionedRecord
	ID           string         `json:"id"`
	MapName      string         `json:"map_name"`
	Agents       int            `json:"agents"`
	Steps        int            `json:"steps"`
	TotalReward  float64        `json:"total_reward"`
	BeepCounts   map[string]int `json:"beep_counts"`
	CreatedAtUTC string         `json:"created_at_utc"`
}

// AgentPose is one agent's observable state inside a step trace.
type AgentPose struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Velocity float64 `json:"velocity"`
	Theta    float64 `json:"theta"`
	Beep     bool    `json:"beep"`
	Color    int     `json:"color"`
}

// StepTrace is one recorded tick of an episode.
type StepTrace struct {
	Tick     int         `json:"tick"`
	Commands []string    `json:"commands"`
	Reward   float64     `json:"reward"`
	Agents   []AgentPose `json:"agents"`
}
