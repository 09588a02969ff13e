package sapientino

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"sapientino/internal/config"
	"sapientino/internal/model"
	"sapientino/internal/stats"
	"sapientino/internal/storage"
	"sapientino/internal/world"
)

// Options configures a Client.
type Options struct {
	StoreKind string
	DBPath    string
}

// Client runs and records episodes against a persistence backend.
type Client struct {
	store storage.Store
}

// NewClient builds a client and initializes its store.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	store, err := storage.NewStore(opts.StoreKind, opts.DBPath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		return nil, err
	}
	return &Client{store: store}, nil
}

// Close releases the store if it holds resources.
func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

// RunRequest describes one episode to run and record.
type RunRequest struct {
	Config  config.Config
	MapName string
	// Script supplies one action code per agent per tick. When nil, a
	// seeded random policy runs for Horizon ticks.
	Script      [][]int
	Horizon     int
	Seed        int64
	RecordTrace bool
}

// RunSummary reports a recorded episode.
type RunSummary struct {
	EpisodeID   string
	Steps       int
	TotalReward float64
	BeepCounts  map[string]int
}

// RunEpisode runs one episode to its horizon and records it. The engine
// itself never terminates an episode; the horizon enforced here is the
// external step limit the step-transition contract leaves to the caller.
func (c *Client) RunEpisode(ctx context.Context, req RunRequest) (RunSummary, error) {
	env, err := NewEnvironment(req.Config)
	if err != nil {
		return RunSummary{}, err
	}
	horizon := req.Horizon
	if req.Script != nil {
		horizon = len(req.Script)
	}
	if horizon <= 0 {
		return RunSummary{}, fmt.Errorf("run: horizon must be positive")
	}

	rng := rand.New(rand.NewSource(req.Seed))
	sizes := env.ActionSizes()
	env.Reset()

	var trace []model.StepTrace
	for tick := 0; tick < horizon; tick++ {
		if err := ctx.Err(); err != nil {
			return RunSummary{}, err
		}
		actions := make([]int, len(sizes))
		if req.Script != nil {
			actions = req.Script[tick]
		} else {
			for i, size := range sizes {
				actions[i] = rng.Intn(size)
			}
		}
		observations, reward, err := env.Step(actions)
		if err != nil {
			return RunSummary{}, err
		}
		if req.RecordTrace {
			trace = append(trace, stepTrace(tick, reward, env, observations))
		}
	}

	state := env.State()
	summary := RunSummary{
		EpisodeID:   uuid.NewString(),
		Steps:       state.Steps(),
		TotalReward: state.Score(),
		BeepCounts:  colorCountNames(state),
	}

	episode := model.EpisodeRecord{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: storage.CurrentSchemaVersion,
			CodecVersion:  storage.CurrentCodecVersion,
		},
		ID:           summary.EpisodeID,
		MapName:      req.MapName,
		Agents:       req.Config.NumAgents(),
		Steps:        summary.Steps,
		TotalReward:  summary.TotalReward,
		BeepCounts:   summary.BeepCounts,
		CreatedAtUTC: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := c.store.SaveEpisode(ctx, episode); err != nil {
		return RunSummary{}, err
	}
	if req.RecordTrace {
		if err := c.store.SaveTrace(ctx, episode.ID, trace); err != nil {
			return RunSummary{}, err
		}
	}
	return summary, nil
}

// Episodes lists recorded episodes, newest first.
func (c *Client) Episodes(ctx context.Context, limit int) ([]model.EpisodeRecord, error) {
	return c.store.ListEpisodes(ctx, limit)
}

// Trace fetches the step trace of a recorded episode.
func (c *Client) Trace(ctx context.Context, episodeID string) ([]model.StepTrace, bool, error) {
	return c.store.GetTrace(ctx, episodeID)
}

// Report aggregates the most recent episodes into a report.
func (c *Client) Report(ctx context.Context, limit int) (stats.Report, error) {
	episodes, err := c.store.ListEpisodes(ctx, limit)
	if err != nil {
		return stats.Report{}, err
	}
	return stats.BuildReport(episodes), nil
}

func stepTrace(tick int, reward float64, env *Environment, observations []world.Observation) model.StepTrace {
	commands := env.State().LastCommands()
	glyphs := make([]string, len(commands))
	for i, cmd := range commands {
		glyphs[i] = cmd.String()
	}
	poses := make([]model.AgentPose, len(observations))
	for i, obs := range observations {
		poses[i] = model.AgentPose{
			X:        obs.X,
			Y:        obs.Y,
			Velocity: obs.Velocity,
			Theta:    obs.Theta,
			Beep:     obs.Beep,
			Color:    obs.Color,
		}
	}
	return model.StepTrace{Tick: tick, Commands: glyphs, Reward: reward, Agents: poses}
}

func colorCountNames(state *world.State) map[string]int {
	counts := make(map[string]int)
	for color, n := range state.Config().Grid.ColorCounts() {
		counts[color.String()] = n
	}
	return counts
}
