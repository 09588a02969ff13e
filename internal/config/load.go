package config

import (
	"encoding/json"
	"fmt"
	"os"

	"sapientino/internal/grid"
	"sapientino/internal/robot"
)

type fileConfig struct {
	Map                 string            `json:"map"`
	MapFile             string            `json:"map_file"`
	RewardPerStep       *float64          `json:"reward_per_step"`
	RewardOutsideGrid   *float64          `json:"reward_outside_grid"`
	RewardDuplicateBeep *float64          `json:"reward_duplicate_beep"`
	Agents              []fileAgentConfig `json:"agents"`
}

type fileAgentConfig struct {
	Kinematics   string   `json:"kinematics"`
	AngularSpeed *float64 `json:"angular_speed"`
	Acceleration *float64 `json:"acceleration"`
	Deceleration *float64 `json:"deceleration"`
	MinVelocity  *float64 `json:"min_velocity"`
	MaxVelocity  *float64 `json:"max_velocity"`
	AngleParts   *int     `json:"angle_parts"`
	InitialX     float64  `json:"initial_x"`
	InitialY     float64  `json:"initial_y"`
}

// Load reads a JSON world configuration. The map comes either inline
// ("map") or from a file ("map_file"); omitted rewards and kinematic
// parameters fall back to the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (Config, error) {
	var raw fileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	var g *grid.Grid
	var err error
	switch {
	case raw.Map != "":
		g, err = grid.Parse(raw.Map)
	case raw.MapFile != "":
		g, err = grid.ParseFile(raw.MapFile)
	default:
		return Config{}, fmt.Errorf("config: map or map_file is required")
	}
	if err != nil {
		return Config{}, err
	}

	agents := make([]robot.AgentConfig, 0, len(raw.Agents))
	for i, rawAgent := range raw.Agents {
		agent := robot.DefaultAgentConfig()
		agent.Kinematics, err = robot.ParseKinematics(rawAgent.Kinematics)
		if err != nil {
			return Config{}, fmt.Errorf("config: agent %d: %w", i, err)
		}
		if rawAgent.AngularSpeed != nil {
			agent.AngularSpeed = *rawAgent.AngularSpeed
		}
		if rawAgent.Acceleration != nil {
			agent.Acceleration = *rawAgent.Acceleration
		}
		if rawAgent.Deceleration != nil {
			agent.Deceleration = *rawAgent.Deceleration
		}
		if rawAgent.MinVelocity != nil {
			agent.MinVelocity = *rawAgent.MinVelocity
		}
		if rawAgent.MaxVelocity != nil {
			agent.MaxVelocity = *rawAgent.MaxVelocity
		}
		if rawAgent.AngleParts != nil {
			agent.AngleParts = *rawAgent.AngleParts
		}
		agent.InitialX = rawAgent.InitialX
		agent.InitialY = rawAgent.InitialY
		agents = append(agents, agent)
	}

	cfg := New(g, agents...)
	if raw.RewardPerStep != nil {
		cfg.RewardPerStep = *raw.RewardPerStep
	}
	if raw.RewardOutsideGrid != nil {
		cfg.RewardOutsideGrid = *raw.RewardOutsideGrid
	}
	if raw.RewardDuplicateBeep != nil {
		cfg.RewardDuplicateBeep = *raw.RewardDuplicateBeep
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
