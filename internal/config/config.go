// Package config assembles the world configuration: the parsed map, reward
// constants, and the per-agent kinematic parameters consumed by the rest of
// the engine.
package config

import (
	"errors"
	"fmt"
	"math"

	"sapientino/internal/grid"
	"sapientino/internal/robot"
)

// Default reward magnitudes.
const (
	DefaultRewardPerStep       = -0.01
	DefaultRewardOutsideGrid   = -1.0
	DefaultRewardDuplicateBeep = -1.0
)

// Config is the read-only shared context of one world. The grid and agent
// configurations are passed by reference into agents and never mutated by
// them.
type Config struct {
	Grid   *grid.Grid
	Agents []robot.AgentConfig

	RewardPerStep       float64
	RewardOutsideGrid   float64
	RewardDuplicateBeep float64
}

// New builds a configuration with default rewards and one default agent per
// omitted entry.
func New(g *grid.Grid, agents ...robot.AgentConfig) Config {
	if len(agents) == 0 {
		agents = []robot.AgentConfig{robot.DefaultAgentConfig()}
	}
	return Config{
		Grid:                g,
		Agents:              agents,
		RewardPerStep:       DefaultRewardPerStep,
		RewardOutsideGrid:   DefaultRewardOutsideGrid,
		RewardDuplicateBeep: DefaultRewardDuplicateBeep,
	}
}

// Validate checks the configuration for construction-time defects.
func (c Config) Validate() error {
	if c.Grid == nil {
		return errors.New("config: grid is required")
	}
	if len(c.Agents) == 0 {
		return errors.New("config: at least one agent is required")
	}
	for i, agent := range c.Agents {
		if agent.MinVelocity > agent.MaxVelocity {
			return fmt.Errorf("config: agent %d has min velocity %v above max %v", i, agent.MinVelocity, agent.MaxVelocity)
		}
		if agent.AngleParts < 0 {
			return fmt.Errorf("config: agent %d has negative angle parts", i)
		}
		// Round to the nearest cell, matching the occupancy check used
		// during stepping.
		x, y := int(math.Round(agent.InitialX)), int(math.Round(agent.InitialY))
		cell, ok := c.Grid.At(x, y)
		if !ok {
			return fmt.Errorf("config: agent %d starts outside the grid at (%v,%v)", i, agent.InitialX, agent.InitialY)
		}
		if cell.Color == grid.Wall {
			return fmt.Errorf("config: agent %d starts on a wall at (%v,%v)", i, agent.InitialX, agent.InitialY)
		}
	}
	return nil
}

// NumAgents reports the number of configured agents.
func (c Config) NumAgents() int {
	return len(c.Agents)
}

// Rows reports the grid's row count.
func (c Config) Rows() int {
	return c.Grid.Rows()
}

// Columns reports the grid's column count.
func (c Config) Columns() int {
	return c.Grid.Columns()
}
