// Package sapientino is the public facade of the simulation engine: an
// environment with the reinforcement-learning step/reset surface, an
// episode recorder backed by the storage layer, and observation
// encoding helpers.
package sapientino

import (
	"fmt"

	"sapientino/internal/config"
	"sapientino/internal/grid"
	"sapientino/internal/robot"
	"sapientino/internal/world"
)

// DefaultMap is a small open map with one cell of each primary palette
// color and no internal walls.
const DefaultMap = "         \n r  g  b \n         \n y  p  o \n         \n"

// Environment wraps a world state behind the raw action-code interface
// that training wrappers consume.
type Environment struct {
	state *world.State
}

// NewEnvironment builds an environment from a world configuration.
func NewEnvironment(cfg config.Config) (*Environment, error) {
	state, err := world.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Environment{state: state}, nil
}

// Reset starts a fresh episode and returns the initial observations.
func (e *Environment) Reset() []world.Observation {
	e.state.Reset()
	return e.state.Observe()
}

// Step maps one raw action code per agent through that agent's command
// variant and advances the world one tick.
func (e *Environment) Step(actions []int) ([]world.Observation, float64, error) {
	cfg := e.state.Config()
	if len(actions) != cfg.NumAgents() {
		return nil, 0, fmt.Errorf("got %d actions for %d agents", len(actions), cfg.NumAgents())
	}
	commands := make([]robot.Command, len(actions))
	for i, action := range actions {
		cmd, err := cfg.Agents[i].Kinematics.Command(action)
		if err != nil {
			return nil, 0, fmt.Errorf("agent %d: %w", i, err)
		}
		commands[i] = cmd
	}
	reward, err := e.state.Step(commands)
	if err != nil {
		return nil, 0, err
	}
	return e.state.Observe(), reward, nil
}

// State exposes the underlying world state.
func (e *Environment) State() *world.State {
	return e.state
}

// ActionSizes reports the action-space cardinality per agent.
func (e *Environment) ActionSizes() []int {
	cfg := e.state.Config()
	sizes := make([]int, cfg.NumAgents())
	for i, agent := range cfg.Agents {
		sizes[i] = agent.Kinematics.Cardinality()
	}
	return sizes
}

// ObservationSizes reports the discrete observation space of one agent:
// column, row, orientation bucket, beep flag, cell color.
func (e *Environment) ObservationSizes(agent int) ([]int, error) {
	cfg := e.state.Config()
	if agent < 0 || agent >= cfg.NumAgents() {
		return nil, fmt.Errorf("agent %d out of range", agent)
	}
	parts := cfg.Agents[agent].AngleParts
	if parts <= 0 {
		parts = 4
	}
	return []int{cfg.Columns(), cfg.Rows(), parts, 2, grid.NumColors()}, nil
}
