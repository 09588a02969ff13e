// Package world owns one episode: the grid, the agents, and the per-tick
// transition that applies commands, resolves boundary constraints, scores
// beeps, and accumulates reward.
package world

import (
	"fmt"

	"sapientino/internal/config"
	"sapientino/internal/robot"
)

// State is the mutable episode state. It is exclusively owned by one caller
// and never terminates intrinsically; horizon enforcement is the caller's
// job.
type State struct {
	cfg    config.Config
	robots []robot.Robot
	last   []robot.Command
	score  float64
	steps  int
}

// New validates the configuration and builds a fresh episode state.
func New(cfg config.Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &State{cfg: cfg}
	s.Reset()
	return s, nil
}

// Reset zeroes all grid counters and puts every agent back at its
// configured initial pose. The grid itself is not re-parsed.
func (s *State) Reset() {
	s.cfg.Grid.Reset()
	s.robots = make([]robot.Robot, len(s.cfg.Agents))
	s.last = make([]robot.Command, len(s.cfg.Agents))
	for i, agentCfg := range s.cfg.Agents {
		s.robots[i] = robot.New(s.cfg.Grid, agentCfg, i)
		s.last[i] = agentCfg.Kinematics.Nop()
	}
	s.score = 0
	s.steps = 0
}

// Step advances one tick with one command per agent and returns the total
// reward of the tick.
//
// All agents step off the same pre-step snapshot, so no agent ever sees
// another's already-updated position. Border violations and beeps are then
// resolved in agent-index order, and one flat per-step reward is added once
// per tick.
func (s *State) Step(commands []robot.Command) (float64, error) {
	if len(commands) != len(s.robots) {
		return 0, fmt.Errorf("world: got %d commands for %d agents", len(commands), len(s.robots))
	}

	next := make([]robot.Robot, len(s.robots))
	for i, r := range s.robots {
		next[i] = r.Step(commands[i])
	}

	reward := 0.0
	for i := range next {
		next[i], reward = s.clampIntoGrid(next[i], reward)
	}

	for i, r := range next {
		if commands[i] != commands[i].Beep() {
			continue
		}
		cell := r.Cell()
		s.cfg.Grid.DoBeep(cell)
		if s.cfg.Grid.BeepCount(cell) >= 2 {
			reward += s.cfg.RewardDuplicateBeep
		}
	}

	reward += s.cfg.RewardPerStep

	s.robots = next
	copy(s.last, commands)
	s.score += reward
	s.steps++
	return reward, nil
}

// clampIntoGrid penalizes and corrects coordinates outside the grid. Wall
// rejection has already reverted most violations; this catches map edges
// without wall tiles. Each violated axis adds one penalty, and continuous
// agents lose their velocity.
func (s *State) clampIntoGrid(r robot.Robot, reward float64) (robot.Robot, float64) {
	violated := false
	if r.X < 0 || r.X >= float64(s.cfg.Columns()) {
		reward += s.cfg.RewardOutsideGrid
		r.X = clampFloat(r.X, 0, float64(s.cfg.Columns()-1))
		violated = true
	}
	if r.Y < 0 || r.Y >= float64(s.cfg.Rows()) {
		reward += s.cfg.RewardOutsideGrid
		r.Y = clampFloat(r.Y, 0, float64(s.cfg.Rows()-1))
		violated = true
	}
	if violated && r.Config().Kinematics == robot.ContinuousKinematics {
		r.Velocity = 0
	}
	return r, reward
}

// Robots returns a copy of the current agent list.
func (s *State) Robots() []robot.Robot {
	robots := make([]robot.Robot, len(s.robots))
	copy(robots, s.robots)
	return robots
}

// LastCommands returns a copy of the most recently applied commands.
func (s *State) LastCommands() []robot.Command {
	last := make([]robot.Command, len(s.last))
	copy(last, s.last)
	return last
}

// Score reports the reward accumulated since the last reset.
func (s *State) Score() float64 {
	return s.score
}

// Steps reports the number of ticks since the last reset.
func (s *State) Steps() int {
	return s.steps
}

// Config returns the world configuration.
func (s *State) Config() config.Config {
	return s.cfg
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
