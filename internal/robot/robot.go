// Package robot holds the agents of the simulation: their heading algebra,
// the three closed command variants, and the robot pose with its
// wall-rejection rule.
package robot

import (
	"math"

	"sapientino/internal/grid"
)

// defaultTheta is the heading robots start an episode with (facing up).
const defaultTheta = 90.0

// AgentConfig is the per-agent kinematic configuration. It is read-only
// shared context for the robot and its commands.
type AgentConfig struct {
	Kinematics   Kinematics
	AngularSpeed float64
	Acceleration float64
	// Deceleration is the backward-acceleration magnitude. Zero means
	// symmetric with Acceleration.
	Deceleration float64
	MinVelocity  float64
	MaxVelocity  float64
	// AngleParts divides the full circle into equal sectors for the
	// discretized orientation observation.
	AngleParts int
	InitialX   float64
	InitialY   float64
}

// DefaultAgentConfig returns the stock grid-stepping agent configuration.
func DefaultAgentConfig() AgentConfig {
	return AgentConfig{
		Kinematics:   GridKinematics,
		AngularSpeed: 20.0,
		Acceleration: 0.02,
		MinVelocity:  -0.20,
		MaxVelocity:  0.20,
		AngleParts:   4,
	}
}

func (c AgentConfig) deceleration() float64 {
	if c.Deceleration != 0 {
		return c.Deceleration
	}
	return c.Acceleration
}

// Robot is an agent pose: continuous position, scalar velocity, and a
// heading. Step returns a new value rather than mutating, so the
// pre-command pose stays available for the wall-collision revert.
type Robot struct {
	g   *grid.Grid
	cfg AgentConfig
	id  int

	X         float64
	Y         float64
	Velocity  float64
	Direction Direction
}

// New places a fresh robot at its configured initial position with the
// default orientation and zero velocity.
func New(g *grid.Grid, cfg AgentConfig, id int) Robot {
	return Robot{
		g:         g,
		cfg:       cfg,
		id:        id,
		X:         cfg.InitialX,
		Y:         cfg.InitialY,
		Direction: Direction{Theta: defaultTheta},
	}
}

// ID reports the robot's stable index in the agent list.
func (r Robot) ID() int {
	return r.id
}

// Config returns the robot's kinematic configuration.
func (r Robot) Config() AgentConfig {
	return r.cfg
}

// Step applies a command and resolves wall collisions: a candidate pose on
// a wall cell or outside the map is rejected wholesale and the pre-command
// pose is returned. Continuous agents additionally lose all velocity on a
// collision, so a crash dissipates rather than bounces.
func (r Robot) Step(c Command) Robot {
	candidate := c.Step(r)
	if candidate.onWall() {
		rejected := r
		if r.cfg.Kinematics == ContinuousKinematics {
			rejected.Velocity = 0
		}
		return rejected
	}
	return candidate
}

// DiscreteX is the grid column the robot occupies: nearest cell, clamped
// into the grid.
func (r Robot) DiscreteX() int {
	x := int(math.Round(r.X))
	return intClamp(x, 0, r.g.Columns()-1)
}

// DiscreteY is the grid row the robot occupies: nearest cell, clamped into
// the grid.
func (r Robot) DiscreteY() int {
	y := int(math.Round(r.Y))
	return intClamp(y, 0, r.g.Rows()-1)
}

// Cell returns the grid cell the robot currently occupies.
func (r Robot) Cell() grid.Cell {
	cell, _ := r.g.At(r.DiscreteX(), r.DiscreteY())
	return cell
}

// EncodedTheta buckets the heading into one of the configured AngleParts
// sectors.
func (r Robot) EncodedTheta() int {
	parts := r.cfg.AngleParts
	if parts <= 0 {
		parts = 4
	}
	return int(r.Direction.Theta/(360.0/float64(parts))) % parts
}

// applyVelocity advances the position by the velocity projected onto the
// heading. Its y sign is inverted because y grows downward while a heading
// of 90 degrees points up.
func (r Robot) applyVelocity() Robot {
	next := r
	sin, cos := r.Direction.SinCos()
	next.X += r.Velocity * cos
	next.Y += -r.Velocity * sin
	return next
}

// onWall checks the nearest unclamped cell, so a pose outside the map is
// invalid exactly like a wall.
func (r Robot) onWall() bool {
	x := int(math.Round(r.X))
	y := int(math.Round(r.Y))
	cell, ok := r.g.At(x, y)
	if !ok {
		return true
	}
	return cell.Color == grid.Wall
}

func intClamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
