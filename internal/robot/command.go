package robot

// Command is one action of a closed kinematic variant set. Step computes
// the candidate next pose only; wall rejection is the Robot's job, so a
// Command stays a pure function usable for what-if queries. Beep and Nop
// expose the variant's designated beep and no-op values, letting callers
// orchestrate heterogeneous agents without knowing the concrete variant.
type Command interface {
	Step(r Robot) Robot
	Beep() Command
	Nop() Command
	String() string
}

// GridCommand moves the agent cell by cell along the axes. Orientation is
// not tracked.
type GridCommand int

const (
	GridLeft GridCommand = iota
	GridUp
	GridRight
	GridDown
	GridBeep
	GridNop
)

func (c GridCommand) Step(r Robot) Robot {
	next := r
	switch c {
	case GridLeft:
		next.X--
	case GridRight:
		next.X++
	case GridUp:
		next.Y--
	case GridDown:
		next.Y++
	}
	return next
}

func (c GridCommand) Beep() Command { return GridBeep }
func (c GridCommand) Nop() Command  { return GridNop }

func (c GridCommand) String() string {
	return commandGlyph(int(c))
}

// DifferentialCommand moves the agent cell by cell relative to its heading.
// Left and right turn in place by 90 degrees; forward and backward
// translate one cell along the heading.
type DifferentialCommand int

const (
	DifferentialLeft DifferentialCommand = iota
	DifferentialForward
	DifferentialRight
	DifferentialBackward
	DifferentialBeep
	DifferentialNop
)

func (c DifferentialCommand) Step(r Robot) Robot {
	next := r
	dx, dy := headingUnit(r.Direction.Theta)
	switch c {
	case DifferentialLeft:
		next.Direction = r.Direction.Rotate(90)
	case DifferentialRight:
		next.Direction = r.Direction.Rotate(-90)
	case DifferentialForward:
		next.X += float64(dx)
		next.Y += float64(dy)
	case DifferentialBackward:
		next.X -= float64(dx)
		next.Y -= float64(dy)
	}
	return next
}

func (c DifferentialCommand) Beep() Command { return DifferentialBeep }
func (c DifferentialCommand) Nop() Command  { return DifferentialNop }

func (c DifferentialCommand) String() string {
	return commandGlyph(int(c))
}

// headingUnit resolves a heading to the unit vector of its nearest cardinal
// direction. Sector-based resolution keeps differential motion exact even
// when the stored float drifts off 0/90/180/270.
func headingUnit(theta float64) (dx, dy int) {
	switch {
	case theta < 45 || theta >= 315:
		return 1, 0
	case theta < 135:
		return 0, -1
	case theta < 225:
		return -1, 0
	default:
		return 0, 1
	}
}

// ContinuousCommand moves the agent on the plane with a persistent scalar
// velocity. Left and right rotate in place by the configured angular speed;
// forward and backward apply signed acceleration. Every command, beep and
// no-op included, then advances the position by the velocity projected onto
// the heading.
type ContinuousCommand int

const (
	ContinuousLeft ContinuousCommand = iota
	ContinuousForward
	ContinuousRight
	ContinuousBackward
	ContinuousBeep
	ContinuousNop
)

func (c ContinuousCommand) Step(r Robot) Robot {
	next := r
	switch c {
	case ContinuousLeft:
		next.Direction = r.Direction.Rotate(r.cfg.AngularSpeed)
	case ContinuousRight:
		next.Direction = r.Direction.Rotate(-r.cfg.AngularSpeed)
	case ContinuousForward:
		next.Velocity = snapToZero(r.Velocity + r.cfg.Acceleration)
	case ContinuousBackward:
		next.Velocity = snapToZero(r.Velocity - r.cfg.deceleration())
	}
	next.Velocity = clamp(next.Velocity, r.cfg.MinVelocity, r.cfg.MaxVelocity)
	return next.applyVelocity()
}

func (c ContinuousCommand) Beep() Command { return ContinuousBeep }
func (c ContinuousCommand) Nop() Command  { return ContinuousNop }

func (c ContinuousCommand) String() string {
	return commandGlyph(int(c))
}

func commandGlyph(code int) string {
	switch code {
	case 0:
		return "<"
	case 1:
		return "^"
	case 2:
		return ">"
	case 3:
		return "v"
	case 4:
		return "o"
	case 5:
		return "_"
	default:
		return "?"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
