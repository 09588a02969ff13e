package robot

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// zeroTolerance is the absolute tolerance under which trigonometric
// components and velocities snap to exactly zero. Without the snap,
// residual floating noise from sin/cos accumulates into positions over
// thousands of steps.
const zeroTolerance = 1e-8

// ErrNegativeDelta is returned by RotateLeft and RotateRight when given a
// negative magnitude.
var ErrNegativeDelta = errors.New("rotation delta must be non-negative")

// Direction is a heading in degrees, kept continuous so command sets with
// arbitrary rotation increments stay representable. All rotations normalize
// the angle into [0, 360).
type Direction struct {
	Theta float64
}

// Rotate returns the direction turned by delta degrees, positive being
// counterclockwise.
func (d Direction) Rotate(delta float64) Direction {
	theta := math.Mod(d.Theta+delta, 360)
	if theta < 0 {
		theta += 360
	}
	return Direction{Theta: theta}
}

// RotateLeft turns counterclockwise by a non-negative delta.
func (d Direction) RotateLeft(delta float64) (Direction, error) {
	if delta < 0 {
		return Direction{}, ErrNegativeDelta
	}
	return d.Rotate(delta), nil
}

// RotateRight turns clockwise by a non-negative delta.
func (d Direction) RotateRight(delta float64) (Direction, error) {
	if delta < 0 {
		return Direction{}, ErrNegativeDelta
	}
	return d.Rotate(-delta), nil
}

// SinCos returns (sin, cos) of the heading, with near-zero components
// snapped to exactly zero.
func (d Direction) SinCos() (float64, float64) {
	rad := d.Theta * math.Pi / 180
	return snapToZero(math.Sin(rad)), snapToZero(math.Cos(rad))
}

func snapToZero(v float64) float64 {
	if scalar.EqualWithinAbs(v, 0, zeroTolerance) {
		return 0
	}
	return v
}
