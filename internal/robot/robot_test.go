package robot

import (
	"math"
	"testing"

	"sapientino/internal/grid"
)

// openGrid parses a 5x5 map with no internal walls.
func openGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.Parse("     \n     \n  r  \n     \n     \n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return g
}

// walledGrid has a wall at (1,0).
func walledGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(" # \n   \n   \n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return g
}

func at(cfg AgentConfig, x, y float64) AgentConfig {
	cfg.InitialX = x
	cfg.InitialY = y
	return cfg
}

func TestGridCommandLeftRightRoundTrip(t *testing.T) {
	g := openGrid(t)
	r := New(g, at(DefaultAgentConfig(), 2, 2), 0)

	moved := r.Step(GridLeft).Step(GridRight)
	if moved.X != r.X || moved.Y != r.Y {
		t.Fatalf("left then right: got (%v,%v), want (%v,%v)", moved.X, moved.Y, r.X, r.Y)
	}
}

func TestGridCommandWallRejection(t *testing.T) {
	g := walledGrid(t)
	r := New(g, at(DefaultAgentConfig(), 0, 0), 0)

	blocked := r.Step(GridRight)
	if blocked.X != 0 || blocked.Y != 0 {
		t.Fatalf("step into wall moved robot to (%v,%v)", blocked.X, blocked.Y)
	}

	free := r.Step(GridDown)
	if free.X != 0 || free.Y != 1 {
		t.Fatalf("step down: got (%v,%v), want (0,1)", free.X, free.Y)
	}
}

func TestGridCommandMapEdgeIsInvalid(t *testing.T) {
	g := openGrid(t)
	r := New(g, at(DefaultAgentConfig(), 0, 0), 0)

	for _, cmd := range []Command{GridLeft, GridUp} {
		blocked := r.Step(cmd)
		if blocked.X != 0 || blocked.Y != 0 {
			t.Fatalf("%s off the map moved robot to (%v,%v)", cmd, blocked.X, blocked.Y)
		}
	}
}

func TestGridCommandBeepNopKeepPose(t *testing.T) {
	g := openGrid(t)
	r := New(g, at(DefaultAgentConfig(), 2, 2), 0)

	for _, cmd := range []Command{GridBeep, GridNop} {
		same := r.Step(cmd)
		if same.X != r.X || same.Y != r.Y {
			t.Fatalf("%s changed pose to (%v,%v)", cmd, same.X, same.Y)
		}
	}
}

func TestDifferentialCommandTurnAndTranslate(t *testing.T) {
	cfg := at(DefaultAgentConfig(), 2, 2)
	cfg.Kinematics = DifferentialKinematics
	g := openGrid(t)
	r := New(g, cfg, 0)

	// Starts facing up.
	forward := r.Step(DifferentialForward)
	if forward.X != 2 || forward.Y != 1 {
		t.Fatalf("forward facing up: got (%v,%v), want (2,1)", forward.X, forward.Y)
	}

	turned := r.Step(DifferentialRight)
	if turned.Direction.Theta != 0 {
		t.Fatalf("turn right from 90: got theta %v, want 0", turned.Direction.Theta)
	}
	if turned.X != 2 || turned.Y != 2 {
		t.Fatalf("turning moved the robot to (%v,%v)", turned.X, turned.Y)
	}

	east := turned.Step(DifferentialForward)
	if east.X != 3 || east.Y != 2 {
		t.Fatalf("forward facing east: got (%v,%v), want (3,2)", east.X, east.Y)
	}
	back := east.Step(DifferentialBackward)
	if back.X != 2 || back.Y != 2 {
		t.Fatalf("backward facing east: got (%v,%v), want (2,2)", back.X, back.Y)
	}
}

func TestDifferentialHeadingToleratesDrift(t *testing.T) {
	cfg := at(DefaultAgentConfig(), 2, 2)
	cfg.Kinematics = DifferentialKinematics
	g := openGrid(t)
	r := New(g, cfg, 0)
	r.Direction = Direction{Theta: 90.0000001}

	forward := r.Step(DifferentialForward)
	if forward.X != 2 || forward.Y != 1 {
		t.Fatalf("forward with drifted heading: got (%v,%v), want (2,1)", forward.X, forward.Y)
	}
}

func TestContinuousCommandAccelerateAndCoast(t *testing.T) {
	cfg := at(DefaultAgentConfig(), 2, 2)
	cfg.Kinematics = ContinuousKinematics
	g := openGrid(t)
	r := New(g, cfg, 0)
	r.Direction = Direction{Theta: 0} // facing east

	accelerated := r.Step(ContinuousForward)
	if accelerated.Velocity != cfg.Acceleration {
		t.Fatalf("velocity after forward: got %v, want %v", accelerated.Velocity, cfg.Acceleration)
	}
	if math.Abs(accelerated.X-(2+cfg.Acceleration)) > 1e-12 {
		t.Fatalf("position after forward: got %v", accelerated.X)
	}

	// Coasting with NOP still advances by the persistent velocity.
	coasted := accelerated.Step(ContinuousNop)
	if math.Abs(coasted.X-(2+2*cfg.Acceleration)) > 1e-12 {
		t.Fatalf("position after nop: got %v", coasted.X)
	}
	if coasted.Velocity != accelerated.Velocity {
		t.Fatalf("nop changed velocity to %v", coasted.Velocity)
	}
}

func TestContinuousVelocityClampAndSnap(t *testing.T) {
	cfg := at(DefaultAgentConfig(), 2, 2)
	cfg.Kinematics = ContinuousKinematics
	g := openGrid(t)

	r := New(g, cfg, 0)
	r.Velocity = cfg.MaxVelocity
	capped := r.Step(ContinuousForward)
	if capped.Velocity != cfg.MaxVelocity {
		t.Fatalf("velocity exceeded max: %v", capped.Velocity)
	}

	r = New(g, cfg, 0)
	r.Velocity = cfg.Acceleration + 1e-12
	stopped := r.Step(ContinuousBackward)
	if stopped.Velocity != 0 {
		t.Fatalf("near-zero velocity not snapped: %v", stopped.Velocity)
	}
}

func TestContinuousAsymmetricDeceleration(t *testing.T) {
	cfg := at(DefaultAgentConfig(), 2, 2)
	cfg.Kinematics = ContinuousKinematics
	cfg.Deceleration = 0.05
	g := openGrid(t)

	r := New(g, cfg, 0)
	r.Velocity = 0.1
	braked := r.Step(ContinuousBackward)
	if math.Abs(braked.Velocity-0.05) > 1e-12 {
		t.Fatalf("velocity after asymmetric brake: got %v, want 0.05", braked.Velocity)
	}
}

func TestContinuousWallCollisionDissipates(t *testing.T) {
	cfg := DefaultAgentConfig()
	cfg.Kinematics = ContinuousKinematics
	cfg.Acceleration = 1.0
	cfg.MaxVelocity = 2.0
	cfg = at(cfg, 0, 1)
	g := walledGrid(t)

	r := New(g, cfg, 0)
	r.Direction = Direction{Theta: 90} // up, toward the wall at (1,0)
	r.X = 1
	crashed := r.Step(ContinuousForward)
	if crashed.X != 1 || crashed.Y != 1 {
		t.Fatalf("collision did not revert pose: (%v,%v)", crashed.X, crashed.Y)
	}
	if crashed.Velocity != 0 {
		t.Fatalf("collision did not zero velocity: %v", crashed.Velocity)
	}
}

func TestDiscretePositionRoundsAndClamps(t *testing.T) {
	g := openGrid(t)
	cfg := DefaultAgentConfig()

	r := New(g, at(cfg, 2.49, 2.51), 0)
	if r.DiscreteX() != 2 || r.DiscreteY() != 3 {
		t.Fatalf("discrete position: got (%d,%d), want (2,3)", r.DiscreteX(), r.DiscreteY())
	}

	r = New(g, at(cfg, -0.4, 7.0), 0)
	if r.DiscreteX() != 0 || r.DiscreteY() != 4 {
		t.Fatalf("clamped discrete position: got (%d,%d), want (0,4)", r.DiscreteX(), r.DiscreteY())
	}
}

func TestEncodedTheta(t *testing.T) {
	g := openGrid(t)
	cfg := DefaultAgentConfig()
	cfg.AngleParts = 4

	r := New(g, at(cfg, 2, 2), 0)
	cases := map[float64]int{0: 0, 89: 0, 90: 1, 180: 2, 270: 3, 359: 3}
	for theta, want := range cases {
		r.Direction = Direction{Theta: theta}
		if got := r.EncodedTheta(); got != want {
			t.Fatalf("encoded theta for %v: got %d, want %d", theta, got, want)
		}
	}
}

func TestKinematicsCommandMapping(t *testing.T) {
	for _, k := range []Kinematics{GridKinematics, DifferentialKinematics, ContinuousKinematics} {
		if k.Cardinality() != 6 {
			t.Fatalf("%s cardinality: got %d", k, k.Cardinality())
		}
		beep, err := k.Command(4)
		if err != nil {
			t.Fatalf("%s beep command: %v", k, err)
		}
		if beep != k.Beep() {
			t.Fatalf("%s beep mismatch", k)
		}
		nop, err := k.Command(5)
		if err != nil {
			t.Fatalf("%s nop command: %v", k, err)
		}
		if nop != k.Nop() {
			t.Fatalf("%s nop mismatch", k)
		}
		if _, err := k.Command(6); err == nil {
			t.Fatalf("%s accepted out-of-range code", k)
		}
		if _, err := k.Command(-1); err == nil {
			t.Fatalf("%s accepted negative code", k)
		}
	}
}
