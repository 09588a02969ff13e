package robot

import "fmt"

// Kinematics selects which command variant an agent is bound to. The
// binding is fixed for the whole episode.
type Kinematics int

const (
	GridKinematics Kinematics = iota
	DifferentialKinematics
	ContinuousKinematics
)

func (k Kinematics) String() string {
	switch k {
	case GridKinematics:
		return "grid"
	case DifferentialKinematics:
		return "differential"
	case ContinuousKinematics:
		return "continuous"
	default:
		return "unknown"
	}
}

// ParseKinematics maps a configuration name to a Kinematics value.
func ParseKinematics(name string) (Kinematics, error) {
	switch name {
	case "", "grid":
		return GridKinematics, nil
	case "differential":
		return DifferentialKinematics, nil
	case "continuous":
		return ContinuousKinematics, nil
	default:
		return 0, fmt.Errorf("unknown kinematics: %s", name)
	}
}

// Cardinality reports the size of the variant's action space.
func (k Kinematics) Cardinality() int {
	return 6
}

// Command maps a raw action code to the variant's Command. Codes outside
// the action space are a caller defect.
func (k Kinematics) Command(code int) (Command, error) {
	if code < 0 || code >= k.Cardinality() {
		return nil, fmt.Errorf("action code %d out of range for %s commands", code, k)
	}
	switch k {
	case GridKinematics:
		return GridCommand(code), nil
	case DifferentialKinematics:
		return DifferentialCommand(code), nil
	case ContinuousKinematics:
		return ContinuousCommand(code), nil
	default:
		return nil, fmt.Errorf("unknown kinematics: %d", k)
	}
}

// Nop returns the variant's no-op command.
func (k Kinematics) Nop() Command {
	cmd, _ := k.Command(5)
	return cmd.Nop()
}

// Beep returns the variant's beep command.
func (k Kinematics) Beep() Command {
	cmd, _ := k.Command(4)
	return cmd.Beep()
}
