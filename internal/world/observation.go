package world

// Observation is the per-agent snapshot emitted after a tick, consumed by
// observation-shaping wrappers.
type Observation struct {
	DiscreteX   int     `json:"discrete_x"`
	DiscreteY   int     `json:"discrete_y"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Velocity    float64 `json:"velocity"`
	Theta       float64 `json:"theta"`
	ThetaBucket int     `json:"theta_bucket"`
	Beep        bool    `json:"beep"`
	Color       int     `json:"color"`
}

// Observe snapshots every agent's observable state.
func (s *State) Observe() []Observation {
	observations := make([]Observation, len(s.robots))
	for i, r := range s.robots {
		observations[i] = Observation{
			DiscreteX:   r.DiscreteX(),
			DiscreteY:   r.DiscreteY(),
			X:           r.X,
			Y:           r.Y,
			Velocity:    r.Velocity,
			Theta:       r.Direction.Theta,
			ThetaBucket: r.EncodedTheta(),
			Beep:        s.last[i] == s.last[i].Beep(),
			Color:       int(r.Cell().Color),
		}
	}
	return observations
}
