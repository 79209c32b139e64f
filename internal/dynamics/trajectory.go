package dynamics

import "gonum.org/v1/gonum/floats"

// Trajectory holds the discrete time history of a single run as parallel
// slices indexed by step. It is written once by the simulator and read-only
// afterwards.
type Trajectory struct {
	Time         []float64
	Displacement []float64
	Velocity     []float64
}

// NewTrajectory allocates a trajectory of the given length up front.
// Entry 0 is the rest state: displacement and velocity both zero.
func NewTrajectory(steps int) *Trajectory {
	return &Trajectory{
		Time:         make([]float64, steps),
		Displacement: make([]float64, steps),
		Velocity:     make([]float64, steps),
	}
}

func (tr *Trajectory) Len() int {
	return len(tr.Time)
}

func (tr *Trajectory) MaxDisplacement() float64 {
	if len(tr.Displacement) == 0 {
		return 0
	}
	return floats.Max(tr.Displacement)
}

func (tr *Trajectory) MinDisplacement() float64 {
	if len(tr.Displacement) == 0 {
		return 0
	}
	return floats.Min(tr.Displacement)
}

// DisplacementCm returns the displacement history converted to
// centimeters, as plotted on the time-series pass.
func (tr *Trajectory) DisplacementCm() []float64 {
	cm := make([]float64, len(tr.Displacement))
	floats.ScaleTo(cm, 100, tr.Displacement)
	return cm
}
