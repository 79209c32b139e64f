package metrics

import (
	"math"

	"github.com/Saramando/263F/internal/dynamics"
)

// PeakEnergy records the largest total mechanical energy seen over a run.
type PeakEnergy struct {
	name string
	dyn  dynamics.Hamiltonian
	peak float64
}

func NewPeakEnergy(dyn dynamics.Hamiltonian) *PeakEnergy {
	return &PeakEnergy{name: "peak_energy", dyn: dyn}
}

func (e *PeakEnergy) Name() string { return e.name }

func (e *PeakEnergy) Observe(x dynamics.State, u dynamics.Control, t float64) {
	if e.dyn == nil {
		return
	}
	e.peak = math.Max(e.peak, e.dyn.Energy(x))
}

func (e *PeakEnergy) Value() float64 {
	return e.peak
}

func (e *PeakEnergy) Reset() {
	e.peak = 0
}

// FinalEnergy tracks the most recent total mechanical energy. With damping
// on and the force driven to zero it should decay toward zero.
type FinalEnergy struct {
	name    string
	dyn     dynamics.Hamiltonian
	current float64
}

func NewFinalEnergy(dyn dynamics.Hamiltonian) *FinalEnergy {
	return &FinalEnergy{name: "final_energy", dyn: dyn}
}

func (e *FinalEnergy) Name() string { return e.name }

func (e *FinalEnergy) Observe(x dynamics.State, u dynamics.Control, t float64) {
	if e.dyn == nil {
		return
	}
	e.current = e.dyn.Energy(x)
}

func (e *FinalEnergy) Value() float64 {
	return e.current
}

func (e *FinalEnergy) Reset() {
	e.current = 0
}
