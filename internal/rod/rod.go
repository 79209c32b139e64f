package rod

import (
	"math"

	"github.com/Saramando/263F/internal/dynamics"
)

// Rod models one elastic rod as a linear mass-spring-damper. The restoring
// force is Hookean with stiffness derived from the rod's geometry and
// material: k = modulus * area / length. State is {displacement, velocity}
// of the rod tip along its axis.
type Rod struct {
	Length  float64
	Area    float64
	Modulus float64
	Damping float64
	Mass    float64
}

func New(length, area, modulus, damping, mass float64) *Rod {
	return &Rod{
		Length:  length,
		Area:    area,
		Modulus: modulus,
		Damping: damping,
		Mass:    mass,
	}
}

func (r *Rod) StateDim() int   { return 2 }
func (r *Rod) ControlDim() int { return 1 }

// Stiffness is the linear elastic constant k = E*A/L.
func (r *Rod) Stiffness() float64 {
	return r.Modulus * r.Area / r.Length
}

func (r *Rod) Derive(x dynamics.State, u dynamics.Control, t float64) dynamics.State {
	applied := 0.0
	if len(u) > 0 {
		applied = u[0]
	}

	gradient := r.Stiffness() * x[0]
	restoring := -gradient
	acc := (applied + restoring - r.Damping*x[1]) / r.Mass

	return dynamics.State{x[1], acc}
}

func (r *Rod) Energy(x dynamics.State) float64 {
	if len(x) < 2 {
		return 0
	}
	k := r.Stiffness()
	return 0.5*k*x[0]*x[0] + 0.5*r.Mass*x[1]*x[1]
}

func (r *Rod) DefaultState() dynamics.State {
	return dynamics.State{0.0, 0.0}
}

// NaturalFrequency is the undamped resonance sqrt(k/m)/(2*pi), in Hz.
func (r *Rod) NaturalFrequency() float64 {
	return math.Sqrt(r.Stiffness()/r.Mass) / (2 * math.Pi)
}

// DampingRatio is c / (2*sqrt(k*m)); below 1 the rod rings down.
func (r *Rod) DampingRatio() float64 {
	return r.Damping / (2 * math.Sqrt(r.Stiffness()*r.Mass))
}
