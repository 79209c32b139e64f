package integrators

import "github.com/Saramando/263F/internal/dynamics"

// SymplecticEuler is the semi-implicit Euler scheme: velocities advance
// first using the force at the current step, then positions advance with
// the already-updated velocities. State layout is positions in the first
// half, velocities in the second.
type SymplecticEuler struct{}

func NewSymplecticEuler() *SymplecticEuler {
	return &SymplecticEuler{}
}

func (s *SymplecticEuler) Step(dyn dynamics.System, x dynamics.State, u dynamics.Control, t, dt float64) dynamics.State {
	n := len(x)
	half := n / 2

	result := make(dynamics.State, n)
	dx := dyn.Derive(x, u, t)

	for i := half; i < n; i++ {
		result[i] = x[i] + dt*dx[i]
	}
	for i := 0; i < half; i++ {
		result[i] = x[i] + dt*result[half+i]
	}

	return result
}
