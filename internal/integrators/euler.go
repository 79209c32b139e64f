package integrators

import "github.com/Saramando/263F/internal/dynamics"

// Euler is the plain explicit scheme. Kept for comparison runs; it gains
// energy on oscillatory systems and needs a smaller dt than the
// semi-implicit variant for the same accuracy.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamics.System, x dynamics.State, u dynamics.Control, t float64, dt float64) dynamics.State {
	dx := dyn.Derive(x, u, t)
	result := make(dynamics.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
