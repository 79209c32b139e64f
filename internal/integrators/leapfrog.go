package integrators

import "github.com/Saramando/263F/internal/dynamics"

// Leapfrog is the drift-kick-drift arrangement: half drift, one full
// kick at the interval midpoint, half drift. The kick spans the whole
// step, so the damping term is taken at the velocity midpoint: a trial
// full kick predicts the end velocity and the applied kick evaluates at
// the average of the start and predicted velocities.
type Leapfrog struct {
	stage dynamics.State
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(dyn dynamics.System, x dynamics.State, u dynamics.Control, t, dt float64) dynamics.State {
	if len(l.stage) != 2 {
		l.stage = make(dynamics.State, 2)
	}
	pos, vel := x[0], x[1]
	half := 0.5 * dt

	posHalf := pos + half*vel
	tHalf := t + half

	l.stage[0], l.stage[1] = posHalf, vel
	predicted := vel + dt*dyn.Derive(l.stage, u, tHalf)[1]

	l.stage[1] = 0.5 * (vel + predicted)
	velNew := vel + dt*dyn.Derive(l.stage, u, tHalf)[1]

	return dynamics.State{posHalf + half*velNew, velNew}
}
