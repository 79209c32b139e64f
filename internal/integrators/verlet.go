package integrators

import "github.com/Saramando/263F/internal/dynamics"

// Verlet is the velocity form on the rod's displacement and velocity
// pair: half kick, drift, half kick. The acceleration carries a damping
// term, so the closing kick cannot use the stale start-of-step velocity;
// it evaluates once at the half-step velocity to predict the end
// velocity and once more at the prediction to close.
type Verlet struct {
	stage dynamics.State
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Step(dyn dynamics.System, x dynamics.State, u dynamics.Control, t, dt float64) dynamics.State {
	if len(v.stage) != 2 {
		v.stage = make(dynamics.State, 2)
	}
	pos, vel := x[0], x[1]
	half := 0.5 * dt

	a0 := dyn.Derive(x, u, t)[1]
	vHalf := vel + half*a0
	posNew := pos + dt*vHalf

	v.stage[0], v.stage[1] = posNew, vHalf
	predicted := vHalf + half*dyn.Derive(v.stage, u, t+dt)[1]

	v.stage[1] = predicted
	aNew := dyn.Derive(v.stage, u, t+dt)[1]

	return dynamics.State{posNew, vHalf + half*aNew}
}
