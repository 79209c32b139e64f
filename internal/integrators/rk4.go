package integrators

import "github.com/Saramando/263F/internal/dynamics"

// RK4 is the classic fourth order scheme on the displacement and
// velocity pair. The force sample is held constant across the four
// stages; only the stage state and time move.
type RK4 struct {
	stage dynamics.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(dyn dynamics.System, x dynamics.State, u dynamics.Control, t, dt float64) dynamics.State {
	if len(r.stage) != 2 {
		r.stage = make(dynamics.State, 2)
	}
	pos, vel := x[0], x[1]
	half := 0.5 * dt

	k1 := dyn.Derive(x, u, t)

	r.stage[0], r.stage[1] = pos+half*k1[0], vel+half*k1[1]
	k2 := dyn.Derive(r.stage, u, t+half)

	r.stage[0], r.stage[1] = pos+half*k2[0], vel+half*k2[1]
	k3 := dyn.Derive(r.stage, u, t+half)

	r.stage[0], r.stage[1] = pos+dt*k3[0], vel+dt*k3[1]
	k4 := dyn.Derive(r.stage, u, t+dt)

	sixth := dt / 6.0
	return dynamics.State{
		pos + sixth*(k1[0]+2*k2[0]+2*k3[0]+k4[0]),
		vel + sixth*(k1[1]+2*k2[1]+2*k3[1]+k4[1]),
	}
}
