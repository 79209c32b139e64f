package integrators

import (
	"testing"

	"github.com/Saramando/263F/internal/dynamics"
)

type springStub struct {
	k, c, m float64
}

func (s *springStub) StateDim() int   { return 2 }
func (s *springStub) ControlDim() int { return 1 }

func (s *springStub) Derive(x dynamics.State, u dynamics.Control, t float64) dynamics.State {
	applied := 0.0
	if len(u) > 0 {
		applied = u[0]
	}
	acc := (applied - s.k*x[0] - s.c*x[1]) / s.m
	return dynamics.State{x[1], acc}
}

func (s *springStub) Energy(x dynamics.State) float64 {
	return 0.5*s.k*x[0]*x[0] + 0.5*s.m*x[1]*x[1]
}

func TestSymplecticEuler_Recurrence(t *testing.T) {
	dyn := &springStub{k: 4.0, c: 0.2, m: 0.5}
	integ := NewSymplecticEuler()
	dt := 0.01

	x := dynamics.State{0.3, -0.1}
	u := dynamics.Control{0.05}

	got := integ.Step(dyn, x, u, 0, dt)

	acc := (u[0] - dyn.k*x[0] - dyn.c*x[1]) / dyn.m
	wantVel := x[1] + dt*acc
	wantPos := x[0] + dt*wantVel

	if got[1] != wantVel {
		t.Errorf("velocity = %v, want %v", got[1], wantVel)
	}
	if got[0] != wantPos {
		t.Errorf("position = %v, want %v", got[0], wantPos)
	}
}

func TestSymplecticEuler_UsesUpdatedVelocity(t *testing.T) {
	// From rest under a force, plain Euler leaves the position unchanged
	// after one step; the semi-implicit update already moves it.
	dyn := &springStub{k: 1, m: 1}
	x := dynamics.State{0, 0}
	u := dynamics.Control{1.0}
	dt := 0.1

	semi := NewSymplecticEuler().Step(dyn, x, u, 0, dt)
	plain := NewEuler().Step(dyn, x, u, 0, dt)

	if plain[0] != 0 {
		t.Errorf("explicit Euler moved position on first step: %v", plain[0])
	}
	if semi[0] != dt*semi[1] {
		t.Errorf("position = %v, want dt*velocity = %v", semi[0], dt*semi[1])
	}
	if semi[0] == 0 {
		t.Error("semi-implicit step did not move position")
	}
}

func TestSymplecticEuler_EnergyBounded(t *testing.T) {
	dyn := &springStub{k: 1, m: 1}
	e0 := dyn.Energy(dynamics.State{1, 0})
	dt := 0.01
	steps := 10000

	semi := NewSymplecticEuler()
	plain := NewEuler()
	xs := dynamics.State{1, 0}
	xp := dynamics.State{1, 0}
	for i := 0; i < steps; i++ {
		t0 := float64(i) * dt
		xs = semi.Step(dyn, xs, nil, t0, dt)
		xp = plain.Step(dyn, xp, nil, t0, dt)
	}

	if e := dyn.Energy(xs); e > 1.02*e0 || e < 0.98*e0 {
		t.Errorf("symplectic energy drifted: %v, started at %v", e, e0)
	}
	if e := dyn.Energy(xp); e < 1.5*e0 {
		t.Errorf("expected explicit Euler to gain energy, got %v from %v", e, e0)
	}
}
