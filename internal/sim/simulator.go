package sim

import (
	"context"
	"fmt"

	"github.com/Saramando/263F/internal/dynamics"
	"github.com/Saramando/263F/internal/force"
)

// Simulator drives one rod run: a strictly sequential scalar recurrence
// where step t depends on step t-1. The trajectory is preallocated and
// filled by index; once Run returns it is frozen and read-only.
type Simulator struct {
	system     dynamics.System
	integrator dynamics.Integrator
	forcing    *force.Profile
	metrics    []dynamics.Metric
	observers  []dynamics.Observer
}

func New(system dynamics.System, integrator dynamics.Integrator, forcing *force.Profile) *Simulator {
	return &Simulator{
		system:     system,
		integrator: integrator,
		forcing:    forcing,
		metrics:    make([]dynamics.Metric, 0),
		observers:  make([]dynamics.Observer, 0),
	}
}

func (s *Simulator) AddMetric(m dynamics.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o dynamics.Observer) { s.observers = append(s.observers, o) }

// Run integrates from x0 over the configured window. Sample step of the
// trajectory holds the state after step integration steps; the force
// profile is indexed the same way, so sample t was produced with
// force.At(t) acting over the step that ends at t.
func (s *Simulator) Run(ctx context.Context, x0 dynamics.State, cfg dynamics.Config) (*dynamics.Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	if s.system.StateDim() != 2 || len(x0) != s.system.StateDim() {
		return nil, dynamics.ErrDimensionMismatch
	}

	steps := cfg.Steps()
	if s.forcing.Len() < steps {
		return nil, fmt.Errorf("force profile has %d samples, want %d", s.forcing.Len(), steps)
	}

	traj := dynamics.NewTrajectory(steps)

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	traj.Displacement[0] = x[0]
	traj.Velocity[0] = x[1]

	s.observe(x, dynamics.Control{s.forcing.At(0)}, 0)

	result := &dynamics.Result{Trajectory: traj, Metrics: make(map[string]float64)}
	dt := cfg.Dt

	for step := 1; step < steps; step++ {
		select {
		case <-ctx.Done():
			return nil, dynamics.ErrContextCanceled
		default:
		}

		u := dynamics.Control{s.forcing.At(step)}
		tPrev := float64(step-1) * dt

		x = s.integrator.Step(s.system, x, u, tPrev, dt)
		tNow := float64(step) * dt

		if cfg.ValidateState && !x.IsValid() {
			return nil, &dynamics.SimulationError{
				Step:    step,
				Time:    tNow,
				State:   x.Clone(),
				Wrapped: dynamics.ErrInvalidState,
			}
		}

		traj.Time[step] = tNow
		traj.Displacement[step] = x[0]
		traj.Velocity[step] = x[1]
		result.StepsTaken++

		s.observe(x, u, tNow)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) observe(x dynamics.State, u dynamics.Control, t float64) {
	for _, m := range s.metrics {
		m.Observe(x, u, t)
	}
	for _, obs := range s.observers {
		obs.OnStep(x, u, t)
	}
}

func (s *Simulator) validateConfig(cfg dynamics.Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	if cfg.Steps() < 1 {
		return fmt.Errorf("time steps must be positive, got %d", cfg.Steps())
	}
	return nil
}
