package experiment

import (
	"context"
	"fmt"

	"github.com/Saramando/263F/internal/config"
	"github.com/Saramando/263F/internal/dynamics"
	"github.com/Saramando/263F/internal/force"
	"github.com/Saramando/263F/internal/render"
	"github.com/Saramando/263F/internal/rod"
	"github.com/Saramando/263F/internal/sim"
)

// Experiment wires a configuration into a runnable simulation.
type Experiment struct {
	cfg       *config.Config
	rod       *rod.Rod
	forcing   *force.Profile
	simulator *sim.Simulator
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup builds the rod, force profile, and simulator from the config.
// It must be called before Run.
func (e *Experiment) Setup() error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	integrator, err := GetIntegrator(e.cfg.Integrator)
	if err != nil {
		return err
	}

	e.rod = rod.New(e.cfg.Length, e.cfg.Area, e.cfg.ElasticModulus, e.cfg.Damping, e.cfg.Mass)
	e.forcing = force.NewLinear(e.cfg.InitialForce, e.cfg.TimeSteps())
	e.simulator = sim.New(e.rod, integrator, e.forcing)

	for _, m := range DefaultMetrics(e.rod, e.cfg.Dt) {
		e.simulator.AddMetric(m)
	}
	return nil
}

// Run integrates the rod from rest over the configured window.
func (e *Experiment) Run(ctx context.Context) (*dynamics.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run(ctx, e.rod.DefaultState(), e.cfg.RunConfig())
}

// Frames derives the deformed-shape snapshots from a finished run.
func (e *Experiment) Frames(tr *dynamics.Trajectory) []render.FrameSpec {
	return render.Frames(tr, e.cfg.SnapshotEvery(), e.cfg.Scaling)
}

func (e *Experiment) Rod() *rod.Rod { return e.rod }

func (e *Experiment) Forcing() *force.Profile { return e.forcing }

func (e *Experiment) Config() *config.Config { return e.cfg }

// GetSimulator exposes the underlying simulator so callers can attach
// observers between Setup and Run. It is nil before Setup.
func (e *Experiment) GetSimulator() *sim.Simulator {
	return e.simulator
}
