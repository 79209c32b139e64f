// Package dynamics provides core simulation primitives for the rod model.
//
// The package defines the fundamental interfaces and types for numerical
// simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: numerical time-stepping interface
//   - [Trajectory]: write-once time history of a run
//
// # Example
//
//	r := rod.New(length, area, modulus, damping, mass)
//	integ := integrators.NewSymplecticEuler()
//	s := sim.New(r, integ, profile)
//	result, _ := s.Run(ctx, r.DefaultState(), cfg)
//
// # Thread Safety
//
// A run is strictly sequential: step t depends on step t-1. Simulator
// instances are NOT thread-safe; for parameter sweeps, run independent
// simulators concurrently, one per configuration.
package dynamics
