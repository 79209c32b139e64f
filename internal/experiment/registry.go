package experiment

import (
	"fmt"
	"sort"

	"github.com/Saramando/263F/internal/dynamics"
	"github.com/Saramando/263F/internal/integrators"
	"github.com/Saramando/263F/internal/metrics"
	"github.com/Saramando/263F/internal/rod"
)

var integratorFactories = map[string]func() dynamics.Integrator{
	"symplectic": func() dynamics.Integrator { return integrators.NewSymplecticEuler() },
	"euler":      func() dynamics.Integrator { return integrators.NewEuler() },
	"rk4":        func() dynamics.Integrator { return integrators.NewRK4() },
	"verlet":     func() dynamics.Integrator { return integrators.NewVerlet() },
	"leapfrog":   func() dynamics.Integrator { return integrators.NewLeapfrog() },
}

func GetIntegrator(name string) (dynamics.Integrator, error) {
	fn, ok := integratorFactories[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func ListIntegrators() []string {
	names := make([]string, 0, len(integratorFactories))
	for name := range integratorFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics is the observer set attached to every run.
func DefaultMetrics(r *rod.Rod, dt float64) []dynamics.Metric {
	return []dynamics.Metric{
		metrics.NewMaxDisplacement(),
		metrics.NewMinDisplacement(),
		metrics.NewPeakEnergy(r),
		metrics.NewFinalEnergy(r),
		metrics.NewImpulse(dt),
	}
}
