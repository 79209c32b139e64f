package experiment

import (
	"context"
	"fmt"
	"sync"

	"github.com/Saramando/263F/internal/config"
)

// SweepPoint is one completed run of a parameter sweep.
type SweepPoint struct {
	Value   float64
	Metrics map[string]float64
}

// Sweep runs one simulation per value with the named parameter
// overridden, each run on its own goroutine. Points come back in
// input order.
func Sweep(ctx context.Context, base *config.Config, param string, values []float64) ([]SweepPoint, error) {
	points := make([]SweepPoint, len(values))
	errs := make([]error, len(values))

	var wg sync.WaitGroup
	for i, v := range values {
		wg.Add(1)
		go func(idx int, value float64) {
			defer wg.Done()

			cfg := *base
			if err := ApplyParam(&cfg, param, value); err != nil {
				errs[idx] = err
				return
			}

			exp := New(&cfg)
			if err := exp.Setup(); err != nil {
				errs[idx] = err
				return
			}
			result, err := exp.Run(ctx)
			if err != nil {
				errs[idx] = err
				return
			}
			points[idx] = SweepPoint{Value: value, Metrics: result.Metrics}
		}(i, v)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return points, nil
}

// ApplyParam overrides one named physical parameter on a config copy.
func ApplyParam(cfg *config.Config, param string, value float64) error {
	switch param {
	case "mass":
		cfg.Mass = value
	case "damping":
		cfg.Damping = value
	case "modulus":
		cfg.ElasticModulus = value
	case "length":
		cfg.Length = value
	case "area":
		cfg.Area = value
	case "force":
		cfg.InitialForce = value
	case "dt":
		cfg.Dt = value
	default:
		return fmt.Errorf("unknown sweep parameter: %s", param)
	}
	return nil
}

// SweepParams lists the parameters Sweep recognizes.
func SweepParams() []string {
	return []string{"area", "damping", "dt", "force", "length", "mass", "modulus"}
}
