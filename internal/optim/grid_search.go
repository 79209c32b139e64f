package optim

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/Saramando/263F/internal/config"
	"github.com/Saramando/263F/internal/experiment"
)

// GridSearch evaluates every combination of the given parameter ranges
// and keeps the one minimizing a run metric.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Axis returns n evenly spaced values spanning [lo, hi].
func Axis(lo, hi float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Search runs one simulation per grid point on copies of base and
// returns the combination minimizing the named metric. Grid points
// that fail to set up or run are skipped.
func (g *GridSearch) Search(ctx context.Context, base *config.Config, metricName string) (map[string]float64, float64, error) {
	if len(g.paramNames) != len(g.ranges) {
		return nil, 0, fmt.Errorf("got %d parameters but %d ranges", len(g.paramNames), len(g.ranges))
	}

	best := math.Inf(1)
	var bestParams map[string]float64

	g.searchRecursive(ctx, base, 0, make(map[string]float64), metricName, &best, &bestParams)

	if bestParams == nil {
		return nil, 0, fmt.Errorf("no grid point produced metric %q", metricName)
	}
	return bestParams, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	base *config.Config,
	depth int,
	current map[string]float64,
	metricName string,
	best *float64,
	bestParams *map[string]float64,
) {
	if depth == len(g.paramNames) {
		val, ok := evaluate(ctx, base, current, metricName)
		if ok && val < *best {
			*best = val
			*bestParams = make(map[string]float64)
			for k, v := range current {
				(*bestParams)[k] = v
			}
		}
		return
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		next := make(map[string]float64, len(current)+1)
		for k, v := range current {
			next[k] = v
		}
		next[paramName] = val

		g.searchRecursive(ctx, base, depth+1, next, metricName, best, bestParams)
	}
}

func evaluate(ctx context.Context, base *config.Config, params map[string]float64, metricName string) (float64, bool) {
	cfg := *base
	for name, value := range params {
		if err := experiment.ApplyParam(&cfg, name, value); err != nil {
			return 0, false
		}
	}

	exp := experiment.New(&cfg)
	if err := exp.Setup(); err != nil {
		return 0, false
	}
	result, err := exp.Run(ctx)
	if err != nil {
		return 0, false
	}

	val, ok := result.Metrics[metricName]
	return val, ok
}
