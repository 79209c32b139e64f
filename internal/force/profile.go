package force

import "gonum.org/v1/gonum/floats"

// Profile is the prescribed external force, one sample per time step.
// Computed once up front and immutable afterwards.
type Profile struct {
	values []float64
}

// NewLinear ramps from initial down to exactly zero over steps samples:
// values[t] = initial * (1 - t/(steps-1)).
func NewLinear(initial float64, steps int) *Profile {
	values := make([]float64, steps)
	if steps == 1 {
		values[0] = initial
		return &Profile{values: values}
	}
	last := float64(steps - 1)
	for t := range values {
		values[t] = initial * (1 - float64(t)/last)
	}
	return &Profile{values: values}
}

// NewConstant holds the same force over every step.
func NewConstant(value float64, steps int) *Profile {
	values := make([]float64, steps)
	for t := range values {
		values[t] = value
	}
	return &Profile{values: values}
}

// NewZero is the unforced profile, for free ringdown runs.
func NewZero(steps int) *Profile {
	return &Profile{values: make([]float64, steps)}
}

func (p *Profile) At(t int) float64 {
	return p.values[t]
}

func (p *Profile) Len() int {
	return len(p.values)
}

func (p *Profile) Peak() float64 {
	if len(p.values) == 0 {
		return 0
	}
	return floats.Max(p.values)
}

// Values returns the underlying samples. Callers must not mutate them.
func (p *Profile) Values() []float64 {
	return p.values
}
