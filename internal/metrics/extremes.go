package metrics

import "github.com/Saramando/263F/internal/dynamics"

type MaxDisplacement struct {
	name    string
	max     float64
	samples int
}

func NewMaxDisplacement() *MaxDisplacement {
	return &MaxDisplacement{name: "max_displacement"}
}

func (m *MaxDisplacement) Name() string { return m.name }

func (m *MaxDisplacement) Observe(x dynamics.State, u dynamics.Control, t float64) {
	if len(x) == 0 {
		return
	}
	if m.samples == 0 || x[0] > m.max {
		m.max = x[0]
	}
	m.samples++
}

func (m *MaxDisplacement) Value() float64 {
	return m.max
}

func (m *MaxDisplacement) Reset() {
	m.max = 0
	m.samples = 0
}

type MinDisplacement struct {
	name    string
	min     float64
	samples int
}

func NewMinDisplacement() *MinDisplacement {
	return &MinDisplacement{name: "min_displacement"}
}

func (m *MinDisplacement) Name() string { return m.name }

func (m *MinDisplacement) Observe(x dynamics.State, u dynamics.Control, t float64) {
	if len(x) == 0 {
		return
	}
	if m.samples == 0 || x[0] < m.min {
		m.min = x[0]
	}
	m.samples++
}

func (m *MinDisplacement) Value() float64 {
	return m.min
}

func (m *MinDisplacement) Reset() {
	m.min = 0
	m.samples = 0
}
