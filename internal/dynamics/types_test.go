package dynamics

import (
	"errors"
	"math"
	"testing"
)

func TestState_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		valid bool
	}{
		{"empty", State{}, true},
		{"rest", State{0.0, 0.0}, true},
		{"displaced", State{1.2e-7, -4.5e-4}, true},
		{"with NaN", State{1.0, math.NaN()}, false},
		{"with +Inf", State{1.0, math.Inf(1)}, false},
		{"with -Inf", State{1.0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestState_Clone(t *testing.T) {
	a := State{1, 2}
	c := a.Clone()
	c[0] = 99
	if a[0] == 99 {
		t.Error("Clone did not create independent copy")
	}
}

func TestConfig_Steps(t *testing.T) {
	tests := []struct {
		name     string
		dt       float64
		duration float64
		want     int
	}{
		{"defaults", 0.0001, 0.05, 500},
		{"coarse", 0.01, 1.0, 100},
		{"inexact quotient", 0.0001, 0.1, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Dt: tt.dt, Duration: tt.duration}
			if got := cfg.Steps(); got != tt.want {
				t.Errorf("Steps() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewTrajectory(t *testing.T) {
	tr := NewTrajectory(500)

	if tr.Len() != 500 {
		t.Errorf("Len() = %d, want 500", tr.Len())
	}
	if len(tr.Displacement) != len(tr.Velocity) || len(tr.Displacement) != len(tr.Time) {
		t.Error("trajectory slices are not parallel")
	}
	if tr.Displacement[0] != 0 || tr.Velocity[0] != 0 {
		t.Error("initial state is not at rest")
	}
}

func TestTrajectory_Extremes(t *testing.T) {
	tr := &Trajectory{
		Time:         []float64{0, 1, 2, 3},
		Displacement: []float64{0, 2.5, -1.5, 0.5},
		Velocity:     []float64{0, 1, -1, 0},
	}

	if got := tr.MaxDisplacement(); got != 2.5 {
		t.Errorf("MaxDisplacement() = %v, want 2.5", got)
	}
	if got := tr.MinDisplacement(); got != -1.5 {
		t.Errorf("MinDisplacement() = %v, want -1.5", got)
	}
}

func TestTrajectory_DisplacementCm(t *testing.T) {
	tr := &Trajectory{
		Time:         []float64{0, 1},
		Displacement: []float64{0.01, -0.02},
		Velocity:     []float64{0, 0},
	}

	cm := tr.DisplacementCm()
	if cm[0] != 1.0 || cm[1] != -2.0 {
		t.Errorf("DisplacementCm() = %v, want [1 -2]", cm)
	}
}

func TestSimulationError_Unwrap(t *testing.T) {
	err := &SimulationError{Step: 3, Time: 0.0003, Wrapped: ErrInvalidState}
	if !errors.Is(err, ErrInvalidState) {
		t.Error("SimulationError does not unwrap to ErrInvalidState")
	}
}
