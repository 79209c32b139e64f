package force

import "testing"

func TestNewLinear_Interpolation(t *testing.T) {
	const initial = 0.3
	const steps = 500

	p := NewLinear(initial, steps)

	if p.Len() != steps {
		t.Fatalf("Len() = %d, want %d", p.Len(), steps)
	}
	for i := 0; i < steps; i++ {
		want := initial * (1 - float64(i)/float64(steps-1))
		if got := p.At(i); got != want {
			t.Fatalf("At(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestNewLinear_Endpoints(t *testing.T) {
	p := NewLinear(0.3, 500)

	if got := p.At(0); got != 0.3 {
		t.Errorf("At(0) = %v, want 0.3", got)
	}
	if got := p.At(499); got != 0 {
		t.Errorf("At(last) = %v, want exactly 0", got)
	}
	if got := p.Peak(); got != 0.3 {
		t.Errorf("Peak() = %v, want 0.3", got)
	}
}

func TestNewLinear_MonotonicNonIncreasing(t *testing.T) {
	p := NewLinear(2.5, 1000)

	for i := 1; i < p.Len(); i++ {
		if p.At(i) > p.At(i-1) {
			t.Fatalf("profile increases at %d: %v > %v", i, p.At(i), p.At(i-1))
		}
	}
}

func TestNewLinear_SingleStep(t *testing.T) {
	p := NewLinear(1.5, 1)
	if p.Len() != 1 || p.At(0) != 1.5 {
		t.Errorf("single-sample profile = %v, want [1.5]", p.Values())
	}
}

func TestNewConstant(t *testing.T) {
	p := NewConstant(0.7, 10)
	for i := 0; i < p.Len(); i++ {
		if p.At(i) != 0.7 {
			t.Fatalf("At(%d) = %v, want 0.7", i, p.At(i))
		}
	}
}

func TestNewZero(t *testing.T) {
	p := NewZero(10)
	if p.Peak() != 0 {
		t.Errorf("Peak() = %v, want 0", p.Peak())
	}
}
