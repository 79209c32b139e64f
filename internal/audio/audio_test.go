package audio

import (
	"math"
	"testing"

	"github.com/Saramando/263F/internal/dynamics"
)

func ringingTrajectory(n int) *dynamics.Trajectory {
	tr := dynamics.NewTrajectory(n)
	for i := 0; i < n; i++ {
		t := float64(i) * 1e-4
		tr.Time[i] = t
		tr.Displacement[i] = 1e-7 * math.Sin(2*math.Pi*1000*t)
	}
	return tr
}

func TestResample(t *testing.T) {
	src := []float64{0, 1, 2, 3}

	got := resample(src, 1, 2)
	if len(got) != 8 {
		t.Fatalf("expected 8 samples, got %d", len(got))
	}
	if got[0] != 0 {
		t.Errorf("first sample should be 0, got %v", got[0])
	}
	if math.Abs(got[1]-0.5) > 1e-12 {
		t.Errorf("expected interpolated 0.5, got %v", got[1])
	}
	if got[7] != 3 {
		t.Errorf("tail should clamp to the last sample, got %v", got[7])
	}

	if resample(nil, 1, 2) != nil {
		t.Error("expected nil for empty input")
	}
	if resample(src, 0, 2) != nil {
		t.Error("expected nil for zero source rate")
	}
}

func TestNormalize(t *testing.T) {
	samples := []float64{3, -6, 1.5}
	normalize(samples, 0.8)

	if math.Abs(samples[1]) != 0.8 {
		t.Errorf("peak should scale to 0.8, got %v", samples[1])
	}
	if math.Abs(samples[0]-0.4) > 1e-12 {
		t.Errorf("expected 0.4, got %v", samples[0])
	}

	zeros := []float64{0, 0}
	normalize(zeros, 0.8)
	if zeros[0] != 0 || zeros[1] != 0 {
		t.Error("silence should stay silent")
	}
}

func TestFadeEdges(t *testing.T) {
	samples := make([]float64, 10)
	for i := range samples {
		samples[i] = 1
	}
	fadeEdges(samples, 3)

	if samples[0] != 0 || samples[9] != 0 {
		t.Error("edges should fade to zero")
	}
	if math.Abs(samples[1]-1.0/3) > 1e-12 || math.Abs(samples[8]-1.0/3) > 1e-12 {
		t.Errorf("ramp mismatch: %v", samples)
	}
	if samples[5] != 1 {
		t.Error("middle should be untouched")
	}

	short := []float64{1, 1, 1, 1}
	fadeEdges(short, 10)
	if short[0] != 0 || short[3] != 0 {
		t.Error("fade length should clamp to half the buffer")
	}
}

func TestNewSonifier(t *testing.T) {
	tr := ringingTrajectory(441)
	s := NewSonifier(tr, 1e-4)

	want := int(math.Round(441 * SampleRate / 10000.0))
	if len(s.samples) != want {
		t.Fatalf("expected %d samples, got %d", want, len(s.samples))
	}

	peak := 0.0
	for _, v := range s.samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak > 0.8+1e-12 || peak < 0.75 {
		t.Errorf("expected peak near 0.8, got %v", peak)
	}

	if s.samples[0] != 0 {
		t.Errorf("loop seam should start silent, got %v", s.samples[0])
	}
	if s.LoopSeconds() <= 0 {
		t.Errorf("expected positive loop length, got %v", s.LoopSeconds())
	}
}

func TestSonifierProcess(t *testing.T) {
	s := NewSonifier(ringingTrajectory(441), 1e-4)

	out := [][]float32{make([]float32, 64), make([]float32, 64)}
	s.process(out)

	nonzero := false
	for i := range out[0] {
		if out[0][i] != out[1][i] {
			t.Fatalf("channels diverge at %d: %v vs %v", i, out[0][i], out[1][i])
		}
		if out[0][i] != 0 {
			nonzero = true
		}
	}
	if !nonzero {
		t.Error("expected audible samples")
	}
	if s.pos != 64 {
		t.Errorf("expected position 64, got %d", s.pos)
	}

	s.pos = len(s.samples) - 1
	s.process(out)
	if s.pos != 63 {
		t.Errorf("expected wrap to 63, got %d", s.pos)
	}
}

func TestSonifierEmpty(t *testing.T) {
	s := NewSonifier(nil, 0)

	if s.Active() {
		t.Error("new sonifier should be inactive")
	}
	if err := s.Start(); err == nil {
		t.Error("expected error starting with no samples")
		s.Stop()
	}

	out := [][]float32{make([]float32, 8), make([]float32, 8)}
	s.process(out)
	for i := range out[0] {
		if out[0][i] != 0 || out[1][i] != 0 {
			t.Fatal("empty sonifier should emit silence")
		}
	}
}
