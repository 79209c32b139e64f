package render

import (
	"math"
	"testing"

	"github.com/Saramando/263F/internal/dynamics"
)

func rampTrajectory(steps int, dt float64) *dynamics.Trajectory {
	tr := dynamics.NewTrajectory(steps)
	for i := 0; i < steps; i++ {
		tr.Time[i] = float64(i) * dt
		tr.Displacement[i] = float64(i) * 1e-9
	}
	return tr
}

func TestFrames_DefaultScenario(t *testing.T) {
	tr := rampTrajectory(500, 0.0001)

	frames := Frames(tr, 100, 1e6)

	if len(frames) != 5 {
		t.Fatalf("got %d frames, want 5", len(frames))
	}
	for i, f := range frames {
		if want := i * 100; f.Step != want {
			t.Errorf("frame %d step = %d, want %d", i, f.Step, want)
		}
		if f.Time != tr.Time[f.Step] {
			t.Errorf("frame %d time = %v, want %v", i, f.Time, tr.Time[f.Step])
		}
	}
}

func TestFrames_OffsetAndLimit(t *testing.T) {
	tr := rampTrajectory(500, 0.0001)
	scaling := 1e6

	frames := Frames(tr, 100, scaling)

	for _, f := range frames {
		wantOffset := -tr.Displacement[f.Step] * scaling
		if f.Offset != wantOffset {
			t.Errorf("step %d offset = %v, want %v", f.Step, f.Offset, wantOffset)
		}
		if want := 2*math.Abs(wantOffset) + 0.1; f.ZLim != want {
			t.Errorf("step %d zlim = %v, want %v", f.Step, f.ZLim, want)
		}
	}
}

func TestFrames_LimitNeverVanishes(t *testing.T) {
	tr := dynamics.NewTrajectory(10)

	for _, f := range Frames(tr, 2, 1e6) {
		if f.ZLim < 0.1 {
			t.Errorf("zlim = %v for an undeformed frame, want at least 0.1", f.ZLim)
		}
	}
}

func TestFrames_IntervalWiderThanRun(t *testing.T) {
	tr := rampTrajectory(50, 0.0001)

	frames := Frames(tr, 1000, 1e6)

	if len(frames) != 1 || frames[0].Step != 0 {
		t.Errorf("got %+v, want the single step-0 frame", frames)
	}
}

func TestFrames_NonPositiveInterval(t *testing.T) {
	tr := rampTrajectory(10, 0.0001)

	if got := len(Frames(tr, 0, 1e6)); got != 10 {
		t.Errorf("got %d frames, want one per step", got)
	}
}
