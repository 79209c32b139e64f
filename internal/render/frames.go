package render

import (
	"math"

	"github.com/Saramando/263F/internal/dynamics"
)

// FrameSpec fixes one snapshot of the deformed assembly: the trajectory
// step it shows, the z offset applied to every rod tip, and the symmetric
// axis limit that keeps the deformation visible at any magnitude.
type FrameSpec struct {
	Step   int
	Time   float64
	Offset float64
	ZLim   float64
}

// Frames selects every trajectory step that is a multiple of every and
// derives the per-frame deformation. The offset is -displacement scaled
// by the visualization factor; the axis limit is 2*|offset| + 0.1.
func Frames(tr *dynamics.Trajectory, every int, scaling float64) []FrameSpec {
	if every < 1 {
		every = 1
	}
	frames := make([]FrameSpec, 0, tr.Len()/every+1)
	for step := 0; step < tr.Len(); step += every {
		offset := -tr.Displacement[step] * scaling
		frames = append(frames, FrameSpec{
			Step:   step,
			Time:   tr.Time[step],
			Offset: offset,
			ZLim:   2*math.Abs(offset) + 0.1,
		})
	}
	return frames
}
