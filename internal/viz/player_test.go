package viz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Saramando/263F/internal/dynamics"
	"github.com/Saramando/263F/internal/geometry"
	"github.com/Saramando/263F/internal/render"
)

func testPlayer() Player {
	tr := dynamics.NewTrajectory(100)
	for i := 0; i < 100; i++ {
		tr.Time[i] = float64(i) * 1e-4
		tr.Displacement[i] = -1e-6 * float64(i%10)
	}
	frames := render.Frames(tr, 20, 1e6)
	return NewPlayer(geometry.NewAssembly(8, 1.0), tr, frames)
}

func TestPlayerPassSequence(t *testing.T) {
	p := testPlayer()
	if p.pass != passStructure {
		t.Fatalf("initial pass = %d, want structure", p.pass)
	}
	if done := p.advancePass(1); done || p.pass != passSnapshots {
		t.Fatalf("second pass = %d (done=%v), want snapshots", p.pass, done)
	}
	if !p.playing {
		t.Error("snapshot pass should start playing")
	}
	if done := p.advancePass(1); done || p.pass != passCurve {
		t.Fatalf("third pass = %d (done=%v), want curve", p.pass, done)
	}
	if done := p.advancePass(1); !done {
		t.Error("advancing past the final pass should report done")
	}
	if p.pass != passCurve {
		t.Error("finishing must not change the current pass")
	}
	if done := p.advancePass(-1); done || p.pass != passSnapshots {
		t.Error("stepping back should return to the previous pass")
	}
}

func TestPlayerScrubClamps(t *testing.T) {
	p := testPlayer()
	p.advancePass(1)

	p.scrub(-1)
	if p.frameIdx != 0 {
		t.Errorf("scrub below zero gave frame %d", p.frameIdx)
	}
	if p.playing {
		t.Error("scrubbing should pause playback")
	}
	for i := 0; i < 3*len(p.frames); i++ {
		p.scrub(1)
	}
	if p.frameIdx != len(p.frames)-1 {
		t.Errorf("scrub past end gave frame %d, want %d", p.frameIdx, len(p.frames)-1)
	}
}

func TestPlayerDrawsEachPass(t *testing.T) {
	p := testPlayer()
	for pass := 0; pass < passCount; pass++ {
		p.pass = pass
		p.draw()
		if countLit(p.canvas) == 0 {
			t.Errorf("pass %q left the canvas blank", passTitles[pass])
		}
	}
}

func TestPlayerViewShowsPassTitle(t *testing.T) {
	p := testPlayer()
	for pass := 0; pass < passCount; pass++ {
		p.pass = pass
		view := p.View()
		if !strings.Contains(view, passTitles[pass]) {
			t.Errorf("view for pass %d missing title %q", pass, passTitles[pass])
		}
	}
}

func TestPlayerRecordingSavesGIF(t *testing.T) {
	p := testPlayer()
	p.gifPath = filepath.Join(t.TempDir(), "rec.gif")

	p.recording = true
	p.draw()
	p.captureFrame()
	p.finishRecording()

	if _, err := os.Stat(p.gifPath); err != nil {
		t.Fatalf("expected gif on disk: %v", err)
	}
	if !strings.Contains(p.statusLine(), "saved") {
		t.Error("status line should report the saved gif")
	}
	if p.recording || p.gifFrames != nil {
		t.Error("finishing must clear recording state")
	}
}

func TestPlayerRecordingReportsSaveFailure(t *testing.T) {
	p := testPlayer()
	p.gifPath = filepath.Join(t.TempDir(), "missing", "rec.gif")

	p.recording = true
	p.draw()
	p.captureFrame()
	p.finishRecording()

	if !strings.Contains(p.statusLine(), "failed") {
		t.Error("status line should report the failed save")
	}
}
