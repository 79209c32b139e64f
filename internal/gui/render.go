package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Saramando/263F/internal/viz"
)

const padding = 50.0

func (a *App) drawWireframe(screen *ebiten.Image, w *viz.Wireframe) {
	if w == nil {
		return
	}
	for _, e := range w.Edges {
		x1, y1, _, ok1 := a.camera.Project(e.Start, windowW, windowH)
		x2, y2, _, ok2 := a.camera.Project(e.End, windowW, windowH)
		if !ok1 || !ok2 {
			continue
		}
		if e.Start == e.End {
			vector.DrawFilledCircle(screen, float32(x1), float32(y1), 4, colJoint, true)
			continue
		}
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 2, colEdge, true)
	}
}

// drawCurve plots tip displacement against time across the window.
func (a *App) drawCurve(screen *ebiten.Image) {
	if a.trajectory == nil || a.trajectory.Len() < 2 {
		return
	}

	cm := a.trajectory.DisplacementCm()
	lo := a.trajectory.MinDisplacement() * 100
	hi := a.trajectory.MaxDisplacement() * 100
	if hi == lo {
		hi = lo + 1
	}

	left := padding
	right := float64(windowW) - padding
	top := padding
	bottom := float64(windowH) - padding

	vector.StrokeLine(screen, float32(left), float32(top), float32(left), float32(bottom), 1, colAxis, true)
	vector.StrokeLine(screen, float32(left), float32(bottom), float32(right), float32(bottom), 1, colAxis, true)
	if lo <= 0 && 0 <= hi {
		zeroY := bottom - (0-lo)/(hi-lo)*(bottom-top)
		vector.StrokeLine(screen, float32(left), float32(zeroY), float32(right), float32(zeroY), 1, colZero, true)
	}

	n := len(cm)
	px := float32(left)
	py := float32(bottom - (cm[0]-lo)/(hi-lo)*(bottom-top))
	for i := 1; i < n; i++ {
		x := float32(left + float64(i)/float64(n-1)*(right-left))
		y := float32(bottom - (cm[i]-lo)/(hi-lo)*(bottom-top))
		vector.StrokeLine(screen, px, py, x, y, 2, colCurve, true)
		px, py = x, y
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	title := fmt.Sprintf("rodsim :: pass %d/%d %s", a.pass+1, passCount, passTitles[a.pass])
	ebitenutil.DebugPrintAt(screen, title, 16, 16)

	info := ""
	switch a.pass {
	case passStructure:
		if a.assembly != nil {
			info = fmt.Sprintf("sides %d  radius %.2f m", a.assembly.Sides, a.assembly.Radius)
		}
	case passSnapshots:
		if len(a.frames) > 0 {
			f := a.frames[a.frameIdx]
			status := "playing"
			if !a.playing {
				status = "paused"
			}
			info = fmt.Sprintf("frame %d/%d  t=%.4fs  offset %.3e  %s",
				a.frameIdx+1, len(a.frames), f.Time, f.Offset, status)
		}
	case passCurve:
		if a.trajectory != nil {
			info = fmt.Sprintf("samples %d  max %.3e cm  min %.3e cm",
				a.trajectory.Len(), a.trajectory.MaxDisplacement()*100, a.trajectory.MinDisplacement()*100)
		}
	}
	if info != "" {
		ebitenutil.DebugPrintAt(screen, info, 16, 36)
	}

	keys := "ENTER next  P back  SPACE pause  [ ] step  X/Y/Z rotate  +/- zoom  R reset  Q quit"
	ebitenutil.DebugPrintAt(screen, keys, 16, windowH-32)
}
