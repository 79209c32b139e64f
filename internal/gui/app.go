package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Saramando/263F/internal/dynamics"
	"github.com/Saramando/263F/internal/geometry"
	"github.com/Saramando/263F/internal/render"
	"github.com/Saramando/263F/internal/viz"
)

const (
	windowW = 1280
	windowH = 720

	// ticks between snapshot frames while playing, at 60 TPS
	snapshotTicks = 20
)

var (
	colBg    = color.RGBA{10, 10, 10, 255}
	colEdge  = color.RGBA{180, 180, 180, 255}
	colJoint = color.RGBA{255, 255, 255, 255}
	colCurve = color.RGBA{0, 255, 136, 255}
	colAxis  = color.RGBA{60, 60, 60, 255}
	colZero  = color.RGBA{40, 40, 40, 255}
)

// Playback passes, shown in order. Advancing past the last one closes
// the window.
const (
	passStructure = iota
	passSnapshots
	passCurve
	passCount
)

var passTitles = [passCount]string{"STRUCTURE", "DEFORMED SNAPSHOTS", "TIP DISPLACEMENT"}

// App is the desktop playback window. It walks the same three passes
// as the terminal player, drawn with pixels instead of braille dots.
type App struct {
	assembly   *geometry.Assembly
	trajectory *dynamics.Trajectory
	frames     []render.FrameSpec
	camera     *viz.Camera

	pass     int
	frameIdx int
	playing  bool
	ticks    int
}

func NewApp(assembly *geometry.Assembly, trajectory *dynamics.Trajectory, frames []render.FrameSpec) *App {
	return &App{
		assembly:   assembly,
		trajectory: trajectory,
		frames:     frames,
		camera:     viz.NewCamera(),
	}
}

// Run opens the window and blocks until the last pass is dismissed.
func Run(assembly *geometry.Assembly, trajectory *dynamics.Trajectory, frames []render.FrameSpec) error {
	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle("rodsim")
	return ebiten.RunGame(NewApp(assembly, trajectory, frames))
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyTab) ||
		inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if a.advancePass(1) {
			return ebiten.Termination
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.advancePass(-1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && a.pass == passSnapshots {
		a.playing = !a.playing
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.frameIdx = 0
		a.ticks = 0
		a.playing = a.pass == passSnapshots
		a.camera = viz.NewCamera()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		a.scrub(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		a.scrub(-1)
	}

	// Held keys steer the camera; shift reverses.
	step := 0.02
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step = -step
	}
	if ebiten.IsKeyPressed(ebiten.KeyX) {
		a.camera.RotateX(step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyY) {
		a.camera.RotateY(step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyZ) {
		a.camera.RotateZ(step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) {
		a.camera.ZoomIn()
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) {
		a.camera.ZoomOut()
	}

	a.ticks++
	if a.playing && a.pass == passSnapshots && len(a.frames) > 0 && a.ticks%snapshotTicks == 0 {
		a.frameIdx = (a.frameIdx + 1) % len(a.frames)
	}

	return nil
}

// advancePass moves to the next or previous pass and reports whether
// playback walked past the final one.
func (a *App) advancePass(dir int) bool {
	next := a.pass + dir
	if next >= passCount {
		return true
	}
	if next < 0 {
		next = 0
	}
	a.pass = next
	a.frameIdx = 0
	a.ticks = 0
	a.playing = next == passSnapshots
	return false
}

// scrub pauses playback and steps one snapshot in either direction.
func (a *App) scrub(dir int) {
	if a.pass != passSnapshots || len(a.frames) == 0 {
		return
	}
	a.playing = false
	a.frameIdx += dir
	if a.frameIdx < 0 {
		a.frameIdx = 0
	}
	if a.frameIdx > len(a.frames)-1 {
		a.frameIdx = len(a.frames) - 1
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colBg)

	switch a.pass {
	case passStructure:
		a.drawWireframe(screen, viz.StructureWireframe(a.assembly))
	case passSnapshots:
		if len(a.frames) > 0 {
			a.drawWireframe(screen, viz.FrameWireframe(a.assembly, a.frames[a.frameIdx]))
		}
	case passCurve:
		a.drawCurve(screen)
	}

	a.drawHUD(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowW, windowH
}
