package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Saramando/263F/internal/dynamics"
	"github.com/Saramando/263F/internal/geometry"
	"github.com/Saramando/263F/internal/render"
)

const (
	canvasWidth  = 80
	canvasHeight = 24

	// ticks between snapshot frames while playing, at 60 ticks/s
	snapshotTicks = 20
)

// Playback passes, shown in order. Advancing past the last one quits.
const (
	passStructure = iota
	passSnapshots
	passCurve
	passCount
)

var passTitles = [passCount]string{"STRUCTURE", "DEFORMED SNAPSHOTS", "TIP DISPLACEMENT"}

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
)

type passStyles struct {
	header, label, value, graph, help lipgloss.Style
}

func stylesFor(t Theme) passStyles {
	return passStyles{
		header: lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		graph:  lipgloss.NewStyle().Foreground(t.Accent).Padding(1, 0),
		help:   lipgloss.NewStyle().Foreground(t.Muted).MarginTop(2),
	}
}

type TickMsg time.Time

// Player steps through the three result views of a finished run: the
// resting structure, the deformed snapshots, and the tip displacement
// curve. Each pass holds the screen until the viewer advances, so the
// passes read like plots shown one after another.
type Player struct {
	assembly   *geometry.Assembly
	trajectory *dynamics.Trajectory
	frames     []render.FrameSpec

	pass     int
	frameIdx int
	playing  bool
	ticks    int

	width, height int
	canvas        *Canvas
	camera        *Camera

	recording bool
	gifFrames []*image.Paletted
	gifPath   string
	notice    string
	showHelp  bool
}

// NewPlayer builds a player over a frozen trajectory and its snapshot frames.
func NewPlayer(asm *geometry.Assembly, tr *dynamics.Trajectory, frames []render.FrameSpec) Player {
	return Player{
		assembly:   asm,
		trajectory: tr,
		frames:     frames,
		width:      canvasWidth,
		height:     canvasHeight,
		canvas:     NewCanvas(canvasWidth, canvasHeight),
		camera:     NewCamera(),
		gifPath:    "playback.gif",
	}
}

func (m Player) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances snapshot playback.
func (m Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.finishRecording()
			return m, tea.Quit
		case "tab", "enter", "n":
			if done := m.advancePass(1); done {
				m.finishRecording()
				return m, tea.Quit
			}
		case "shift+tab", "p":
			m.advancePass(-1)
		case " ":
			if m.pass == passSnapshots {
				m.playing = !m.playing
			}
		case "[", "left":
			m.scrub(-1)
		case "]", "right":
			m.scrub(1)
		case "r":
			m.frameIdx = 0
			m.ticks = 0
			m.playing = m.pass == passSnapshots
			m.camera = NewCamera()
		case "g":
			if m.recording {
				m.finishRecording()
			} else {
				m.recording = true
				m.notice = ""
				m.gifFrames = make([]*image.Paletted, 0)
			}
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "?":
			m.showHelp = !m.showHelp
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "z":
			m.camera.RotateZ(0.1)
		case "Z":
			m.camera.RotateZ(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		}
	case TickMsg:
		m.ticks++
		if m.playing && m.pass == passSnapshots && len(m.frames) > 0 && m.ticks%snapshotTicks == 0 {
			m.frameIdx = (m.frameIdx + 1) % len(m.frames)
		}
		m.draw()
		if m.recording {
			m.captureFrame()
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// advancePass moves to the next or previous pass. Reports true when the
// viewer steps past the final pass.
func (m *Player) advancePass(dir int) bool {
	next := m.pass + dir
	if next < 0 {
		return false
	}
	if next >= passCount {
		return true
	}
	m.pass = next
	m.frameIdx = 0
	m.ticks = 0
	m.playing = next == passSnapshots
	return false
}

// scrub pauses playback and steps through the snapshot frames.
func (m *Player) scrub(dir int) {
	if m.pass != passSnapshots || len(m.frames) == 0 {
		return
	}
	m.playing = false
	m.frameIdx += dir
	if m.frameIdx < 0 {
		m.frameIdx = 0
	}
	if m.frameIdx >= len(m.frames) {
		m.frameIdx = len(m.frames) - 1
	}
}

func (m *Player) clear() { m.canvas.Clear() }

func (m *Player) draw() {
	m.clear()
	switch m.pass {
	case passStructure:
		Render3D(m.canvas, StructureWireframe(m.assembly), m.camera)
	case passSnapshots:
		if len(m.frames) == 0 {
			return
		}
		Render3D(m.canvas, FrameWireframe(m.assembly, m.frames[m.frameIdx]), m.camera)
	case passCurve:
		m.drawCurve()
	}
}

// drawCurve plots tip displacement in centimeters against sample index,
// with the vertical axis on the left and a zero line when it is in range.
func (m *Player) drawCurve() {
	cm := m.trajectory.DisplacementCm()
	if len(cm) < 2 {
		return
	}
	cw, ch := m.canvas.SubWidth(), m.canvas.SubHeight()
	lo, hi := m.trajectory.MinDisplacement()*100, m.trajectory.MaxDisplacement()*100
	if hi == lo {
		hi = lo + 1
	}
	left, right := 6, cw-3
	top, bottom := 2, ch-3
	span := hi - lo
	if lo <= 0 && hi >= 0 {
		zeroY := bottom - int((0-lo)/span*float64(bottom-top))
		m.canvas.DrawLine(left, zeroY, right, zeroY)
	}
	m.canvas.DrawLine(left, top, left, bottom)
	n := len(cm)
	xs := make([]int, n)
	ys := make([]int, n)
	for i, v := range cm {
		xs[i] = left + int(float64(i)/float64(n-1)*float64(right-left))
		ys[i] = bottom - int((v-lo)/span*float64(bottom-top))
	}
	m.canvas.DrawPolyline(xs, ys)
}

// View renders the current pass next to its stats panel.
func (m Player) View() string {
	m.draw()
	st := stylesFor(CurrentTheme)
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(st.header.Render(fmt.Sprintf("PASS %d/%d  %s", m.pass+1, passCount, passTitles[m.pass])) + "\n")
	s.WriteString(m.statusLine() + "\n\n")

	switch m.pass {
	case passStructure:
		s.WriteString(st.label.Render("Sides") + st.value.Render(fmt.Sprintf("%d", m.assembly.Sides)) + "\n")
		s.WriteString(st.label.Render("Radius") + st.value.Render(fmt.Sprintf("%.2f m", m.assembly.Radius)) + "\n")
		s.WriteString(st.label.Render("Edges") + st.value.Render(fmt.Sprintf("%d", 2*m.assembly.Sides)) + "\n")
	case passSnapshots:
		cm := m.trajectory.DisplacementCm()
		if len(cm) > 1 {
			chart := asciigraph.Plot(cm, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("tip displacement (cm)"))
			s.WriteString(st.graph.Render(chart) + "\n\n")
		}
		if len(m.frames) > 0 {
			f := m.frames[m.frameIdx]
			s.WriteString(st.label.Render("Frame") + st.value.Render(fmt.Sprintf("%d/%d", m.frameIdx+1, len(m.frames))) + "\n")
			s.WriteString(st.label.Render("Step") + st.value.Render(fmt.Sprintf("%d", f.Step)) + "\n")
			s.WriteString(st.label.Render("Time") + st.value.Render(fmt.Sprintf("%.4fs", f.Time)) + "\n")
			s.WriteString(st.label.Render("Offset") + st.value.Render(fmt.Sprintf("%.3e", f.Offset)) + "\n")
			s.WriteString(st.label.Render("Z limit") + st.value.Render(fmt.Sprintf("%.3f", f.ZLim)) + "\n")
		}
		if len(m.frames) > 1 {
			s.WriteString("\n" + ProgressBar(float64(m.frameIdx)/float64(len(m.frames)-1), 20) + "\n")
		}
	case passCurve:
		s.WriteString(st.label.Render("Samples") + st.value.Render(fmt.Sprintf("%d", m.trajectory.Len())) + "\n")
		if n := m.trajectory.Len(); n > 0 {
			s.WriteString(st.label.Render("Duration") + st.value.Render(fmt.Sprintf("%.4fs", m.trajectory.Time[n-1])) + "\n")
		}
		s.WriteString(st.label.Render("Max") + st.value.Render(fmt.Sprintf("%.3e cm", m.trajectory.MaxDisplacement()*100)) + "\n")
		s.WriteString(st.label.Render("Min") + st.value.Render(fmt.Sprintf("%.3e cm", m.trajectory.MinDisplacement()*100)) + "\n")
	}

	s.WriteString("\n" + Separator(30) + "\n")
	s.WriteString(st.help.Render("TAB:Next SP:Pause Q:Quit\nT:Theme G:Record ?:Help\n[ ]:Step X/Y/Z:Rotate"))
	panel := panelStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panel)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Tab/Enter - Next pass               ║
║  Shift+Tab - Previous pass           ║
║  Space     - Pause/Resume playback   ║
║  [ ]       - Step snapshot frames    ║
║  R         - Restart current pass    ║
║  X/Y/Z     - Rotate camera           ║
║  +/-       - Zoom in/out             ║
║  G         - Toggle GIF recording    ║
║  T         - Cycle themes            ║
║  ?         - Toggle this help        ║
║  Q         - Quit                    ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func (m Player) statusLine() string {
	t := CurrentTheme
	var status string
	switch {
	case m.pass == passSnapshots && m.playing:
		status = lipgloss.NewStyle().Foreground(t.Success).Bold(true).Render("PLAYING")
	case m.pass == passSnapshots:
		status = lipgloss.NewStyle().Foreground(t.Warning).Bold(true).Render("PAUSED")
	default:
		status = lipgloss.NewStyle().Foreground(t.Secondary).Render("STATIC")
	}
	if m.recording {
		rec := lipgloss.NewStyle().Foreground(t.Error).Bold(true).Blink(true).Render("● REC")
		status += "  " + rec
	}
	if m.notice != "" {
		status += "  " + lipgloss.NewStyle().Foreground(t.Warning).Render(m.notice)
	}
	return status
}

// captureFrame rasterizes the braille canvas into a paletted image, one
// filled block per lit dot.
func (m *Player) captureFrame() {
	charW, charH := 8, 16
	dotW, dotH := charW/2, charH/4
	imgW, imgH := m.width*charW, m.height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			r := m.canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}
	m.gifFrames = append(m.gifFrames, img)
}

// finishRecording flushes captured frames, if any, and reports the save
// outcome on the status line.
func (m *Player) finishRecording() {
	if m.recording && len(m.gifFrames) > 0 {
		if err := m.saveGIF(); err != nil {
			m.notice = "gif save failed: " + err.Error()
		} else {
			m.notice = "saved " + m.gifPath
		}
	}
	m.recording = false
	m.gifFrames = nil
}

func (m *Player) saveGIF() error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range m.gifFrames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}
	f, err := os.Create(m.gifPath)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &anim); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
