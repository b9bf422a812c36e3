package viz

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dcmlab/internal/curves"
	"github.com/san-kum/dcmlab/internal/export"
	"github.com/san-kum/dcmlab/internal/geometry"
	"github.com/san-kum/dcmlab/internal/machine"
)

const (
	canvasWidth  = 64
	canvasHeight = 26
)

// Step sizes for the keyboard "sliders".
var paramSteps = map[string]float64{
	"flux":    0.05,
	"speed":   1.0,
	"current": 0.25,
}

type TickMsg time.Time

// statusTicks is how many animation ticks a status note stays in the
// header before it clears.
const statusTicks = 60

// Model is the live machine view: a rotating 3D wireframe, the two
// analytic curves, and keyboard sliders for the operating point.
type Model struct {
	state  *machine.State
	theta  float64
	camera *Camera
	canvas *Canvas

	// initial is the launch operating point; R restores it.
	initial *machine.State

	frameInterval time.Duration
	sweepPoints   int
	running       bool

	paramKeys []string
	selected  int

	// Derived values, recomputed on every parameter edit rather than
	// on the animation tick.
	reading    machine.Reading
	speedCurve curves.Curve
	torqCurve  curves.Curve

	// hum, when set, is fed every parameter edit so the synthesized
	// machine noise tracks the sliders.
	hum interface{ Update(*machine.State) }

	status     string
	statusLeft int
	showHelp   bool
}

// WithHum attaches a hum synthesizer to the view.
func (m Model) WithHum(h interface{ Update(*machine.State) }) Model {
	m.hum = h
	m.recompute()
	return m
}

// NewModel builds the live view around an existing machine state.
func NewModel(s *machine.State, frameMs, sweepPoints int) Model {
	if frameMs <= 0 {
		frameMs = 50
	}
	if sweepPoints < 2 {
		sweepPoints = curves.DefaultPoints
	}
	m := Model{
		state:         s,
		initial:       s.Clone(),
		camera:        NewCamera(),
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		frameInterval: time.Duration(frameMs) * time.Millisecond,
		sweepPoints:   sweepPoints,
		running:       true,
		paramKeys:     []string{"flux", "speed", "current"},
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// recompute refreshes readings and curve data from the state. Called
// synchronously from parameter edits, never deferred to the tick.
func (m *Model) recompute() {
	m.reading = machine.Compute(m.state)
	m.speedCurve, m.torqCurve = curves.Both(m.state, m.sweepPoints)
	if m.hum != nil {
		m.hum.Update(m.state)
	}
}

// restart tears the animation down and rebuilds it from angle zero.
// Geometry-affecting edits go through here instead of patching the
// scene in place.
func (m *Model) restart() {
	m.theta = 0
	m.canvas = NewCanvas(canvasWidth, canvasHeight)
	m.running = true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.state = m.initial.Clone()
			m.restart()
			m.recompute()
		case "tab":
			m.selected = (m.selected + 1) % len(m.paramKeys)
		case "up", "k":
			m.adjustParam(1)
			m.recompute()
		case "down", "j":
			m.adjustParam(-1)
			m.recompute()
		case "m":
			m.state.ToggleMode()
			m.restart()
			m.recompute()
		case "f":
			m.state.ShowField = !m.state.ShowField
			m.restart()
		case "v":
			m.state.ShowVectors = !m.state.ShowVectors
			m.restart()
		case "c":
			m.state.ShowCommutator = !m.state.ShowCommutator
			m.restart()
		case "a":
			m.camera.FollowTheta = !m.camera.FollowTheta
		case "t":
			CycleTheme()
		case "e":
			m.status = m.exportFrame()
			m.statusLeft = statusTicks
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
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.theta += m.state.Speed() * m.frameInterval.Seconds()
			if m.theta > 2*math.Pi {
				m.theta -= 2 * math.Pi
			}
		}
		if m.statusLeft > 0 {
			m.statusLeft--
			if m.statusLeft == 0 {
				m.status = ""
			}
		}
		return m, tea.Tick(m.frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// adjustParam nudges the selected parameter one step in the given
// direction; the state setter clamps to the slider range.
func (m *Model) adjustParam(dir float64) {
	key := m.paramKeys[m.selected]
	val := m.state.GetParams()[key]
	_ = m.state.SetParam(key, val+dir*paramSteps[key])
}

func (m *Model) exportFrame() string {
	m.drawScene()
	name := fmt.Sprintf("dcmlab_%s_%d.svg", m.state.Mode(), time.Now().Unix())
	if err := os.WriteFile(name, []byte(export.GridToSVG(m.canvas, 4)), 0644); err != nil {
		return "export failed: " + err.Error()
	}
	return "saved " + name
}

func (m *Model) drawScene() {
	m.canvas.Clear()
	Render(m.canvas, geometry.Build(m.state, m.theta), m.camera, m.theta)
}

func (m Model) View() string {
	m.drawScene()
	canvasView := canvasStyle.Foreground(CurrentTheme.Primary).Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("DC MACHINE - " + strings.ToUpper(m.state.Mode().String())))
	s.WriteByte('\n')

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if m.status != "" {
		status += "  " + m.status
	}
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("EMF") + valueStyle.Render(fmt.Sprintf("%.2f V", m.reading.EMF)) + "\n")
	s.WriteString(labelStyle.Render("Torque") + valueStyle.Render(fmt.Sprintf("%.2f N.m", m.reading.Torque)) + "\n")
	s.WriteString(labelStyle.Render("Power") + valueStyle.Render(fmt.Sprintf("%.2f W", m.reading.Power)) + "\n")
	s.WriteString(labelStyle.Render("Angle") + valueStyle.Render(fmt.Sprintf("%.2f rad", m.theta)) + "\n\n")

	s.WriteString(equationStyle.Render(m.reading.EquationText(m.state)) + "\n\n")

	s.WriteString(m.curvePanel(m.speedCurve))
	s.WriteByte('\n')
	s.WriteString(m.curvePanel(m.torqCurve))
	s.WriteByte('\n')

	s.WriteString("PARAMETERS\n")
	for i, key := range m.paramKeys {
		val := m.state.GetParams()[key]
		lo, hi, _ := machine.ParamRange(key)
		line := fmt.Sprintf("%-8s %s %.2f", key, ParamBar(val, lo, hi, 12), val)
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}
	s.WriteString(m.togglesLine())
	s.WriteString(poleLegend())

	s.WriteString(helpStyle.Render("\nTab:Param ↑↓:Adjust M:Mode F/V/C:Layers\nSP:Pause R:Reset A:Follow T:Theme E:SVG ?:Help Q:Quit"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

// curvePanel renders one analytic curve with its operating point
// annotation under the graph.
func (m Model) curvePanel(c curves.Curve) string {
	chart := asciigraph.Plot(c.Y,
		asciigraph.Height(5),
		asciigraph.Width(34),
		asciigraph.Caption(c.Title),
	)
	marker := fmt.Sprintf("op %s", c.Annotation)
	return graphStyle.Render(chart) + "\n" + labelStyle.Render(marker) + "\n"
}

func (m Model) togglesLine() string {
	flag := func(on bool, name string) string {
		if on {
			return "[" + name + "]"
		}
		return " " + name + " "
	}
	return fmt.Sprintf("  %s %s %s\n",
		flag(m.state.ShowField, "field"),
		flag(m.state.ShowVectors, "vectors"),
		flag(m.state.ShowCommutator, "commutator"))
}

// poleLegend keys the N/S glyphs on the canvas to the theme's pole
// colors.
func poleLegend() string {
	n := lipgloss.NewStyle().Foreground(CurrentTheme.North).Bold(true).Render("N")
	s := lipgloss.NewStyle().Foreground(CurrentTheme.South).Bold(true).Render("S")
	return fmt.Sprintf("  %s north  %s south\n", n, s)
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter       ║
║  Down/J   - Decrease parameter       ║
║  M        - Toggle motor/generator   ║
║  F        - Toggle field lines       ║
║  V        - Toggle direction vectors ║
║  C        - Toggle commutator        ║
║  A        - Camera follows rotation  ║
║  Space    - Pause/Resume             ║
║  R        - Reset                    ║
║  E        - Export SVG frame         ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// RunLive starts the live machine view and blocks until quit. hum may
// be nil.
func RunLive(s *machine.State, frameMs, sweepPoints int, hum interface{ Update(*machine.State) }) error {
	m := NewModel(s, frameMs, sweepPoints)
	if hum != nil {
		m = m.WithHum(hum)
	}
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}
