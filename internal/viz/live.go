package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/springlab/internal/config"
	"github.com/san-kum/springlab/internal/oscillator"
)

const (
	canvasWidth  = 70
	canvasHeight = 18
	tickInterval = 20 * time.Millisecond

	plotWidth  = 56
	plotHeight = 7

	// World extents of the spring scene, matching the reference axes.
	worldXMin = -6.0
	worldXMax = 6.0
	worldYMin = -1.0
	worldYMax = 1.0

	cursorStep = 0.2
)

type paramSpec struct {
	name string
	min  float64
	max  float64
	step float64
}

// Tuning order and slider ranges follow the reference UI.
var paramSpecs = []paramSpec{
	{"speed", config.MinTimeScale, config.MaxTimeScale, 0.1},
	{"mass", config.MinMass, config.MaxMass, 0.1},
	{"stiffness", config.MinStiffness, config.MaxStiffness, 1.0},
	{"damping", config.MinDamping, config.MaxDamping, 0.1},
}

type TickMsg time.Time

// Model drives the simulation controller from the Bubble Tea event loop.
// Ticks, key handlers, and cursor queries all run on that single loop, which
// satisfies the controller's serialization requirement.
type Model struct {
	ctrl   *oscillator.Controller
	canvas *Canvas
	keys   keyMap
	help   help.Model

	frame   oscillator.Frame
	tickErr error
	running bool

	selected int

	cursorOn   bool
	cursorTime float64

	// The cursor marker eases toward its target column with a spring.
	marker    harmonica.Spring
	markerPos float64
	markerVel float64

	width, height int
}

func NewModel(ctrl *oscillator.Controller) Model {
	xs, ys := oscillator.SpringGeometry(ctrl.Position())
	return Model{
		ctrl:   ctrl,
		canvas: NewCanvas(canvasWidth, canvasHeight),
		keys:   defaultKeyMap(),
		help:   help.New(),
		frame: oscillator.Frame{
			SpringX:      xs,
			SpringY:      ys,
			MassPosition: ctrl.Position(),
		},
		running: true,
		marker:  harmonica.NewSpring(harmonica.FPS(50), 8.0, 0.6),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if m.running {
			frame, err := m.ctrl.Tick()
			if err != nil {
				m.tickErr = err
			} else {
				m.frame, m.tickErr = frame, nil
			}
		}
		m.markerPos, m.markerVel = m.marker.Update(m.markerPos, m.markerVel, m.cursorTime)
		return m, tea.Tick(tickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.running = !m.running
	case key.Matches(msg, m.keys.Reset):
		m.ctrl.Reset()
		m.cursorOn = false
		m.cursorTime = 0
	case key.Matches(msg, m.keys.Cycle):
		m.selected = (m.selected + 1) % len(paramSpecs)
	case key.Matches(msg, m.keys.Increase):
		m.adjustParam(1)
	case key.Matches(msg, m.keys.Decrease):
		m.adjustParam(-1)
	case key.Matches(msg, m.keys.CursorLeft):
		m.moveCursor(-cursorStep)
	case key.Matches(msg, m.keys.CursorRight):
		m.moveCursor(cursorStep)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) paramValue(i int) float64 {
	switch i {
	case 0:
		return m.ctrl.TimeScale()
	case 1:
		return m.ctrl.Mass()
	case 2:
		return m.ctrl.Stiffness()
	default:
		return m.ctrl.Damping()
	}
}

func (m *Model) adjustParam(dir float64) {
	spec := paramSpecs[m.selected]
	v := m.paramValue(m.selected) + dir*spec.step
	if v < spec.min {
		v = spec.min
	}
	if v > spec.max {
		v = spec.max
	}

	var err error
	switch m.selected {
	case 0:
		err = m.ctrl.SetTimeScale(v)
	case 1:
		err = m.ctrl.SetMass(v)
	case 2:
		err = m.ctrl.SetStiffness(v)
	default:
		err = m.ctrl.SetDamping(v)
	}
	if err != nil {
		m.tickErr = err
	}
}

func (m *Model) moveCursor(delta float64) {
	m.cursorOn = true
	m.cursorTime += delta
	if m.cursorTime < 0 {
		m.cursorTime = 0
	}
	if max := m.ctrl.MaxTime(); m.cursorTime > max {
		m.cursorTime = max
	}
}

// drawScene renders the anchor wall, coil, and mass onto the canvas.
func (m *Model) drawScene() {
	m.canvas.Clear()
	cw, ch := m.canvas.Width*2, m.canvas.Height*4

	toScreen := func(x, y float64) (int, int) {
		sx := (x - worldXMin) / (worldXMax - worldXMin) * float64(cw-1)
		sy := (worldYMax - y) / (worldYMax - worldYMin) * float64(ch-1)
		return int(sx), int(sy)
	}

	wallX, wallTop := toScreen(0, 0.8)
	_, wallBot := toScreen(0, -0.8)
	m.canvas.DrawLine(wallX, wallTop, wallX, wallBot)

	if len(m.frame.SpringX) == 0 {
		return
	}
	prevX, prevY := toScreen(m.frame.SpringX[0], m.frame.SpringY[0])
	for i := 1; i < len(m.frame.SpringX); i++ {
		x, y := toScreen(m.frame.SpringX[i], m.frame.SpringY[i])
		m.canvas.DrawLine(prevX, prevY, x, y)
		prevX, prevY = x, y
	}

	massX, massY := toScreen(m.frame.MassPosition, 0)
	for dy := -3; dy <= 3; dy++ {
		for dx := -3; dx <= 3; dx++ {
			m.canvas.Set(massX+dx, massY+dy)
		}
	}
}

func (m Model) View() string {
	m.drawScene()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("SPRINGLAB") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.ctrl.ElapsedTime())) + "\n")
	s.WriteString(labelStyle.Render("Position") + valueStyle.Render(fmt.Sprintf("%.3f m", m.ctrl.Position())) + "\n")
	s.WriteString(labelStyle.Render("Velocity") + valueStyle.Render(fmt.Sprintf("%.3f m/s", m.ctrl.Velocity())) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.2f J", m.ctrl.Energy())) + "\n")
	if !m.ctrl.Recording() {
		s.WriteString(frozenStyle.Render("TRACE FROZEN") + valueStyle.Render(" (reset to record)") + "\n")
	}
	if m.tickErr != nil {
		s.WriteString(errorStyle.Render(m.tickErr.Error()) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	for i, spec := range paramSpecs {
		v := m.paramValue(i)
		ratio := (v - spec.min) / (spec.max - spec.min)
		filled := int(ratio * 10)
		if filled > 10 {
			filled = 10
		}
		if filled < 0 {
			filled = 0
		}
		bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", 10-filled) + "]"
		line := fmt.Sprintf("%-10s %s %5.2f", spec.name, bar, v)
		if i == m.selected {
			s.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	if trace := m.frame.Trace; len(trace) > 1 {
		data := make([]float64, len(trace))
		for i, sample := range trace {
			data[i] = sample.Velocity
		}
		chart := asciigraph.Plot(data,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption("velocity [m/s]"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
		s.WriteString(m.cursorView() + "\n")
	}

	s.WriteString(helpStyle.Render(m.help.View(m.keys)))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// cursorView renders the smoothed cursor marker and the nearest recorded
// sample under it.
func (m Model) cursorView() string {
	if !m.cursorOn {
		return cursorStyle.Render("←/→ to inspect the trace")
	}

	col := int(m.markerPos / m.ctrl.MaxTime() * float64(plotWidth-1))
	if col < 0 {
		col = 0
	}
	if col > plotWidth-1 {
		col = plotWidth - 1
	}
	marker := strings.Repeat(" ", col) + "▲"

	sample, ok := m.ctrl.Nearest(m.cursorTime)
	if !ok {
		return cursorStyle.Render(marker + "\nno samples yet")
	}
	return cursorStyle.Render(fmt.Sprintf("%s\nt=%.2fs  v=%.2f m/s", marker, sample.Time, sample.Velocity))
}

// Run launches the interactive TUI for the given controller.
func Run(ctrl *oscillator.Controller) error {
	p := tea.NewProgram(NewModel(ctrl), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
